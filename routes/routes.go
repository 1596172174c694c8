package routes

import (
	"html/template"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

// New builds the storefront engine: session cookies, CORS, templates, static
// assets and every route.
func New(st store.Store, sessionSecret []byte, templateGlob string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(sessions.Sessions("hygienax_session", cookie.NewStore(sessionSecret)))

	r.SetFuncMap(template.FuncMap{
		"mulPrice": func(price float64, qty int) float64 { return price * float64(qty) },
	})
	r.LoadHTMLGlob(templateGlob)
	r.Static("/static", "./static")

	SetupRoutes(r, st)
	return r
}

// SetupRoutes wires up the public and the login-guarded route groups.
func SetupRoutes(r *gin.Engine, st store.Store) {
	SetupPublicRoutes(r, st)
	SetupShopRoutes(r, st)
}
