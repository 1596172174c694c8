package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/Deveshkumar24/HygienaX-E-commerce-store/controllers/account"
	catalogControllers "github.com/Deveshkumar24/HygienaX-E-commerce-store/controllers/catalog"
	pageControllers "github.com/Deveshkumar24/HygienaX-E-commerce-store/controllers/pages"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

// SetupPublicRoutes registers everything reachable without a session.
func SetupPublicRoutes(r *gin.Engine, st store.Store) {
	r.GET("/", catalogControllers.Home(st))
	r.GET("/product/:id", catalogControllers.ProductDetail(st))

	r.GET("/signup", accountControllers.ShowSignup(st))
	r.POST("/signup", accountControllers.Signup(st))
	r.GET("/login", accountControllers.ShowLogin(st))
	r.POST("/login", accountControllers.Login(st))

	r.GET("/about", pageControllers.About(st))
	r.GET("/contact", pageControllers.ShowContact(st))
	r.POST("/contact", pageControllers.Contact(st))
}
