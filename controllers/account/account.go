package accountControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/middleware"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/models"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/view"
)

// loginFailedMessage is deliberately the same for a wrong password and an
// unknown email so the form never reveals which one was wrong.
const loginFailedMessage = "Please check your login details and try again."

// GET /signup
func ShowSignup(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		view.HTML(c, st, http.StatusOK, "signup.html", nil)
	}
}

// POST /signup
func Signup(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		password := c.PostForm("password")

		if name == "" || email == "" || password == "" {
			view.Flash(c, "error", "All fields are required.")
			c.Redirect(http.StatusFound, "/signup")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to process password")
			return
		}

		user := models.User{Username: name, Email: email, Password: string(hashed)}
		if err := st.CreateUser(&user); err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				view.Flash(c, "error", "Email address already exists.")
				c.Redirect(http.StatusFound, "/signup")
				return
			}
			c.String(http.StatusInternalServerError, "failed to create account")
			return
		}

		// New accounts are logged in immediately.
		if err := middleware.LoginSession(c, user.ID); err != nil {
			c.String(http.StatusInternalServerError, "failed to start session")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /login
func ShowLogin(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		view.HTML(c, st, http.StatusOK, "login.html", gin.H{
			"Next": c.Query("next"),
		})
	}
}

// POST /login
func Login(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		user, err := st.UserByEmail(email)
		if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			view.Flash(c, "error", loginFailedMessage)
			c.Redirect(http.StatusFound, "/login")
			return
		}

		if err := middleware.LoginSession(c, user.ID); err != nil {
			c.String(http.StatusInternalServerError, "failed to start session")
			return
		}

		next := c.PostForm("next")
		if next == "" || next[0] != '/' {
			next = "/"
		}
		c.Redirect(http.StatusFound, next)
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = middleware.LogoutSession(c)
		c.Redirect(http.StatusFound, "/")
	}
}
