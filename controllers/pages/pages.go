package pageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/view"
)

// GET /about
func About(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		view.HTML(c, st, http.StatusOK, "about.html", nil)
	}
}

// GET /contact
func ShowContact(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		view.HTML(c, st, http.StatusOK, "contact.html", nil)
	}
}

// POST /contact
func Contact(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		view.Flash(c, "success", "Thank you for your message. We will get back to you soon!")
		c.Redirect(http.StatusFound, "/contact")
	}
}
