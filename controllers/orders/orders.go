package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/middleware"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/view"
)

// GET /orders — the user's order history, newest first.
func History(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		orders, err := st.OrdersForUser(user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load orders")
			return
		}
		view.HTML(c, st, http.StatusOK, "orders.html", gin.H{
			"Orders": orders,
		})
	}
}
