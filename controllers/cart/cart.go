package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/middleware"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/pricing"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/view"
)

// GET /cart
func ViewCart(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		lines, err := st.CartLinesForUser(user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load cart")
			return
		}
		quote := pricing.ForCart(lines)
		view.HTML(c, st, http.StatusOK, "cart.html", gin.H{
			"CartLines": lines,
			"Quote":     quote,
		})
	}
}

// POST /add_to_cart/:product_id
func AddToCart(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			view.HTML(c, st, http.StatusNotFound, "404.html", nil)
			return
		}
		product, err := st.ProductByID(uint(productID))
		if err != nil {
			view.HTML(c, st, http.StatusNotFound, "404.html", nil)
			return
		}

		if err := st.AddToCart(user.ID, product.ID); err != nil {
			c.String(http.StatusInternalServerError, "failed to add item to cart")
			return
		}

		view.Flash(c, "success", product.Name+" has been added to your cart.")
		c.Redirect(http.StatusFound, backTo(c))
	}
}

// POST /update_cart/:item_id/:action
func UpdateCart(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		lineID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		switch c.Param("action") {
		case "increase":
			err = st.IncreaseCartLine(user.ID, uint(lineID))
		case "decrease":
			err = st.DecreaseCartLine(user.ID, uint(lineID))
		default:
			// Unknown action mutates nothing.
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		// A missing or foreign line redirects without comment so a guessed id
		// reveals nothing.
		_ = err
		c.Redirect(http.StatusFound, "/cart")
	}
}

// POST /remove_from_cart/:item_id
func RemoveFromCart(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		lineID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		if err := st.RemoveCartLine(user.ID, uint(lineID)); err == nil {
			view.Flash(c, "success", "Item removed from your cart.")
		}
		c.Redirect(http.StatusFound, "/cart")
	}
}

func backTo(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}
