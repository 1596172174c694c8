package checkoutControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/middleware"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/models"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/pricing"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/view"
)

const defaultPaymentMethod = "cod"

// GET /checkout — the address form. An empty cart has nothing to check out.
func ShowAddress(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		lines, err := st.CartLinesForUser(user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load cart")
			return
		}
		if len(lines) == 0 {
			view.Flash(c, "info", "Your cart is empty.")
			c.Redirect(http.StatusFound, "/")
			return
		}

		// Prefill from a still-live draft so resubmission is painless.
		draft, err := st.DraftForUser(user.ID)
		if err != nil {
			draft = models.CheckoutDraft{}
		}
		view.HTML(c, st, http.StatusOK, "address.html", gin.H{
			"Draft": draft,
		})
	}
}

// POST /checkout — validates and stores the shipping address draft.
func SubmitAddress(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		lines, err := st.CartLinesForUser(user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load cart")
			return
		}
		if len(lines) == 0 {
			view.Flash(c, "info", "Your cart is empty.")
			c.Redirect(http.StatusFound, "/")
			return
		}

		draft := models.CheckoutDraft{
			UserID:       user.ID,
			Name:         c.PostForm("name"),
			PhoneNumber:  c.PostForm("phone_number"),
			AddressLine1: c.PostForm("address_line1"),
			AddressLine2: c.PostForm("address_line2"),
			City:         c.PostForm("city"),
			State:        c.PostForm("state"),
			Pincode:      c.PostForm("pincode"),
			Landmark:     c.PostForm("landmark"),
		}
		if missing := draft.MissingFields(); len(missing) > 0 {
			view.Flash(c, "error", "Please fill in: "+strings.Join(missing, ", ")+".")
			c.Redirect(http.StatusFound, "/checkout")
			return
		}

		if err := st.SaveDraft(&draft); err != nil {
			c.String(http.StatusInternalServerError, "failed to save address")
			return
		}
		c.Redirect(http.StatusFound, "/payment")
	}
}

// GET /payment — order review; needs a live address draft.
func Payment(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)
		draft, err := st.DraftForUser(user.ID)
		if err != nil {
			c.Redirect(http.StatusFound, "/checkout")
			return
		}

		lines, err := st.CartLinesForUser(user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load cart")
			return
		}
		quote := pricing.ForCart(lines)
		view.HTML(c, st, http.StatusOK, "payment.html", gin.H{
			"CartLines": lines,
			"Quote":     quote,
			"Address":   draft,
		})
	}
}

// POST /place_order — the atomic cart -> order step.
func PlaceOrder(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.UserFrom(c)

		lines, err := st.CartLinesForUser(user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load cart")
			return
		}
		if len(lines) == 0 {
			c.Redirect(http.StatusFound, "/")
			return
		}

		draft, err := st.DraftForUser(user.ID)
		if err != nil {
			view.Flash(c, "error", "Shipping address is missing. Please try again.")
			c.Redirect(http.StatusFound, "/checkout")
			return
		}

		paymentMethod := c.PostForm("payment_method")
		if paymentMethod == "" {
			paymentMethod = defaultPaymentMethod
		}

		if _, err := st.PlaceOrder(user.ID, draft, paymentMethod); err != nil {
			if errors.Is(err, store.ErrEmptyCart) {
				c.Redirect(http.StatusFound, "/")
				return
			}
			c.String(http.StatusInternalServerError, "failed to place order")
			return
		}

		view.Flash(c, "success", "Your order has been placed successfully!")
		c.Redirect(http.StatusFound, "/checkout/success")
	}
}

// GET /checkout/success
func Success(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		view.HTML(c, st, http.StatusOK, "checkout_success.html", nil)
	}
}
