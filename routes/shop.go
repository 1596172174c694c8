package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/Deveshkumar24/HygienaX-E-commerce-store/controllers/account"
	cartControllers "github.com/Deveshkumar24/HygienaX-E-commerce-store/controllers/cart"
	checkoutControllers "github.com/Deveshkumar24/HygienaX-E-commerce-store/controllers/checkout"
	orderControllers "github.com/Deveshkumar24/HygienaX-E-commerce-store/controllers/orders"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/middleware"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

// SetupShopRoutes registers everything behind the login guard: cart, checkout
// and order history.
func SetupShopRoutes(r *gin.Engine, st store.Store) {
	shop := r.Group("/")
	shop.Use(middleware.RequireLogin(st))
	{
		shop.GET("/logout", accountControllers.Logout())

		shop.GET("/cart", cartControllers.ViewCart(st))
		shop.POST("/add_to_cart/:product_id", cartControllers.AddToCart(st))
		shop.POST("/update_cart/:item_id/:action", cartControllers.UpdateCart(st))
		shop.POST("/remove_from_cart/:item_id", cartControllers.RemoveFromCart(st))

		shop.GET("/checkout", checkoutControllers.ShowAddress(st))
		shop.POST("/checkout", checkoutControllers.SubmitAddress(st))
		shop.GET("/payment", checkoutControllers.Payment(st))
		shop.POST("/place_order", checkoutControllers.PlaceOrder(st))
		shop.GET("/checkout/success", checkoutControllers.Success(st))

		shop.GET("/orders", orderControllers.History(st))
	}
}
