package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/view"
)

// GET /
func Home(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		products, err := st.Products(search)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load products")
			return
		}
		view.HTML(c, st, http.StatusOK, "index.html", gin.H{
			"Products":    products,
			"SearchQuery": search,
		})
	}
}

// GET /product/:id
func ProductDetail(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			view.HTML(c, st, http.StatusNotFound, "404.html", nil)
			return
		}
		product, err := st.ProductByID(uint(id))
		if err != nil {
			view.HTML(c, st, http.StatusNotFound, "404.html", nil)
			return
		}
		view.HTML(c, st, http.StatusOK, "product_detail.html", gin.H{
			"Product": product,
		})
	}
}
