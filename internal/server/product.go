package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	productdomain "github.com/silzatelesols/billify/internal/product/domain"
)

// @Summary      Create Product
// @Description  Create a new product or service line item preset
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body productdomain.CreateRequest true "Create Product Request"
// @Success      200  {object}  productdomain.Product
// @Router       /products [post]
func (s *Server) CreateProduct(c *gin.Context) {
	var req productdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Products
// @Description  List products, optionally filtered by search
// @Tags         products
// @Produce      json
// @Param        search query string false "Search"
// @Success      200  {object}  []productdomain.Product
// @Router       /products [get]
func (s *Server) ListProducts(c *gin.Context) {
	var query productdomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Product
// @Description  Get product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  productdomain.Product
// @Router       /products/{id} [get]
func (s *Server) GetProductByID(c *gin.Context) {
	resp, err := s.productSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Product
// @Description  Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path  string                       true  "Product ID"
// @Param        request body  productdomain.UpdateRequest  true  "Update Product Request"
// @Success      200  {object}  productdomain.Product
// @Router       /products/{id} [patch]
func (s *Server) UpdateProduct(c *gin.Context) {
	var req productdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Product
// @Description  Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  map[string]string
// @Router       /products/{id} [delete]
func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.productSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
