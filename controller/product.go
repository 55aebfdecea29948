package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EkeminiThompson/ecommerce/config"
	"github.com/EkeminiThompson/ecommerce/middleware"
	"github.com/EkeminiThompson/ecommerce/models"
)

// GetProducts returns the full catalog as a bare JSON array. Public.
func GetProducts(c *gin.Context) {
	var products []models.Product
	if result := config.DB.WithContext(c.Request.Context()).Find(&products); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID returns a single product. A malformed id is treated the
// same as an absent one: both surface as 404. Public.
func GetProductByID(c *gin.Context) {
	var product models.Product
	id := c.Param("id")
	if err := config.DB.WithContext(c.Request.Context()).First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct persists a new product for an admin caller. Omitted or
// falsy fields are filled from the sample defaults, numReviews is forced to
// zero, and the owner is stamped from the caller and never reassigned.
func CreateProduct(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var product models.Product
	models.ApplyFields(&product, input, true)
	product.OwnerID = identity.ID

	if result := config.DB.WithContext(c.Request.Context()).Create(&product); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces the stored fields verbatim with the supplied
// payload: unlike create there is no default substitution, so an empty
// string clears the field. The owner stamp is untouched.
func UpdateProduct(c *gin.Context) {
	var product models.Product
	id := c.Param("id")
	if err := config.DB.WithContext(c.Request.Context()).First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	models.ApplyFields(&product, input, false)

	if err := config.DB.WithContext(c.Request.Context()).Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}
