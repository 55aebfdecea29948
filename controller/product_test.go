package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EkeminiThompson/ecommerce/config"
	"github.com/EkeminiThompson/ecommerce/models"
)

func TestGetProductsEmptyCatalog(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[[]models.Product](t, rr))
}

func TestGetProductsReturnsBareArray(t *testing.T) {
	r := setupRouter(t)
	_, token := newUser(t, "admin@example.com", true)

	for _, name := range []string{"Shirt", "Jacket"} {
		rr := doJSON(r, http.MethodPost, "/api/products", token, models.ProductInput{Name: name, Price: 10})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doJSON(r, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	products := decode[[]models.Product](t, rr)
	assert.Len(t, products, 2)
}

func TestGetProductByIDNotFound(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Product not found", messageOf(t, rr))
}

// Malformed ids are not a distinct error kind: lookup failures surface
// uniformly as 404.
func TestGetProductByIDMalformedID(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/products/not-an-id", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Product not found", messageOf(t, rr))
}

func TestCreateProductRequiresCredential(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(r, http.MethodPost, "/api/products", "", models.ProductInput{Name: "Shirt"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var count int64
	config.DB.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 0, count, "store must not be mutated")
}

func TestCreateProductRequiresAdmin(t *testing.T) {
	r := setupRouter(t)
	_, token := newUser(t, "user@example.com", false)

	rr := doJSON(r, http.MethodPost, "/api/products", token, models.ProductInput{Name: "Shirt"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	var count int64
	config.DB.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 0, count, "store must not be mutated")
}

func TestCreateProductFillsDefaultsAndStampsOwner(t *testing.T) {
	r := setupRouter(t)
	admin, token := newUser(t, "admin@example.com", true)

	rr := doJSON(r, http.MethodPost, "/api/products", token, map[string]any{
		"name": "", "price": 0, "description": "x",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	created := decode[models.Product](t, rr)
	assert.NotZero(t, created.Id)
	assert.Equal(t, models.SampleName, created.Name)
	assert.Equal(t, 0.0, created.Price)
	assert.Equal(t, "x", created.Description)
	assert.Equal(t, models.SampleImage, created.Image)
	assert.Equal(t, models.SampleBrand, created.Brand)
	assert.Equal(t, models.SampleCategory, created.Category)
	assert.Equal(t, 0, created.CountInStock)
	assert.Equal(t, 0, created.NumReviews)
	assert.Equal(t, admin.Id, created.OwnerID)
}

func TestCreateProductIgnoresNumReviewsInput(t *testing.T) {
	r := setupRouter(t)
	_, token := newUser(t, "admin@example.com", true)

	rr := doJSON(r, http.MethodPost, "/api/products", token, map[string]any{
		"name": "Shirt", "numReviews": 50,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 0, decode[models.Product](t, rr).NumReviews)
}

func TestUpdateProductReplacesVerbatim(t *testing.T) {
	r := setupRouter(t)
	admin, token := newUser(t, "admin@example.com", true)

	created := decode[models.Product](t, doJSON(r, http.MethodPost, "/api/products", token, models.ProductInput{
		Name: "Jacket", Price: 50, Brand: "Levi's", Description: "Classic",
	}))

	rr := doJSON(r, http.MethodPut, "/api/products/"+itoa(created.Id), token, models.ProductInput{
		Name: "Jacket", Price: 40, Brand: "", Description: "Classic",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decode[models.Product](t, rr)
	assert.Equal(t, 40.0, updated.Price)
	assert.Equal(t, "", updated.Brand, "empty string clears the field on update")
	// create filled the category default; the update payload omitted it, so
	// it is cleared rather than defaulted again
	assert.Equal(t, models.SampleCategory, created.Category)
	assert.Equal(t, "", updated.Category)
	assert.Equal(t, admin.Id, updated.OwnerID, "owner is never reassigned")
}

func TestUpdateProductNotFound(t *testing.T) {
	r := setupRouter(t)
	_, token := newUser(t, "admin@example.com", true)

	rr := doJSON(r, http.MethodPut, "/api/products/12345", token, models.ProductInput{Name: "X"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Product not found", messageOf(t, rr))
}

func TestUpdateProductRequiresAdmin(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := newUser(t, "admin@example.com", true)
	_, userToken := newUser(t, "user@example.com", false)

	created := decode[models.Product](t, doJSON(r, http.MethodPost, "/api/products", adminToken, models.ProductInput{
		Name: "Jacket", Price: 50,
	}))

	rr := doJSON(r, http.MethodPut, "/api/products/"+itoa(created.Id), userToken, models.ProductInput{Name: "Hacked"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	var stored models.Product
	require.NoError(t, config.DB.First(&stored, created.Id).Error)
	assert.Equal(t, "Jacket", stored.Name, "store must not be mutated")
}
