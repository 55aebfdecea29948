package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EkeminiThompson/ecommerce/config"
	"github.com/EkeminiThompson/ecommerce/models"
)

func TestRegisterCreatesAdmin(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Admin created successfully", messageOf(t, rr))

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "ada@example.com").First(&user).Error)
	assert.True(t, user.IsAdmin)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be stored hashed")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	body := map[string]string{"name": "Ada", "email": "ada@example.com", "password": "secret123"}
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/auth/register", "", body).Code)

	rr := doJSON(r, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.NotEmpty(t, messageOf(t, rr))
}

func TestRegisterShortPassword(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginIssuesToken(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	}).Code)

	rr := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode[map[string]any](t, rr)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, "ada@example.com", body["email"])
	assert.Equal(t, true, body["isAdmin"])

	// the issued token must actually open the admin gate
	token, _ := body["token"].(string)
	createRR := doJSON(r, http.MethodPost, "/api/products", token, models.ProductInput{Name: "Shirt"})
	assert.Equal(t, http.StatusCreated, createRR.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	}).Code)

	rr := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", messageOf(t, rr))

	body := decode[map[string]any](t, rr)
	_, hasToken := body["token"]
	assert.False(t, hasToken, "no token may be issued on failure")
}

// Unknown email and wrong password are indistinguishable from outside.
func TestLoginUnknownEmail(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", messageOf(t, rr))
}
