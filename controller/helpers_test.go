package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/EkeminiThompson/ecommerce/config"
	"github.com/EkeminiThompson/ecommerce/models"
	"github.com/EkeminiThompson/ecommerce/routes"
	"github.com/EkeminiThompson/ecommerce/utils"
)

// setupRouter boots the in-memory test store and mounts the full API
// surface on a fresh engine. Redis stays nil so the rate limiter is open.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	config.Connection()
	for _, table := range []string{"order_items", "orders", "products", "users"} {
		config.DB.Exec("DELETE FROM " + table)
	}

	r := gin.New()
	routes.AuthRoute(r)
	routes.ProductRoute(r)
	routes.OrderRoute(r)
	return r
}

// newUser inserts a user directly and returns it with a valid token.
func newUser(t *testing.T, email string, isAdmin bool) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: "Test User", Email: email, PasswordHash: string(hash), IsAdmin: isAdmin}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.Id, user.IsAdmin)
	require.NoError(t, err)
	return user, token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode[map[string]any](t, rr)
	msg, _ := body["message"].(string)
	return msg
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
