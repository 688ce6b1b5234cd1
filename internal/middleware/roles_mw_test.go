package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"petnutricare/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(role string, mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", func(c *gin.Context) {
		if role != "" {
			c.Set(AuthRoleKey, role)
		}
		c.Next()
	}, mw, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func get(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestAdminMiddleware(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(roleRouter(model.RoleAdmin, AdminMiddleware())))
	assert.Equal(t, http.StatusForbidden, get(roleRouter(model.RoleUser, AdminMiddleware())))
	assert.Equal(t, http.StatusForbidden, get(roleRouter(model.RoleVeterinarian, AdminMiddleware())))
	assert.Equal(t, http.StatusForbidden, get(roleRouter("", AdminMiddleware())))
}

func TestVeterinarianMiddleware(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(roleRouter(model.RoleVeterinarian, VeterinarianMiddleware())))
	assert.Equal(t, http.StatusOK, get(roleRouter(model.RoleAdmin, VeterinarianMiddleware())))
	assert.Equal(t, http.StatusForbidden, get(roleRouter(model.RoleUser, VeterinarianMiddleware())))
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		token, ok := BearerToken(c)
		assert.Equal(t, tc.ok, ok, "header %q", tc.header)
		assert.Equal(t, tc.token, token, "header %q", tc.header)
	}
}
