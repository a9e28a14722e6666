package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apphttp "github.com/pocket-estoque/api/internal/interfaces/http"
)

func TestLoginRateLimiter_EstouraBurst(t *testing.T) {
	limiter := apphttp.NewLoginRateLimiter(rate.Limit(0.001), 2)
	app := fiber.New()
	app.Post("/login", limiter.Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	var ultimo int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		ultimo = resp.StatusCode
		resp.Body.Close()
	}

	assert.Equal(t, http.StatusTooManyRequests, ultimo, "a terceira tentativa deve estourar o burst de 2")
}

func TestLoginRateLimiter_LimparInativos(t *testing.T) {
	limiter := apphttp.NewLoginRateLimiter(rate.Limit(1), 1)
	app := fiber.New()
	app.Post("/login", limiter.Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	// Idade zero descarta qualquer visitante já visto.
	time.Sleep(time.Millisecond)
	limiter.LimparInativos(0)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "visitante limpo volta com o burst cheio")
}
