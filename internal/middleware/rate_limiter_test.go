package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveLimited(e *echo.Echo, rl *RateLimiter, userID *uuid.UUID, remoteAddr string) int {
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(UserIDContextKey, *userID)
	}

	_ = handler(c)
	return rec.Code
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 3)
	owner := uuid.New()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serveLimited(e, rl, &owner, "10.0.0.1:1000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(e, rl, &owner, "10.0.0.1:1000"))
}

func TestRateLimiter_OwnersHaveSeparateBuckets(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)
	first := uuid.New()
	second := uuid.New()

	assert.Equal(t, http.StatusOK, serveLimited(e, rl, &first, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(e, rl, &first, "10.0.0.1:1000"))
	// same address, different owner
	assert.Equal(t, http.StatusOK, serveLimited(e, rl, &second, "10.0.0.1:1000"))
}

func TestRateLimiter_FallsBackToClientIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)

	assert.Equal(t, http.StatusOK, serveLimited(e, rl, nil, "192.168.1.100:1234"))
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(e, rl, nil, "192.168.1.100:5678"))
	assert.Equal(t, http.StatusOK, serveLimited(e, rl, nil, "192.168.1.101:1234"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(10, 10)
	owner := uuid.New()

	serveLimited(e, rl, &owner, "10.0.0.1:1000")
	serveLimited(e, rl, nil, "10.0.0.2:1000")
	assert.Equal(t, 2, rl.visitorCount())

	rl.evictIdle(time.Now())
	assert.Equal(t, 2, rl.visitorCount())

	rl.evictIdle(time.Now().Add(visitorIdleTimeout + time.Second))
	assert.Equal(t, 0, rl.visitorCount())
}
