package session

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieStore backs a session with the HTTP cookies of a single
// request/response pair. The auth token cookie is HttpOnly; the user payload
// cookie is readable by the frontend so it can render identity without a
// round trip.
type CookieStore struct {
	c *gin.Context
}

func NewCookieStore(c *gin.Context) *CookieStore {
	return &CookieStore{c: c}
}

func (s *CookieStore) Get(key string) (string, bool) {
	value, err := s.c.Cookie(key)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func (s *CookieStore) Set(key, value string, ttl time.Duration) {
	s.c.SetCookie(
		key,
		value,
		int(ttl.Seconds()),
		"/",
		"",
		isProduction(),
		key == TokenKey, // only the token is HttpOnly
	)
}

func (s *CookieStore) Remove(key string) {
	// MaxAge < 0 -> delete; attributes must match how the cookie was set
	s.c.SetCookie(key, "", -1, "/", "", isProduction(), key == TokenKey)
}

func isProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
