package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Cache lifetimes in seconds
const (
	CacheNoCache = 0
	CacheSitemap = 3600 // the route table only changes with a deploy
)

// CacheControl sets the cache-control header before the handler runs.
// Registered globally with CacheNoCache, individual routes override it
func CacheControl(maxAge int) gin.HandlerFunc {
	value := "no-cache"
	if maxAge > 0 {
		value = "private, max-age=" + strconv.Itoa(maxAge)
	}
	return func(c *gin.Context) {
		c.Header("cache-control", value)
		c.Next()
	}
}
