package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type EndpointInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Sitemap lists every registered endpoint of the router
func Sitemap(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := []EndpointInfo{}
		for _, r := range router.Routes() {
			result = append(result, EndpointInfo{Method: r.Method, Path: r.Path})
		}
		sort.Slice(result, func(i, j int) bool {
			if result[i].Path == result[j].Path {
				return result[i].Method < result[j].Method
			}
			return result[i].Path < result[j].Path
		})
		c.JSON(http.StatusOK, result)
	}
}
