package utils

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// errorBodyWriter keeps a copy of the response body for failed requests
type errorBodyWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *errorBodyWriter) Write(b []byte) (int, error) {
	if w.Status() >= 400 {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorBodyWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// ErrorLogMiddleware logs every 4xx/5xx response with its request ID.
// Must be registered before gzip, otherwise the body is compressed
func ErrorLogMiddleware(c *gin.Context) {
	w := &errorBodyWriter{ResponseWriter: c.Writer}
	c.Writer = w
	c.Next()
	if status := w.Status(); status >= 400 {
		log.Printf("[ERROR] %s %s %s -> %d %s", GetRequestID(c), c.Request.Method, c.Request.URL.Path, status, bytes.TrimSpace(w.body.Bytes()))
	}
}
