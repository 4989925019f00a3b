package viewcache

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const cacheHeader = "X-View-Cache"

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware serves cached GET responses for view and stores fresh 200s.
// A body is only stored if no write invalidated the view while it was being
// rendered. Cache errors degrade to a normal uncached request.
func Middleware(store Store, view string, ttl time.Duration, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := c.Request.URL.RequestURI()

		if body, ok, err := store.Get(ctx, key); err == nil && ok {
			c.Header(cacheHeader, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		version, err := store.Version(ctx, view)
		if err != nil {
			c.Next()
			return
		}

		w := &bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w
		c.Header(cacheHeader, "MISS")
		c.Next()

		if w.Status() != http.StatusOK {
			return
		}
		if err := store.Set(ctx, view, key, w.body.Bytes(), ttl, version); err != nil {
			logger.Warn("view cache store failed", "view", view, "key", key, "error", err)
		}
	}
}
