package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natarelva/portfolio/internal/logging"
)

// visitorHasher pseudonymises client IPs for the request log. The salt lives
// only in memory, so hashes are stable for the life of the process and
// unlinkable across restarts.
type visitorHasher struct {
	salt string
}

func newVisitorHasher() (*visitorHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &visitorHasher{salt: hex.EncodeToString(b)}, nil
}

func (v *visitorHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + v.salt))
	return hex.EncodeToString(sum[:])[:16]
}

var untrackedPrefixes = []string{"/static/", "/images/", "/favicon", "/healthz"}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// requestLogger attaches a request scoped logger to c and logs
// each page request once it has been served. Requests sent with DNT: 1 are
// served without the visitor hash.
func requestLogger(base *slog.Logger, hasher *visitorHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		l := base.With("method", c.Request.Method, "path", path)
		if c.GetHeader("DNT") != "1" {
			l = l.With("visitor", hasher.hash(c.ClientIP()))
		}
		logging.Attach(c, l)

		start := time.Now()
		c.Next()

		if !tracked(path) {
			return
		}
		l.Info("http.request",
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
