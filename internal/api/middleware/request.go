package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// loginTracker counts recent login attempts per client IP so repeated
// failures can be flagged in the logs. Entries expire after 30 seconds.
type loginTracker struct {
	mu           sync.RWMutex
	attempts     map[string]*attemptInfo
	cleanupEvery time.Duration
}

type attemptInfo struct {
	Count       int
	LastAttempt time.Time
}

func newLoginTracker() *loginTracker {
	tracker := &loginTracker{
		attempts:     make(map[string]*attemptInfo),
		cleanupEvery: 5 * time.Minute,
	}
	go tracker.startCleanup()
	return tracker
}

func (t *loginTracker) startCleanup() {
	ticker := time.NewTicker(t.cleanupEvery)
	defer ticker.Stop()

	for range ticker.C {
		t.mu.Lock()
		expiry := time.Now().Add(-30 * time.Second)
		for ip, info := range t.attempts {
			if info.LastAttempt.Before(expiry) {
				delete(t.attempts, ip)
			}
		}
		t.mu.Unlock()
	}
}

func (t *loginTracker) record(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	info, exists := t.attempts[ip]
	if !exists {
		info = &attemptInfo{}
		t.attempts[ip] = info
	}
	info.Count++
	info.LastAttempt = time.Now()
	return info.Count
}

type RequestMiddleware struct {
	logger  *zap.Logger
	tracker *loginTracker
}

func NewRequestMiddleware(logger *zap.Logger) *RequestMiddleware {
	return &RequestMiddleware{
		logger:  logger,
		tracker: newLoginTracker(),
	}
}

// ProcessRequest tags each request with an id and logs completion with the
// usual structured fields.
func (rm *RequestMiddleware) ProcessRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		rm.logger.Info("Request completed",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// TrackLoginAttempts flags bursts of login requests from a single IP.
func (rm *RequestMiddleware) TrackLoginAttempts() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost && c.FullPath() == "/api/auth/login" {
			ip := c.ClientIP()
			if count := rm.tracker.record(ip); count > 5 {
				rm.logger.Warn("Repeated login attempts",
					zap.String("client_ip", ip),
					zap.Int("attempts", count))
			}
		}
		c.Next()
	}
}

// RecoverPanic converts panics into the standard 500 error body.
func (rm *RequestMiddleware) RecoverPanic() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				rm.logger.Error("Panic recovered",
					zap.String("request_id", c.GetString("requestID")),
					zap.Any("error", err),
					zap.Stack("stack"))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Erro interno do servidor",
					"code":  apperr.CodeInternal,
				})
			}
		}()
		c.Next()
	}
}
