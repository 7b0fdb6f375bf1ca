// admin.go - privacy-conscious visitor tracking and the admin API
package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/thapliyals/portfolio/internal/visits"
)

// untrackedPrefixes are never counted as page views.
var untrackedPrefixes = []string{"/svg/", "/admin/", "/api/", "/healthz", "/favicon"}

// visitorTrackingMiddleware records successful page views with hashed IPs.
// Requests carrying DNT: 1 are not recorded.
func visitorTrackingMiddleware(store *visits.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}
		if c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}

		if err := store.Record(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), path, time.Now()); err != nil {
			logger.Error("Error recording visitor", "error", err)
		}
	}
}

func generateAdminToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate admin token")
	}
	return hex.EncodeToString(b), nil
}

// adminAuthMiddleware requires "Authorization: Bearer <token>".
func adminAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// cleanupOldVisitorData purges visits older than retention.
func cleanupOldVisitorData(ctx context.Context, store *visits.Store, retention time.Duration, logger *log.Logger) (int64, error) {
	removed, err := store.Cleanup(ctx, time.Now().Add(-retention))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.Info("Privacy cleanup: removed old visitor records", "removed", removed, "retention", retention)
	}
	return removed, nil
}

func setupAdminRoutes(r *gin.Engine, store *visits.Store, token string, retention time.Duration, logger *log.Logger) {
	admin := r.Group("/admin")
	admin.Use(adminAuthMiddleware(token))

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			logger.Error("Error loading admin stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			logger.Error("Error exporting admin stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		logger.Info("Admin stats exported", "by", store.Hash(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/cleanup", func(c *gin.Context) {
		removed, err := cleanupOldVisitorData(c.Request.Context(), store, retention, logger)
		if err != nil {
			logger.Error("Error cleaning up visitor data", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
