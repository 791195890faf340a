package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports connectivity to both databases and Redis. Never exposes
// credentials or internals.
func Health(erpDB, usersDB *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	ping := func(ctx context.Context, db *gorm.DB) string {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			return "error"
		}
		return "connected"
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		erpStatus := ping(ctx, erpDB)
		usersStatus := ping(ctx, usersDB)

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if erpStatus != "connected" || usersStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"erp_db":   erpStatus,
			"users_db": usersStatus,
			"redis":    redisStatus,
		})
	}
}
