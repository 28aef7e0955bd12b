package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether the two backing stores answer. The payload names the
// dependency and a coarse status, nothing about addresses or drivers.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		banco := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			banco = "indisponivel"
		}

		sessoes := "ok"
		if rdb.Ping(ctx).Err() != nil {
			sessoes = "indisponivel"
		}

		status := http.StatusOK
		if banco != "ok" || sessoes != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"banco":   banco,
			"sessoes": sessoes,
		})
	}
}
