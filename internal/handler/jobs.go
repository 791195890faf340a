package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Simoleans/profit/internal/worker"
)

// JobsHandler exposes the notification queue's dead letter list so an
// administrator can inspect and re-drive parked jobs without touching Redis.
type JobsHandler struct{ rdb *redis.Client }

func NewJobsHandler(rdb *redis.Client) *JobsHandler {
	return &JobsHandler{rdb: rdb}
}

// DLQStatus godoc
// @Summary      Trabajos de notificacion estacionados
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int64
// @Router       /v1/jobs/dlq [get]
func (h *JobsHandler) DLQStatus(c *gin.Context) {
	n, err := worker.DLQLength(c.Request.Context(), h.rdb, worker.QueueEmail)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"queue": worker.QueueEmail, "parked": n})
}

// RedriveDLQ godoc
// @Summary      Reencola trabajos estacionados
// @Description  Mueve hasta ?n trabajos (por defecto 10) del DLQ a su cola original.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int
// @Router       /v1/jobs/dlq/redrive [post]
func (h *JobsHandler) RedriveDLQ(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
	if err != nil || n < 1 {
		n = 10
	}
	moved, err := worker.Redrive(c.Request.Context(), h.rdb, worker.QueueEmail, n)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": moved})
}
