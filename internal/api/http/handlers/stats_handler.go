package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matrimony-service/internal/service"
)

// StatsHandler exposes platform counters.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: statsService}
}

// Counters handles GET /stats/counters.
func (h *StatsHandler) Counters(c *fiber.Ctx) error {
	counters, err := h.stats.Counters(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(counters)
}

// Stats handles GET /stats/biodata.
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.stats.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
