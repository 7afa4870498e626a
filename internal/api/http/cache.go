package http

import (
	"crypto/sha1"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/matrimony-service/internal/config"
)

const cachePrefix = "statscache"

// ResponseCache serves successful GET responses from Redis. Applied only
// to the public stats routes; every other read observes the store
// directly.
func ResponseCache(cfg config.CacheConfig, client *redis.Client) fiber.Handler {
	if !cfg.Enabled || client == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	ttl := cfg.TTL()

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cacheKey(c)
		if body, err := client.Get(c.Context(), key).Bytes(); err == nil && len(body) > 0 {
			c.Set("X-Cache", "HIT")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(body)
		}

		c.Set("X-Cache", "MISS")
		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			_ = client.Set(c.Context(), key, body, ttl).Err()
		}
		return nil
	}
}

func cacheKey(c *fiber.Ctx) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + string(c.Request().URI().QueryString())))
	return fmt.Sprintf("%s:%x", cachePrefix, sum)
}
