package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RayIDHeader carries the request id in both directions.
const RayIDHeader = "X-Ray-ID"

// RayID assigns every request an id, reusing one supplied by the caller.
// The id is stored in c.Locals("ray_id") and echoed in the response header.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(RayIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(RayIDHeader, rid)
		return c.Next()
	}
}
