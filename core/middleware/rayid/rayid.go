package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response (and accepted request) header carrying the Ray ID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber Locals key the Ray ID is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning every request a Ray ID. An incoming
// X-Ray-ID header is kept so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)

		return c.Next()
	}
}

// FromCtx returns the Ray ID of the request, or "" when none was assigned.
func FromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
