package recruiterauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/placedly/backend/pkg/kernel"
)

// Middleware validates recruiter session tokens
func Middleware(tokenService *RecruiterTokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get token from Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "expected Bearer scheme")
		}

		claims, err := tokenService.ValidateToken(parts[1])
		if err != nil {
			return err
		}

		// Set recruiter info in context
		c.Locals("recruiter_id", claims.RecruiterID)
		c.Locals("recruiter_email", claims.Email)

		return c.Next()
	}
}

// GetRecruiterID extracts recruiter ID from context
func GetRecruiterID(c *fiber.Ctx) (kernel.RecruiterID, bool) {
	recruiterID, ok := c.Locals("recruiter_id").(kernel.RecruiterID)
	return recruiterID, ok
}

// GetRecruiterEmail extracts recruiter email from context
func GetRecruiterEmail(c *fiber.Ctx) (kernel.Email, bool) {
	email, ok := c.Locals("recruiter_email").(kernel.Email)
	return email, ok
}
