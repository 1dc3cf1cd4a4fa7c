package auth

import (
	"github.com/gofiber/fiber/v2"

	"konisurabaya_backend/internals/constants"
)

// OnlyRoles membatasi akses ke role tertentu. Cek kapabilitasnya sendiri
// dipusatkan di constants.RoleAllowed.
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		if constants.RoleAllowed(constants.Role(role), roles...) {
			return c.Next()
		}

		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customMessage,
		})
	}
}
