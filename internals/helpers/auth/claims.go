// file: internals/helpers/auth/claims.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"konisurabaya_backend/internals/constants"
)

// GetUserID mengambil user_id yang sudah ditaruh AuthMiddleware di locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: silakan login dulu")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user ID tidak valid")
	}
	return id, nil
}

// GetUserRole mengambil role dari locals.
func GetUserRole(c *fiber.Ctx) (constants.Role, error) {
	raw, ok := c.Locals("user_role").(string)
	if !ok || raw == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return constants.Role(raw), nil
}

// RequireRole memastikan pemanggil punya salah satu role yang diminta.
func RequireRole(c *fiber.Ctx, message string, roles ...constants.Role) error {
	role, err := GetUserRole(c)
	if err != nil {
		return err
	}
	if !constants.RoleAllowed(role, roles...) {
		if message == "" {
			message = "Forbidden: Anda tidak berhak mengakses fitur ini"
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
	return nil
}
