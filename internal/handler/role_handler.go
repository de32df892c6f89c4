package handler

import (
	"go-secadmin-ws/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roleRepo repository.RoleRepository
}

func NewRoleHandler(roleRepo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo}
}

// GetRoles returns all available roles with their permission tokens
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roleRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}

	type roleWithPermissions struct {
		Code        string   `json:"code"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Permissions []string `json:"permissions"`
	}

	out := make([]roleWithPermissions, len(roles))
	for i, role := range roles {
		out[i] = roleWithPermissions{
			Code:        role.Code,
			Name:        role.Name,
			Description: role.Description,
			Permissions: role.Permissions(),
		}
	}
	return c.JSON(out)
}
