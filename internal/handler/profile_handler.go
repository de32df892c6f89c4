package handler

import (
	"go-secadmin-ws/internal/service"
	"go-secadmin-ws/internal/session"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	userService service.UserService
}

func NewProfileHandler(userService service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// GetProfile returns the signed-in user's own record
// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	sess := session.FromCtx(c)
	user, err := h.userService.GetUserByID(sess.UserID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

// UpdateProfile updates the signed-in user's name and theme
// PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	sess := session.FromCtx(c)

	var req service.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.userService.UpdateProfile(sess.UserID, &req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"data":    user.ToResponse(),
	})
}
