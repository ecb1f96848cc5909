package handlers

import (
	applog "mywallet/internal/log"
	"mywallet/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
}

// Cadastro handles POST /cadastro.
func (h *AuthHandler) Cadastro(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON([]string{"invalid request body"})
	}

	userID, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if err == services.ErrConflict {
			applog.Security(c, "auth.register.conflict", map[string]any{"email": req.Email})
		}
		return fail(c, "auth.register", err)
	}

	applog.Audit(c, "auth.register.success", map[string]any{"user_id": userID})
	return c.SendStatus(fiber.StatusCreated)
}

// Login handles POST /.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON([]string{"invalid request body"})
	}

	u, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return fail(c, "auth.login", err)
	}

	token, err := h.Auth.CreateSession(u)
	if err != nil {
		return fail(c, "auth.session", err)
	}

	applog.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return c.JSON(loginResponse{Token: token, UserName: u.Name})
}
