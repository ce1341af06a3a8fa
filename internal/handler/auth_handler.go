package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/eventosapp/eventos/internal/dto"
	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc      service.AuthService
	sessions *scs.SessionManager
}

func NewAuthHandler(svc service.AuthService, sessions *scs.SessionManager) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/login", h.LoginForm)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout)
	e.GET("/register", h.SignupForm)
	e.POST("/register", h.Signup)
	e.GET("/me", h.Perfil)
}

// Perfil returns the signed-in user's account data.
func (h *AuthHandler) Perfil(c echo.Context) error {
	ctx := c.Request().Context()

	usuarioID, ok := session.UsuarioID(ctx, h.sessions)
	if !ok {
		session.AddFlash(ctx, h.sessions, session.NivelWarning, "Debes iniciar sesión para ver tu perfil.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	usuario, err := h.svc.GetUsuario(ctx, usuarioID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo cargar tu perfil")
	}

	return c.JSON(http.StatusOK, dto.PerfilResponse{
		Usuario: dto.ToUsuarioResponse(usuario),
		Flashes: session.PopFlashes(ctx, h.sessions),
	})
}

// LoginForm backs the login page: signed-in visitors bounce to the home page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	ctx := c.Request().Context()
	if _, ok := session.UsuarioID(ctx, h.sessions); ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"flashes": session.PopFlashes(ctx, h.sessions),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	usuario, err := h.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Usuario o contraseña incorrectos.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo iniciar sesión")
	}

	if err := session.SetUsuarioID(ctx, h.sessions, usuario.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo iniciar sesión")
	}
	session.AddFlash(ctx, h.sessions, session.NivelSuccess, fmt.Sprintf("¡Bienvenido de nuevo, %s!", usuario.Username))

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := session.Logout(ctx, h.sessions); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo cerrar la sesión")
	}
	session.AddFlash(ctx, h.sessions, session.NivelSuccess, "Has cerrado sesión exitosamente.")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) SignupForm(c echo.Context) error {
	ctx := c.Request().Context()
	if _, ok := session.UsuarioID(ctx, h.sessions); ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"flashes": session.PopFlashes(ctx, h.sessions),
	})
}

func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	usuario, err := h.svc.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNombreVacio),
			errors.Is(err, service.ErrEmailInvalido),
			errors.Is(err, service.ErrPasswordCorta),
			errors.Is(err, service.ErrUsernameEnUso),
			errors.Is(err, service.ErrEmailEnUso):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo crear la cuenta")
		}
	}

	if err := session.SetUsuarioID(ctx, h.sessions, usuario.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo iniciar sesión")
	}
	session.AddFlash(ctx, h.sessions, session.NivelSuccess, fmt.Sprintf("¡Bienvenido, %s! Tu cuenta ha sido creada.", usuario.Username))

	return c.Redirect(http.StatusSeeOther, "/")
}
