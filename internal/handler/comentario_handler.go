package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/eventosapp/eventos/internal/dto"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/labstack/echo/v4"
)

type ComentarioHandler struct {
	svc      service.ComentarioService
	sessions *scs.SessionManager
}

func NewComentarioHandler(svc service.ComentarioService, sessions *scs.SessionManager) *ComentarioHandler {
	return &ComentarioHandler{svc: svc, sessions: sessions}
}

func (h *ComentarioHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/events/:id/comments", h.Crear)
}

func (h *ComentarioHandler) Crear(c echo.Context) error {
	ctx := c.Request().Context()

	usuarioID, ok := session.UsuarioID(ctx, h.sessions)
	if !ok {
		session.AddFlash(ctx, h.sessions, session.NivelError, "Debes iniciar sesión para comentar en un evento.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	}

	var req dto.ComentarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	switch _, err := h.svc.Crear(ctx, uint(id), usuarioID, req.Comentario); {
	case err == nil:
		session.AddFlash(ctx, h.sessions, session.NivelSuccess, "Tu comentario ha sido agregado.")
	case errors.Is(err, service.ErrComentarioVacio):
		session.AddFlash(ctx, h.sessions, session.NivelError, "El comentario no puede estar vacío.")
	case errors.Is(err, service.ErrEventoNoEncontrado):
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo guardar el comentario")
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/events/%d", id))
}
