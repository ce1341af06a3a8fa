package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/eventosapp/eventos/internal/dto"
	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/repository"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/labstack/echo/v4"
)

type RegistroHandler struct {
	svc        service.RegistroService
	eventoRepo repository.EventoRepository
	sessions   *scs.SessionManager
}

func NewRegistroHandler(svc service.RegistroService, eventoRepo repository.EventoRepository, sessions *scs.SessionManager) *RegistroHandler {
	return &RegistroHandler{svc: svc, eventoRepo: eventoRepo, sessions: sessions}
}

func (h *RegistroHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/events/:id/register", h.Registrar)
	e.GET("/my-events", h.MisEventos)
}

// Registrar handles both registration and cancellation for the signed-in
// user; a non-empty `cancel` form field selects the cancellation path. Every
// outcome ends in a flash message and a redirect back to the event detail.
func (h *RegistroHandler) Registrar(c echo.Context) error {
	ctx := c.Request().Context()

	usuarioID, ok := session.UsuarioID(ctx, h.sessions)
	if !ok {
		session.AddFlash(ctx, h.sessions, session.NivelError, "Debes iniciar sesión para registrarte en un evento.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	}
	eventoID := uint(id)

	evento, err := h.eventoRepo.FindActivoByID(ctx, eventoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	}

	detalleURL := fmt.Sprintf("/events/%d", eventoID)

	var req dto.RegistroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	if req.Cancel != "" {
		switch err := h.svc.Cancelar(ctx, eventoID, usuarioID); {
		case err == nil:
			session.AddFlash(ctx, h.sessions, session.NivelSuccess, fmt.Sprintf("Se canceló tu registro en %s.", evento.Nombre))
		case errors.Is(err, service.ErrRegistroNoEncontrado):
			session.AddFlash(ctx, h.sessions, session.NivelInfo, "No encontré un registro tuyo para cancelar.")
		default:
			session.AddFlash(ctx, h.sessions, session.NivelError, "No fue posible cancelar el registro. Intenta nuevamente.")
		}
		return c.Redirect(http.StatusSeeOther, detalleURL)
	}

	switch _, err := h.svc.Registrar(ctx, eventoID, usuarioID); {
	case err == nil:
		session.AddFlash(ctx, h.sessions, session.NivelSuccess, fmt.Sprintf("Te has registrado exitosamente en %s.", evento.Nombre))
	case errors.Is(err, service.ErrYaRegistrado):
		session.AddFlash(ctx, h.sessions, session.NivelInfo, fmt.Sprintf("Ya estás registrado en %s.", evento.Nombre))
	case errors.Is(err, service.ErrEventoLleno):
		session.AddFlash(ctx, h.sessions, session.NivelError, fmt.Sprintf("El evento %s está lleno.", evento.Nombre))
	case errors.Is(err, service.ErrEventoInactivo):
		session.AddFlash(ctx, h.sessions, session.NivelError, fmt.Sprintf("El evento %s no acepta registros.", evento.Nombre))
	case errors.Is(err, service.ErrEventoNoEncontrado):
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	default:
		session.AddFlash(ctx, h.sessions, session.NivelError, "No fue posible completar el registro. Intenta nuevamente.")
	}

	return c.Redirect(http.StatusSeeOther, detalleURL)
}

func (h *RegistroHandler) MisEventos(c echo.Context) error {
	ctx := c.Request().Context()

	usuarioID, ok := session.UsuarioID(ctx, h.sessions)
	if !ok {
		session.AddFlash(ctx, h.sessions, session.NivelWarning, "Debes iniciar sesión para ver tus eventos.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	tipo := models.TipoEvento(c.QueryParam("tipo"))

	misEventos, err := h.svc.MisEventos(ctx, usuarioID, tipo)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudieron cargar tus eventos")
	}

	registros := make([]dto.RegistroResponse, len(misEventos.Registros))
	for i := range misEventos.Registros {
		registros[i] = dto.ToRegistroResponse(&misEventos.Registros[i])
	}

	return c.JSON(http.StatusOK, dto.MisEventosResponse{
		MisEventos:       registros,
		Tipos:            dto.ToTipoConteos(misEventos.Tipos),
		TotalEventos:     misEventos.Total,
		EventosAsistidos: misEventos.Asistidos,
		EventosProximos:  misEventos.Proximos,
		SelectedTipo:     string(tipo),
		Flashes:          session.PopFlashes(ctx, h.sessions),
	})
}
