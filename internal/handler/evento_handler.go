package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/eventosapp/eventos/internal/dto"
	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/labstack/echo/v4"
)

type EventoHandler struct {
	svc      service.EventoService
	sessions *scs.SessionManager
}

func NewEventoHandler(svc service.EventoService, sessions *scs.SessionManager) *EventoHandler {
	return &EventoHandler{svc: svc, sessions: sessions}
}

func (h *EventoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/events", h.Listado)
	e.GET("/events/:id", h.Detalle)
}

func (h *EventoHandler) Home(c echo.Context) error {
	home, err := h.svc.Home(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo cargar la página principal")
	}

	return c.JSON(http.StatusOK, dto.HomeResponse{
		Destacados: dto.ToEventoResponses(home.Destacados),
		Recientes:  dto.ToEventoResponses(home.Recientes),
		Flashes:    session.PopFlashes(c.Request().Context(), h.sessions),
	})
}

func (h *EventoHandler) Listado(c echo.Context) error {
	tipo := models.TipoEvento(c.QueryParam("tipo"))

	listado, err := h.svc.Listado(c.Request().Context(), tipo)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo cargar el listado de eventos")
	}

	return c.JSON(http.StatusOK, dto.ListadoResponse{
		Destacados:   dto.ToEventoResponses(listado.Destacados),
		Proximos:     dto.ToEventoResponses(listado.Proximos),
		Populares:    dto.ToEventoResponses(listado.Populares),
		Tipos:        dto.ToTipoConteos(listado.Tipos),
		TotalEventos: listado.Total,
		SelectedTipo: string(listado.SelectedTipo),
		Flashes:      session.PopFlashes(c.Request().Context(), h.sessions),
	})
}

func (h *EventoHandler) Detalle(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	}

	ctx := c.Request().Context()
	var usuarioID *uint
	if uid, ok := session.UsuarioID(ctx, h.sessions); ok {
		usuarioID = &uid
	}

	detalle, err := h.svc.Detalle(ctx, uint(id), usuarioID)
	if err != nil {
		if errors.Is(err, service.ErrEventoNoEncontrado) {
			return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo cargar el evento")
	}

	comentarios := make([]dto.ComentarioResponse, len(detalle.Comentarios))
	for i := range detalle.Comentarios {
		comentarios[i] = dto.ToComentarioResponse(&detalle.Comentarios[i])
	}
	categorias := make([]dto.CategoriaResponse, len(detalle.Categorias))
	for i := range detalle.Categorias {
		categorias[i] = dto.ToCategoriaResponse(&detalle.Categorias[i])
	}

	return c.JSON(http.StatusOK, dto.DetalleResponse{
		Evento:              dto.ToEventoResponse(detalle.Evento),
		Categorias:          categorias,
		Comentarios:         comentarios,
		TotalRegistrados:    detalle.TotalRegistrados,
		EspaciosDisponibles: detalle.EspaciosDisponibles,
		PorcentajeOcupacion: detalle.PorcentajeOcupacion,
		YaRegistrado:        detalle.YaRegistrado,
		Flashes:             session.PopFlashes(ctx, h.sessions),
	})
}
