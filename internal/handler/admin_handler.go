package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eventosapp/eventos/internal/dto"
	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the event/category lifecycle, which only
// administrators may drive. Route registration expects the admin middleware
// to already be applied to the group.
type AdminHandler struct {
	svc service.EventoService
}

func NewAdminHandler(svc service.EventoService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/events", h.CrearEvento)
	g.PUT("/events/:id", h.ActualizarEvento)
	g.POST("/categories", h.CrearCategoria)
	g.POST("/events/:id/categories", h.AsignarCategoria)
}

func (h *AdminHandler) CrearEvento(c echo.Context) error {
	var req dto.CrearEventoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	evento := &models.Evento{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Tipo:        models.TipoEvento(req.Tipo),
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		Lugar:       req.Lugar,
		Imagen:      req.Imagen,
		Capacidad:   req.Capacidad,
		Precio:      req.Precio,
		Activo:      true,
		Destacado:   req.Destacado,
	}
	if req.Activo != nil {
		evento.Activo = *req.Activo
	}

	if err := h.svc.CrearEvento(c.Request().Context(), evento); err != nil {
		if esErrorDeValidacion(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo crear el evento")
	}

	return c.JSON(http.StatusCreated, dto.ToEventoResponse(evento))
}

func (h *AdminHandler) ActualizarEvento(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	}

	ctx := c.Request().Context()
	evento, err := h.svc.GetEvento(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEventoNoEncontrado) {
			return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo cargar el evento")
	}

	var req dto.CrearEventoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	evento.Nombre = req.Nombre
	evento.Descripcion = req.Descripcion
	evento.Tipo = models.TipoEvento(req.Tipo)
	evento.FechaInicio = req.FechaInicio
	evento.FechaFin = req.FechaFin
	evento.Lugar = req.Lugar
	evento.Imagen = req.Imagen
	evento.Capacidad = req.Capacidad
	evento.Precio = req.Precio
	evento.Destacado = req.Destacado
	if req.Activo != nil {
		evento.Activo = *req.Activo
	}

	if err := h.svc.ActualizarEvento(ctx, evento); err != nil {
		if esErrorDeValidacion(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo actualizar el evento")
	}

	return c.JSON(http.StatusOK, dto.ToEventoResponse(evento))
}

func (h *AdminHandler) CrearCategoria(c echo.Context) error {
	var req dto.CrearCategoriaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	categoria := &models.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}
	switch err := h.svc.CrearCategoria(c.Request().Context(), categoria); {
	case err == nil:
	case errors.Is(err, models.ErrNombreVacio):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCategoriaExiste):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "no se pudo crear la categoría")
	}

	return c.JSON(http.StatusCreated, dto.ToCategoriaResponse(categoria))
}

func (h *AdminHandler) AsignarCategoria(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	}

	var req dto.AsignarCategoriaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "solicitud inválida")
	}

	switch err := h.svc.AsignarCategoria(c.Request().Context(), uint(id), req.CategoriaID); {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, service.ErrEventoNoEncontrado):
		return echo.NewHTTPError(http.StatusNotFound, "evento no encontrado")
	case errors.Is(err, service.ErrCategoriaNoEncontrada):
		return echo.NewHTTPError(http.StatusNotFound, "categoría no encontrada")
	default:
		return echo.NewHTTPError(http.StatusConflict, "la categoría ya está asignada al evento")
	}
}

func esErrorDeValidacion(err error) bool {
	return errors.Is(err, models.ErrNombreVacio) ||
		errors.Is(err, models.ErrLugarVacio) ||
		errors.Is(err, models.ErrTipoInvalido) ||
		errors.Is(err, models.ErrFechasInvalidas) ||
		errors.Is(err, models.ErrCapacidadMinima) ||
		errors.Is(err, models.ErrPrecioNegativo)
}
