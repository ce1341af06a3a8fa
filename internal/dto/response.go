package dto

import (
	"time"

	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
)

type EventoResponse struct {
	ID          uint      `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Tipo        string    `json:"tipo"`
	TipoLabel   string    `json:"tipo_label"`
	FechaInicio time.Time `json:"fecha_inicio"`
	FechaFin    time.Time `json:"fecha_fin"`
	Lugar       string    `json:"lugar"`
	Imagen      *string   `json:"imagen,omitempty"`
	Capacidad   *int      `json:"capacidad,omitempty"`
	Precio      *float64  `json:"precio,omitempty"`
	Destacado   bool      `json:"destacado"`
	CreadoEn    time.Time `json:"creado_en"`
}

func ToEventoResponse(e *models.Evento) EventoResponse {
	return EventoResponse{
		ID:          e.ID,
		Nombre:      e.Nombre,
		Descripcion: e.Descripcion,
		Tipo:        string(e.Tipo),
		TipoLabel:   e.Tipo.Label(),
		FechaInicio: e.FechaInicio,
		FechaFin:    e.FechaFin,
		Lugar:       e.Lugar,
		Imagen:      e.Imagen,
		Capacidad:   e.Capacidad,
		Precio:      e.Precio,
		Destacado:   e.Destacado,
		CreadoEn:    e.CreadoEn,
	}
}

func ToEventoResponses(eventos []models.Evento) []EventoResponse {
	resp := make([]EventoResponse, len(eventos))
	for i := range eventos {
		resp[i] = ToEventoResponse(&eventos[i])
	}
	return resp
}

type CategoriaResponse struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

func ToCategoriaResponse(c *models.Categoria) CategoriaResponse {
	return CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion}
}

type ComentarioResponse struct {
	ID       uint      `json:"id"`
	Usuario  string    `json:"usuario"`
	Resumen  string    `json:"resumen"`
	Texto    string    `json:"comentario"`
	CreadoEn time.Time `json:"creado_en"`
}

// comentarioResumenLen bounds the list-view preview of a comment body.
const comentarioResumenLen = 120

func ToComentarioResponse(c *models.Comentario) ComentarioResponse {
	resp := ComentarioResponse{
		ID:       c.ID,
		Resumen:  c.ComentarioResumido(comentarioResumenLen),
		Texto:    c.Comentario,
		CreadoEn: c.CreadoEn,
	}
	if c.Usuario != nil {
		resp.Usuario = c.Usuario.Username
	}
	return resp
}

type TipoConteoResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

func ToTipoConteos(tipos []service.TipoConteo) []TipoConteoResponse {
	resp := make([]TipoConteoResponse, len(tipos))
	for i, t := range tipos {
		resp[i] = TipoConteoResponse{Code: string(t.Code), Label: t.Label, Count: t.Count}
	}
	return resp
}

type HomeResponse struct {
	Destacados []EventoResponse `json:"destacados"`
	Recientes  []EventoResponse `json:"recientes"`
	Flashes    []session.Flash  `json:"flashes,omitempty"`
}

type ListadoResponse struct {
	Destacados   []EventoResponse     `json:"destacados"`
	Proximos     []EventoResponse     `json:"upcoming"`
	Populares    []EventoResponse     `json:"populares"`
	Tipos        []TipoConteoResponse `json:"tipos_eventos"`
	TotalEventos int64                `json:"total_eventos"`
	SelectedTipo string               `json:"selected_tipo"`
	Flashes      []session.Flash      `json:"flashes,omitempty"`
}

type DetalleResponse struct {
	Evento              EventoResponse       `json:"evento"`
	Categorias          []CategoriaResponse  `json:"categorias"`
	Comentarios         []ComentarioResponse `json:"comentarios"`
	TotalRegistrados    int64                `json:"total_registrados"`
	EspaciosDisponibles *int64               `json:"espacios_disponibles"`
	PorcentajeOcupacion *float64             `json:"porcentaje_ocupacion"`
	YaRegistrado        bool                 `json:"ya_registrado"`
	Flashes             []session.Flash      `json:"flashes,omitempty"`
}

type RegistroResponse struct {
	ID           uint            `json:"id"`
	RegistradoEn time.Time       `json:"registrado_en"`
	Evento       *EventoResponse `json:"evento,omitempty"`
}

func ToRegistroResponse(r *models.Registro) RegistroResponse {
	resp := RegistroResponse{ID: r.ID, RegistradoEn: r.RegistradoEn}
	if r.Evento != nil {
		ev := ToEventoResponse(r.Evento)
		resp.Evento = &ev
	}
	return resp
}

type MisEventosResponse struct {
	MisEventos       []RegistroResponse   `json:"mis_eventos"`
	Tipos            []TipoConteoResponse `json:"tipos_eventos"`
	TotalEventos     int                  `json:"total_eventos"`
	EventosAsistidos int                  `json:"eventos_asistidos"`
	EventosProximos  int                  `json:"eventos_proximos"`
	SelectedTipo     string               `json:"selected_tipo"`
	Flashes          []session.Flash      `json:"flashes,omitempty"`
}

type UsuarioResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func ToUsuarioResponse(u *models.Usuario) UsuarioResponse {
	return UsuarioResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

type PerfilResponse struct {
	Usuario UsuarioResponse `json:"usuario"`
	Flashes []session.Flash `json:"flashes,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
