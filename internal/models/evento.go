package models

import (
	"errors"
	"time"
)

// TipoEvento is the closed set of event types.
type TipoEvento string

const (
	TipoCharla    TipoEvento = "CHARLA"
	TipoTaller    TipoEvento = "TALLER"
	TipoFeria     TipoEvento = "FERIA"
	TipoConcierto TipoEvento = "CONCIERTO"
)

// TiposEvento returns every event type in display order.
func TiposEvento() []TipoEvento {
	return []TipoEvento{TipoCharla, TipoTaller, TipoFeria, TipoConcierto}
}

func (t TipoEvento) Valido() bool {
	switch t {
	case TipoCharla, TipoTaller, TipoFeria, TipoConcierto:
		return true
	}
	return false
}

func (t TipoEvento) Label() string {
	switch t {
	case TipoCharla:
		return "Charla"
	case TipoTaller:
		return "Taller"
	case TipoFeria:
		return "Feria"
	case TipoConcierto:
		return "Concierto"
	}
	return string(t)
}

var (
	ErrNombreVacio     = errors.New("el nombre es obligatorio")
	ErrLugarVacio      = errors.New("el lugar es obligatorio")
	ErrTipoInvalido    = errors.New("tipo de evento inválido")
	ErrFechasInvalidas = errors.New("la fecha de fin debe ser posterior a la de inicio")
	ErrCapacidadMinima = errors.New("la capacidad debe ser al menos 1")
	ErrPrecioNegativo  = errors.New("el precio no puede ser negativo")
)

type Evento struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Nombre        string     `gorm:"size:200;not null" json:"nombre"`
	Descripcion   string     `gorm:"type:text" json:"descripcion"`
	Tipo          TipoEvento `gorm:"type:varchar(20);not null;index" json:"tipo"`
	FechaInicio   time.Time  `gorm:"not null" json:"fecha_inicio"`
	FechaFin      time.Time  `gorm:"not null" json:"fecha_fin"`
	Lugar         string     `gorm:"size:300;not null" json:"lugar"`
	Imagen        *string    `gorm:"size:500" json:"imagen,omitempty"`
	Capacidad     *int       `json:"capacidad,omitempty"`
	Precio        *float64   `json:"precio,omitempty"`
	Activo        bool       `gorm:"not null;default:true" json:"activo"`
	Destacado     bool       `gorm:"not null;default:false" json:"destacado"`
	CreadoEn      time.Time  `gorm:"autoCreateTime" json:"creado_en"`
	ActualizadoEn time.Time  `gorm:"autoUpdateTime" json:"actualizado_en"`
}

func (Evento) TableName() string { return "eventos" }

// Validar checks the model-level invariants before persistence.
func (e *Evento) Validar() error {
	if e.Nombre == "" {
		return ErrNombreVacio
	}
	if e.Lugar == "" {
		return ErrLugarVacio
	}
	if !e.Tipo.Valido() {
		return ErrTipoInvalido
	}
	if !e.FechaFin.After(e.FechaInicio) {
		return ErrFechasInvalidas
	}
	if e.Capacidad != nil && *e.Capacidad < 1 {
		return ErrCapacidadMinima
	}
	if e.Precio != nil && *e.Precio < 0 {
		return ErrPrecioNegativo
	}
	return nil
}

// EspaciosDisponibles returns the remaining seats given the current
// registration count, or nil when the event has unlimited capacity.
func (e *Evento) EspaciosDisponibles(registrados int64) *int64 {
	if e.Capacidad == nil {
		return nil
	}
	libres := int64(*e.Capacidad) - registrados
	if libres < 0 {
		libres = 0
	}
	return &libres
}

// EstaLleno reports whether the event has no seats left. Unlimited-capacity
// events are never full.
func (e *Evento) EstaLleno(registrados int64) bool {
	libres := e.EspaciosDisponibles(registrados)
	return libres != nil && *libres == 0
}

// EstaActivo reports whether the event accepts traffic at the given instant:
// the flag must be set and the event must not have ended yet.
func (e *Evento) EstaActivo(ahora time.Time) bool {
	return e.Activo && !e.FechaFin.Before(ahora)
}

func (e *Evento) PuedeRegistrarse(registrados int64, ahora time.Time) bool {
	return e.EstaActivo(ahora) && !e.EstaLleno(registrados)
}

// PorcentajeOcupacion returns the occupancy ratio as a percentage, nil for
// unlimited capacity. Can exceed 100 if an event got oversubscribed.
func (e *Evento) PorcentajeOcupacion(registrados int64) *float64 {
	if e.Capacidad == nil {
		return nil
	}
	var pct float64
	if *e.Capacidad > 0 {
		pct = 100 * float64(registrados) / float64(*e.Capacidad)
	}
	return &pct
}
