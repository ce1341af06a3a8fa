package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/repository"
	"github.com/eventosapp/eventos/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrEventoNoEncontrado   = errors.New("evento no encontrado")
	ErrEventoInactivo       = errors.New("el evento no acepta registros")
	ErrEventoLleno          = errors.New("el evento está lleno")
	ErrYaRegistrado         = errors.New("ya estás registrado en este evento")
	ErrRegistroNoEncontrado = errors.New("no se encontró un registro para cancelar")
)

// TipoConteo pairs an event type with how many rows matched it.
type TipoConteo struct {
	Code  models.TipoEvento `json:"code"`
	Label string            `json:"label"`
	Count int64             `json:"count"`
}

// MisEventos is the personal-registrations payload: the filtered list plus
// stats computed over it, and per-type counts over every registration.
type MisEventos struct {
	Registros []models.Registro
	Tipos     []TipoConteo
	Total     int
	Asistidos int
	Proximos  int
}

type RegistroService interface {
	Registrar(ctx context.Context, eventoID, usuarioID uint) (*models.Registro, error)
	Cancelar(ctx context.Context, eventoID, usuarioID uint) error
	MisEventos(ctx context.Context, usuarioID uint, tipo models.TipoEvento) (*MisEventos, error)
}

type registroService struct {
	registroRepo repository.RegistroRepository
	eventoRepo   repository.EventoRepository
	publisher    *rabbitmq.Publisher
}

func NewRegistroService(registroRepo repository.RegistroRepository, eventoRepo repository.EventoRepository, publisher *rabbitmq.Publisher) RegistroService {
	return &registroService{
		registroRepo: registroRepo,
		eventoRepo:   eventoRepo,
		publisher:    publisher,
	}
}

// Registrar creates a registration for the pair. The eligibility checks and
// the insert share one transaction with a row lock on the event, so two
// requests racing for the last seat serialize instead of both passing the
// capacity check. The unique index on (evento_id, usuario_id) backs this up.
func (s *registroService) Registrar(ctx context.Context, eventoID, usuarioID uint) (*models.Registro, error) {
	var result *models.Registro

	err := s.registroRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		registro, err := s.registrar(ctx, tx, eventoID, usuarioID)
		if err != nil {
			return err
		}
		result = registro
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("registro.creado", result)
	}

	return result, nil
}

func (s *registroService) registrar(ctx context.Context, tx *gorm.DB, eventoID, usuarioID uint) (*models.Registro, error) {
	evento, err := s.eventoRepo.FindByIDForUpdate(ctx, tx, eventoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventoNoEncontrado
		}
		return nil, err
	}

	_, err = s.registroRepo.FindByEventoYUsuario(ctx, tx, eventoID, usuarioID)
	if err == nil {
		return nil, ErrYaRegistrado
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	registrados, err := s.registroRepo.CountByEvento(ctx, tx, eventoID)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	if !evento.EstaActivo(ahora) {
		return nil, ErrEventoInactivo
	}
	if evento.EstaLleno(registrados) {
		return nil, ErrEventoLleno
	}

	registro := &models.Registro{
		EventoID:  eventoID,
		UsuarioID: usuarioID,
	}
	if err := s.registroRepo.Create(ctx, tx, registro); err != nil {
		return nil, fmt.Errorf("crear registro: %w", err)
	}
	return registro, nil
}

// Cancelar removes the user's registration if present. A missing registration
// is reported as ErrRegistroNoEncontrado so callers can treat it as an
// informational no-op.
func (s *registroService) Cancelar(ctx context.Context, eventoID, usuarioID uint) error {
	registro, err := s.registroRepo.FindByEventoYUsuario(ctx, s.registroRepo.GetDB(), eventoID, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRegistroNoEncontrado
		}
		return err
	}

	if err := s.registroRepo.Delete(ctx, registro); err != nil {
		return fmt.Errorf("cancelar registro: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("registro.cancelado", registro)
	}

	return nil
}

func (s *registroService) MisEventos(ctx context.Context, usuarioID uint, tipo models.TipoEvento) (*MisEventos, error) {
	registros, err := s.registroRepo.ListByUsuario(ctx, usuarioID, tipo)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	resultado := &MisEventos{
		Registros: registros,
		Total:     len(registros),
	}
	for _, r := range registros {
		if r.Evento == nil {
			continue
		}
		if r.Evento.FechaFin.Before(ahora) {
			resultado.Asistidos++
		}
		if !r.Evento.FechaInicio.Before(ahora) {
			resultado.Proximos++
		}
	}

	conteos, err := s.registroRepo.CountByUsuarioPorTipo(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	for _, t := range models.TiposEvento() {
		if conteos[t] > 0 {
			resultado.Tipos = append(resultado.Tipos, TipoConteo{
				Code:  t,
				Label: t.Label(),
				Count: conteos[t],
			})
		}
	}

	return resultado, nil
}
