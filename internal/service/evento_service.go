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
	ErrCategoriaNoEncontrada = errors.New("categoría no encontrada")
	ErrCategoriaExiste       = errors.New("ya existe una categoría con ese nombre")
)

// Home carries the front-page sublists.
type Home struct {
	Destacados []models.Evento
	Recientes  []models.Evento
}

// Listado carries the events-page sublists and counters. Populares ignores
// the type filter: the popularity ranking is site-wide.
type Listado struct {
	Destacados   []models.Evento
	Proximos     []models.Evento
	Populares    []models.Evento
	Tipos        []TipoConteo
	Total        int64
	SelectedTipo models.TipoEvento
}

// Detalle is the single-event payload with its occupancy figures.
type Detalle struct {
	Evento              *models.Evento
	Categorias          []models.Categoria
	Comentarios         []models.Comentario
	TotalRegistrados    int64
	EspaciosDisponibles *int64
	PorcentajeOcupacion *float64
	YaRegistrado        bool
}

type EventoService interface {
	Home(ctx context.Context) (*Home, error)
	Listado(ctx context.Context, tipo models.TipoEvento) (*Listado, error)
	Detalle(ctx context.Context, eventoID uint, usuarioID *uint) (*Detalle, error)
	GetEvento(ctx context.Context, eventoID uint) (*models.Evento, error)
	CrearEvento(ctx context.Context, evento *models.Evento) error
	ActualizarEvento(ctx context.Context, evento *models.Evento) error
	CrearCategoria(ctx context.Context, categoria *models.Categoria) error
	AsignarCategoria(ctx context.Context, eventoID, categoriaID uint) error
}

type eventoService struct {
	eventoRepo     repository.EventoRepository
	registroRepo   repository.RegistroRepository
	comentarioRepo repository.ComentarioRepository
	categoriaRepo  repository.CategoriaRepository
	publisher      *rabbitmq.Publisher
}

func NewEventoService(
	eventoRepo repository.EventoRepository,
	registroRepo repository.RegistroRepository,
	comentarioRepo repository.ComentarioRepository,
	categoriaRepo repository.CategoriaRepository,
	publisher *rabbitmq.Publisher,
) EventoService {
	return &eventoService{
		eventoRepo:     eventoRepo,
		registroRepo:   registroRepo,
		comentarioRepo: comentarioRepo,
		categoriaRepo:  categoriaRepo,
		publisher:      publisher,
	}
}

func (s *eventoService) Home(ctx context.Context) (*Home, error) {
	destacados, err := s.eventoRepo.ListDestacados(ctx, "", 5)
	if err != nil {
		return nil, err
	}
	recientes, err := s.eventoRepo.ListRecientes(ctx, 5)
	if err != nil {
		return nil, err
	}
	return &Home{Destacados: destacados, Recientes: recientes}, nil
}

func (s *eventoService) Listado(ctx context.Context, tipo models.TipoEvento) (*Listado, error) {
	ahora := time.Now()

	destacados, err := s.eventoRepo.ListDestacados(ctx, tipo, 4)
	if err != nil {
		return nil, err
	}
	proximos, err := s.eventoRepo.ListProximos(ctx, tipo, ahora, 6)
	if err != nil {
		return nil, err
	}
	populares, err := s.eventoRepo.ListPopulares(ctx, 5)
	if err != nil {
		return nil, err
	}

	tipos := make([]TipoConteo, 0, len(models.TiposEvento()))
	for _, t := range models.TiposEvento() {
		count, err := s.eventoRepo.CountActivosPorTipo(ctx, t)
		if err != nil {
			return nil, err
		}
		tipos = append(tipos, TipoConteo{Code: t, Label: t.Label(), Count: count})
	}

	total, err := s.eventoRepo.CountActivos(ctx)
	if err != nil {
		return nil, err
	}

	return &Listado{
		Destacados:   destacados,
		Proximos:     proximos,
		Populares:    populares,
		Tipos:        tipos,
		Total:        total,
		SelectedTipo: tipo,
	}, nil
}

// Detalle resolves an active event with its comments, categories and
// occupancy. Missing and deactivated events both yield ErrEventoNoEncontrado.
func (s *eventoService) Detalle(ctx context.Context, eventoID uint, usuarioID *uint) (*Detalle, error) {
	evento, err := s.eventoRepo.FindActivoByID(ctx, eventoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventoNoEncontrado
		}
		return nil, err
	}

	comentarios, err := s.comentarioRepo.ListByEvento(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	categorias, err := s.categoriaRepo.ListByEvento(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	registrados, err := s.registroRepo.CountByEvento(ctx, s.registroRepo.GetDB(), eventoID)
	if err != nil {
		return nil, err
	}

	yaRegistrado := false
	if usuarioID != nil {
		_, err := s.registroRepo.FindByEventoYUsuario(ctx, s.registroRepo.GetDB(), eventoID, *usuarioID)
		switch {
		case err == nil:
			yaRegistrado = true
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	return &Detalle{
		Evento:              evento,
		Categorias:          categorias,
		Comentarios:         comentarios,
		TotalRegistrados:    registrados,
		EspaciosDisponibles: evento.EspaciosDisponibles(registrados),
		PorcentajeOcupacion: evento.PorcentajeOcupacion(registrados),
		YaRegistrado:        yaRegistrado,
	}, nil
}

// GetEvento loads an event regardless of its active flag, for management use.
func (s *eventoService) GetEvento(ctx context.Context, eventoID uint) (*models.Evento, error) {
	evento, err := s.eventoRepo.FindByID(ctx, eventoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventoNoEncontrado
		}
		return nil, err
	}
	return evento, nil
}

func (s *eventoService) CrearEvento(ctx context.Context, evento *models.Evento) error {
	if err := evento.Validar(); err != nil {
		return err
	}
	if err := s.eventoRepo.Create(ctx, evento); err != nil {
		return fmt.Errorf("crear evento: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("evento.creado", evento)
	}

	return nil
}

func (s *eventoService) ActualizarEvento(ctx context.Context, evento *models.Evento) error {
	if err := evento.Validar(); err != nil {
		return err
	}
	if err := s.eventoRepo.Update(ctx, evento); err != nil {
		return fmt.Errorf("actualizar evento: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("evento.actualizado", evento)
	}

	return nil
}

func (s *eventoService) CrearCategoria(ctx context.Context, categoria *models.Categoria) error {
	if categoria.Nombre == "" {
		return models.ErrNombreVacio
	}

	_, err := s.categoriaRepo.FindByNombre(ctx, categoria.Nombre)
	if err == nil {
		return ErrCategoriaExiste
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.categoriaRepo.Create(ctx, categoria)
}

func (s *eventoService) AsignarCategoria(ctx context.Context, eventoID, categoriaID uint) error {
	if _, err := s.eventoRepo.FindByID(ctx, eventoID); err != nil {
		return ErrEventoNoEncontrado
	}
	if _, err := s.categoriaRepo.FindByID(ctx, categoriaID); err != nil {
		return ErrCategoriaNoEncontrada
	}
	return s.categoriaRepo.Link(ctx, eventoID, categoriaID)
}
