package repository

import (
	"context"
	"time"

	"github.com/eventosapp/eventos/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventoRepository interface {
	Create(ctx context.Context, evento *models.Evento) error
	Update(ctx context.Context, evento *models.Evento) error
	FindByID(ctx context.Context, id uint) (*models.Evento, error)
	FindActivoByID(ctx context.Context, id uint) (*models.Evento, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Evento, error)
	ListDestacados(ctx context.Context, tipo models.TipoEvento, limit int) ([]models.Evento, error)
	ListRecientes(ctx context.Context, limit int) ([]models.Evento, error)
	ListProximos(ctx context.Context, tipo models.TipoEvento, desde time.Time, limit int) ([]models.Evento, error)
	ListPopulares(ctx context.Context, limit int) ([]models.Evento, error)
	CountActivos(ctx context.Context) (int64, error)
	CountActivosPorTipo(ctx context.Context, tipo models.TipoEvento) (int64, error)
}

type eventoRepository struct {
	db *gorm.DB
}

func NewEventoRepository(db *gorm.DB) EventoRepository {
	return &eventoRepository{db: db}
}

func (r *eventoRepository) Create(ctx context.Context, evento *models.Evento) error {
	return r.db.WithContext(ctx).Create(evento).Error
}

func (r *eventoRepository) Update(ctx context.Context, evento *models.Evento) error {
	return r.db.WithContext(ctx).Save(evento).Error
}

func (r *eventoRepository) FindByID(ctx context.Context, id uint) (*models.Evento, error) {
	var evento models.Evento
	if err := r.db.WithContext(ctx).First(&evento, id).Error; err != nil {
		return nil, err
	}
	return &evento, nil
}

// FindActivoByID resolves an event for the public surface: unknown ids and
// deactivated events both come back as gorm.ErrRecordNotFound.
func (r *eventoRepository) FindActivoByID(ctx context.Context, id uint) (*models.Evento, error) {
	var evento models.Evento
	if err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		First(&evento, id).Error; err != nil {
		return nil, err
	}
	return &evento, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the given
// transaction (SELECT ... FOR UPDATE), so concurrent registrations serialize
// on the event row.
func (r *eventoRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Evento, error) {
	var evento models.Evento
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&evento, id).Error; err != nil {
		return nil, err
	}
	return &evento, nil
}

func (r *eventoRepository) ListDestacados(ctx context.Context, tipo models.TipoEvento, limit int) ([]models.Evento, error) {
	var eventos []models.Evento
	q := r.db.WithContext(ctx).Where("activo = ? AND destacado = ?", true, true)
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if err := q.Order("fecha_inicio DESC").Limit(limit).Find(&eventos).Error; err != nil {
		return nil, err
	}
	return eventos, nil
}

func (r *eventoRepository) ListRecientes(ctx context.Context, limit int) ([]models.Evento, error) {
	var eventos []models.Evento
	if err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("creado_en DESC").
		Limit(limit).
		Find(&eventos).Error; err != nil {
		return nil, err
	}
	return eventos, nil
}

func (r *eventoRepository) ListProximos(ctx context.Context, tipo models.TipoEvento, desde time.Time, limit int) ([]models.Evento, error) {
	var eventos []models.Evento
	q := r.db.WithContext(ctx).Where("activo = ? AND fecha_inicio >= ?", true, desde)
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if err := q.Order("fecha_inicio ASC").Limit(limit).Find(&eventos).Error; err != nil {
		return nil, err
	}
	return eventos, nil
}

// ListPopulares orders active events by registration count. The type filter
// deliberately does not apply here: the popular ranking is site-wide.
func (r *eventoRepository) ListPopulares(ctx context.Context, limit int) ([]models.Evento, error) {
	var eventos []models.Evento
	if err := r.db.WithContext(ctx).
		Model(&models.Evento{}).
		Select("eventos.*, COUNT(registros.id) AS num_registros").
		Joins("LEFT JOIN registros ON registros.evento_id = eventos.id").
		Where("eventos.activo = ?", true).
		Group("eventos.id").
		Order("num_registros DESC").
		Limit(limit).
		Find(&eventos).Error; err != nil {
		return nil, err
	}
	return eventos, nil
}

func (r *eventoRepository) CountActivos(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Evento{}).
		Where("activo = ?", true).
		Count(&count).Error
	return count, err
}

func (r *eventoRepository) CountActivosPorTipo(ctx context.Context, tipo models.TipoEvento) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Evento{}).
		Where("activo = ? AND tipo = ?", true, tipo).
		Count(&count).Error
	return count, err
}
