package repository

import (
	"context"

	"github.com/eventosapp/eventos/internal/models"
	"gorm.io/gorm"
)

type RegistroRepository interface {
	Create(ctx context.Context, tx *gorm.DB, registro *models.Registro) error
	Delete(ctx context.Context, registro *models.Registro) error
	FindByEventoYUsuario(ctx context.Context, tx *gorm.DB, eventoID, usuarioID uint) (*models.Registro, error)
	CountByEvento(ctx context.Context, tx *gorm.DB, eventoID uint) (int64, error)
	ListByUsuario(ctx context.Context, usuarioID uint, tipo models.TipoEvento) ([]models.Registro, error)
	CountByUsuarioPorTipo(ctx context.Context, usuarioID uint) (map[models.TipoEvento]int64, error)
	GetDB() *gorm.DB
}

type registroRepository struct {
	db *gorm.DB
}

func NewRegistroRepository(db *gorm.DB) RegistroRepository {
	return &registroRepository{db: db}
}

func (r *registroRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *registroRepository) Create(ctx context.Context, tx *gorm.DB, registro *models.Registro) error {
	return tx.WithContext(ctx).Create(registro).Error
}

func (r *registroRepository) Delete(ctx context.Context, registro *models.Registro) error {
	return r.db.WithContext(ctx).Delete(registro).Error
}

// FindByEventoYUsuario looks up the registration for a pair. Pass the
// transaction for the locked duplicate check, or GetDB() for a plain read.
func (r *registroRepository) FindByEventoYUsuario(ctx context.Context, tx *gorm.DB, eventoID, usuarioID uint) (*models.Registro, error) {
	var registro models.Registro
	err := tx.WithContext(ctx).
		Where("evento_id = ? AND usuario_id = ?", eventoID, usuarioID).
		First(&registro).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}

// CountByEvento counts registrations for an event. Pass the transaction used
// for a locked capacity check, or GetDB() for a plain read.
func (r *registroRepository) CountByEvento(ctx context.Context, tx *gorm.DB, eventoID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Registro{}).
		Where("evento_id = ?", eventoID).
		Count(&count).Error
	return count, err
}

func (r *registroRepository) ListByUsuario(ctx context.Context, usuarioID uint, tipo models.TipoEvento) ([]models.Registro, error) {
	var registros []models.Registro
	q := r.db.WithContext(ctx).
		Preload("Evento").
		Joins("JOIN eventos ON eventos.id = registros.evento_id").
		Where("registros.usuario_id = ?", usuarioID)
	if tipo != "" {
		q = q.Where("eventos.tipo = ?", tipo)
	}
	if err := q.Order("registros.registrado_en DESC").Find(&registros).Error; err != nil {
		return nil, err
	}
	return registros, nil
}

func (r *registroRepository) CountByUsuarioPorTipo(ctx context.Context, usuarioID uint) (map[models.TipoEvento]int64, error) {
	type fila struct {
		Tipo  models.TipoEvento
		Total int64
	}
	var filas []fila
	err := r.db.WithContext(ctx).
		Model(&models.Registro{}).
		Select("eventos.tipo AS tipo, COUNT(registros.id) AS total").
		Joins("JOIN eventos ON eventos.id = registros.evento_id").
		Where("registros.usuario_id = ?", usuarioID).
		Group("eventos.tipo").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	conteos := make(map[models.TipoEvento]int64, len(filas))
	for _, f := range filas {
		conteos[f.Tipo] = f.Total
	}
	return conteos, nil
}
