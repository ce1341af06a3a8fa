package repository

import (
	"context"

	"github.com/eventosapp/eventos/internal/models"
	"gorm.io/gorm"
)

type ComentarioRepository interface {
	Create(ctx context.Context, comentario *models.Comentario) error
	ListByEvento(ctx context.Context, eventoID uint) ([]models.Comentario, error)
}

type comentarioRepository struct {
	db *gorm.DB
}

func NewComentarioRepository(db *gorm.DB) ComentarioRepository {
	return &comentarioRepository{db: db}
}

func (r *comentarioRepository) Create(ctx context.Context, comentario *models.Comentario) error {
	return r.db.WithContext(ctx).Create(comentario).Error
}

func (r *comentarioRepository) ListByEvento(ctx context.Context, eventoID uint) ([]models.Comentario, error) {
	var comentarios []models.Comentario
	if err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("evento_id = ?", eventoID).
		Order("creado_en DESC").
		Find(&comentarios).Error; err != nil {
		return nil, err
	}
	return comentarios, nil
}
