package repository

import (
	"context"

	"github.com/eventosapp/eventos/internal/models"
	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, categoria *models.Categoria) error
	FindByID(ctx context.Context, id uint) (*models.Categoria, error)
	FindByNombre(ctx context.Context, nombre string) (*models.Categoria, error)
	Link(ctx context.Context, eventoID, categoriaID uint) error
	ListByEvento(ctx context.Context, eventoID uint) ([]models.Categoria, error)
}

type categoriaRepository struct {
	db *gorm.DB
}

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Create(ctx context.Context, categoria *models.Categoria) error {
	return r.db.WithContext(ctx).Create(categoria).Error
}

func (r *categoriaRepository) FindByID(ctx context.Context, id uint) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.db.WithContext(ctx).First(&categoria, id).Error; err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *categoriaRepository) FindByNombre(ctx context.Context, nombre string) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		First(&categoria).Error; err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *categoriaRepository) Link(ctx context.Context, eventoID, categoriaID uint) error {
	return r.db.WithContext(ctx).Create(&models.EventoCategoria{
		EventoID:    eventoID,
		CategoriaID: categoriaID,
	}).Error
}

func (r *categoriaRepository) ListByEvento(ctx context.Context, eventoID uint) ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := r.db.WithContext(ctx).
		Joins("JOIN evento_categorias ON evento_categorias.categoria_id = categorias.id").
		Where("evento_categorias.evento_id = ?", eventoID).
		Order("categorias.nombre ASC").
		Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}
