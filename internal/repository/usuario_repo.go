package repository

import (
	"context"

	"github.com/eventosapp/eventos/internal/models"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	FindByID(ctx context.Context, id uint) (*models.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*models.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.WithContext(ctx).First(&usuario, id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}
