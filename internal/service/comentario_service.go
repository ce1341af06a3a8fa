package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/repository"
	"gorm.io/gorm"
)

var ErrComentarioVacio = errors.New("el comentario no puede estar vacío")

type ComentarioService interface {
	Crear(ctx context.Context, eventoID, usuarioID uint, texto string) (*models.Comentario, error)
}

type comentarioService struct {
	comentarioRepo repository.ComentarioRepository
	eventoRepo     repository.EventoRepository
}

func NewComentarioService(comentarioRepo repository.ComentarioRepository, eventoRepo repository.EventoRepository) ComentarioService {
	return &comentarioService{comentarioRepo: comentarioRepo, eventoRepo: eventoRepo}
}

// Crear adds a comment to an active event. The body is trimmed; an empty
// result is rejected.
func (s *comentarioService) Crear(ctx context.Context, eventoID, usuarioID uint, texto string) (*models.Comentario, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, ErrComentarioVacio
	}

	if _, err := s.eventoRepo.FindActivoByID(ctx, eventoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventoNoEncontrado
		}
		return nil, err
	}

	comentario := &models.Comentario{
		EventoID:   eventoID,
		UsuarioID:  usuarioID,
		Comentario: texto,
	}
	if err := s.comentarioRepo.Create(ctx, comentario); err != nil {
		return nil, fmt.Errorf("crear comentario: %w", err)
	}
	return comentario, nil
}
