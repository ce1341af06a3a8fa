package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventosapp/eventos/internal/auth"
	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsernameEnUso         = errors.New("el nombre de usuario ya está en uso")
	ErrEmailEnUso            = errors.New("el email ya está en uso")
	ErrEmailInvalido         = errors.New("email inválido")
	ErrPasswordCorta         = errors.New("la contraseña debe tener al menos 8 caracteres")
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Usuario, error)
	Signup(ctx context.Context, username, email, password string) (*models.Usuario, error)
	GetUsuario(ctx context.Context, id uint) (*models.Usuario, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
}

func NewAuthService(usuarioRepo repository.UsuarioRepository) AuthService {
	return &authService{usuarioRepo: usuarioRepo}
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}
	if !auth.CheckPassword(password, usuario.PasswordHash) {
		return nil, ErrCredencialesInvalidas
	}
	return usuario, nil
}

func (s *authService) Signup(ctx context.Context, username, email, password string) (*models.Usuario, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, models.ErrNombreVacio
	}
	if !strings.Contains(email, "@") {
		return nil, ErrEmailInvalido
	}
	if len(password) < 8 {
		return nil, ErrPasswordCorta
	}

	if _, err := s.usuarioRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.usuarioRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	usuario := &models.Usuario{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	return usuario, nil
}

func (s *authService) GetUsuario(ctx context.Context, id uint) (*models.Usuario, error) {
	return s.usuarioRepo.FindByID(ctx, id)
}
