package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestCrearComentario_SinSesion(t *testing.T) {
	sm := session.New(true)
	e := newTestEcho(sm)
	NewComentarioHandler(&mockComentarioService{}, sm).RegisterRoutes(e)

	rec := postForm(e, "/events/1/comments", "comentario=hola", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestCrearComentario_Success(t *testing.T) {
	svc := &mockComentarioService{
		crearFn: func(ctx context.Context, eventoID, usuarioID uint, texto string) (*models.Comentario, error) {
			assert.Equal(t, uint(1), eventoID)
			assert.Equal(t, uint(42), usuarioID)
			assert.Equal(t, "¡Gran evento!", texto)
			return &models.Comentario{ID: 7, EventoID: eventoID, UsuarioID: usuarioID, Comentario: texto}, nil
		},
	}

	sm := session.New(true)
	e := newTestEcho(sm)
	NewComentarioHandler(svc, sm).RegisterRoutes(e)
	cookie := loginCookie(t, e, sm, 42)

	rec := postForm(e, "/events/1/comments", "comentario=¡Gran evento!", cookie)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events/1", rec.Header().Get("Location"))
}

func TestCrearComentario_Vacio(t *testing.T) {
	svc := &mockComentarioService{
		crearFn: func(ctx context.Context, eventoID, usuarioID uint, texto string) (*models.Comentario, error) {
			return nil, service.ErrComentarioVacio
		},
	}

	sm := session.New(true)
	e := newTestEcho(sm)
	NewComentarioHandler(svc, sm).RegisterRoutes(e)
	cookie := loginCookie(t, e, sm, 42)

	rec := postForm(e, "/events/1/comments", "comentario=   ", cookie)

	// Empty comments flash an error but still bounce back to the detail page.
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events/1", rec.Header().Get("Location"))
}

func TestCrearComentario_EventoNoEncontrado(t *testing.T) {
	svc := &mockComentarioService{
		crearFn: func(ctx context.Context, eventoID, usuarioID uint, texto string) (*models.Comentario, error) {
			return nil, service.ErrEventoNoEncontrado
		},
	}

	sm := session.New(true)
	e := newTestEcho(sm)
	NewComentarioHandler(svc, sm).RegisterRoutes(e)
	cookie := loginCookie(t, e, sm, 42)

	rec := postForm(e, "/events/999/comments", "comentario=hola", cookie)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
