package service

import (
	"context"
	"time"

	"github.com/eventosapp/eventos/internal/models"
	"gorm.io/gorm"
)

// Func-field repository mocks shared by the service tests. Tests set only
// the fields they exercise.

type mockEventoRepo struct {
	createFn              func(ctx context.Context, evento *models.Evento) error
	updateFn              func(ctx context.Context, evento *models.Evento) error
	findByIDFn            func(ctx context.Context, id uint) (*models.Evento, error)
	findActivoByIDFn      func(ctx context.Context, id uint) (*models.Evento, error)
	findByIDForUpdateFn   func(ctx context.Context, tx *gorm.DB, id uint) (*models.Evento, error)
	listDestacadosFn      func(ctx context.Context, tipo models.TipoEvento, limit int) ([]models.Evento, error)
	listRecientesFn       func(ctx context.Context, limit int) ([]models.Evento, error)
	listProximosFn        func(ctx context.Context, tipo models.TipoEvento, desde time.Time, limit int) ([]models.Evento, error)
	listPopularesFn       func(ctx context.Context, limit int) ([]models.Evento, error)
	countActivosFn        func(ctx context.Context) (int64, error)
	countActivosPorTipoFn func(ctx context.Context, tipo models.TipoEvento) (int64, error)
}

func (m *mockEventoRepo) Create(ctx context.Context, evento *models.Evento) error {
	return m.createFn(ctx, evento)
}
func (m *mockEventoRepo) Update(ctx context.Context, evento *models.Evento) error {
	return m.updateFn(ctx, evento)
}
func (m *mockEventoRepo) FindByID(ctx context.Context, id uint) (*models.Evento, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventoRepo) FindActivoByID(ctx context.Context, id uint) (*models.Evento, error) {
	return m.findActivoByIDFn(ctx, id)
}
func (m *mockEventoRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Evento, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockEventoRepo) ListDestacados(ctx context.Context, tipo models.TipoEvento, limit int) ([]models.Evento, error) {
	return m.listDestacadosFn(ctx, tipo, limit)
}
func (m *mockEventoRepo) ListRecientes(ctx context.Context, limit int) ([]models.Evento, error) {
	return m.listRecientesFn(ctx, limit)
}
func (m *mockEventoRepo) ListProximos(ctx context.Context, tipo models.TipoEvento, desde time.Time, limit int) ([]models.Evento, error) {
	return m.listProximosFn(ctx, tipo, desde, limit)
}
func (m *mockEventoRepo) ListPopulares(ctx context.Context, limit int) ([]models.Evento, error) {
	return m.listPopularesFn(ctx, limit)
}
func (m *mockEventoRepo) CountActivos(ctx context.Context) (int64, error) {
	return m.countActivosFn(ctx)
}
func (m *mockEventoRepo) CountActivosPorTipo(ctx context.Context, tipo models.TipoEvento) (int64, error) {
	return m.countActivosPorTipoFn(ctx, tipo)
}

type mockRegistroRepo struct {
	createFn                func(ctx context.Context, tx *gorm.DB, registro *models.Registro) error
	deleteFn                func(ctx context.Context, registro *models.Registro) error
	findByEventoYUsuarioFn  func(ctx context.Context, tx *gorm.DB, eventoID, usuarioID uint) (*models.Registro, error)
	countByEventoFn         func(ctx context.Context, tx *gorm.DB, eventoID uint) (int64, error)
	listByUsuarioFn         func(ctx context.Context, usuarioID uint, tipo models.TipoEvento) ([]models.Registro, error)
	countByUsuarioPorTipoFn func(ctx context.Context, usuarioID uint) (map[models.TipoEvento]int64, error)
}

func (m *mockRegistroRepo) Create(ctx context.Context, tx *gorm.DB, registro *models.Registro) error {
	return m.createFn(ctx, tx, registro)
}
func (m *mockRegistroRepo) Delete(ctx context.Context, registro *models.Registro) error {
	return m.deleteFn(ctx, registro)
}
func (m *mockRegistroRepo) FindByEventoYUsuario(ctx context.Context, tx *gorm.DB, eventoID, usuarioID uint) (*models.Registro, error) {
	return m.findByEventoYUsuarioFn(ctx, tx, eventoID, usuarioID)
}
func (m *mockRegistroRepo) CountByEvento(ctx context.Context, tx *gorm.DB, eventoID uint) (int64, error) {
	return m.countByEventoFn(ctx, tx, eventoID)
}
func (m *mockRegistroRepo) ListByUsuario(ctx context.Context, usuarioID uint, tipo models.TipoEvento) ([]models.Registro, error) {
	return m.listByUsuarioFn(ctx, usuarioID, tipo)
}
func (m *mockRegistroRepo) CountByUsuarioPorTipo(ctx context.Context, usuarioID uint) (map[models.TipoEvento]int64, error) {
	return m.countByUsuarioPorTipoFn(ctx, usuarioID)
}
func (m *mockRegistroRepo) GetDB() *gorm.DB { return nil }

type mockComentarioRepo struct {
	createFn       func(ctx context.Context, comentario *models.Comentario) error
	listByEventoFn func(ctx context.Context, eventoID uint) ([]models.Comentario, error)
}

func (m *mockComentarioRepo) Create(ctx context.Context, comentario *models.Comentario) error {
	return m.createFn(ctx, comentario)
}
func (m *mockComentarioRepo) ListByEvento(ctx context.Context, eventoID uint) ([]models.Comentario, error) {
	return m.listByEventoFn(ctx, eventoID)
}

type mockCategoriaRepo struct {
	createFn       func(ctx context.Context, categoria *models.Categoria) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Categoria, error)
	findByNombreFn func(ctx context.Context, nombre string) (*models.Categoria, error)
	linkFn         func(ctx context.Context, eventoID, categoriaID uint) error
	listByEventoFn func(ctx context.Context, eventoID uint) ([]models.Categoria, error)
}

func (m *mockCategoriaRepo) Create(ctx context.Context, categoria *models.Categoria) error {
	return m.createFn(ctx, categoria)
}
func (m *mockCategoriaRepo) FindByID(ctx context.Context, id uint) (*models.Categoria, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockCategoriaRepo) FindByNombre(ctx context.Context, nombre string) (*models.Categoria, error) {
	return m.findByNombreFn(ctx, nombre)
}
func (m *mockCategoriaRepo) Link(ctx context.Context, eventoID, categoriaID uint) error {
	return m.linkFn(ctx, eventoID, categoriaID)
}
func (m *mockCategoriaRepo) ListByEvento(ctx context.Context, eventoID uint) ([]models.Categoria, error) {
	return m.listByEventoFn(ctx, eventoID)
}

type mockUsuarioRepo struct {
	createFn         func(ctx context.Context, usuario *models.Usuario) error
	findByIDFn       func(ctx context.Context, id uint) (*models.Usuario, error)
	findByUsernameFn func(ctx context.Context, username string) (*models.Usuario, error)
	findByEmailFn    func(ctx context.Context, email string) (*models.Usuario, error)
}

func (m *mockUsuarioRepo) Create(ctx context.Context, usuario *models.Usuario) error {
	return m.createFn(ctx, usuario)
}
func (m *mockUsuarioRepo) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUsuarioRepo) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	return m.findByUsernameFn(ctx, username)
}
func (m *mockUsuarioRepo) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	return m.findByEmailFn(ctx, email)
}
