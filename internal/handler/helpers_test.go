package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/eventosapp/eventos/internal/middleware"
	"github.com/eventosapp/eventos/internal/models"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestEcho builds an echo instance with the session middleware applied,
// the way main wires it.
func newTestEcho(sm *scs.SessionManager) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echo.WrapMiddleware(sm.LoadAndSave))
	return e
}

// loginCookie signs a fake user into a fresh session and returns the cookie
// to replay on subsequent requests.
func loginCookie(t *testing.T, e *echo.Echo, sm *scs.SessionManager, usuarioID uint) *http.Cookie {
	t.Helper()
	e.GET("/__test/login", func(c echo.Context) error {
		require.NoError(t, session.SetUsuarioID(c.Request().Context(), sm, usuarioID))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/__test/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "login should set a session cookie")
	return cookies[0]
}

func eventoActivo(id uint) *models.Evento {
	return &models.Evento{
		ID:          id,
		Nombre:      "Feria del Libro",
		Tipo:        models.TipoFeria,
		FechaInicio: time.Now().Add(24 * time.Hour),
		FechaFin:    time.Now().Add(30 * time.Hour),
		Lugar:       "Plaza Mayor",
		Activo:      true,
	}
}

// --- Service mocks ---

type mockEventoService struct {
	homeFn             func(ctx context.Context) (*service.Home, error)
	listadoFn          func(ctx context.Context, tipo models.TipoEvento) (*service.Listado, error)
	detalleFn          func(ctx context.Context, eventoID uint, usuarioID *uint) (*service.Detalle, error)
	getEventoFn        func(ctx context.Context, eventoID uint) (*models.Evento, error)
	crearEventoFn      func(ctx context.Context, evento *models.Evento) error
	actualizarEventoFn func(ctx context.Context, evento *models.Evento) error
	crearCategoriaFn   func(ctx context.Context, categoria *models.Categoria) error
	asignarCategoriaFn func(ctx context.Context, eventoID, categoriaID uint) error
}

func (m *mockEventoService) Home(ctx context.Context) (*service.Home, error) {
	return m.homeFn(ctx)
}
func (m *mockEventoService) Listado(ctx context.Context, tipo models.TipoEvento) (*service.Listado, error) {
	return m.listadoFn(ctx, tipo)
}
func (m *mockEventoService) Detalle(ctx context.Context, eventoID uint, usuarioID *uint) (*service.Detalle, error) {
	return m.detalleFn(ctx, eventoID, usuarioID)
}
func (m *mockEventoService) GetEvento(ctx context.Context, eventoID uint) (*models.Evento, error) {
	return m.getEventoFn(ctx, eventoID)
}
func (m *mockEventoService) CrearEvento(ctx context.Context, evento *models.Evento) error {
	return m.crearEventoFn(ctx, evento)
}
func (m *mockEventoService) ActualizarEvento(ctx context.Context, evento *models.Evento) error {
	return m.actualizarEventoFn(ctx, evento)
}
func (m *mockEventoService) CrearCategoria(ctx context.Context, categoria *models.Categoria) error {
	return m.crearCategoriaFn(ctx, categoria)
}
func (m *mockEventoService) AsignarCategoria(ctx context.Context, eventoID, categoriaID uint) error {
	return m.asignarCategoriaFn(ctx, eventoID, categoriaID)
}

type mockRegistroService struct {
	registrarFn  func(ctx context.Context, eventoID, usuarioID uint) (*models.Registro, error)
	cancelarFn   func(ctx context.Context, eventoID, usuarioID uint) error
	misEventosFn func(ctx context.Context, usuarioID uint, tipo models.TipoEvento) (*service.MisEventos, error)
}

func (m *mockRegistroService) Registrar(ctx context.Context, eventoID, usuarioID uint) (*models.Registro, error) {
	return m.registrarFn(ctx, eventoID, usuarioID)
}
func (m *mockRegistroService) Cancelar(ctx context.Context, eventoID, usuarioID uint) error {
	return m.cancelarFn(ctx, eventoID, usuarioID)
}
func (m *mockRegistroService) MisEventos(ctx context.Context, usuarioID uint, tipo models.TipoEvento) (*service.MisEventos, error) {
	return m.misEventosFn(ctx, usuarioID, tipo)
}

type mockComentarioService struct {
	crearFn func(ctx context.Context, eventoID, usuarioID uint, texto string) (*models.Comentario, error)
}

func (m *mockComentarioService) Crear(ctx context.Context, eventoID, usuarioID uint, texto string) (*models.Comentario, error) {
	return m.crearFn(ctx, eventoID, usuarioID, texto)
}

type mockAuthService struct {
	loginFn      func(ctx context.Context, username, password string) (*models.Usuario, error)
	signupFn     func(ctx context.Context, username, email, password string) (*models.Usuario, error)
	getUsuarioFn func(ctx context.Context, id uint) (*models.Usuario, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*models.Usuario, error) {
	return m.loginFn(ctx, username, password)
}
func (m *mockAuthService) Signup(ctx context.Context, username, email, password string) (*models.Usuario, error) {
	return m.signupFn(ctx, username, email, password)
}
func (m *mockAuthService) GetUsuario(ctx context.Context, id uint) (*models.Usuario, error) {
	return m.getUsuarioFn(ctx, id)
}

// --- Repository mock (the register handler resolves the event itself) ---

type mockEventoRepo struct {
	findActivoByIDFn func(ctx context.Context, id uint) (*models.Evento, error)
}

func (m *mockEventoRepo) Create(ctx context.Context, evento *models.Evento) error { return nil }
func (m *mockEventoRepo) Update(ctx context.Context, evento *models.Evento) error { return nil }
func (m *mockEventoRepo) FindByID(ctx context.Context, id uint) (*models.Evento, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEventoRepo) FindActivoByID(ctx context.Context, id uint) (*models.Evento, error) {
	return m.findActivoByIDFn(ctx, id)
}
func (m *mockEventoRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Evento, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEventoRepo) ListDestacados(ctx context.Context, tipo models.TipoEvento, limit int) ([]models.Evento, error) {
	return nil, nil
}
func (m *mockEventoRepo) ListRecientes(ctx context.Context, limit int) ([]models.Evento, error) {
	return nil, nil
}
func (m *mockEventoRepo) ListProximos(ctx context.Context, tipo models.TipoEvento, desde time.Time, limit int) ([]models.Evento, error) {
	return nil, nil
}
func (m *mockEventoRepo) ListPopulares(ctx context.Context, limit int) ([]models.Evento, error) {
	return nil, nil
}
func (m *mockEventoRepo) CountActivos(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockEventoRepo) CountActivosPorTipo(ctx context.Context, tipo models.TipoEvento) (int64, error) {
	return 0, nil
}
