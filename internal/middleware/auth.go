package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/labstack/echo/v4"
)

// RequireAdmin guards the event/category management routes. Anonymous users
// and non-admins both get a 404 so the surface stays invisible.
func RequireAdmin(sm *scs.SessionManager, authSvc service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			id, ok := session.UsuarioID(ctx, sm)
			if !ok {
				return echo.NewHTTPError(http.StatusNotFound, "no encontrado")
			}
			usuario, err := authSvc.GetUsuario(ctx, id)
			if err != nil || !usuario.EsAdmin {
				return echo.NewHTTPError(http.StatusNotFound, "no encontrado")
			}
			c.Set("usuario", usuario)
			return next(c)
		}
	}
}
