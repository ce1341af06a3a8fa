// Package session wraps the scs session manager with the handful of keys
// this application stores: the signed-in user and pending flash messages.
package session

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

const (
	keyUsuarioID = "usuarioID"
	keyFlashes   = "flashes"
)

// Nivel is the severity of a flash message.
type Nivel string

const (
	NivelSuccess Nivel = "success"
	NivelInfo    Nivel = "info"
	NivelWarning Nivel = "warning"
	NivelError   Nivel = "error"
)

// Flash is a one-shot message shown to the user on the next page load.
type Flash struct {
	Nivel Nivel  `json:"nivel"`
	Texto string `json:"texto"`
}

func init() {
	gob.Register(Flash{})
	gob.Register([]Flash{})
}

// New creates a session manager backed by the default in-memory store.
func New(isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev
	return sm
}

// SetUsuarioID marks the session as signed in. The token is renewed to
// prevent session fixation.
func SetUsuarioID(ctx context.Context, sm *scs.SessionManager, id uint) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, keyUsuarioID, id)
	return nil
}

// UsuarioID returns the signed-in user id, if any.
func UsuarioID(ctx context.Context, sm *scs.SessionManager) (uint, bool) {
	id, ok := sm.Get(ctx, keyUsuarioID).(uint)
	return id, ok
}

// Logout destroys the session.
func Logout(ctx context.Context, sm *scs.SessionManager) error {
	return sm.Destroy(ctx)
}

// AddFlash queues a message for the next page load.
func AddFlash(ctx context.Context, sm *scs.SessionManager, nivel Nivel, texto string) {
	flashes, _ := sm.Get(ctx, keyFlashes).([]Flash)
	sm.Put(ctx, keyFlashes, append(flashes, Flash{Nivel: nivel, Texto: texto}))
}

// PopFlashes drains and returns the queued messages.
func PopFlashes(ctx context.Context, sm *scs.SessionManager) []Flash {
	flashes, _ := sm.Pop(ctx, keyFlashes).([]Flash)
	return flashes
}
