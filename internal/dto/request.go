package dto

import "time"

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type SignupRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegistroRequest carries the register/cancel form. A non-empty Cancel field
// turns the request into a cancellation.
type RegistroRequest struct {
	Cancel string `json:"cancel" form:"cancel"`
}

type ComentarioRequest struct {
	Comentario string `json:"comentario" form:"comentario"`
}

type CrearEventoRequest struct {
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Tipo        string    `json:"tipo"`
	FechaInicio time.Time `json:"fecha_inicio"`
	FechaFin    time.Time `json:"fecha_fin"`
	Lugar       string    `json:"lugar"`
	Imagen      *string   `json:"imagen,omitempty"`
	Capacidad   *int      `json:"capacidad,omitempty"`
	Precio      *float64  `json:"precio,omitempty"`
	Activo      *bool     `json:"activo,omitempty"`
	Destacado   bool      `json:"destacado"`
}

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type AsignarCategoriaRequest struct {
	CategoriaID uint `json:"categoria_id"`
}
