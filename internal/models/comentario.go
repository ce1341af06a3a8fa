package models

import "time"

type Comentario struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EventoID   uint      `gorm:"not null;index" json:"evento_id"`
	UsuarioID  uint      `gorm:"not null" json:"usuario_id"`
	Comentario string    `gorm:"type:text;not null" json:"comentario"`
	CreadoEn   time.Time `gorm:"autoCreateTime" json:"creado_en"`

	Evento  *Evento  `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE" json:"evento,omitempty"`
	Usuario *Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"usuario,omitempty"`
}

func (Comentario) TableName() string { return "comentarios" }

// ComentarioResumido truncates the body to n runes for list views.
func (c *Comentario) ComentarioResumido(n int) string {
	runes := []rune(c.Comentario)
	if len(runes) <= n {
		return c.Comentario
	}
	return string(runes[:n]) + "..."
}
