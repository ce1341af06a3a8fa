package models

import "time"

// Registro is a user's claim on one seat of an event, unique per
// (evento, usuario) pair.
type Registro struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventoID     uint      `gorm:"not null;uniqueIndex:idx_registro_evento_usuario" json:"evento_id"`
	UsuarioID    uint      `gorm:"not null;uniqueIndex:idx_registro_evento_usuario" json:"usuario_id"`
	RegistradoEn time.Time `gorm:"autoCreateTime" json:"registrado_en"`

	Evento  *Evento  `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE" json:"evento,omitempty"`
	Usuario *Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"usuario,omitempty"`
}

func (Registro) TableName() string { return "registros" }
