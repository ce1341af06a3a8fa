package models

import "time"

type Usuario struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	EsAdmin      bool      `gorm:"not null;default:false" json:"es_admin"`
	CreadoEn     time.Time `gorm:"autoCreateTime" json:"creado_en"`
}

func (Usuario) TableName() string { return "usuarios" }
