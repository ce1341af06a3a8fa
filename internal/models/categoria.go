package models

type Categoria struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"size:100;not null;uniqueIndex" json:"nombre"`
	Descripcion *string `gorm:"type:text" json:"descripcion,omitempty"`
}

func (Categoria) TableName() string { return "categorias" }

// EventoCategoria links an event to a category; at most one row per pair.
type EventoCategoria struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	EventoID    uint `gorm:"not null;uniqueIndex:idx_evento_categoria" json:"evento_id"`
	CategoriaID uint `gorm:"not null;uniqueIndex:idx_evento_categoria" json:"categoria_id"`

	Evento    *Evento    `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE" json:"evento,omitempty"`
	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE" json:"categoria,omitempty"`
}

func (EventoCategoria) TableName() string { return "evento_categorias" }
