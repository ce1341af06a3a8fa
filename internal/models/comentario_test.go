package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComentarioResumido(t *testing.T) {
	c := &Comentario{Comentario: "¡Excelente charla!"}
	assert.Equal(t, "¡Excelente charla!", c.ComentarioResumido(50))
	assert.Equal(t, "¡Excele...", c.ComentarioResumido(7))

	corto := &Comentario{Comentario: "ok"}
	assert.Equal(t, "ok", corto.ComentarioResumido(2))
}
