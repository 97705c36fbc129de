package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRunID gera o identificador curto usado para correlacionar os logs de uma
// execução de sincronização.
func NewRunID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
