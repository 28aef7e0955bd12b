package service

import (
	"errors"
	"fmt"
)

// Business-rule failures recovered at the request boundary. Anything else that
// escapes a service is treated as an internal error and never shown verbatim.
var (
	ErrUsuarioDuplicado     = errors.New("Usuário já existe.")
	ErrCredenciaisInvalidas = errors.New("Usuário ou senha incorretos.")
	ErrNaoEncontrado        = errors.New("Registro não encontrado.")
)

// EstoqueInsuficienteError rejects a sale whose quantity exceeds current
// stock. Disponivel carries the quantity still available for display.
type EstoqueInsuficienteError struct {
	Disponivel int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("Estoque insuficiente! Restam %d.", e.Disponivel)
}

// EntradaInvalidaError marks form input that failed coercion. The message is
// human-readable and safe to render back as the notice.
type EntradaInvalidaError struct {
	Msg string
}

func (e *EntradaInvalidaError) Error() string { return e.Msg }

func entradaInvalida(msg string) error { return &EntradaInvalidaError{Msg: msg} }
