package messaging

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// ValidationError envolve as falhas de validação do payload na borda da API
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payload inválido: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
