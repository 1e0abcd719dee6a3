package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrCategoryNotFound = errors.New("categoria não encontrada")
	ErrBundleNotFound   = errors.New("bundle não encontrado")
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
