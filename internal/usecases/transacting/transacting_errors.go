package transacting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// Tipos de erros das operações de transação
var (
	ErrTransactionNotFound = errors.New("transação não encontrada")
	ErrDriverNotFound      = errors.New("entregador não encontrado")
	ErrInvalidStatus       = errors.New("status de transação inválido")
)

// TransitionError indica uma mudança de status não permitida pelo ciclo de
// vida da transação
type TransitionError struct {
	From domain.TransactionStatus
	To   domain.TransactionStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transição de status não permitida: %s -> %s", e.From, e.To)
}
