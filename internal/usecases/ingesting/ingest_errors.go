package ingesting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de ingestão de leituras
var (
	// Erros de validação
	ErrInvalidQuantity     = errors.New("quantity must be a non-negative integer")
	ErrInvalidSource       = errors.New("unknown reading source")
	ErrSlotNotFound        = errors.New("shelf slot not found")
	ErrStoreMismatch       = errors.New("slot does not belong to the given store")
	ErrCapacityNotComputed = errors.New("slot capacity has not been computed yet")
	ErrStoreAccessDenied   = errors.New("store is not accessible for this token")

	// Erros de banco de dados
	ErrSaveReading = errors.New("error saving stock reading")

	// Erros do motor de detecção
	ErrDetectionFailed = errors.New("rupture detection failed after reading was persisted")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating reading ID")
)

// IngestError é um erro com contexto adicional para a ingestão
type IngestError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SlotID  string // ID do slot envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IngestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *IngestError) Unwrap() error {
	return e.Err
}

// NewIngestError cria um novo IngestError
func NewIngestError(err error, code string, details string) *IngestError {
	return &IngestError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewIngestErrorWithSlot cria um novo IngestError com ID do slot
func NewIngestErrorWithSlot(err error, code string, slotID string, details string) *IngestError {
	return &IngestError{
		Err:     err,
		Code:    code,
		SlotID:  slotID,
		Details: details,
	}
}
