package entities

import (
	"errors"
	"fmt"
)

// ErrResponseNotFound indica que o ID da resposta não existe
var ErrResponseNotFound = errors.New("response not found")

// Códigos de violação de validação
const (
	CodeRequired        = "required"
	CodeInvalidBody     = "invalid_body"
	CodeMissing         = "missing"
	CodeNotANumber      = "not_a_number"
	CodeOutOfRange      = "out_of_range"
	CodeUnknownQuestion = "unknown_question"
)

// ValidationError descreve uma entrada inválida do cliente
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError cria um erro de validação para o campo informado
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Message: message}
}

// StorageError envolve falhas da camada de persistência
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
