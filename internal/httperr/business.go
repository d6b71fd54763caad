package httperr

import (
	"errors"
	"strings"
)

// Kind groups business errors by how the request boundary reports them.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindInvalidReference
	KindDuplicateKey
	KindSlotConflict
	KindReferenced
	KindInvalidState
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidReference:
		return "invalid_reference"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindSlotConflict:
		return "slot_conflict"
	case KindReferenced:
		return "referenced"
	case KindInvalidState:
		return "invalid_state"
	case KindTransient:
		return "transient"
	default:
		return "internal"
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
	Err     error
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}

func NotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func InvalidReference(field, message string) error {
	return BusinessError{Kind: KindInvalidReference, Code: "INVALID_REFERENCE", Field: field, Message: message}
}

func DuplicateKey(code, field, message string) error {
	return BusinessError{Kind: KindDuplicateKey, Code: code, Field: field, Message: message}
}

func SlotConflict() error {
	return BusinessError{
		Kind:    KindSlotConflict,
		Code:    "SLOT_CONFLICT",
		Message: "Já existe um agendamento para este médico neste horário.",
	}
}

func Referenced(code, message string) error {
	return BusinessError{Kind: KindReferenced, Code: code, Message: message}
}

func InvalidState(code, message string) error {
	return BusinessError{Kind: KindInvalidState, Code: code, Message: message}
}

func Transient(err error) error {
	return BusinessError{
		Kind:    KindTransient,
		Code:    "SERVICE_UNAVAILABLE",
		Message: "Serviço temporariamente indisponível. Tente novamente.",
		Err:     err,
	}
}

// ================================
// Validation
// ================================

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a payload, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns e only when at least one field failed.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
