package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindUnknownKind  Kind = "unknown_kind"
	KindUnsupported  Kind = "unsupported"
	KindCancelled    Kind = "cancelled"
	KindStale        Kind = "stale"
	KindConfig       Kind = "config"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for inline indicators and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindInvalidInput:
		return "Invalid input."
	case KindUnknownKind:
		return "Invalid Type"
	case KindUnsupported:
		return "Free text entry is not supported for this option."
	case KindCancelled:
		return "Selection cancelled."
	case KindStale:
		return "Binding no longer exists."
	case KindConfig:
		return "Invalid option configuration."
	default:
		return "Request failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func InvalidInput(err error) error {
	return New(KindInvalidInput, "", err)
}

func UnknownKind(err error) error {
	return New(KindUnknownKind, "", err)
}

func Unsupported(err error) error {
	return New(KindUnsupported, "", err)
}

func Config(err error) error {
	return New(KindConfig, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsRecoverable reports whether the control layer handles err locally by
// reverting or clamping. Every kind except config errors is recoverable.
func IsRecoverable(err error) bool {
	kind, ok := KindOf(err)
	if !ok {
		return false
	}
	return kind != KindConfig
}

func IsInvalidInput(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindInvalidInput
}

func IsUnknownKind(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnknownKind
}
