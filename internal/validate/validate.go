package validate

// This package is a thin wrapper around go-playground/validator shared by the
// option manifest and the control constraints.
//
// e.g. internal/config/manifest.go
//   type OptionDef struct {
//       Key  string `yaml:"key" validate:"required"`
//       Step float64 `yaml:"step" validate:"gte=0"`
//   }

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		_ = validatorInst.RegisterValidation("extension", isExtension)
	})
	return validatorInst
}

// isExtension accepts bare file extensions such as "png" (no leading dot, wildcard or separator).
func isExtension(fl validator.FieldLevel) bool {
	ext := fl.Field().String()
	if ext == "" || strings.HasPrefix(ext, ".") {
		return false
	}
	return !strings.ContainsAny(ext, `/\ *`)
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
