package option

import (
	"fmt"
	"strings"

	"github.com/ytget/optionkit/internal/apperrors"
)

// Kind is the closed set of control kinds.
type Kind string

const (
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindFile    Kind = "file"
	KindColour  Kind = "colour"
	KindSlider  Kind = "slider"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{KindString, KindBoolean, KindNumber, KindFile, KindColour, KindSlider}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindBoolean, KindNumber, KindFile, KindColour, KindSlider:
		return true
	default:
		return false
	}
}

// ParseKind converts a configuration tag into a Kind. "color" is accepted as
// an alias of "colour".
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "color" {
		k = KindColour
	}
	if !k.Valid() {
		return "", apperrors.UnknownKind(fmt.Errorf("unknown option kind %q", s))
	}
	return k, nil
}
