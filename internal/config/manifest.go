package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/optionkit/internal/apperrors"
	"github.com/ytget/optionkit/internal/logger"
	"github.com/ytget/optionkit/internal/option"
	"github.com/ytget/optionkit/internal/validate"
)

//go:embed default_manifest.yaml
var defaultManifest []byte

// Manifest describes the option groups shown on the settings page.
type Manifest struct {
	Version int        `yaml:"version" validate:"gte=1"`
	Groups  []GroupDef `yaml:"groups" validate:"required,dive"`
}

// GroupDef is one titled group of options.
type GroupDef struct {
	Title           string      `yaml:"title" validate:"required"`
	Hideable        bool        `yaml:"hideable"`
	HiddenByDefault bool        `yaml:"hidden_by_default"`
	Options         []OptionDef `yaml:"options" validate:"dive"`
}

// OptionDef is the configuration form of one option. Kind is kept as written
// so an unknown kind still renders, as an error indicator.
type OptionDef struct {
	Key         string `yaml:"key" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Kind        string `yaml:"kind" validate:"required"`
	Default     any    `yaml:"default"`

	option.Constraints `yaml:",inline"`

	Placeholder string `yaml:"placeholder"`
	Suffix      string `yaml:"suffix"`
	AttachImage bool   `yaml:"attach_image"`
	AttachKey   string `yaml:"attach_key" validate:"required_if=AttachImage true"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Config(fmt.Errorf("read manifest: %w", err))
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest YAML. Unknown fields are
// rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.Config(errors.New("empty manifest"))
		}
		return nil, apperrors.Config(fmt.Errorf("decode manifest: %w", err))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks field constraints and that option keys are unique.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return apperrors.Config(err)
	}
	seen := make(map[string]bool)
	for _, g := range m.Groups {
		for _, def := range g.Options {
			if seen[def.Key] {
				return apperrors.Config(fmt.Errorf("duplicate option key %q", def.Key))
			}
			seen[def.Key] = true
			if err := def.Constraints.Validate(); err != nil {
				return apperrors.Config(fmt.Errorf("option %q: %w", def.Key, err))
			}
		}
	}
	return nil
}

// DefaultManifest returns the manifest compiled into the binary.
func DefaultManifest() *Manifest {
	m, err := ParseManifest(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("config: embedded manifest: %v", err))
	}
	return m
}

// Sections binds every option of m to s.
func Sections(m *Manifest, s *Store) []option.Section {
	sections := make([]option.Section, 0, len(m.Groups))
	for _, g := range m.Groups {
		opts := make([]option.Option, 0, len(g.Options))
		for _, def := range g.Options {
			opts = append(opts, option.Option{
				ID:          def.Key,
				Title:       def.Title,
				Description: def.Description,
				Icon:        def.Icon,
				Binding:     Bind(def, s),
			})
		}
		sections = append(sections, option.Section{
			Title:           g.Title,
			Hideable:        g.Hideable,
			HiddenByDefault: g.HiddenByDefault,
			Options:         opts,
		})
	}
	return sections
}

// Bind maps a definition to a typed binding reading from and committing to s.
// An unrecognised kind yields option.InvalidBinding.
func Bind(def OptionDef, s *Store) option.Binding {
	kind, err := option.ParseKind(def.Kind)
	if err != nil {
		logger.Warn("option has unknown kind", "option", def.Key, "kind", def.Kind)
		return option.InvalidBinding{Raw: def.Kind}
	}
	key := def.Key

	switch kind {
	case option.KindBoolean:
		b := option.BooleanBinding{
			State: option.State[bool]{
				Current: s.Bool(key, defaultBool(def)),
				Commit:  func(v bool) { s.SetBool(key, v) },
			},
		}
		if def.AttachImage {
			attachKey := def.AttachKey
			exts := def.Extensions
			if len(exts) == 0 {
				exts = option.DefaultImageExtensions
			}
			b.Attachment = &option.Attachment{
				Path:       s.String(attachKey, ""),
				Commit:     func(p string) { s.SetString(attachKey, p) },
				Extensions: exts,
			}
		}
		return b

	case option.KindString:
		return option.StringBinding{
			State: option.State[string]{
				Current: s.String(key, defaultString(def)),
				Commit:  func(v string) { s.SetString(key, v) },
			},
			Placeholder: def.Placeholder,
		}

	case option.KindNumber:
		bounds := def.Bounds()
		return option.NumberBinding{
			State: option.State[float64]{
				Current: s.Float(key, defaultFloat(def, bounds)),
				Commit:  func(v float64) { s.SetFloat(key, v) },
			},
			Bounds: bounds,
			Suffix: def.Suffix,
		}

	case option.KindFile:
		return option.FileBinding{
			State: option.State[string]{
				Current: s.String(key, defaultString(def)),
				Commit:  func(v string) { s.SetString(key, v) },
			},
			Extensions: def.Extensions,
		}

	case option.KindColour:
		fallback := defaultString(def)
		if fallback == "" && len(def.Palette) > 0 {
			fallback = def.Palette[0]
		}
		return option.ColourBinding{
			State: option.State[string]{
				Current: s.String(key, fallback),
				Commit:  func(v string) { s.SetString(key, v) },
			},
			Palette:  def.Palette,
			Gradient: def.Gradient,
		}

	default: // option.KindSlider
		r := def.Constraints.SliderRange()
		return option.SliderBinding{
			State: option.State[float64]{
				Current: s.Float(key, defaultFloat(def, option.Bounds{Min: r.Min, Max: r.Max})),
				Commit:  func(v float64) { s.SetFloat(key, v) },
			},
			Range:  r,
			Step:   def.Step,
			Values: def.Values,
		}
	}
}

func defaultBool(def OptionDef) bool {
	switch v := def.Default.(type) {
	case bool:
		return v
	case string:
		b, err := option.Coerce(option.KindBoolean, v, def.Constraints)
		if err != nil {
			logger.Warn("invalid boolean default", "option", def.Key, "default", v)
			return false
		}
		return b.(bool)
	}
	return false
}

func defaultString(def OptionDef) string {
	switch v := def.Default.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// defaultFloat reads a numeric default and clamps it into b; a missing or
// unparsable default takes the coercion fallback.
func defaultFloat(def OptionDef, b option.Bounds) float64 {
	var raw string
	switch v := def.Default.(type) {
	case int:
		return b.Clamp(float64(v))
	case float64:
		return b.Clamp(v)
	case string:
		raw = v
	}
	f, err := option.CoerceNumber(raw, b)
	if err != nil && def.Default != nil {
		logger.Warn("invalid numeric default", "option", def.Key, "default", def.Default)
	}
	return f
}

// keepOnReset lists options that carry identity rather than preference.
var keepOnReset = map[string]bool{KeyDisplayName: true}

// Reset forgets every stored value of m so the next read returns defaults.
// The display name survives so a reset does not sign the user out.
func Reset(m *Manifest, s *Store) {
	for _, g := range m.Groups {
		for _, def := range g.Options {
			if keepOnReset[def.Key] {
				continue
			}
			s.Remove(def.Key)
			if def.AttachImage {
				s.Remove(def.AttachKey)
			}
		}
	}
}
