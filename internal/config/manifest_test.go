package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/optionkit/internal/apperrors"
	"github.com/ytget/optionkit/internal/option"
	"github.com/ytget/optionkit/internal/slider"
)

const sampleManifest = `
version: 1
groups:
  - title: General
    options:
      - key: volume
        title: Volume
        kind: slider
        default: 40
        step: 10
      - key: retries
        title: Retries
        kind: number
        default: 3
        min: 0
        max: 10
        suffix: times
      - key: theme
        title: Theme
        kind: color
        palette: ["#4f4f4f", "#ef4444"]
      - key: banner
        title: Banner
        kind: boolean
        default: "true"
        attach_image: true
        attach_key: banner_image
      - key: mystery
        title: Mystery
        kind: colorwheel
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Groups, 1)
	require.Len(t, m.Groups[0].Options, 5)

	retries := m.Groups[0].Options[1]
	require.NotNil(t, retries.Min)
	assert.Equal(t, 0.0, *retries.Min)
	assert.Equal(t, option.Bounds{Min: 0, Max: 10}, retries.Bounds())
	assert.Equal(t, "times", retries.Suffix)
}

func TestParseManifestRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"unknown field", "version: 1\ngroups:\n  - title: A\n    colour: red\n"},
		{"missing version", "groups:\n  - title: A\n"},
		{"missing key", "version: 1\ngroups:\n  - title: A\n    options:\n      - title: X\n        kind: string\n"},
		{"duplicate key", "version: 1\ngroups:\n  - title: A\n    options:\n      - {key: a, title: A, kind: string}\n      - {key: a, title: B, kind: number}\n"},
		{"inverted bounds", "version: 1\ngroups:\n  - title: A\n    options:\n      - {key: a, title: A, kind: number, min: 5, max: 1}\n"},
		{"dotted extension", "version: 1\ngroups:\n  - title: A\n    options:\n      - {key: a, title: A, kind: file, extensions: [\".png\"]}\n"},
		{"attachment without key", "version: 1\ngroups:\n  - title: A\n    options:\n      - {key: a, title: A, kind: boolean, attach_image: true}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			require.Error(t, err)
			kind, ok := apperrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindConfig, kind)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "General", m.Groups[0].Title)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest()
	keys := map[string]string{}
	for _, g := range m.Groups {
		for _, def := range g.Options {
			keys[def.Key] = def.Kind
		}
	}
	assert.Equal(t, "boolean", keys[KeyDisableDrawer])
	assert.Equal(t, "boolean", keys[KeyWideDrawer])
	assert.Equal(t, "file", keys[KeyInstallDir])
	assert.Equal(t, "slider", keys["background_blur"])
	assert.Equal(t, "colour", keys["background_gradient"])
}

func TestBind(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	defs := m.Groups[0].Options

	t.Run("slider defaults to 0..100", func(t *testing.T) {
		b, ok := Bind(defs[0], store).(option.SliderBinding)
		require.True(t, ok)
		assert.Equal(t, slider.DefaultRange, b.Range)
		assert.Equal(t, 40.0, b.Current)
		assert.Equal(t, 10.0, b.Step)

		b.Set(70)
		assert.Equal(t, 70.0, store.Float("volume", 0))
	})

	t.Run("number", func(t *testing.T) {
		b, ok := Bind(defs[1], store).(option.NumberBinding)
		require.True(t, ok)
		assert.Equal(t, 3.0, b.Current)
		assert.Equal(t, option.Bounds{Min: 0, Max: 10}, b.Bounds)
	})

	t.Run("colour alias takes first swatch", func(t *testing.T) {
		b, ok := Bind(defs[2], store).(option.ColourBinding)
		require.True(t, ok)
		assert.Equal(t, "#4f4f4f", b.Current)
	})

	t.Run("boolean with attachment", func(t *testing.T) {
		b, ok := Bind(defs[3], store).(option.BooleanBinding)
		require.True(t, ok)
		assert.True(t, b.Current)
		require.NotNil(t, b.Attachment)
		assert.Equal(t, option.DefaultImageExtensions, b.Attachment.Extensions)

		b.Attachment.Commit("/tmp/banner.png")
		assert.Equal(t, "/tmp/banner.png", store.String("banner_image", ""))
	})

	t.Run("unknown kind", func(t *testing.T) {
		b := Bind(defs[4], store)
		assert.Equal(t, option.InvalidBinding{Raw: "colorwheel"}, b)
	})
}

func TestSectionsAndReset(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())
	m := DefaultManifest()

	sections := Sections(m, store)
	require.Len(t, sections, len(m.Groups))
	for i, s := range sections {
		assert.Equal(t, m.Groups[i].Title, s.Title)
		assert.Len(t, s.Options, len(m.Groups[i].Options))
	}

	store.SetBool(KeyDisableDrawer, true)
	store.SetString("background_image", "/tmp/bg.png")
	store.SetString(KeyDisplayName, "player")
	Reset(m, store)
	assert.False(t, store.Bool(KeyDisableDrawer, false))
	assert.Equal(t, "", store.String("background_image", ""))
	assert.Equal(t, "player", store.String(KeyDisplayName, ""), "reset keeps the signed-in name")
}
