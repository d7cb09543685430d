package option

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/rivo/uniseg"
)

// EmptyPath is shown by path controls with no value.
const EmptyPath = "Empty"

// PickRequest describes one picker invocation. Only single selection is
// supported; Multiple is carried for callers that want to assert it.
type PickRequest struct {
	AllowDirectories bool
	Multiple         bool
	Extensions       []string
}

// Picker chooses a path. done is called once with ok=false on cancellation.
type Picker interface {
	Pick(req PickRequest, done func(path string, ok bool))
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(req PickRequest, done func(path string, ok bool))

// Pick implements Picker.
func (f PickerFunc) Pick(req PickRequest, done func(path string, ok bool)) { f(req, done) }

// DialogPicker opens Fyne file and folder dialogs on a window.
type DialogPicker struct {
	window fyne.Window
	log    *slog.Logger
}

// NewDialogPicker returns a picker bound to w.
func NewDialogPicker(w fyne.Window, log *slog.Logger) *DialogPicker {
	if log == nil {
		log = slog.Default()
	}
	return &DialogPicker{window: w, log: log}
}

// Pick implements Picker.
func (p *DialogPicker) Pick(req PickRequest, done func(path string, ok bool)) {
	if req.AllowDirectories {
		d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				p.log.Warn("folder picker failed", "error", err)
				done("", false)
				return
			}
			if uri == nil {
				done("", false)
				return
			}
			done(uri.Path(), true)
		}, p.window)
		d.Show()
		return
	}

	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			p.log.Warn("file picker failed", "error", err)
			done("", false)
			return
		}
		if rc == nil {
			done("", false)
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()
		done(path, true)
	}, p.window)
	if len(req.Extensions) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(dotted(req.Extensions)))
	}
	d.Show()
}

func dotted(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		out = append(out, "."+strings.TrimPrefix(e, "."))
	}
	return out
}

// ShortPath returns the last n segments of path joined by "/". Backslashes
// are treated as separators.
func ShortPath(path string, n int) string {
	parts := strings.Split(strings.ReplaceAll(path, `\`, "/"), "/")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if n > 0 && len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "/")
}

// TruncateLeft shortens s to at most width terminal cells, keeping the end and
// prefixing an ellipsis. File names are identified by their tail.
func TruncateLeft(s string, width int) string {
	if width <= 0 || uniseg.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}

	var clusters []string
	var widths []int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
		widths = append(widths, g.Width())
	}

	budget := width - 1
	start := len(clusters)
	for start > 0 && widths[start-1] <= budget {
		budget -= widths[start-1]
		start--
	}
	return "…" + strings.Join(clusters[start:], "")
}

// PathLabel is the text shown on a path button.
func PathLabel(path string, segments, width int) string {
	if path == "" {
		return EmptyPath
	}
	return TruncateLeft(ShortPath(path, segments), width)
}
