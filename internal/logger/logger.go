package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

var globalLogger *slog.Logger
var isTerminal = term.IsTerminal
var homeDir, _ = os.UserHomeDir()

// pathKeys hold filesystem paths chosen through pickers; the user's home
// directory is folded to "~" before they reach any sink.
var pathKeys = map[string]bool{
	"path":     true,
	"file":     true,
	"dir":      true,
	"manifest": true,
	"image":    true,
}

// ShortenHome is a slog.ReplaceAttr function that rewrites home-relative paths.
func ShortenHome(_ []string, a slog.Attr) slog.Attr {
	if homeDir == "" || !pathKeys[strings.ToLower(a.Key)] || a.Value.Kind() != slog.KindString {
		return a
	}
	v := a.Value.String()
	if strings.HasPrefix(v, homeDir) {
		return slog.String(a.Key, "~"+strings.TrimPrefix(v, homeDir))
	}
	return a
}

// ParseLevel maps a --log-level value to a slog level. Unknown names fall
// back to info.
func ParseLevel(name string) slog.Level {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func init() {
	Init(slog.LevelInfo, nil)
}

// Init installs the global logger. Console lines go to stderr, coloured only
// on a terminal; logFile, when set, also receives every record as JSON.
func Init(level slog.Level, logFile io.Writer) {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: ShortenHome}

	var handler slog.Handler = NewConsoleHandler(os.Stderr, opts, logFile == nil && isTerminal(int(os.Stderr.Fd())))
	if logFile != nil {
		handler = tee{handler, slog.NewJSONHandler(logFile, opts)}
	}
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// With returns the global logger tagged with a component name.
func With(component string) *slog.Logger {
	return globalLogger.With("component", component)
}

func Debug(msg string, args ...any) { globalLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { globalLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { globalLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { globalLogger.Error(msg, args...) }

// ConsoleHandler writes one line per record:
//
//	15:04:05.000 WARN  [options] number input rejected input=abc
//
// The component attribute becomes the bracketed prefix.
type ConsoleHandler struct {
	w         io.Writer
	opts      *slog.HandlerOptions
	component string
	attrs     []slog.Attr
	prefix    string // group path, dot terminated
	color     bool
}

// NewConsoleHandler returns a handler writing to w.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions, color bool) *ConsoleHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &ConsoleHandler{w: w, opts: opts, color: color}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.opts.Level == nil {
		return level >= slog.LevelInfo
	}
	return level >= h.opts.Level.Level()
}

var levelColours = map[slog.Level]string{
	slog.LevelDebug: "\033[90m",
	slog.LevelInfo:  "\033[32m",
	slog.LevelWarn:  "\033[33m",
	slog.LevelError: "\033[31m",
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	level := fmt.Sprintf("%-5s", r.Level.String())
	if h.color {
		level = levelColours[r.Level] + level + "\033[0m"
	}
	b.WriteString(r.Time.Format("15:04:05.000") + " " + level)
	if h.component != "" {
		b.WriteString(" [" + h.component + "]")
	}
	b.WriteString(" " + r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *ConsoleHandler) writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}
	if a.Key == "" {
		return
	}
	fmt.Fprintf(b, " %s%s=%v", prefix, a.Key, a.Value)
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if a.Key == "component" && h.prefix == "" {
			h2.component = a.Value.String()
			continue
		}
		h2.attrs = append(h2.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &h2
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// tee sends each record to a console and a file handler.
type tee [2]slog.Handler

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	return t[0].Enabled(ctx, level) || t[1].Enabled(ctx, level)
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tee{t[0].WithAttrs(attrs), t[1].WithAttrs(attrs)}
}

func (t tee) WithGroup(name string) slog.Handler {
	return tee{t[0].WithGroup(name), t[1].WithGroup(name)}
}
