package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transfer is one build being fetched into the library
type Transfer struct {
	ID         uuid.UUID
	Name       string // build name as shown in the library
	Dest       string // install directory
	Status     TaskStatus
	BytesDone  int64
	BytesTotal int64 // 0 if unknown
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Progress returns the completed fraction in [0,1], or 0 if the size is unknown
func (t *Transfer) Progress() float64 {
	if t.BytesTotal <= 0 {
		return 0
	}
	p := float64(t.BytesDone) / float64(t.BytesTotal)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Percent returns Progress as a whole percentage
func (t *Transfer) Percent() int {
	return int(t.Progress() * 100)
}

// DisplayName returns the name, or the last segment of Dest when unnamed
func (t *Transfer) DisplayName() string {
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	parts := strings.FieldsFunc(t.Dest, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return t.ID.String()
}

// StatusLine summarises the transfer for list rows
func (t *Transfer) StatusLine() string {
	switch {
	case t.Status == TaskStatusError && t.LastError != "":
		return fmt.Sprintf("%s: %s", t.Status, t.LastError)
	case t.Status.IsActive() && t.BytesTotal > 0:
		return fmt.Sprintf("%s %d%%", t.Status, t.Percent())
	default:
		return t.Status.String()
	}
}
