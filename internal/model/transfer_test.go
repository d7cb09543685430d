package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestTransfer_Progress(t *testing.T) {
	tests := []struct {
		done, total int64
		expected    int
	}{
		{0, 0, 0},
		{50, 0, 0},
		{0, 100, 0},
		{25, 100, 25},
		{100, 100, 100},
		{150, 100, 100},
	}

	for _, test := range tests {
		tr := &Transfer{BytesDone: test.done, BytesTotal: test.total}
		if got := tr.Percent(); got != test.expected {
			t.Errorf("Percent() with %d/%d = %d, expected %d", test.done, test.total, got, test.expected)
		}
	}
}

func TestTransfer_DisplayName(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		tr       Transfer
		expected string
	}{
		{Transfer{Name: "Season 8", Dest: "/games/s8"}, "Season 8"},
		{Transfer{Dest: `C:\Games\Chapter 2\`}, "Chapter 2"},
		{Transfer{ID: id}, id.String()},
	}

	for _, test := range tests {
		if got := test.tr.DisplayName(); got != test.expected {
			t.Errorf("DisplayName() = %q, expected %q", got, test.expected)
		}
	}
}

func TestTransfer_StatusLine(t *testing.T) {
	tests := []struct {
		tr       Transfer
		expected string
	}{
		{Transfer{Status: TaskStatusPending}, "Pending"},
		{Transfer{Status: TaskStatusTransferring, BytesDone: 1, BytesTotal: 4}, "Transferring 25%"},
		{Transfer{Status: TaskStatusTransferring}, "Transferring"},
		{Transfer{Status: TaskStatusError, LastError: "disk full"}, "Error: disk full"},
	}

	for _, test := range tests {
		if got := test.tr.StatusLine(); got != test.expected {
			t.Errorf("StatusLine() = %q, expected %q", got, test.expected)
		}
	}
}
