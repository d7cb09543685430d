package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/optionkit/internal/clock/clocktest"
	"github.com/ytget/optionkit/internal/model"
	"github.com/ytget/optionkit/internal/transfer"
)

func TestTransferRow(t *testing.T) {
	test.NewApp()
	row := NewTransferRow(NewLocalization())

	var stopped uuid.UUID
	var opened string
	row.SetCallbacks(func(id uuid.UUID) { stopped = id }, func(dir string) { opened = dir }, nil)

	tr := model.Transfer{
		ID:         uuid.New(),
		Name:       "Season 4",
		Dest:       "/games/season4",
		Status:     model.TaskStatusTransferring,
		BytesDone:  25,
		BytesTotal: 100,
	}
	row.SetTransfer(tr)
	assert.Equal(t, "Season 4", row.nameLabel.Text)
	assert.Equal(t, "25%", row.progressLabel.Text)
	assert.Equal(t, widget.HighImportance, row.statusLabel.Importance)
	assert.False(t, row.stopBtn.Disabled())
	assert.True(t, row.removeBtn.Disabled())

	test.Tap(row.stopBtn)
	assert.Equal(t, tr.ID, stopped)
	test.Tap(row.openBtn)
	assert.Equal(t, "/games/season4", opened)

	tr.Status = model.TaskStatusError
	tr.LastError = "disk full"
	row.SetTransfer(tr)
	assert.Equal(t, "Season 4"+MiddleDotSeparator+"disk full", row.nameLabel.Text)
	assert.Equal(t, widget.DangerImportance, row.statusLabel.Importance)
	assert.True(t, row.stopBtn.Disabled())
	assert.False(t, row.removeBtn.Disabled())

	assert.GreaterOrEqual(t, test.WidgetRenderer(row).MinSize().Height, float32(RowMinHeight))
}

func TestDownloadsPage(t *testing.T) {
	test.NewApp()
	tracker := transfer.NewTracker(clocktest.NewManual(), nil)

	var opened []string
	open := func(dir string) error {
		opened = append(opened, dir)
		if dir == "/missing" {
			return errors.New("no such directory")
		}
		return nil
	}
	page := NewDownloadsPage(tracker, NewLocalization(), open, nil)
	assert.Empty(t, page.Items())
	assert.True(t, page.empty.Visible())
	assert.Equal(t, "Downloads", page.Header())

	tr, err := tracker.Add("Season 4", "/missing")
	require.NoError(t, err)
	require.NoError(t, tracker.SetStatus(tr.ID, model.TaskStatusTransferring))
	page.Reload()
	require.Len(t, page.Items(), 1)
	assert.False(t, page.empty.Visible())
	assert.Equal(t, "Downloads"+MiddleDotSeparator+"1 active", page.Header())

	page.onOpen("/missing")
	assert.Equal(t, []string{"/missing"}, opened)

	// Active transfers cannot be removed
	page.onRemove(tr.ID)
	require.Len(t, page.Items(), 1)

	page.onStop(tr.ID)
	require.NoError(t, tracker.Stopped(tr.ID))
	page.onRemove(tr.ID)
	assert.Empty(t, page.Items())
}
