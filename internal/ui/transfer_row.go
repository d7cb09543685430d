package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/optionkit/internal/model"
)

// TransferRow represents a compact row for one transfer
type TransferRow struct {
	widget.BaseWidget

	transfer     model.Transfer
	localization *Localization

	// UI components
	nameLabel     *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label
	progressBar   *widget.ProgressBar

	// Action buttons
	stopBtn   *widget.Button
	openBtn   *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onStop   func(id uuid.UUID)
	onOpen   func(dir string)
	onRemove func(id uuid.UUID)

	content fyne.CanvasObject
}

// NewTransferRow creates a new transfer row widget
func NewTransferRow(localization *Localization) *TransferRow {
	tr := &TransferRow{localization: localization}
	tr.createUI()
	tr.ExtendBaseWidget(tr)
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TransferRow) SetCallbacks(onStop func(uuid.UUID), onOpen func(string), onRemove func(uuid.UUID)) {
	tr.onStop = onStop
	tr.onOpen = onOpen
	tr.onRemove = onRemove
}

// SetTransfer updates the row with a new snapshot
func (tr *TransferRow) SetTransfer(t model.Transfer) {
	tr.transfer = t
	tr.updateFromTransfer()
	tr.Refresh()
}

// Transfer returns the snapshot currently shown
func (tr *TransferRow) Transfer() model.Transfer {
	return tr.transfer
}

// createUI creates the UI components
func (tr *TransferRow) createUI() {
	tr.nameLabel = widget.NewLabel("")
	tr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.progressLabel = widget.NewLabel("")
	tr.progressLabel.Alignment = fyne.TextAlignTrailing
	tr.progressBar = widget.NewProgressBar()
	tr.progressBar.TextFormatter = func() string { return "" }

	tr.stopBtn = widget.NewButton(tr.localization.GetText(KeyStop), func() {
		if tr.onStop != nil {
			tr.onStop(tr.transfer.ID)
		}
	})
	tr.openBtn = widget.NewButton(tr.localization.GetText(KeyOpenFolder), func() {
		if tr.onOpen != nil && tr.transfer.Dest != "" {
			tr.onOpen(tr.transfer.Dest)
		}
	})
	tr.removeBtn = widget.NewButton(tr.localization.GetText(KeyRemove), func() {
		if tr.onRemove != nil {
			tr.onRemove(tr.transfer.ID)
		}
	})

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(StatusLabelWidth, tr.statusLabel),
		fixedWidth(PercentLabelWidth, tr.progressLabel),
	)
	actions := container.NewHBox(tr.stopBtn, tr.openBtn, tr.removeBtn)
	right := container.NewBorder(nil, nil, nil, actions, info)
	top := container.NewBorder(nil, nil, nil, right, tr.nameLabel)

	tr.content = container.NewVBox(top, tr.progressBar, widget.NewSeparator())
}

// updateFromTransfer updates UI components based on transfer state
func (tr *TransferRow) updateFromTransfer() {
	t := tr.transfer
	tr.nameLabel.SetText(t.DisplayName())

	switch t.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + t.Status.String())
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(t.Status.String())
	case model.TaskStatusTransferring, model.TaskStatusStarting, model.TaskStatusVerifying:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconPlay + " " + t.Status.String())
	case model.TaskStatusPending:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconPending + " " + t.Status.String())
	case model.TaskStatusStopped, model.TaskStatusStopping:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconStopped + " " + t.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(t.Status.String())
	}

	switch {
	case t.Status == model.TaskStatusCompleted:
		tr.progressBar.SetValue(1)
		tr.progressLabel.SetText("")
	case t.BytesTotal > 0:
		tr.progressBar.SetValue(t.Progress())
		tr.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, t.Percent()))
	default:
		tr.progressBar.SetValue(0)
		tr.progressLabel.SetText(DashPlaceholder)
	}
	if t.Status == model.TaskStatusError && t.LastError != "" {
		tr.nameLabel.SetText(t.DisplayName() + MiddleDotSeparator + t.LastError)
	}

	tr.updateButtons()
}

// updateButtons updates button states based on transfer status
func (tr *TransferRow) updateButtons() {
	t := tr.transfer
	if t.Status.IsFinished() || t.Status == model.TaskStatusStopping {
		tr.stopBtn.Disable()
	} else {
		tr.stopBtn.Enable()
	}
	if t.Status.IsFinished() {
		tr.removeBtn.Enable()
	} else {
		tr.removeBtn.Disable()
	}
	if t.Dest != "" {
		tr.openBtn.Enable()
	} else {
		tr.openBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TransferRow) CreateRenderer() fyne.WidgetRenderer {
	return &transferRowRenderer{row: tr}
}

// transferRowRenderer renders the transfer row widget
type transferRowRenderer struct {
	row *TransferRow
}

// Layout arranges the components
func (r *transferRowRenderer) Layout(size fyne.Size) {
	r.row.content.Resize(size)
}

// MinSize returns the minimum size
func (r *transferRowRenderer) MinSize() fyne.Size {
	return r.row.content.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *transferRowRenderer) Refresh() {
	r.row.content.Refresh()
}

// Objects returns the container objects
func (r *transferRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.row.content}
}

// Destroy cleans up the renderer
func (r *transferRowRenderer) Destroy() {}
