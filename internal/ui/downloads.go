package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/optionkit/internal/model"
	"github.com/ytget/optionkit/internal/transfer"
)

// DownloadsPage lists transfers, oldest first
type DownloadsPage struct {
	widget.BaseWidget

	store        transfer.Store
	localization *Localization
	log          *slog.Logger
	openFolder   func(dir string) error

	header *widget.Label
	empty  *widget.Label
	list   *widget.List
	items  []model.Transfer

	content fyne.CanvasObject
}

// NewDownloadsPage creates the page. openFolder reveals a destination in the
// system file manager.
func NewDownloadsPage(store transfer.Store, localization *Localization, openFolder func(string) error, log *slog.Logger) *DownloadsPage {
	if log == nil {
		log = slog.Default()
	}
	p := &DownloadsPage{
		store:        store,
		localization: localization,
		openFolder:   openFolder,
		log:          log,
	}
	p.header = widget.NewLabelWithStyle(localization.GetText(KeyDownloads), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.empty = widget.NewLabel(localization.GetText(KeyNoDownloads))
	p.list = widget.NewList(
		func() int { return len(p.items) },
		func() fyne.CanvasObject {
			row := NewTransferRow(p.localization)
			row.SetCallbacks(p.onStop, p.onOpen, p.onRemove)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(p.items) {
				return
			}
			obj.(*TransferRow).SetTransfer(p.items[id])
		},
	)
	p.content = container.NewBorder(container.NewVBox(p.header, widget.NewSeparator()), nil, nil, nil,
		container.NewStack(p.empty, p.list))
	p.ExtendBaseWidget(p)
	p.Reload()
	return p
}

// Reload re-reads every transfer from the store
func (p *DownloadsPage) Reload() {
	p.items = p.store.All()
	active := p.store.ActiveCount()

	title := p.localization.GetText(KeyDownloads)
	if active > 0 {
		title += MiddleDotSeparator + fmt.Sprintf(p.localization.GetText(KeyActiveDownloads), active)
	}
	p.header.SetText(title)

	if len(p.items) == 0 {
		p.empty.Show()
	} else {
		p.empty.Hide()
	}
	p.list.Refresh()
}

// Items returns the transfers currently listed
func (p *DownloadsPage) Items() []model.Transfer { return p.items }

// Header returns the page title text
func (p *DownloadsPage) Header() string { return p.header.Text }

func (p *DownloadsPage) onStop(id uuid.UUID) {
	if err := p.store.Stop(id); err != nil {
		p.log.Warn("stop transfer", "id", id, "error", err)
	}
}

func (p *DownloadsPage) onRemove(id uuid.UUID) {
	if err := p.store.Remove(id); err != nil {
		p.log.Warn("remove transfer", "id", id, "error", err)
		return
	}
	p.Reload()
}

func (p *DownloadsPage) onOpen(dir string) {
	if p.openFolder == nil {
		return
	}
	if err := p.openFolder(dir); err != nil {
		p.log.Warn(p.localization.GetText(KeyErrorOpeningDir), "dir", dir, "error", err)
	}
}

func (p *DownloadsPage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
