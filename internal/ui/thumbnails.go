package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/image-browser/internal/config"
)

// ImageSource defines the ordered data a thumbnail grid displays.
type ImageSource interface {
	Count() int
	NameAt(i int) string
	BitmapAt(i int) image.Image
	ThumbnailAt(i int) image.Image
}

// thumbnailGrid binds an ImageSource to a wrapping grid of fixed size cells.
// It holds a reference to the source, the owner keeps it alive.
type thumbnailGrid struct {
	grid      *widget.GridWrap
	source    ImageSource
	selection *selection
	config    *config.Config

	onActivated func(id int)
}

func newThumbnailGrid(cfg *config.Config, onActivated func(id int)) *thumbnailGrid {
	g := &thumbnailGrid{
		selection:   newSelection(),
		config:      cfg,
		onActivated: onActivated,
	}
	g.grid = widget.NewGridWrap(
		g.length,
		func() fyne.CanvasObject { return newThumbnailItem(g) },
		func(id widget.GridWrapItemID, o fyne.CanvasObject) {
			o.(*thumbnailItem).update(id)
		},
	)
	return g
}

// Bind replaces the displayed source and forgets the previous selection.
func (g *thumbnailGrid) Bind(source ImageSource) {
	g.source = source
	g.selection.Clear()
	// GridWrap only has a scroller once it is on a canvas
	if fyne.CurrentApp().Driver().CanvasForObject(g.grid) != nil {
		g.grid.ScrollToTop()
	}
	g.grid.Refresh()
}

func (g *thumbnailGrid) length() int {
	if g.source == nil {
		return 0
	}
	return g.source.Count()
}

func (g *thumbnailGrid) valid(id int) bool {
	return id >= 0 && id < g.length()
}

// click applies a primary button click with the given modifiers to the selection.
func (g *thumbnailGrid) click(id int, modifier fyne.KeyModifier) {
	if !g.valid(id) {
		return
	}
	switch {
	case modifier&fyne.KeyModifierShift != 0:
		g.selection.Extend(id)
	case modifier&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0:
		g.selection.Toggle(id)
	default:
		g.selection.Select(id)
	}
	g.grid.Refresh()
}

func (g *thumbnailGrid) activate(id int) {
	if g.onActivated != nil {
		g.onActivated(id)
	}
}

// thumbnailItem is one grid cell: icon on the leading side, file name beside it.
type thumbnailItem struct {
	widget.BaseWidget
	grid *thumbnailGrid
	id   int

	icon      *canvas.Image
	label     *widget.Label
	highlight *canvas.Rectangle
}

func newThumbnailItem(g *thumbnailGrid) *thumbnailItem {
	item := &thumbnailItem{
		grid:      g,
		id:        -1,
		icon:      canvas.NewImageFromImage(nil),
		label:     widget.NewLabel(""),
		highlight: canvas.NewRectangle(theme.Color(theme.ColorNameSelection)),
	}
	item.icon.FillMode = canvas.ImageFillContain
	item.icon.ScaleMode = canvas.ImageScaleSmooth
	item.label.Truncation = fyne.TextTruncateEllipsis
	item.highlight.Hide()
	item.ExtendBaseWidget(item)
	return item
}

func (i *thumbnailItem) update(id int) {
	i.id = id
	if !i.grid.valid(id) {
		return
	}
	i.icon.Image = i.grid.source.ThumbnailAt(id)
	i.icon.Refresh()
	i.label.SetText(i.grid.source.NameAt(id))
	if i.grid.selection.Contains(id) {
		i.highlight.Show()
	} else {
		i.highlight.Hide()
	}
	i.highlight.Refresh()
}

// Tapped activates the item.
func (i *thumbnailItem) Tapped(_ *fyne.PointEvent) {
	i.grid.activate(i.id)
}

var _ desktop.Mouseable = (*thumbnailItem)(nil)

func (i *thumbnailItem) MouseDown(*desktop.MouseEvent) {}

func (i *thumbnailItem) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	i.grid.click(i.id, e.Modifier)
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (i *thumbnailItem) CreateRenderer() fyne.WidgetRenderer {
	return &thumbnailItemRenderer{item: i}
}

type thumbnailItemRenderer struct {
	item *thumbnailItem
}

func (r *thumbnailItemRenderer) Layout(size fyne.Size) {
	r.item.highlight.Resize(size)

	iconSize := fyne.NewSquareSize(r.item.grid.config.IconSize)
	r.item.icon.Resize(iconSize)
	r.item.icon.Move(fyne.NewPos(0, (size.Height-iconSize.Height)/2))

	labelSize := fyne.NewSize(size.Width-iconSize.Width, r.item.label.MinSize().Height)
	r.item.label.Resize(labelSize)
	r.item.label.Move(fyne.NewPos(iconSize.Width, (size.Height-labelSize.Height)/2))
}

func (r *thumbnailItemRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.item.grid.config.CellWidth, r.item.grid.config.CellHeight)
}

func (r *thumbnailItemRenderer) Refresh() {
	r.item.highlight.Refresh()
	r.item.icon.Refresh()
	r.item.label.Refresh()
}

func (r *thumbnailItemRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.item.highlight, r.item.icon, r.item.label}
}

func (r *thumbnailItemRenderer) Destroy() {}
