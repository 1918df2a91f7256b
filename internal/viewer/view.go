package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ViewState is the bitmap currently shown and the transform computed for it.
type ViewState struct {
	Bitmap image.Image
	Scale  float32
	Fitted bool
}

// ImageView is the detail pane: it draws one bitmap uniformly scaled to fit its size.
// The scale is computed once per SetImage, so shrinking the pane afterwards clips the
// image and shows scrollbars instead of refitting.
type ImageView struct {
	widget.BaseWidget

	state ViewState
}

// NewImageView creates an empty detail pane.
func NewImageView() *ImageView {
	v := &ImageView{}
	v.ExtendBaseWidget(v)
	return v
}

// SetImage replaces the displayed bitmap and fits it to the current pane size.
// If the pane has no size yet the fit happens on the next layout.
func (v *ImageView) SetImage(img image.Image) {
	v.state = ViewState{Bitmap: img}
	v.fit(v.Size())
	v.Refresh()
}

// Clear removes the displayed bitmap.
func (v *ImageView) Clear() {
	v.state = ViewState{}
	v.Refresh()
}

// State returns the current view state.
func (v *ImageView) State() ViewState {
	return v.state
}

// RenderedSize returns the on-screen size of the bitmap, zero when nothing is fitted.
func (v *ImageView) RenderedSize() fyne.Size {
	if v.state.Bitmap == nil || !v.state.Fitted {
		return fyne.NewSize(0, 0)
	}
	return FittedSize(v.state.Bitmap, v.state.Scale)
}

func (v *ImageView) fit(size fyne.Size) {
	if v.state.Bitmap == nil || v.state.Fitted {
		return
	}
	bounds := v.state.Bitmap.Bounds()
	scale, ok := FitScale(size.Width, size.Height, float32(bounds.Dx()), float32(bounds.Dy()))
	if !ok {
		return
	}
	v.state.Scale = scale
	v.state.Fitted = true
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (v *ImageView) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth
	img.Hide()

	// The scroller clips the image to the pane; the center layout keeps it at a non-negative offset
	scroll := container.NewScroll(container.NewCenter(img))

	return &imageViewRenderer{view: v, background: bg, image: img, scroll: scroll}
}

type imageViewRenderer struct {
	view       *ImageView
	background *canvas.Rectangle
	image      *canvas.Image
	scroll     *container.Scroll
}

func (r *imageViewRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.view.fit(size)
	r.image.SetMinSize(r.view.RenderedSize())
	r.scroll.Resize(size)
	r.scroll.Refresh()
}

func (r *imageViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *imageViewRenderer) Refresh() {
	state := r.view.State()
	r.image.Image = state.Bitmap
	if state.Bitmap == nil {
		r.image.Hide()
	} else {
		r.image.Show()
	}
	r.image.SetMinSize(r.view.RenderedSize())
	r.Layout(r.view.Size())
	r.background.Refresh()
	r.image.Refresh()
}

func (r *imageViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.scroll}
}

func (r *imageViewRenderer) Destroy() {}
