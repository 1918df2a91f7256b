package viewer

import (
	"image"

	"fyne.io/fyne/v2"
)

// FitScale returns the largest uniform scale that keeps an imgW x imgH image inside a paneW x paneH pane.
// ok is false when any dimension is not positive, for example before the pane has been laid out.
func FitScale(paneW, paneH, imgW, imgH float32) (scale float32, ok bool) {
	if paneW <= 0 || paneH <= 0 || imgW <= 0 || imgH <= 0 {
		return 0, false
	}
	return fyne.Min(paneW/imgW, paneH/imgH), true
}

// FittedSize returns the size img occupies when drawn at scale.
func FittedSize(img image.Image, scale float32) fyne.Size {
	bounds := img.Bounds()
	return fyne.NewSize(float32(bounds.Dx())*scale, float32(bounds.Dy())*scale)
}
