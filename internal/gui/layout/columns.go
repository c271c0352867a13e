package layout

import (
	"fyne.io/fyne/v2"
)

// WeightedColumnLayout places objects side by side, sharing the container
// width in proportion to the weights. Objects beyond the weights are hidden.
type WeightedColumnLayout struct {
	weights []float32
	padding float32
}

func NewWeightedColumnLayout(weights []float32, padding float32) *WeightedColumnLayout {
	return &WeightedColumnLayout{
		weights: weights,
		padding: padding,
	}
}

func (wcl *WeightedColumnLayout) total() float32 {
	var sum float32
	for _, w := range wcl.weights {
		sum += w
	}
	return sum
}

func (wcl *WeightedColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	total := wcl.total()
	if len(objects) == 0 || total <= 0 {
		return
	}

	usable := containerSize.Width - wcl.padding*float32(len(wcl.weights)-1)
	if usable < 0 {
		usable = 0
	}

	x := float32(0)
	for i, obj := range objects {
		if i >= len(wcl.weights) {
			obj.Hide()
			continue
		}

		width := usable * wcl.weights[i] / total
		obj.Resize(fyne.NewSize(width, containerSize.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width + wcl.padding
	}
}

// MinSize is wide enough that no column is narrower than its object's
// minimum at the given weights.
func (wcl *WeightedColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	total := wcl.total()
	if total <= 0 {
		return fyne.NewSize(0, 0)
	}

	var width, height float32
	for i, w := range wcl.weights {
		if i >= len(objects) || w <= 0 {
			continue
		}
		objMin := objects[i].MinSize()
		if need := objMin.Width * total / w; need > width {
			width = need
		}
		if objMin.Height > height {
			height = objMin.Height
		}
	}

	return fyne.NewSize(width+wcl.padding*float32(len(wcl.weights)-1), height)
}
