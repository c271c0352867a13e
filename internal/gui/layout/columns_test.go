package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func rects(n int) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, n)
	for i := range objects {
		r := canvas.NewRectangle(nil)
		r.SetMinSize(fyne.NewSize(10, 20))
		objects[i] = r
	}
	return objects
}

func TestWeightedColumnLayout_SplitsWidthByWeight(t *testing.T) {
	l := NewWeightedColumnLayout([]float32{2, 1, 1}, 0)
	objects := rects(3)

	l.Layout(objects, fyne.NewSize(400, 30))

	assert.Equal(t, fyne.NewSize(200, 30), objects[0].Size())
	assert.Equal(t, fyne.NewSize(100, 30), objects[1].Size())
	assert.Equal(t, fyne.NewPos(300, 0), objects[2].Position())
}

func TestWeightedColumnLayout_PaddingBetweenColumns(t *testing.T) {
	l := NewWeightedColumnLayout([]float32{1, 1}, 10)
	objects := rects(2)

	l.Layout(objects, fyne.NewSize(210, 30))

	assert.Equal(t, float32(100), objects[0].Size().Width)
	assert.Equal(t, fyne.NewPos(110, 0), objects[1].Position())
}

func TestWeightedColumnLayout_HidesExtraObjects(t *testing.T) {
	l := NewWeightedColumnLayout([]float32{1}, 0)
	objects := rects(2)

	l.Layout(objects, fyne.NewSize(100, 30))

	assert.True(t, objects[0].Visible())
	assert.False(t, objects[1].Visible())
}

func TestWeightedColumnLayout_MinSizeHonoursNarrowestWeight(t *testing.T) {
	l := NewWeightedColumnLayout([]float32{3, 1}, 0)

	size := l.MinSize(rects(2))

	// The weight-1 column needs 10 of 4 shares.
	assert.Equal(t, fyne.NewSize(40, 20), size)
}
