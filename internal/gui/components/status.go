package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	countLabel := widget.NewLabel("Films: --")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		countLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		countLabel:  countLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetCounts shows how many rows are displayed out of the stored total.
func (sb *StatusBar) SetCounts(shown, total int) {
	if shown == total {
		sb.countLabel.SetText(fmt.Sprintf("Films: %d", total))
		return
	}
	sb.countLabel.SetText(fmt.Sprintf("Films: %d of %d", shown, total))
}

func (sb *StatusBar) Counts() string {
	return sb.countLabel.Text
}
