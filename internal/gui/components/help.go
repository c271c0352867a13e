package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const HelpMarkdown = `**How to use**

- Fill in title, director and year, then press **Save**.
- **Paste** puts the clipboard text into the title.
- Select a row to load it into the form; **Save** then updates it.
- **New** leaves edit mode without saving.
- Cells can be edited in place: press Enter or move focus to commit.
- The year must contain digits only.
- Type in the search box to filter by title.
- **Export CSV** saves the rows currently shown.
`

type HelpPanel struct {
	container *fyne.Container
	content   *widget.RichText
}

func NewHelpPanel() *HelpPanel {
	content := widget.NewRichTextFromMarkdown(HelpMarkdown)
	content.Wrapping = fyne.TextWrapWord

	card := widget.NewCard("Help", "", container.NewVScroll(content))
	return &HelpPanel{
		container: container.NewStack(card),
		content:   content,
	}
}

func (hp *HelpPanel) GetContainer() *fyne.Container {
	return hp.container
}
