package components

import (
	"fmt"

	"film-catalog/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Title gets the most room; the year field only needs four digits.
var fieldWeights = []float32{3, 2, 1}

// FilmForm holds the three entry fields for the pending record.
type FilmForm struct {
	container     *fyne.Container
	TitleEntry    *widget.Entry
	DirectorEntry *widget.Entry
	YearEntry     *widget.Entry
	PasteButton   *widget.Button
	modeLabel     *widget.Label

	pasteHandler  func()
	submitHandler func()
}

func NewFilmForm() *FilmForm {
	f := &FilmForm{}
	f.setupForm()
	return f
}

func (f *FilmForm) setupForm() {
	f.TitleEntry = widget.NewEntry()
	f.TitleEntry.SetPlaceHolder("Film title")
	f.DirectorEntry = widget.NewEntry()
	f.DirectorEntry.SetPlaceHolder("Director")
	f.YearEntry = widget.NewEntry()
	f.YearEntry.SetPlaceHolder("Release year")

	// Enter in any field saves, like the Save button.
	for _, e := range []*widget.Entry{f.TitleEntry, f.DirectorEntry, f.YearEntry} {
		e.OnSubmitted = func(string) { f.onSubmit() }
	}

	f.PasteButton = widget.NewButtonWithIcon("Paste", theme.ContentPasteIcon(), f.onPaste)
	f.modeLabel = widget.NewLabel("New film")

	fields := container.New(
		layout.NewWeightedColumnLayout(fieldWeights, theme.Padding()),
		f.TitleEntry, f.DirectorEntry, f.YearEntry,
	)
	f.container = container.NewBorder(nil, nil, f.modeLabel, f.PasteButton, fields)
}

func (f *FilmForm) GetContainer() *fyne.Container {
	return f.container
}

func (f *FilmForm) SetPasteHandler(handler func()) {
	f.pasteHandler = handler
}

func (f *FilmForm) SetSubmitHandler(handler func()) {
	f.submitHandler = handler
}

func (f *FilmForm) Values() (title, director, year string) {
	return f.TitleEntry.Text, f.DirectorEntry.Text, f.YearEntry.Text
}

func (f *FilmForm) SetValues(title, director, year string) {
	f.TitleEntry.SetText(title)
	f.DirectorEntry.SetText(director)
	f.YearEntry.SetText(year)
}

func (f *FilmForm) SetTitle(title string) {
	f.TitleEntry.SetText(title)
}

func (f *FilmForm) Clear() {
	f.SetValues("", "", "")
	f.SetEditing(0, false)
}

// SetEditing switches the mode caption between creating and editing id.
func (f *FilmForm) SetEditing(id int64, editing bool) {
	if editing {
		f.modeLabel.SetText(fmt.Sprintf("Editing #%d", id))
		return
	}
	f.modeLabel.SetText("New film")
}

func (f *FilmForm) ModeText() string {
	return f.modeLabel.Text
}

func (f *FilmForm) onPaste() {
	if f.pasteHandler != nil {
		f.pasteHandler()
	}
}

func (f *FilmForm) onSubmit() {
	if f.submitHandler != nil {
		f.submitHandler()
	}
}
