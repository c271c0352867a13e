package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type SearchBar struct {
	container *fyne.Container
	Entry     *widget.Entry

	queryHandler func(string)
}

func NewSearchBar() *SearchBar {
	sb := &SearchBar{}

	sb.Entry = widget.NewEntry()
	sb.Entry.SetPlaceHolder("Search by title...")
	sb.Entry.OnChanged = sb.onChanged

	sb.container = container.NewBorder(nil, nil, widget.NewIcon(theme.SearchIcon()), nil, sb.Entry)
	return sb
}

func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetQueryHandler is called on every change of the search text.
func (sb *SearchBar) SetQueryHandler(handler func(string)) {
	sb.queryHandler = handler
}

func (sb *SearchBar) onChanged(text string) {
	if sb.queryHandler != nil {
		sb.queryHandler(text)
	}
}
