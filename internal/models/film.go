package models

import (
	"strconv"
	"strings"
)

// Grid column order; the export header follows it too.
const (
	ColumnID = iota
	ColumnTitle
	ColumnDirector
	ColumnYear
	ColumnCount
)

var ColumnHeaders = []string{"ID", "Title", "Director", "Year"}

// FilmRecord is a persisted catalog entry.
type FilmRecord struct {
	ID       int64
	Title    string
	Director string
	Year     string
}

func (r FilmRecord) Input() FilmInput {
	return FilmInput{Title: r.Title, Director: r.Director, Year: r.Year}
}

// Cells renders the record the way the grid and the export show it.
func (r FilmRecord) Cells() []string {
	return []string{strconv.FormatInt(r.ID, 10), r.Title, r.Director, r.Year}
}

// FilmInput holds unvalidated field values from the form or a grid row.
type FilmInput struct {
	Title    string
	Director string
	Year     string
}

func (in FilmInput) Normalize() FilmInput {
	return FilmInput{
		Title:    strings.TrimSpace(in.Title),
		Director: strings.TrimSpace(in.Director),
		Year:     strings.TrimSpace(in.Year),
	}
}

// Validate reports the first field that breaks the record rules. Callers
// normalize first; surrounding whitespace counts as content here.
func (in FilmInput) Validate() error {
	switch {
	case in.Title == "":
		return ValidationError{Field: "title", Reason: "is required"}
	case in.Director == "":
		return ValidationError{Field: "director", Reason: "is required"}
	case in.Year == "":
		return ValidationError{Field: "year", Reason: "is required"}
	case !IsDigits(in.Year):
		return ValidationError{Field: "year", Reason: "must contain only digits"}
	}
	return nil
}

// IsDigits reports whether s is non-empty and made of ASCII 0-9 only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
