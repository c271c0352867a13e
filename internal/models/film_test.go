package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilmInput_Validate(t *testing.T) {
	cases := []struct {
		name  string
		input FilmInput
		field string
	}{
		{"valid", FilmInput{"Heat", "Mann", "1995"}, ""},
		{"long year", FilmInput{"Metropolis", "Lang", "19270"}, ""},
		{"empty title", FilmInput{"", "X", "2000"}, "title"},
		{"empty director", FilmInput{"Heat", "", "1995"}, "director"},
		{"empty year", FilmInput{"Heat", "Mann", ""}, "year"},
		{"letter in year", FilmInput{"Heat", "Mann", "20a0"}, "year"},
		{"signed year", FilmInput{"Heat", "Mann", "-1995"}, "year"},
		{"non-ascii digits", FilmInput{"Heat", "Mann", "١٩٩٥"}, "year"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tc.field, verr.Field)
			}
		})
	}
}

func TestFilmInput_NormalizeTrims(t *testing.T) {
	in := FilmInput{Title: "  Alien ", Director: "\tScott", Year: "1979\n"}.Normalize()
	assert.Equal(t, FilmInput{Title: "Alien", Director: "Scott", Year: "1979"}, in)

	blank := FilmInput{Title: "   ", Director: "Scott", Year: "1979"}.Normalize()
	assert.Error(t, blank.Validate())
}

func TestFilmRecord_Cells(t *testing.T) {
	r := FilmRecord{ID: 12, Title: "Ran", Director: "Kurosawa", Year: "1985"}
	assert.Equal(t, []string{"12", "Ran", "Kurosawa", "1985"}, r.Cells())
	assert.Len(t, r.Cells(), ColumnCount)
	assert.Equal(t, FilmInput{"Ran", "Kurosawa", "1985"}, r.Input())
}

func TestErrors_Unwrap(t *testing.T) {
	base := ValidationError{Field: "year", Reason: "must contain only digits"}
	err := UpdateError{Row: 1, Err: ConstraintError{Err: base}}

	var verr ValidationError
	assert.True(t, errors.As(err, &verr))
	var cerr ConstraintError
	assert.True(t, errors.As(err, &cerr))
	assert.Contains(t, err.Error(), "row 1")
}
