package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"film-catalog/internal/logger"
	"film-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "film.db")
	s, err := Open(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func mustInsert(t *testing.T, s *Store, title, director, year string) int64 {
	t.Helper()
	id, err := s.Insert(context.Background(), models.FilmInput{Title: title, Director: director, Year: year})
	require.NoError(t, err)
	return id
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	_, path := openTestStore(t)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "film.db")

	s1, err := Open(ctx, path, logger.Nop())
	require.NoError(t, err)
	mustInsert(t, s1, "Heat", "Mann", "1995")
	require.NoError(t, s1.Initialize(ctx))
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, path, logger.Nop())
	require.NoError(t, err)
	defer s2.Close()

	all, err := s2.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Heat", all[0].Title)
}

func TestInsert_ListAllRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	id1 := mustInsert(t, s, "Inception", "Nolan", "2010")
	id2 := mustInsert(t, s, "Tenet", "Nolan", "2020")
	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.FilmRecord{
		{ID: 1, Title: "Inception", Director: "Nolan", Year: "2010"},
		{ID: 2, Title: "Tenet", Director: "Nolan", Year: "2020"},
	}, all)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInsert_IDsNeverReused(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	id := mustInsert(t, s, "Alien", "Scott", "1979")
	require.NoError(t, s.Delete(ctx, id))

	next := mustInsert(t, s, "Aliens", "Cameron", "1986")
	assert.Greater(t, next, id)
}

func TestInsert_RejectsInvalidRecords(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	bad := []models.FilmInput{
		{Title: "", Director: "X", Year: "2000"},
		{Title: "T", Director: "", Year: "2000"},
		{Title: "T", Director: "X", Year: "20a0"},
		{Title: "T", Director: "X", Year: ""},
		{Title: "   ", Director: "\t", Year: "2000"},
		{Title: "T", Director: " \n ", Year: "2000"},
		{Title: "T", Director: "X", Year: "  "},
	}
	for _, in := range bad {
		_, err := s.Insert(ctx, in)
		var cerr models.ConstraintError
		assert.True(t, errors.As(err, &cerr), "input %+v", in)
	}

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdate_ChangesOnlyTarget(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	id1 := mustInsert(t, s, "Inception", "Nolan", "2010")
	id2 := mustInsert(t, s, "Tenet", "Nolan", "2020")

	require.NoError(t, s.Update(ctx, id1, models.FilmInput{Title: "Inception", Director: "C. Nolan", Year: "2011"}))

	got, err := s.Get(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, models.FilmRecord{ID: id1, Title: "Inception", Director: "C. Nolan", Year: "2011"}, got)

	other, err := s.Get(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, "2020", other.Year)
}

func TestUpdate_MissingAndInvalid(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	id := mustInsert(t, s, "Inception", "Nolan", "2010")

	err := s.Update(ctx, 404, models.FilmInput{Title: "A", Director: "B", Year: "1"})
	var nf models.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(404), nf.ID)

	err = s.Update(ctx, id, models.FilmInput{Title: "Inception", Director: "Nolan", Year: "abcd"})
	var cerr models.ConstraintError
	require.True(t, errors.As(err, &cerr))

	err = s.Update(ctx, id, models.FilmInput{Title: "  ", Director: "\t", Year: "2010"})
	require.True(t, errors.As(err, &cerr))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.FilmRecord{ID: id, Title: "Inception", Director: "Nolan", Year: "2010"}, got)
}

func TestInsertUpdate_StoreTrimmedValues(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, models.FilmInput{Title: "  Heat ", Director: "\tMann", Year: " 1995 "})
	require.NoError(t, err)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.FilmInput{Title: "Heat", Director: "Mann", Year: "1995"}, got.Input())

	require.NoError(t, s.Update(ctx, id, models.FilmInput{Title: " Thief", Director: "Michael Mann ", Year: "1981\n"}))
	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.FilmInput{Title: "Thief", Director: "Michael Mann", Year: "1981"}, got.Input())
}

func TestDelete_RemovesAndMissingIsNotFound(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()
	id := mustInsert(t, s, "Heat", "Mann", "1995")
	keep := mustInsert(t, s, "Thief", "Mann", "1981")

	require.NoError(t, s.Delete(ctx, id))

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep, all[0].ID)

	err = s.Delete(ctx, id)
	var nf models.NotFoundError
	assert.True(t, errors.As(err, &nf))

	_, err = s.Get(ctx, id)
	assert.True(t, errors.As(err, &nf))
}

func TestSearchByTitle(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	mustInsert(t, s, "Pulp Fiction", "Tarantino", "1994")
	mustInsert(t, s, "Amélie", "Jeunet", "2001")
	mustInsert(t, s, "Jackie Brown", "Tarantino", "1997")

	all, err := s.ListAll(ctx)
	require.NoError(t, err)

	empty, err := s.SearchByTitle(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, all, empty)

	blank, err := s.SearchByTitle(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, all, blank)

	for _, q := range []string{"pulp", "FICTION", "p fic"} {
		got, err := s.SearchByTitle(ctx, q)
		require.NoError(t, err)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "Pulp Fiction", got[0].Title)
	}

	got, err := s.SearchByTitle(ctx, "AMÉLIE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Amélie", got[0].Title)

	got, err = s.SearchByTitle(ctx, "tarantino")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClose_OnceAndThenClosed(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.ListAll(ctx)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Insert(ctx, models.FilmInput{Title: "A", Director: "B", Year: "1"})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Delete(ctx, 1), ErrClosed)
}
