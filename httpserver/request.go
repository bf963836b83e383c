package httpserver

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"moviecatalog/movie"

	"github.com/labstack/echo/v4"
)

var releaseDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// flexInt decodes a JSON number or a numeric string such as "3".
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	raw := string(bytes.TrimSpace(b))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		*f = flexInt(n)
		return nil
	}
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || fl != math.Trunc(fl) || math.Abs(fl) > math.MaxInt32 {
		return fmt.Errorf("invalid integer %s", b)
	}
	*f = flexInt(fl)
	return nil
}

func parseReleaseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, movie.ErrInvalidReleaseDate
}

func parseMovieID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, movie.ErrInvalidID
	}
	return id, nil
}

type AddMovieRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=255"`
	GenreID     flexInt  `json:"genre_id" validate:"required,gt=0"`
	LanguageID  flexInt  `json:"language_id" validate:"required,gt=0"`
	OscarCount  *flexInt `json:"oscar_count" validate:"omitempty,gte=0"`
	ReleaseDate string   `json:"release_date" validate:"required,releasedate"`
}

func (r AddMovieRequest) ToMovie() (movie.Movie, error) {
	releaseDate, err := parseReleaseDate(r.ReleaseDate)
	if err != nil {
		return movie.Movie{}, err
	}

	m := movie.Movie{
		Title:       r.Title,
		GenreID:     int(r.GenreID),
		LanguageID:  int(r.LanguageID),
		ReleaseDate: releaseDate,
	}
	if r.OscarCount != nil {
		m.OscarCount = int(*r.OscarCount)
	}
	return m, nil
}

// UpdateMovieRequest carries a partial update; absent fields stay nil.
type UpdateMovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,notblank,max=255"`
	GenreID     *flexInt `json:"genre_id" validate:"omitempty,gt=0"`
	LanguageID  *flexInt `json:"language_id" validate:"omitempty,gt=0"`
	OscarCount  *flexInt `json:"oscar_count" validate:"omitempty,gte=0"`
	ReleaseDate *string  `json:"release_date" validate:"omitempty,releasedate"`
}

func (r UpdateMovieRequest) ToPatch() (movie.Patch, error) {
	p := movie.Patch{
		Title:      r.Title,
		GenreID:    intPtr(r.GenreID),
		LanguageID: intPtr(r.LanguageID),
		OscarCount: intPtr(r.OscarCount),
	}
	if r.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(*r.ReleaseDate)
		if err != nil {
			return movie.Patch{}, err
		}
		p.ReleaseDate = &releaseDate
	}
	return p, nil
}

func intPtr(f *flexInt) *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
