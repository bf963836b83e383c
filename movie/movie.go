package movie

import (
	"strings"
	"time"

	"moviecatalog/errs"
)

var (
	ErrTitleTaken         = errs.Errorf(errs.ECONFLICT, "a movie with this title already exists")
	ErrMovieNotFound      = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrInvalidID          = errs.Errorf(errs.EINVALID, "invalid movie id")
	ErrInvalidTitle       = errs.Errorf(errs.EINVALID, "invalid title")
	ErrInvalidGenre       = errs.Errorf(errs.EINVALID, "invalid genre_id")
	ErrInvalidLanguage    = errs.Errorf(errs.EINVALID, "invalid language_id")
	ErrInvalidOscarCount  = errs.Errorf(errs.EINVALID, "invalid oscar_count")
	ErrInvalidReleaseDate = errs.Errorf(errs.EINVALID, "invalid release_date")
	ErrUnknownReference   = errs.Errorf(errs.EINVALID, "genre or language does not exist")
)

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is a catalog entry. Genre and Language are only populated on reads.
type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	GenreID     int       `json:"genre_id"`
	LanguageID  int       `json:"language_id"`
	OscarCount  int       `json:"oscar_count"`
	ReleaseDate time.Time `json:"release_date"`
	Genre       Genre     `json:"genres"`
	Language    Language  `json:"languages"`
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	if m.GenreID <= 0 {
		return ErrInvalidGenre
	}
	if m.LanguageID <= 0 {
		return ErrInvalidLanguage
	}
	if m.OscarCount < 0 {
		return ErrInvalidOscarCount
	}
	if m.ReleaseDate.IsZero() {
		return ErrInvalidReleaseDate
	}
	return nil
}

// Patch holds the fields of a partial update. A nil field is left untouched.
type Patch struct {
	Title       *string
	GenreID     *int
	LanguageID  *int
	OscarCount  *int
	ReleaseDate *time.Time
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil &&
		p.GenreID == nil &&
		p.LanguageID == nil &&
		p.OscarCount == nil &&
		p.ReleaseDate == nil
}

func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrInvalidTitle
	}
	if p.GenreID != nil && *p.GenreID <= 0 {
		return ErrInvalidGenre
	}
	if p.LanguageID != nil && *p.LanguageID <= 0 {
		return ErrInvalidLanguage
	}
	if p.OscarCount != nil && *p.OscarCount < 0 {
		return ErrInvalidOscarCount
	}
	if p.ReleaseDate != nil && p.ReleaseDate.IsZero() {
		return ErrInvalidReleaseDate
	}
	return nil
}
