package movie

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id int) (Movie, error)
	AddMovie(ctx context.Context, m Movie) error
	UpdateMovie(ctx context.Context, id int, p Patch) error
	DeleteMovie(ctx context.Context, id int) error
	ListMoviesByGenre(ctx context.Context, genreName string) ([]Movie, error)
	ListGenres(ctx context.Context) ([]Genre, error)
	ListLanguages(ctx context.Context) ([]Language, error)
}

type Repository interface {
	// AllMovies returns every movie with its genre and language, ordered by title.
	AllMovies(ctx context.Context) ([]Movie, error)
	GetByID(ctx context.Context, id int) (Movie, error)
	// GetByTitle matches the title case-insensitively.
	GetByTitle(ctx context.Context, title string) (Movie, error)
	CreateMovie(ctx context.Context, m Movie) error
	UpdateMovie(ctx context.Context, id int, p Patch) error
	DeleteMovie(ctx context.Context, id int) error
	// MoviesByGenreName matches the genre name exactly, ignoring case.
	MoviesByGenreName(ctx context.Context, name string) ([]Movie, error)
	AllGenres(ctx context.Context) ([]Genre, error)
	AllLanguages(ctx context.Context) ([]Language, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) GetMovie(ctx context.Context, id int) (Movie, error) {
	if id <= 0 {
		return Movie{}, ErrInvalidID
	}
	return uc.r.GetByID(ctx, id)
}

// AddMovie rejects a title already used by another movie, ignoring case.
// The lookup and the insert are separate round-trips; the unique index on
// LOWER(title) catches whatever slips between them.
func (uc *Usecase) AddMovie(ctx context.Context, m Movie) error {
	m.Title = strings.TrimSpace(m.Title)
	if err := m.Validate(); err != nil {
		return err
	}

	_, err := uc.r.GetByTitle(ctx, m.Title)
	if err == nil {
		return ErrTitleTaken
	}
	if !errors.Is(err, ErrMovieNotFound) {
		return err
	}

	return uc.r.CreateMovie(ctx, m)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id int, p Patch) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if _, err := uc.r.GetByID(ctx, id); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}
	return uc.r.UpdateMovie(ctx, id, p)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if _, err := uc.r.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.r.DeleteMovie(ctx, id)
}

func (uc *Usecase) ListMoviesByGenre(ctx context.Context, genreName string) ([]Movie, error) {
	return uc.r.MoviesByGenreName(ctx, strings.TrimSpace(genreName))
}

func (uc *Usecase) ListGenres(ctx context.Context) ([]Genre, error) {
	return uc.r.AllGenres(ctx)
}

func (uc *Usecase) ListLanguages(ctx context.Context) ([]Language, error) {
	return uc.r.AllLanguages(ctx)
}
