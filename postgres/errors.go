package postgres

import (
	"errors"
	"fmt"

	"moviecatalog/movie"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translateError turns driver errors into domain errors. Anything it does not
// recognise is wrapped with the operation name.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.ErrMovieNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return movie.ErrTitleTaken
		case foreignKeyViolation:
			return movie.ErrUnknownReference
		}
	}

	return fmt.Errorf("postgres: %s: %w", op, err)
}
