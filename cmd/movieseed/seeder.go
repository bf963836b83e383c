package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const defaultLanguage = "English"

var defaultLanguages = []string{"English", "French", "German", "Hindi", "Japanese", "Korean", "Spanish"}

var defaultGenres = []string{
	"Action", "Adventure", "Animation", "Children", "Comedy", "Crime", "Documentary",
	"Drama", "Fantasy", "Film-Noir", "Horror", "IMAX", "Musical", "Mystery",
	"Romance", "Sci-Fi", "Thriller", "War", "Western",
}

type seeder struct {
	db       *gorm.DB
	language string
}

func newSeeder(db *gorm.DB, language string) *seeder {
	return &seeder{db: db, language: language}
}

func (s *seeder) seedGenres(ctx context.Context, names []string) error {
	return s.seedNames(ctx, "genres", names)
}

func (s *seeder) seedLanguages(ctx context.Context, names []string) error {
	return s.seedNames(ctx, "languages", names)
}

// seedNames relies on the unique LOWER(name) index to skip existing rows.
func (s *seeder) seedNames(ctx context.Context, table string, names []string) error {
	stmt := fmt.Sprintf(`INSERT INTO %s (name) VALUES (?) ON CONFLICT DO NOTHING`, table)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			if err := tx.Exec(stmt, name).Error; err != nil {
				return fmt.Errorf("seed %s %q: %w", table, name, err)
			}
		}
		return nil
	})
}

// seedMovies inserts rows whose title is not taken yet and reports how many
// were inserted.
func (s *seeder) seedMovies(ctx context.Context, rows []movieRow) (int, error) {
	const stmt = `
INSERT INTO movies (title, genre_id, language_id, oscar_count, release_date)
SELECT ?, g.id, l.id, 0, ?
FROM genres g, languages l
WHERE LOWER(g.name) = LOWER(?) AND LOWER(l.name) = LOWER(?)
ON CONFLICT DO NOTHING
`

	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range rows {
			res := tx.Exec(stmt, r.Title, r.ReleaseDate, r.Genre, s.language)
			if res.Error != nil {
				return fmt.Errorf("seed movie %q: %w", r.Title, res.Error)
			}
			inserted += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
