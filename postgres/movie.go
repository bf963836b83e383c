package postgres

import (
	"context"
	"time"

	"moviecatalog/movie"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenreModel represents the database model for genres
type GenreModel struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (GenreModel) TableName() string {
	return "genres"
}

// LanguageModel represents the database model for languages
type LanguageModel struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (LanguageModel) TableName() string {
	return "languages"
}

// MovieModel represents the database model for movies.
// The case-insensitive unique index on title lives in the SQL migration.
type MovieModel struct {
	ID          int           `gorm:"primaryKey"`
	Title       string        `gorm:"not null"`
	GenreID     int           `gorm:"not null"`
	LanguageID  int           `gorm:"not null"`
	OscarCount  int           `gorm:"not null;default:0"`
	ReleaseDate time.Time     `gorm:"type:date;not null"`
	Genre       GenreModel    `gorm:"foreignKey:GenreID"`
	Language    LanguageModel `gorm:"foreignKey:LanguageID"`
}

func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          m.ID,
		Title:       m.Title,
		GenreID:     m.GenreID,
		LanguageID:  m.LanguageID,
		OscarCount:  m.OscarCount,
		ReleaseDate: m.ReleaseDate,
		Genre:       movie.Genre{ID: m.Genre.ID, Name: m.Genre.Name},
		Language:    movie.Language{ID: m.Language.ID, Name: m.Language.Name},
	}
}

func toMovies(models []MovieModel) []movie.Movie {
	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Genre").Preload("Language")
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.withRelations(ctx).Order("movies.title ASC").Find(&models).Error
	if err != nil {
		return nil, translateError("list movies", err)
	}
	return toMovies(models), nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int) (movie.Movie, error) {
	var model MovieModel
	if err := r.withRelations(ctx).First(&model, id).Error; err != nil {
		return movie.Movie{}, translateError("get movie", err)
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).
		Where("LOWER(title) = LOWER(?)", title).
		First(&model).Error
	if err != nil {
		return movie.Movie{}, translateError("find movie by title", err)
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) error {
	model := MovieModel{
		Title:       m.Title,
		GenreID:     m.GenreID,
		LanguageID:  m.LanguageID,
		OscarCount:  m.OscarCount,
		ReleaseDate: m.ReleaseDate,
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model).Error
	return translateError("create movie", err)
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id int, p movie.Patch) error {
	fields := patchFields(p)
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&MovieModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return translateError("update movie", result.Error)
	}
	if result.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func patchFields(p movie.Patch) map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.GenreID != nil {
		fields["genre_id"] = *p.GenreID
	}
	if p.LanguageID != nil {
		fields["language_id"] = *p.LanguageID
	}
	if p.OscarCount != nil {
		fields["oscar_count"] = *p.OscarCount
	}
	if p.ReleaseDate != nil {
		fields["release_date"] = *p.ReleaseDate
	}
	return fields
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&MovieModel{}, id)
	if result.Error != nil {
		return translateError("delete movie", result.Error)
	}
	if result.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) MoviesByGenreName(ctx context.Context, name string) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.withRelations(ctx).
		Select("movies.*").
		Joins("JOIN genres ON genres.id = movies.genre_id").
		Where("LOWER(genres.name) = LOWER(?)", name).
		Order("movies.title ASC").
		Find(&models).Error
	if err != nil {
		return nil, translateError("list movies by genre", err)
	}
	return toMovies(models), nil
}

func (r *MovieRepository) AllGenres(ctx context.Context) ([]movie.Genre, error) {
	var models []GenreModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, translateError("list genres", err)
	}

	genres := make([]movie.Genre, len(models))
	for i, model := range models {
		genres[i] = movie.Genre{ID: model.ID, Name: model.Name}
	}
	return genres, nil
}

func (r *MovieRepository) AllLanguages(ctx context.Context) ([]movie.Language, error) {
	var models []LanguageModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, translateError("list languages", err)
	}

	languages := make([]movie.Language, len(models))
	for i, model := range models {
		languages[i] = movie.Language{ID: model.ID, Name: model.Name}
	}
	return languages, nil
}
