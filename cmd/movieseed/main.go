package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

var (
	csvPath  string
	zipURL   string
	limit    int
	language string
)

var rootCmd = &cobra.Command{
	Use:   "movieseed",
	Short: "Seed the movie catalog database",
	Long: `Seed genres, languages and movies into the catalog database.

Movies come from the MovieLens movies.csv. Each movie keeps its first listed
genre, gets the default language and is dated January 1st of its year.
Titles already in the catalog are skipped.`,
	SilenceUsage: true,
	RunE:         runSeedMovies,
}

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Seed only genres and languages",
	RunE:  runSeedReference,
}

func init() {
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Path to movies.csv (skip download)")
	rootCmd.Flags().StringVar(&zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	rootCmd.PersistentFlags().StringVar(&language, "language", defaultLanguage, "Language assigned to imported movies")
	rootCmd.AddCommand(referenceCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*gorm.DB, *zap.SugaredLogger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, nil, err
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open postgres connection: %w", err)
	}
	return db, log, nil
}

func runSeedReference(cmd *cobra.Command, _ []string) error {
	db, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(db) }()

	s := newSeeder(db, language)
	if err := s.seedLanguages(cmd.Context(), defaultLanguages); err != nil {
		return err
	}
	if err := s.seedGenres(cmd.Context(), defaultGenres); err != nil {
		return err
	}

	log.Infow("reference data seeded", "genres", len(defaultGenres), "languages", len(defaultLanguages))
	return nil
}

func runSeedMovies(cmd *cobra.Command, _ []string) error {
	db, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(db) }()

	path := csvPath
	if path == "" {
		log.Infow("downloading dataset", "url", zipURL)
		p, cleanup, err := downloadAndExtract(cmd.Context(), zipURL)
		if err != nil {
			return fmt.Errorf("failed to download dataset: %w", err)
		}
		defer cleanup()
		path = p
	}

	rows, err := readMovieCSV(path, limit)
	if err != nil {
		return err
	}

	s := newSeeder(db, language)
	if err := s.seedLanguages(cmd.Context(), defaultLanguages); err != nil {
		return err
	}
	if err := s.seedGenres(cmd.Context(), genresOf(rows)); err != nil {
		return err
	}

	inserted, err := s.seedMovies(cmd.Context(), rows)
	if err != nil {
		return err
	}

	log.Infow("import completed", "rows", len(rows), "inserted", inserted, "skipped", len(rows)-inserted)
	return nil
}
