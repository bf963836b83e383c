package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const noGenres = "(no genres listed)"

// yearSuffix matches the trailing "(1995)" MovieLens appends to titles.
var yearSuffix = regexp.MustCompile(`\s*\((\d{4})\)\s*$`)

type movieRow struct {
	Title       string
	Genre       string
	ReleaseDate time.Time
}

func downloadAndExtract(ctx context.Context, zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(ctx, zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}

	csvPath, err := extractMoviesCSV(zipPath, tmpDir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return csvPath, cleanup, nil
}

func downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractMoviesCSV(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, file := range r.File {
		if filepath.Base(file.Name) != "movies.csv" {
			continue
		}
		return copyZipEntry(file, filepath.Join(destDir, "movies.csv"))
	}

	return "", errors.New("movies.csv not found in zip")
}

func copyZipEntry(file *zip.File, destPath string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return "", err
	}
	return destPath, out.Close()
}

func readMovieCSV(path string, limit int) ([]movieRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseMovieCSV(file, limit)
}

// parseMovieCSV skips rows without a year or a genre.
func parseMovieCSV(r io.Reader, limit int) ([]movieRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxTitle, idxGenres, err := parseMovieCSVHeader(reader)
	if err != nil {
		return nil, err
	}

	rows := make([]movieRow, 0)
	for limit <= 0 || len(rows) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, err
		}
		row, ok := parseMovieRecord(record, idxTitle, idxGenres)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}

	idxTitle, idxGenres := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idxTitle = i
		case "genres":
			idxGenres = i
		}
	}
	if idxTitle == -1 || idxGenres == -1 {
		return 0, 0, errors.New("missing required columns in csv header")
	}

	return idxTitle, idxGenres, nil
}

func parseMovieRecord(record []string, idxTitle, idxGenres int) (movieRow, bool) {
	if idxTitle >= len(record) || idxGenres >= len(record) {
		return movieRow{}, false
	}

	rawTitle := strings.TrimSpace(record[idxTitle])
	match := yearSuffix.FindStringSubmatch(rawTitle)
	if match == nil {
		return movieRow{}, false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return movieRow{}, false
	}
	title := strings.TrimSpace(rawTitle[:len(rawTitle)-len(match[0])])

	genre := strings.TrimSpace(strings.Split(record[idxGenres], "|")[0])
	if title == "" || genre == "" || genre == noGenres {
		return movieRow{}, false
	}

	return movieRow{
		Title:       title,
		Genre:       genre,
		ReleaseDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
	}, true
}

// genresOf returns the distinct genres of rows, sorted.
func genresOf(rows []movieRow) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[r.Genre] = struct{}{}
	}
	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}
