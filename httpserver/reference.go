package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterReferenceRoutes() {
	s.Router.GET("/genres", s.handleListGenres, s.requireMovieService)
	s.Router.GET("/languages", s.handleListLanguages, s.requireMovieService)
}

// handleListGenres godoc
// @Summary List Genres
// @Tags reference
// @Produce json
// @Success 200 {array} movie.Genre
// @Failure 500 {object} MessageResponse
// @Router /genres [get]
func (s *Server) handleListGenres(c echo.Context) error {
	genres, err := s.MovieService.ListGenres(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, http.StatusOK, genres)
}

// handleListLanguages godoc
// @Summary List Languages
// @Tags reference
// @Produce json
// @Success 200 {array} movie.Language
// @Failure 500 {object} MessageResponse
// @Router /languages [get]
func (s *Server) handleListLanguages(c echo.Context) error {
	languages, err := s.MovieService.ListLanguages(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, http.StatusOK, languages)
}
