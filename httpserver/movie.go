package httpserver

import (
	"net/http"

	"moviecatalog/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes() {
	g := s.Router.Group("/movies", s.requireMovieService)
	g.GET("", s.handleListMovies)
	g.POST("", s.handleAddMovie)
	g.GET("/genre/:genderName", s.handleListMoviesByGenre)
	g.GET("/:id", s.handleGetMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

func (s *Server) requireMovieService(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
		}
		return next(c)
	}
}

// handleListMovies godoc
// @Summary List Movies
// @Description List all movies with genre and language, ordered by title
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Failure 500 {object} MessageResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, http.StatusOK, movies)
}

// handleAddMovie godoc
// @Summary Create Movie
// @Description Add a movie; titles are unique ignoring case
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body AddMovieRequest true "Movie data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	var req AddMovieRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := req.ToMovie()
	if err != nil {
		return err
	}
	if err := s.MovieService.AddMovie(c.Request().Context(), m); err != nil {
		return err
	}

	return writeMessage(c, http.StatusCreated, "movie created successfully")
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := parseMovieID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Partially update a movie; omitted fields are left untouched
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := parseMovieID(c)
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch, err := req.ToPatch()
	if err != nil {
		return err
	}
	if err := s.MovieService.UpdateMovie(c.Request().Context(), id, patch); err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "movie updated successfully")
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := parseMovieID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "movie removed successfully")
}

// handleListMoviesByGenre godoc
// @Summary Filter Movies by Genre
// @Description List movies whose genre name matches exactly, ignoring case
// @Tags movies
// @Produce json
// @Param genderName path string true "Genre name"
// @Success 200 {array} movie.Movie
// @Failure 500 {object} MessageResponse
// @Router /movies/genre/{genderName} [get]
func (s *Server) handleListMoviesByGenre(c echo.Context) error {
	movies, err := s.MovieService.ListMoviesByGenre(c.Request().Context(), c.Param("genderName"))
	if err != nil {
		return err
	}
	return writeList(c, http.StatusOK, movies)
}
