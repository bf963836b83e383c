// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthcheck": {
            "get": {
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reference"],
                "summary": "List Genres",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/movie.Genre"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            }
        },
        "/languages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reference"],
                "summary": "List Languages",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/movie.Language"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            }
        },
        "/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List Movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/movie.Movie"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Create Movie",
                "parameters": [
                    {"name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpserver.AddMovieRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            }
        },
        "/movies/genre/{genderName}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Filter Movies by Genre",
                "parameters": [
                    {"type": "string", "name": "genderName", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/movie.Movie"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            }
        },
        "/movies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get Movie",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/movie.Movie"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Update Movie",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpserver.UpdateMovieRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Delete Movie",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpserver.AddMovieRequest": {
            "type": "object",
            "required": ["genre_id", "language_id", "release_date", "title"],
            "properties": {
                "title": {"type": "string", "maxLength": 255},
                "genre_id": {"type": "integer"},
                "language_id": {"type": "integer"},
                "oscar_count": {"type": "integer", "minimum": 0},
                "release_date": {"type": "string", "example": "2010-07-16"}
            }
        },
        "httpserver.UpdateMovieRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 255},
                "genre_id": {"type": "integer"},
                "language_id": {"type": "integer"},
                "oscar_count": {"type": "integer", "minimum": 0},
                "release_date": {"type": "string", "example": "2010-07-16"}
            }
        },
        "httpserver.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "movie.Genre": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "movie.Language": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "movie.Movie": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "genre_id": {"type": "integer"},
                "language_id": {"type": "integer"},
                "oscar_count": {"type": "integer"},
                "release_date": {"type": "string", "format": "date-time"},
                "genres": {"$ref": "#/definitions/movie.Genre"},
                "languages": {"$ref": "#/definitions/movie.Language"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Movie Catalog API",
	Description:      "CRUD over movies with read-only genres and languages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
