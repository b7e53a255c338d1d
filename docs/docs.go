// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/games": {
            "get": {
                "description": "Retrieves the games whose title contains q (case-insensitive) and whose genre equals genre, in catalog order.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a list of games",
                "parameters": [
                    {"type": "string", "description": "Search text for the title", "name": "q", "in": "query"},
                    {"type": "string", "description": "Exact genre", "name": "genre", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 50, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PaginatedGameResponse"}}
                }
            },
            "post": {
                "description": "Validates the draft, assigns an id, appends it to the catalog and persists the catalog.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Add a game",
                "parameters": [
                    {"description": "Game Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GameInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.GameResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "description": "Retrieves the details of one game.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a single game by ID",
                "parameters": [
                    {"type": "string", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GameResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/genres": {
            "get": {
                "description": "Lists the distinct genres of the catalog in first-seen order.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get all genres",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/preferences": {
            "get": {
                "description": "Returns every display toggle; absent or unreadable values are false.",
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Get display preferences",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}}
                }
            }
        },
        "/preferences/{name}": {
            "put": {
                "description": "Persists one toggle. Setting the current value again has no observable effect.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Set a display preference",
                "parameters": [
                    {"type": "string", "description": "isLargeText or isHighContrast", "name": "name", "in": "path", "required": true},
                    {"description": "New value", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PreferenceInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PreferenceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Unknown preference", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/ui": {
            "get": {
                "description": "Returns the add-form shortcut key, the platform vocabulary and the current preferences.",
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Get UI settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UIConfigResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "description": "Server-sent events for game.added and preference.changed.",
                "produces": ["text/event-stream"],
                "tags": ["events"],
                "summary": "Stream catalog events",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "handler.AccessibilityInput": {
            "type": "object",
            "properties": {
                "colorblind": {"type": "boolean"},
                "controllerRemap": {"type": "boolean"},
                "subtitles": {"type": "boolean"}
            }
        },
        "handler.AccessibilityResponse": {
            "type": "object",
            "properties": {
                "colorblind": {"type": "boolean"},
                "controllerRemap": {"type": "boolean"},
                "subtitles": {"type": "boolean"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "An error message"}
            }
        },
        "handler.GameInput": {
            "type": "object",
            "required": ["genre", "title"],
            "properties": {
                "accessibility": {"$ref": "#/definitions/handler.AccessibilityInput"},
                "description": {"type": "string"},
                "genre": {"type": "string", "example": "Platformer"},
                "platforms": {"type": "array", "items": {"type": "string", "enum": ["PC", "PS5", "Xbox", "Switch", "Mobile"]}},
                "title": {"type": "string", "example": "Celeste"}
            }
        },
        "handler.GameResponse": {
            "type": "object",
            "properties": {
                "accessibility": {"$ref": "#/definitions/handler.AccessibilityResponse"},
                "description": {"type": "string"},
                "genre": {"type": "string", "example": "Platformer"},
                "id": {"type": "string", "example": "g1"},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string", "example": "Celeste"}
            }
        },
        "handler.PaginatedGameResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handler.GameResponse"}},
                "meta": {"$ref": "#/definitions/handler.PaginationMeta"}
            }
        },
        "handler.PaginationMeta": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "handler.PreferenceInput": {
            "type": "object",
            "required": ["value"],
            "properties": {
                "value": {"type": "boolean"}
            }
        },
        "handler.PreferenceResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "isHighContrast"},
                "value": {"type": "boolean"}
            }
        },
        "handler.UIConfigResponse": {
            "type": "object",
            "properties": {
                "platforms": {"type": "array", "items": {"type": "string"}},
                "preferences": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "shortcut_key": {"type": "string", "example": "n"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Game Catalog API",
	Description:      "Local game catalog: search, genre filter, add and detail view, plus display preferences.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
