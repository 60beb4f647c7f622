// Package docs registers the OpenAPI description of the Recommendation API
// with swag so that it is served under /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service metadata",
                "responses": {
                    "200": {"description": "Service name, version and resource URL", "schema": {"$ref": "#/definitions/dto.IndexResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "Application is alive", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Application is ready", "schema": {"$ref": "#/definitions/dto.ReadinessResponse"}},
                    "503": {"description": "Service unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/recommendations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "List recommendations",
                "parameters": [
                    {"type": "string", "enum": ["default", "cross-sell", "up-sell", "accessory", "frequently-together"], "name": "type", "in": "query"},
                    {"type": "boolean", "name": "liked", "in": "query"},
                    {"type": "integer", "name": "pid", "in": "query"},
                    {"type": "integer", "minimum": 0, "name": "amount", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Recommendations ordered by id", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.RecommendationDTO"}}},
                    "400": {"description": "Invalid query parameter", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Create a recommendation",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecommendationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RecommendationDTO"}},
                    "400": {"description": "Invalid body", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "415": {"description": "Unsupported media type", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/recommendations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Get a recommendation",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecommendationDTO"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Update a recommendation",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecommendationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecommendationDTO"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Recommendations"],
                "summary": "Delete a recommendation",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Deleted or already absent"}
                }
            }
        },
        "/recommendations/{id}/like": {
            "put": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Like a recommendation",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecommendationDTO"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/recommendations/{id}/unlike": {
            "put": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Unlike a recommendation",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecommendationDTO"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "dto.IndexResponse": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "version": {"type": "string"}, "paths": {"type": "string"}}
        },
        "dto.ReadinessResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "database": {"type": "string"}}
        },
        "dto.RecommendationDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "pid": {"type": "integer"},
                "recommended_pid": {"type": "integer"},
                "type": {"type": "string", "enum": ["default", "cross-sell", "up-sell", "accessory", "frequently-together"]},
                "liked": {"type": "boolean"}
            }
        },
        "dto.RecommendationRequest": {
            "type": "object",
            "properties": {
                "pid": {"type": "integer", "example": 100},
                "recommended_pid": {"type": "integer", "example": 200},
                "type": {"type": "string", "example": "cross-sell"},
                "liked": {"type": "boolean"}
            }
        },
        "utils.ErrorDetail": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "details": {}}
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "error": {"$ref": "#/definitions/utils.ErrorDetail"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Recommendation REST API Service",
	Description:      "CRUD and like/unlike for product recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
