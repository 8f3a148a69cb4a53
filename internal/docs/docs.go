// Package docs holds the OpenAPI description of the HTTP API, registered
// with swag and served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/{kind}/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search FAQs or resources",
                "parameters": [
                    {"type": "string", "enum": ["faqs", "resources"], "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "description": "Comma separated tag ids", "name": "tags", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "difficulty", "in": "query"},
                    {"type": "string", "name": "audience", "in": "query"},
                    {"type": "string", "enum": ["relevance", "popularity", "rating", "date", "alphabetical"], "name": "sortBy", "in": "query"},
                    {"type": "string", "enum": ["asc", "desc"], "name": "sortOrder", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/router.ErrorResponse"}}
                }
            }
        },
        "/api/v1/{kind}/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Get a record",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/content.Record"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/router.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["versions"],
                "summary": "Edit record fields and commit a new version",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/router.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/versioning.Commit"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/router.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/router.ErrorResponse"}}
                }
            }
        },
        "/api/v1/faqs/{id}/feedback": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["engagement"],
                "summary": "Record a helpful or not helpful vote",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/router.FeedbackRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/resources/{id}/download": {
            "post": {
                "tags": ["engagement"],
                "summary": "Record a resource download",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/resources/{id}/rating": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["engagement"],
                "summary": "Rate a resource from 1 to 5",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/router.RatingRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/{kind}/{id}/view": {
            "post": {
                "tags": ["engagement"],
                "summary": "Record a view",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/{kind}/{id}/versions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["versions"],
                "summary": "List the versions of a record",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/versioning.Version"}}}}
            }
        },
        "/api/v1/{kind}/{id}/versions/compare": {
            "get": {
                "produces": ["application/json"],
                "tags": ["versions"],
                "summary": "Compare two versions of a record",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "from", "in": "query", "required": true},
                    {"type": "integer", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/versioning.Comparison"}}}
            }
        },
        "/api/v1/{kind}/{id}/versions/{version}/restore": {
            "post": {
                "produces": ["application/json"],
                "tags": ["versions"],
                "summary": "Restore an earlier version",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "version", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/versioning.Commit"}}}
            }
        },
        "/api/v1/diff": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["versions"],
                "summary": "Diff two posted snapshots",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/router.DiffRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/versioning.Tracked"}}}
            }
        },
        "/api/v1/analytics/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Category popularity",
                "parameters": [{"type": "string", "name": "kind", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/analytics/trending": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Most viewed records per day",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/analytics/feedback": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "FAQ feedback overview",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "content.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {}},
                "metrics": {"type": "object"},
                "featured": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "search.Result": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/content.Record"}},
                "total": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "hasMore": {"type": "boolean"},
                "searchTimeMs": {"type": "number"},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "router.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "title": {"type": "string"}}
        },
        "router.FeedbackRequest": {
            "type": "object",
            "properties": {"helpful": {"type": "boolean"}}
        },
        "router.RatingRequest": {
            "type": "object",
            "properties": {"rating": {"type": "integer"}}
        },
        "router.UpdateRequest": {
            "type": "object",
            "properties": {
                "fields": {"type": "object", "additionalProperties": {}},
                "author": {"type": "string"},
                "note": {"type": "string"}
            }
        },
        "router.DiffRequest": {
            "type": "object",
            "properties": {
                "previous": {"$ref": "#/definitions/content.Record"},
                "current": {"$ref": "#/definitions/content.Record"}
            }
        },
        "versioning.Version": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "version": {"type": "integer"},
                "author": {"type": "string"},
                "note": {"type": "string"},
                "createdAt": {"type": "string"},
                "snapshot": {"$ref": "#/definitions/content.Record"}
            }
        },
        "versioning.Tracked": {
            "type": "object",
            "properties": {
                "changes": {"type": "array", "items": {"type": "object"}},
                "summary": {"type": "object"}
            }
        },
        "versioning.Commit": {
            "type": "object",
            "properties": {
                "version": {"$ref": "#/definitions/versioning.Version"},
                "diff": {"$ref": "#/definitions/versioning.Tracked"}
            }
        },
        "versioning.Comparison": {
            "type": "object",
            "properties": {
                "from": {"type": "integer"},
                "to": {"type": "integer"},
                "diff": {"$ref": "#/definitions/versioning.Tracked"}
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
	Title:            "Sanctuary Hub API",
	Description:      "FAQ and educational resource search, engagement tracking and content versioning for an animal sanctuary",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
