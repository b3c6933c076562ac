// Package docs registers the swagger spec served at /swagger/.
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
        "/cv/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["cv"],
                "summary": "Upload a CV",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "name": "name", "in": "formData"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/match": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["match"],
                "summary": "Match CVs against a job description",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cv/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cv"],
                "summary": "Get a stored CV",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cv"],
                "summary": "Delete a stored CV",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/cvs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cv"],
                "summary": "List stored CVs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cvs/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cv"],
                "summary": "Count stored CVs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cvs/clear": {
            "post": {
                "produces": ["application/json"],
                "tags": ["cv"],
                "summary": "Clear all stored CVs",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "CV Matcher API",
	Description:      "Matches candidate CVs against free-text job descriptions",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
