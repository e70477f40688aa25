// Package docs holds the OpenAPI document served at /swagger. It is maintained
// by hand alongside the swag annotations on the handlers.
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
        "/holdings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get a paginated list of holdings, most recently bought first",
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "Get holdings",
                "parameters": [
                    {"type": "string", "description": "Filter by metal (gold/silver)", "name": "metal", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated holdings"},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Record a metal purchase for the authenticated user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "Create a holding",
                "parameters": [
                    {"description": "Holding details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateHoldingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Holding created", "schema": {"$ref": "#/definitions/models.Holding"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/holdings/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "Get a holding",
                "parameters": [{"type": "string", "description": "Holding ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Holding", "schema": {"$ref": "#/definitions/models.Holding"}},
                    "404": {"description": "Holding not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "Update a holding",
                "parameters": [
                    {"type": "string", "description": "Holding ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateHoldingRequest"}}
                ],
                "responses": {
                    "200": {"description": "Holding updated", "schema": {"$ref": "#/definitions/models.Holding"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Holding not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "Delete a holding",
                "parameters": [{"type": "string", "description": "Holding ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Holding deleted"},
                    "404": {"description": "Holding not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/pipeline/prices/record": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Fetch current prices and upsert today's price history row",
                "produces": ["application/json"],
                "tags": ["pipeline"],
                "summary": "Record daily prices",
                "responses": {
                    "200": {"description": "Recorded prices", "schema": {"$ref": "#/definitions/models.PriceHistory"}},
                    "401": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "No price data available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Totals, per-metal summaries and per-holding figures, with the prices used",
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Get portfolio valuation",
                "parameters": [{"type": "string", "description": "USD or PKR (default PKR)", "name": "currency", "in": "query"}],
                "responses": {
                    "200": {"description": "Portfolio"},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "No price data available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio/charts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Get portfolio charts",
                "parameters": [
                    {"type": "string", "description": "USD or PKR (default PKR)", "name": "currency", "in": "query"},
                    {"type": "integer", "description": "Price history window: 30, 180 or 365 (default 30)", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Chart series"},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "No price data available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/preferences": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get the authenticated user's preferences, creating defaults on first access",
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Get preferences",
                "responses": {
                    "200": {"description": "Preferences", "schema": {"$ref": "#/definitions/models.UserPreferences"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Update preferences",
                "parameters": [
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdatePreferencesRequest"}}
                ],
                "responses": {
                    "200": {"description": "Preferences updated", "schema": {"$ref": "#/definitions/models.UserPreferences"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/prices": {
            "get": {
                "description": "Current per-gram gold and silver prices in USD and PKR, the exchange rate, provenance (live/cached/mock) and freshness",
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Get current prices",
                "responses": {
                    "200": {"description": "Current prices"},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "No price data available", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/prices/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Get price history",
                "parameters": [
                    {"type": "integer", "description": "Window in days: 30, 180 or 365 (default 30)", "name": "days", "in": "query"},
                    {"type": "string", "description": "USD or PKR (default PKR)", "name": "currency", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Daily prices, oldest first"},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CreateHoldingRequest": {
            "type": "object",
            "required": ["buy_date", "buy_price", "currency", "metal", "purity", "quantity", "unit"],
            "properties": {
                "buy_date": {"type": "string", "example": "2024-01-15"},
                "buy_price": {"type": "number"},
                "currency": {"type": "string", "enum": ["USD", "PKR"]},
                "metal": {"type": "string", "enum": ["gold", "silver"]},
                "purity": {"type": "string", "enum": ["24K", "22K", "21K", "18K", "14K", "9K", "other"]},
                "quantity": {"type": "number"},
                "unit": {"type": "string", "enum": ["gram", "tola", "ounce", "kilogram"]}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.UpdateHoldingRequest": {
            "type": "object",
            "properties": {
                "buy_date": {"type": "string", "example": "2024-01-15"},
                "buy_price": {"type": "number"},
                "currency": {"type": "string", "enum": ["USD", "PKR"]},
                "metal": {"type": "string", "enum": ["gold", "silver"]},
                "purity": {"type": "string", "enum": ["24K", "22K", "21K", "18K", "14K", "9K", "other"]},
                "quantity": {"type": "number"},
                "unit": {"type": "string", "enum": ["gram", "tola", "ounce", "kilogram"]}
            }
        },
        "handlers.UpdatePreferencesRequest": {
            "type": "object",
            "properties": {
                "currency": {"type": "string", "enum": ["USD", "PKR", "BOTH"]},
                "notification_frequency": {"type": "string", "enum": ["daily", "weekly", "monthly", "never"]},
                "price_alert_threshold": {"type": "number"},
                "push_notifications": {"type": "boolean"},
                "unit": {"type": "string", "enum": ["gram", "tola", "ounce", "kilogram"]}
            }
        },
        "models.Holding": {
            "type": "object",
            "properties": {
                "buy_date": {"type": "string"},
                "buy_price": {"type": "number"},
                "created_at": {"type": "string"},
                "currency": {"type": "string"},
                "id": {"type": "string"},
                "metal": {"type": "string"},
                "purity": {"type": "string"},
                "quantity": {"type": "number"},
                "unit": {"type": "string"},
                "updated_at": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "models.PriceHistory": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "exchange_rate": {"type": "number"},
                "gold_pkr": {"type": "number"},
                "gold_usd": {"type": "number"},
                "id": {"type": "string"},
                "silver_pkr": {"type": "number"},
                "silver_usd": {"type": "number"},
                "source": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.UserPreferences": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "currency": {"type": "string"},
                "id": {"type": "string"},
                "notification_frequency": {"type": "string"},
                "price_alert_threshold": {"type": "number"},
                "push_notifications": {"type": "boolean"},
                "unit": {"type": "string"},
                "updated_at": {"type": "string"},
                "user_id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        },
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Metalfolio API",
	Description:      "Metalfolio values gold and silver holdings against live market prices in USD and PKR.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
