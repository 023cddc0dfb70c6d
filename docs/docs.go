// Package docs holds the OpenAPI description served at /swagger. It follows
// the layout of swag output; regenerate with
// swag init -g cmd/assetregister/main.go after changing handler annotations.
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
        "/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Missing field",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "429": {
                        "description": "Too many attempts",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/users": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/internal_application_user_dto.UserDTO"
                            }
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Create user",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "description": "User",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/internal_application_user_dto.UserDTO"
                        }
                    },
                    "400": {
                        "description": "Missing field or invalid role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Duplicate username",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Delete user",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Cannot delete the current user",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "User still authors tickets",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/companies": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "List companies",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/internal_application_company_dto.CompanyDTO"
                            }
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Create company",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Company",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/company.CompanyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/internal_application_company_dto.CompanyDTO"
                        }
                    },
                    "400": {
                        "description": "Missing name",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Duplicate name",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/companies/{id}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Update company",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Company ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Company",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/company.CompanyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/internal_application_company_dto.CompanyDTO"
                        }
                    },
                    "400": {
                        "description": "Missing name",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Company not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Duplicate name",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "companies"
                ],
                "summary": "Delete company",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Company ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Company not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/companies/{id}/assets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "List company assets",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Company ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/internal_application_asset_dto.AssetDTO"
                            }
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Company not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/companies/{id}/assets/export": {
            "get": {
                "produces": [
                    "application/json",
                    "text/csv"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "Export company assets",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Company ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Output format",
                        "name": "format",
                        "in": "query",
                        "enum": [
                            "json",
                            "csv"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/internal_application_asset_dto.AssetFields"
                            }
                        }
                    },
                    "400": {
                        "description": "Unknown format",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Company not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/assets": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "Create asset",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Asset",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/asset.CreateAssetRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/internal_application_asset_dto.AssetDTO"
                        }
                    },
                    "400": {
                        "description": "Missing field or invalid status",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Company not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Duplicate serial number",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/assets/bulk": {
            "post": {
                "description": "All-or-nothing. A text/csv body takes the company from the company_id query parameter.",
                "consumes": [
                    "application/json",
                    "text/csv"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "Bulk import assets",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Rows",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/asset.BulkImportRequest"
                        }
                    },
                    {
                        "type": "integer",
                        "description": "Company for text/csv bodies",
                        "name": "company_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/usecases.BulkImportResult"
                        }
                    },
                    "400": {
                        "description": "Invalid row",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Company not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Duplicate serial number",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/assets/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "Get asset",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Asset ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/internal_application_asset_dto.AssetDTO"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Asset not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "Update asset",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Asset ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Asset",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/asset.UpdateAssetRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/internal_application_asset_dto.AssetDTO"
                        }
                    },
                    "400": {
                        "description": "Missing field or invalid status",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Asset not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Duplicate serial number",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assets"
                ],
                "summary": "Delete asset",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Asset ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Asset not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/tickets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "List tickets",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by priority",
                        "name": "priority",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by company",
                        "name": "company_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by assignee",
                        "name": "assigned_user_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/internal_application_ticket_dto.TicketDTO"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "Create ticket",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Ticket",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ticket.CreateTicketRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/internal_application_ticket_dto.TicketDTO"
                        }
                    },
                    "400": {
                        "description": "Missing field, invalid priority or unknown asset",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Company not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/tickets/email-webhook": {
            "post": {
                "description": "A [Ticket #N] subject tag appends a reply to ticket N; otherwise a new ticket is opened.",
                "consumes": [
                    "multipart/form-data",
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "Ingest inbound email",
                "parameters": [
                    {
                        "description": "Inbound email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ticket.EmailWebhookRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/internal_application_ticket_dto.IngestResult"
                        }
                    },
                    "400": {
                        "description": "Missing field",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Tagged ticket not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "429": {
                        "description": "Too many requests",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/tickets/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "Get ticket",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Ticket ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/internal_application_ticket_dto.TicketDetailDTO"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Ticket not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "description": "Emails the customer once per changed field.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "Update ticket",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Ticket ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Changes",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ticket.UpdateTicketRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/internal_application_ticket_dto.TicketDTO"
                        }
                    },
                    "400": {
                        "description": "Invalid status, priority or assignee",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Ticket not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "Delete ticket",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Ticket ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Ticket not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        },
        "/tickets/{id}/updates": {
            "post": {
                "description": "Moves the ticket to In Progress and emails the customer.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "Reply to ticket",
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Ticket ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Reply",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ticket.AddUpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/internal_application_ticket_dto.UpdateDTO"
                        }
                    },
                    "400": {
                        "description": "Missing update_text",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing bearer token",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Invalid token or insufficient role",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Ticket not found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorBody"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "utils.ErrorBody": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "details": {
                    "type": "string"
                }
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/internal_application_user_dto.UserDTO"
                }
            }
        },
        "handlers.CreateUserRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "admin",
                        "user"
                    ]
                }
            },
            "required": [
                "username",
                "password",
                "role"
            ]
        },
        "internal_application_user_dto.UserDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "username": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "company.CompanyRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "contact_person": {
                    "type": "string"
                },
                "contact_email": {
                    "type": "string"
                },
                "contact_phone": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "internal_application_company_dto.CompanyDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "contact_person": {
                    "type": "string"
                },
                "contact_email": {
                    "type": "string"
                },
                "contact_phone": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                }
            }
        },
        "internal_application_asset_dto.AssetFields": {
            "type": "object",
            "properties": {
                "asset_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "serial_number": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "device_type": {
                    "type": "string"
                },
                "owner_location": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "operating_system": {
                    "type": "string"
                }
            },
            "required": [
                "asset_name"
            ]
        },
        "asset.CreateAssetRequest": {
            "type": "object",
            "properties": {
                "company_id": {
                    "type": "integer"
                },
                "asset_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "serial_number": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "device_type": {
                    "type": "string"
                },
                "owner_location": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "operating_system": {
                    "type": "string"
                }
            },
            "required": [
                "company_id",
                "asset_name"
            ]
        },
        "asset.UpdateAssetRequest": {
            "type": "object",
            "properties": {
                "company_id": {
                    "type": "integer"
                },
                "asset_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "serial_number": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "device_type": {
                    "type": "string"
                },
                "owner_location": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "operating_system": {
                    "type": "string"
                }
            },
            "required": [
                "asset_name"
            ]
        },
        "asset.ImportRow": {
            "type": "object",
            "properties": {
                "asset_name": {
                    "description": "text, number or boolean"
                },
                "description": {
                    "description": "text, number or boolean"
                },
                "serial_number": {
                    "description": "text, number or boolean"
                },
                "status": {
                    "description": "text, number or boolean"
                },
                "device_type": {
                    "description": "text, number or boolean"
                },
                "owner_location": {
                    "description": "text, number or boolean"
                },
                "brand": {
                    "description": "text, number or boolean"
                },
                "model": {
                    "description": "text, number or boolean"
                },
                "operating_system": {
                    "description": "text, number or boolean"
                }
            },
            "required": [
                "asset_name"
            ]
        },
        "asset.BulkImportRequest": {
            "type": "object",
            "properties": {
                "company_id": {
                    "type": "integer"
                },
                "assets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/asset.ImportRow"
                    }
                }
            },
            "required": [
                "company_id",
                "assets"
            ]
        },
        "usecases.BulkImportResult": {
            "type": "object",
            "properties": {
                "imported": {
                    "type": "integer"
                },
                "assets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/internal_application_asset_dto.AssetDTO"
                    }
                }
            }
        },
        "internal_application_asset_dto.AssetDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "asset_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "serial_number": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "device_type": {
                    "type": "string"
                },
                "owner_location": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "operating_system": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "ticket.CreateTicketRequest": {
            "type": "object",
            "properties": {
                "company_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string",
                    "maxLength": 255
                },
                "description": {
                    "type": "string"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "Low",
                        "Normal",
                        "High",
                        "Urgent"
                    ]
                },
                "customer_email": {
                    "type": "string"
                },
                "asset_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            },
            "required": [
                "company_id",
                "title"
            ]
        },
        "ticket.UpdateTicketRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "Open",
                        "In Progress",
                        "Resolved",
                        "Closed"
                    ]
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "Low",
                        "Normal",
                        "High",
                        "Urgent"
                    ]
                },
                "assigned_user_id": {
                    "description": "user id; 0, empty string or null unassigns"
                }
            },
            "required": [
                "status",
                "priority"
            ]
        },
        "ticket.AddUpdateRequest": {
            "type": "object",
            "properties": {
                "update_text": {
                    "type": "string"
                }
            },
            "required": [
                "update_text"
            ]
        },
        "ticket.EmailWebhookRequest": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "plain": {
                    "type": "string"
                }
            },
            "required": [
                "from",
                "subject"
            ]
        },
        "internal_application_ticket_dto.TicketDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "company_id": {
                    "type": "integer"
                },
                "company_name": {
                    "type": "string"
                },
                "user_id": {
                    "type": "integer"
                },
                "user_name": {
                    "type": "string"
                },
                "assigned_user_id": {
                    "type": "integer"
                },
                "assigned_user_name": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "customer_email": {
                    "type": "string"
                },
                "priority": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "internal_application_ticket_dto.UpdateDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "ticket_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "user_name": {
                    "type": "string"
                },
                "update_text": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "ticket_status": {
                    "type": "string"
                }
            }
        },
        "internal_application_ticket_dto.LinkedAssetDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "asset_name": {
                    "type": "string"
                },
                "serial_number": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "internal_application_ticket_dto.IngestResult": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "ticket_id": {
                    "type": "integer"
                },
                "created": {
                    "type": "boolean"
                }
            }
        },
        "internal_application_ticket_dto.TicketDetailDTO": {
            "allOf": [
                {
                    "$ref": "#/definitions/internal_application_ticket_dto.TicketDTO"
                },
                {
                    "type": "object",
                    "properties": {
                        "updates": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/internal_application_ticket_dto.UpdateDTO"
                            }
                        },
                        "assets": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/internal_application_ticket_dto.LinkedAssetDTO"
                            }
                        }
                    }
                }
            ]
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Ticket & Asset Register API",
	Description:      "IT support tickets, customer companies and their assets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
