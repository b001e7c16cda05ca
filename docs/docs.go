// Package docs holds the generated swagger spec. Regenerate with:
//
//	swag init -g cmd/paper-wallet/main.go
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
        "/key/decrypt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["key"],
                "summary": "Decrypt an encrypted key string",
                "description": "Decodes a passphrase-protected key string back to hex and WIF. A wrong passphrase returns 401 with code WRONG_PASSPHRASE.",
                "parameters": [
                    {
                        "description": "Encrypted key and passphrase",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.DecryptKeyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.KeyMaterial"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/key/encrypt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["key"],
                "summary": "Encrypt a private key",
                "description": "Encodes a caller-supplied private key (hex or WIF) into the passphrase-protected printable form. Nothing is written to disk.",
                "parameters": [
                    {
                        "description": "Private key and passphrase",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.EncryptKeyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.EncryptKeyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Generate new paper wallet",
                "description": "Generates a new keypair, encrypts the private key with the passphrase and saves it to the .pwt file",
                "parameters": [
                    {
                        "description": "Passphrase",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.GenerateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.GenerateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/import": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Import existing private key",
                "description": "Encrypts an existing private key (hex or WIF) with the passphrase and saves it to the .pwt file",
                "parameters": [
                    {
                        "description": "Private key and passphrase",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.ImportRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.GenerateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Get wallet info",
                "description": "Returns address and QR code from the wallet file, no passphrase needed",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.InfoResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/reveal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Reveal the private key",
                "description": "Decrypts the wallet file and returns the private key as hex and WIF. A wrong passphrase returns 401 with code WRONG_PASSPHRASE.",
                "parameters": [
                    {
                        "description": "Passphrase",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.RevealRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.KeyMaterial"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.DecryptKeyRequest": {
            "type": "object",
            "properties": {
                "encryptedKey": {"type": "string"},
                "passphrase": {"type": "string"}
            }
        },
        "model.EncryptKeyRequest": {
            "type": "object",
            "properties": {
                "privateKey": {"type": "string", "description": "64 hex chars or mainnet WIF"},
                "passphrase": {"type": "string"}
            }
        },
        "model.EncryptKeyResponse": {
            "type": "object",
            "properties": {
                "encryptedKey": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "model.GenerateRequest": {
            "type": "object",
            "properties": {
                "passphrase": {"type": "string"}
            }
        },
        "model.GenerateResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "model.ImportRequest": {
            "type": "object",
            "properties": {
                "privateKey": {"type": "string", "description": "64 hex chars or mainnet WIF"},
                "passphrase": {"type": "string"}
            }
        },
        "model.InfoResponse": {
            "type": "object",
            "properties": {
                "network": {"type": "string"},
                "address": {"type": "string"},
                "QR": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "model.KeyMaterial": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "wif": {"type": "string"},
                "privateKeyHex": {"type": "string"}
            }
        },
        "model.RevealRequest": {
            "type": "object",
            "properties": {
                "passphrase": {"type": "string"}
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
	Title:            "paper-wallet API",
	Description:      "Local paper-wallet service: passphrase-protected private keys, never stored raw.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
