// Package api holds the OpenAPI document of the orders service.
package api

import (
	_ "embed"
)

// OpenAPI is the raw OpenAPI 3 document, served at /openapi.json and used for
// request validation.
//
//go:embed openapi.yaml
var OpenAPI []byte
