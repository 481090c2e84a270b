// Package api embeds the OpenAPI document of the HTTP interface.
package api

import (
	_ "embed"
)

// OpenAPI is the raw openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
