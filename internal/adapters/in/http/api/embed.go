// Package api embeds the OpenAPI contract of the HTTP adapter.
package api

import _ "embed"

// OpenAPI is the contract requests are validated against and the document
// served by the docs UI.
//
//go:embed openapi.yaml
var OpenAPI []byte
