// Package views holds the HTML templates and static assets, embedded into the binary.
package views

import "embed"

// FS contains templates/ (one layout plus one file per page) and static/.
//
//go:embed templates static
var FS embed.FS
