// Package web holds the embedded single-page frontend.
package web

import "embed"

//go:embed index.html redirect.html assets
var FS embed.FS
