// Package static holds the site's stylesheet and script.
package static

import "embed"

// FS exposes the static assets for HTTP serving under /static/.
//
//go:embed *.css *.js
var FS embed.FS
