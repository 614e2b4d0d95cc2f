package web

import "embed"

// Templates embeds the document viewer templates.
//
//go:embed templates/**/*.html
var Templates embed.FS
