// Package web содержит встроенные HTML-шаблоны страниц.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
