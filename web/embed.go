// Package web holds the embedded static assets served under /static/.
package web

import "embed"

//go:embed static
var Assets embed.FS
