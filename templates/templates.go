// Package templates embeds the HTML pages so handlers parse them from the
// binary instead of the working directory.
package templates

import "embed"

//go:embed layouts/*.html pages/*.html
var FS embed.FS
