// Package static embeds the browser assets served under /static/.
package static

import "embed"

// FS holds the stylesheet and client script.
//
//go:embed app.js styles.css
var FS embed.FS
