// Package assets embeds the page sources served by the map server.
package assets

import _ "embed"

// IndexTemplate is the page skeleton; CSS and JS are inlined into it.
//
//go:embed index.html.tpl
var IndexTemplate string

// Style is the page stylesheet.
//
//go:embed style.css
var Style string

// Script draws the map from the /api/map document.
//
//go:embed script.js
var Script string

// Favicon is the site icon.
//
//go:embed favicon.svg
var Favicon []byte
