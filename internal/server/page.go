package server

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/woozymasta/quakemap/assets"
)

// PageTitle is the document title of the map page.
const PageTitle = "Earthquake Map"

// PageData fills the index template.
type PageData struct {
	Title   string
	Element string
	CSS     string
	JS      string
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	return m
}

// RenderIndex builds the page from the embedded assets and minifies it.
func RenderIndex(element string) ([]byte, error) {
	m := newMinifier()

	cssMin, err := m.String("text/css", assets.Style)
	if err != nil {
		return nil, fmt.Errorf("minify css: %w", err)
	}

	jsMin, err := m.String("text/javascript", assets.Script)
	if err != nil {
		return nil, fmt.Errorf("minify js: %w", err)
	}

	tmpl, err := template.New("index").Parse(assets.IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, PageData{
		Title:   PageTitle,
		Element: element,
		CSS:     cssMin,
		JS:      jsMin,
	})
	if err != nil {
		return nil, fmt.Errorf("render index template: %w", err)
	}

	page, err := m.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify html: %w", err)
	}

	return page, nil
}

// RenderFavicon minifies the embedded icon.
func RenderFavicon() ([]byte, error) {
	icon, err := newMinifier().Bytes("image/svg+xml", assets.Favicon)
	if err != nil {
		return nil, fmt.Errorf("minify favicon: %w", err)
	}
	return icon, nil
}
