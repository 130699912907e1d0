// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes registers every handler on a new mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/map", s.HandleMap)
	mux.HandleFunc("GET /api/overlays/{id}", s.HandleOverlay)
	mux.HandleFunc("GET /api/legend.png", s.HandleLegend("png"))
	mux.HandleFunc("GET /api/legend.webp", s.HandleLegend("webp"))
	mux.HandleFunc("GET /favicon.svg", s.HandleFavicon)
	mux.HandleFunc("GET /favicon.ico", s.HandleFavicon)
	mux.HandleFunc("GET /healthz", HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /", s.HandleIndex)
	return mux
}

// HandleMap serves the map description read by the page script.
func (s *ServerContext) HandleMap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Map.Document())
}

// HandleOverlay serves the styled features of one overlay group.
// With ?wait=1 the response is held until the group is filled; a group whose
// feed failed never fills, so such a request ends only when the client leaves.
func (s *ServerContext) HandleOverlay(w http.ResponseWriter, r *http.Request) {
	g, ok := s.Map.Overlay(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if r.URL.Query().Get("wait") == "1" {
		select {
		case <-g.Done():
		case <-r.Context().Done():
			return
		}
	}

	data, err := g.FeatureCollection().MarshalJSON()
	if err != nil {
		http.Error(w, "encode overlay", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "no-cache")
	if at, ok := g.LoadedAt(); ok {
		w.Header().Set("Last-Modified", at.UTC().Format(http.TimeFormat))
	}
	_, _ = w.Write(data)
}

// HandleLegend serves the pre-rendered legend image in format.
// The optional scale query picks a high density variant.
func (s *ServerContext) HandleLegend(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scale := 1
		if v := r.URL.Query().Get("scale"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "invalid scale", http.StatusBadRequest)
				return
			}
			scale = n
		}

		img, ok := s.Legends[legendKey(format, scale)]
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/"+format)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(img)
	}
}

// HandleFavicon serves the site favicon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if match := r.Header.Get("If-None-Match"); match == s.IndexETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", s.IndexETag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleHealth reports that the process is serving.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
