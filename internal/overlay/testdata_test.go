package overlay

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const quakePayload = `{"type":"FeatureCollection","metadata":{"count":1},"features":[
	{"type":"Feature","id":"us7000test","properties":{"mag":4.2,"place":"Test","time":1700000000000},
	 "geometry":{"type":"Point","coordinates":[-117.6,35.77,45]}}
]}`

// platePayload returns a boundary collection with n line features.
func platePayload(n int) string {
	features := make([]string, n)
	for i := range features {
		features[i] = fmt.Sprintf(
			`{"type":"Feature","properties":{"Name":"P%d"},"geometry":{"type":"LineString","coordinates":[[%d,0],[%d,1]]}}`,
			i, i, i+1)
	}
	return `{"type":"FeatureCollection","features":[` + strings.Join(features, ",") + `]}`
}

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
