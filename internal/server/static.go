package server

import (
	"embed"
	"net/http"
	"strings"

	"quadsolve/internal/shared"
)

//go:embed web/*
var webFS embed.FS

type asset struct {
	body        []byte
	contentType string
	etag        string
}

// staticRoutes maps request paths to files under web/.
var staticRoutes = map[string]struct{ file, contentType string }{
	"/":           {"index.html", "text/html; charset=utf-8"},
	"/styles.css": {"styles.css", "text/css; charset=utf-8"},
	"/script.js":  {"script.js", "application/javascript; charset=utf-8"},
}

var staticAssets = loadAssets()

func loadAssets() map[string]asset {
	out := make(map[string]asset, len(staticRoutes))
	for path, route := range staticRoutes {
		body, err := webFS.ReadFile("web/" + route.file)
		if err != nil {
			panic("server: missing embedded asset " + route.file)
		}
		out[path] = asset{body: body, contentType: route.contentType, etag: shared.ETag(body)}
	}
	return out
}

// Static serves the three UI files. A POST to any path other than
// /calculate gets the usage hint, as does the calculator endpoint itself.
func (a *API) Static(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		writeError(w, http.StatusNotFound, usageHint)
		return
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	as, ok := staticAssets[r.URL.Path]
	if !ok {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
		return
	}

	w.Header().Set("Content-Type", as.contentType)
	w.Header().Set("ETag", as.etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), as.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(as.body)
}

// etagMatches implements the weak comparison If-None-Match uses.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
