package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves the client application shell: real files from the
// static directory when they exist, index.html for everything else so
// client-side routing keeps working.
type SPAHandler struct {
	staticDir string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rel := filepath.Clean(r.URL.Path)
	path := filepath.Join(h.staticDir, rel)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
