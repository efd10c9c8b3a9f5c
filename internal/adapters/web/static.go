package web

import (
	"net/http"
	"path"
	"strings"
)

// contentTypes is the set of asset types the game ships. Anything else
// with an extension is served as a byte stream.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
}

// StaticFiles serves the browser game from dir.
func StaticFiles(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ext := strings.ToLower(path.Ext(r.URL.Path)); ext != "" {
			ct, ok := contentTypes[ext]
			if !ok {
				ct = "application/octet-stream"
			}
			w.Header().Set("Content-Type", ct)
		}
		fileServer.ServeHTTP(w, r)
	})
}
