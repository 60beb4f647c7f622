package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// Static returns a handler serving the admin UI assets rooted at static/
func Static() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static is embedded at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
