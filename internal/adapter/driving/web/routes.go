package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// RegisterRoutes mounts the GUI pages and the embedded stylesheet on mux.
//
//	GET  /          restaurant details
//	GET  /reviews   review list and form
//	POST /reviews   form submission
//	GET  /static/*  embedded assets
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFiles())))

	mux.HandleFunc("GET /{$}", h.Details)
	mux.HandleFunc("GET /reviews", h.Reviews)
	mux.HandleFunc("POST /reviews", h.SubmitReview)
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// "static" is a literal valid path, so Sub cannot fail.
		panic(err)
	}
	return sub
}
