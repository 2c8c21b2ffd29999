package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// PageData is what index.tmpl renders with.
type PageData struct {
	// APIBase prefixes the /api calls; empty means same origin.
	APIBase        string
	LamportsPerSOL uint64
}

// UI serves the wallet page.
type UI struct {
	tmpl   *template.Template
	data   PageData
	logger *slog.Logger
}

// NewUI parses the embedded templates.
func NewUI(data PageData, logger *slog.Logger) (*UI, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UI{tmpl: tmpl, data: data, logger: logger}, nil
}

func (u *UI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := u.tmpl.ExecuteTemplate(w, "index.tmpl", u.data); err != nil {
		u.logger.ErrorContext(r.Context(), "failed to render template", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
