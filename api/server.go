package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/ledtween/tween"
)

// Runner runs functions against a registry on the goroutine that owns it.
type Runner interface {
	Do(ctx context.Context, fn func(*tween.Registry)) error
}

// Status reports the state of the registry.
type Status struct {
	Active       int    `json:"active"`
	PrefixPolicy string `json:"prefixPolicy"`
}

type Api struct {
	runner    Runner
	staticDir string
}

// NewApi creates an Api that controls tweens through runner. Files in
// staticDir are served at the root if it is not empty.
func NewApi(runner Runner, staticDir string) *Api {
	a := new(Api)
	a.runner = runner
	a.staticDir = staticDir
	return a
}

// Handler returns the Api's routes.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	mux.HandleFunc("/pause", a.command(func(r *tween.Registry, _ *http.Request) { r.PauseAll() }))
	mux.HandleFunc("/resume", a.command(func(r *tween.Registry, _ *http.Request) { r.ResumeAll() }))
	mux.HandleFunc("/clear", a.command(func(r *tween.Registry, req *http.Request) {
		if prefix := req.URL.Query().Get("prefix"); prefix != "" {
			r.ClearByPrefix(prefix)
			return
		}
		r.Clear()
	}))
	if a.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.staticDir)))
	}
	return mux
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}

func (a *Api) handleStatus(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var s Status
	err := a.runner.Do(req.Context(), func(r *tween.Registry) {
		s.Active = r.Len()
		s.PrefixPolicy = r.PrefixPolicy().String()
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

func (a *Api) command(fn func(*tween.Registry, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		err := a.runner.Do(req.Context(), func(r *tween.Registry) { fn(r, req) })
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
