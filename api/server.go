package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/matt-g-everett/ledmotion/motion"
	"github.com/matt-g-everett/ledmotion/stream"
)

// Source supplies the motion snapshot to serve.
type Source interface {
	Latest() motion.State
}

type Api struct {
	source Source
	static http.Handler
}

func NewApi(source Source) *Api {
	a := new(Api)
	a.source = source
	a.static = http.FileServer(http.Dir("client/dist"))
	return a
}

// Handler routes the position endpoints and falls back to the static client.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/positions", a.handlePositions)
	mux.HandleFunc("/positions/", a.handlePosition)
	mux.HandleFunc("/animating", a.handleAnimating)
	mux.Handle("/", a.static)
	return mux
}

func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}

func (a *Api) handlePositions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, stream.Report(a.source.Latest()))
}

func (a *Api) handlePosition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/positions/")
	report, ok := stream.Report(a.source.Latest())[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, report)
}

func (a *Api) handleAnimating(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"animating": a.source.Latest().Animating()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Writing response: %v", err)
	}
}
