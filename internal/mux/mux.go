package mux

import (
	"net/http"

	"fivecarddraw-server/pkg/room"
	"fivecarddraw-server/pkg/session"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxTableKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version   string
	caretaker *room.Caretaker
	store     *session.Store
}

// NewMux returns a new HTTP mux
func NewMux(version string, caretaker *room.Caretaker, store *session.Store) *Mux {
	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		caretaker: caretaker,
		store:     store,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.tableMiddleware)
	gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameUUIDWS())
	gr.Methods(http.MethodPost).Path("/save").Handler(this.postGameUUIDSave())

	r.Methods(http.MethodGet).Path("/session").Handler(this.getSession())
	r.Methods(http.MethodGet).Path("/session/{id}").Handler(this.getSessionID())
	r.Methods(http.MethodDelete).Path("/session/{id}").Handler(this.deleteSessionID())
	r.Methods(http.MethodPost).Path("/session/{id}/restore").Handler(this.postSessionIDRestore())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table, ok := m.caretaker.Get(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(withTable(r.Context(), table)))
	})
}
