package mux

import (
	"net/http"

	"fivecarddraw-server/pkg/session"

	gmux "github.com/gorilla/mux"
)

// getSession lists the saved sessions, newest first
func (m *Mux) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos, err := m.store.List(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, infos)
	}
}

func (m *Mux) getSessionID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sess)
	}
}

func (m *Mux) deleteSessionID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.store.Delete(r.Context(), gmux.Vars(r)["id"]); err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
	}
}

// postSessionIDRestore creates a new table from a saved session
func (m *Mux) postSessionIDRestore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			writeSessionError(w, err)
			return
		}

		table, err := m.caretaker.RestoreTable(sess)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, gameResponse{UUID: table.UUID})
	}
}

// if err is ErrSessionNotFound, treat as a 404, otherwise treat as a 500
func writeSessionError(w http.ResponseWriter, err error) {
	if err == session.ErrSessionNotFound {
		writeJSONError(w, http.StatusNotFound, nil)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}
