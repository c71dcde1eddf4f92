package mux

import (
	"net/http"

	"fivecarddraw-server/internal/config"
	"fivecarddraw-server/pkg/room"
)

type postGamePayload struct {
	Seats         int `json:"seats"`
	StartingStack int `json:"startingStack"`
	SmallBlind    int `json:"smallBlind"`
	BigBlind      int `json:"bigBlind"`
}

type gameResponse struct {
	UUID string `json:"uuid"`
}

type savedGameResponse struct {
	GameID string `json:"gameId"`
}

// postGame creates a new table.
// Omitted payload fields fall back to the configured game defaults
func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defaults := config.Instance().Game
		payload := postGamePayload{
			Seats:         defaults.Seats,
			StartingStack: defaults.StartingStack,
			SmallBlind:    defaults.SmallBlind,
			BigBlind:      defaults.BigBlind,
		}

		if r.ContentLength > 0 && !decodeRequest(w, r, &payload) {
			return
		}

		table, err := m.caretaker.CreateTable(room.TableOptions{
			Seats:         payload.Seats,
			StartingStack: payload.StartingStack,
			SmallBlind:    payload.SmallBlind,
			BigBlind:      payload.BigBlind,
		})
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, gameResponse{UUID: table.UUID})
	}
}

// postGameUUIDSave persists the table's session.
// A table mid-round cannot be saved
func (m *Mux) postGameUUIDSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := tableFromContext(r.Context())

		sess, err := table.Snapshot()
		if err != nil {
			writeJSONError(w, http.StatusConflict, err)
			return
		}

		id, err := m.store.Save(r.Context(), sess)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, savedGameResponse{GameID: id})
	}
}
