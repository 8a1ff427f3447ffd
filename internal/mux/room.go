package mux

import (
	"errors"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/itaross/rikiki-be/pkg/room"
)

func (m *Mux) getRoomCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, found := m.pitBoss.Lookup(gmux.Vars(r)["code"])
		if !found {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		state, err := dealer.PublicState()
		if err != nil {
			if errors.Is(err, room.ErrDealerClosed) {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) getGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := parseRows(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		records, err := m.recorder.RecentGames(r.Context(), rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}
