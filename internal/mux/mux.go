package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/itaross/rikiki-be/pkg/archive"
	"github.com/itaross/rikiki-be/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	pitBoss  *room.PitBoss
	recorder archive.Recorder
}

// NewMux returns a new HTTP mux
// The caller owns the PitBoss and is responsible for its shift.
func NewMux(version string, pitBoss *room.PitBoss, recorder archive.Recorder) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		pitBoss:  pitBoss,
		recorder: recorder,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())
	r.Methods(http.MethodGet).Path("/room/{code:[A-Za-z]+}").Handler(this.getRoomCode())
	r.Methods(http.MethodGet).Path("/games").Handler(this.getGames())

	return this
}
