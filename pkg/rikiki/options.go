package rikiki

import "time"

// HandSize is the number of slots dealt to each player
const HandSize = 4

// MaxPlayers is the number of seats in a room
const MaxPlayers = 8

// MinPlayers is the number of players needed to start
const MinPlayers = 2

// CallerAutoLoseScore is the score above which the rikiki caller cannot win
const CallerAutoLoseScore = 7

// Options are options for creating a new game
type Options struct {
	// Seed makes the deck reproducible. A nil seed shuffles from the clock.
	Seed *int64

	// RevealDuration is how long clients show the initial cards after the deal
	RevealDuration time.Duration
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Seed:           nil,
		RevealDuration: time.Second * 5,
	}
}
