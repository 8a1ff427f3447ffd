package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// decksPerShoe is how many standard 52-card decks are mixed together
const decksPerShoe = 2

// Size is the number of cards in a freshly built deck
const Size = decksPerShoe * 52

// Deck represents a playing deck
// Cards are drawn from the end of the slice
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a freshly built and shuffled double deck.
// If seed is nil, the order is seeded from the clock and cannot be reproduced.
// Equal seeds produce identical decks, including card IDs.
func New(seed *int64) *Deck {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}

	d := &Deck{
		seed: s,
		rng:  rand.New(rand.NewSource(s)), // nolint:gosec
	}

	d.buildDeck()
	d.Shuffle()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for i := 0; i < decksPerShoe; i++ {
		for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, NewCard(d.newCardID(), rank, suit))
			}
		}
	}

	d.Cards = cards
}

// newCardID derives an ID from the deck's rng so seeded decks reproduce their IDs
func (d *Deck) newCardID() string {
	id, err := uuid.NewRandomFromReader(d.rng)
	if err != nil {
		// math/rand never fails to read
		panic(err)
	}

	return id.String()[:8]
}

// Shuffle will shuffle the cards remaining in the deck
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// ShuffleDiscards will replace the existing deck with the cards specified
func (d *Deck) ShuffleDiscards(discards []*Card) {
	cards := make([]*Card, len(discards))
	copy(cards, discards)

	d.Cards = cards
	d.Shuffle()
}

// Seed returns the seed used to shuffle the deck
func (d *Deck) Seed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards[n-1] = nil
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
