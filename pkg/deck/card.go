package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ranks
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// Card is an individual playing card
// A card must not be modified once it has been created
type Card struct {
	ID        string
	Rank      int
	Suit      Suit
	IsRedKing bool
}

// NewCard returns a card. Whether it is a red king is fixed here.
func NewCard(id string, rank int, suit Suit) *Card {
	return &Card{
		ID:        id,
		Rank:      rank,
		Suit:      suit,
		IsRedKing: rank == King && suit.IsRed(),
	}
}

// Value returns the points the card is worth in a hand
// Red kings are the only cards worth zero
func (c *Card) Value() int {
	switch {
	case c.IsRedKing:
		return 0
	case c.Rank >= 10:
		return 10
	default:
		return c.Rank
	}
}

// IsSpecial returns true for the face cards that carry an action
func (c *Card) IsSpecial() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

// RankSymbol returns A, 2-10, J, Q or K
func (c *Card) RankSymbol() string {
	switch c.Rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(c.Rank)
	}
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", c.RankSymbol(), suit)
}

// MarshalJSON returns the full view of the card
// Only send this to the player who is allowed to see the card
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string `json:"id"`
		Rank      string `json:"rank"`
		Suit      Suit   `json:"suit"`
		Value     int    `json:"value"`
		IsRedKing bool   `json:"is_red_king"`
	}{
		ID:        c.ID,
		Rank:      c.RankSymbol(),
		Suit:      c.Suit,
		Value:     c.Value(),
		IsRedKing: c.IsRedKing,
	})
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 1 and <= 13 and suit in [cdhs].
// The card ID is the string itself.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(s, rank, suit)
}

// CardsFromString will returns a slice of cards
// An empty entry (i.e., "5h,,7c") is a nil card
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (1c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
