package deck

import "strings"

// Hand is an ordered set of slots
// A nil entry is an empty slot. Slots are never removed, so a position always
// refers to the same slot for the life of the hand.
type Hand []*Card

// NewHand returns a hand with n empty slots
func NewHand(n int) Hand {
	return make(Hand, n)
}

// Len returns the number of slots, empty or not
func (h Hand) Len() int {
	return len(h)
}

// IsValid returns true if pos addresses a slot in the hand
func (h Hand) IsValid(pos int) bool {
	return pos >= 0 && pos < len(h)
}

// At returns the card at pos, or nil if the slot is empty or does not exist
func (h Hand) At(pos int) *Card {
	if !h.IsValid(pos) {
		return nil
	}

	return h[pos]
}

// CardCount returns the number of occupied slots
func (h Hand) CardCount() int {
	count := 0
	for _, c := range h {
		if c != nil {
			count++
		}
	}

	return count
}

// Score returns the sum of the values of occupied slots
func (h Hand) Score() int {
	score := 0
	for _, c := range h {
		if c != nil {
			score += c.Value()
		}
	}

	return score
}

// String returns the hand in the format of 5h,,13d where an empty slot is blank
func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Describe returns a human readable form of the hand, with "--" for empty slots
func (h Hand) Describe() string {
	parts := make([]string, len(h))
	for i, c := range h {
		if c == nil {
			parts[i] = "--"
		} else {
			parts[i] = c.String()
		}
	}

	return strings.Join(parts, " ")
}
