package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seed(s int64) *int64 {
	return &s
}

func TestNew(t *testing.T) {
	d := New(seed(1))
	assert.Equal(t, Size, d.CardsLeft())
	assert.Equal(t, 104, d.CardsLeft())
	assert.Equal(t, int64(1), d.Seed())

	redKings := 0
	blackKings := 0
	ids := make(map[string]bool)
	for _, card := range d.Cards {
		ids[card.ID] = true
		if card.Rank != King {
			continue
		}

		if card.IsRedKing {
			redKings++
			assert.Equal(t, 0, card.Value())
		} else {
			blackKings++
			assert.Equal(t, 10, card.Value())
		}
	}

	assert.Equal(t, 4, redKings)
	assert.Equal(t, 4, blackKings)
	assert.Len(t, ids, 104, "card ids are unique")
}

func TestNew_Seeded(t *testing.T) {
	for _, s := range []int64{0, 1, 42, 1 << 40} {
		d1 := New(seed(s))
		d2 := New(seed(s))

		assert.Equal(t, d1.HashCode(), d2.HashCode())
		assert.Equal(t, CardsToString(d1.Cards), CardsToString(d2.Cards))
		for i := range d1.Cards {
			assert.Equal(t, d1.Cards[i].ID, d2.Cards[i].ID)
		}
	}

	assert.NotEqual(t, New(seed(1)).HashCode(), New(seed(2)).HashCode())
}

func TestNew_Unseeded(t *testing.T) {
	d := New(nil)
	assert.Equal(t, 104, d.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	d := New(seed(7))

	if !d.CanDraw(104) {
		t.Errorf("expected CanDraw(104) to be true")
	}

	if d.CanDraw(105) {
		t.Errorf("expected CanDraw(105) to be false")
	}

	last := d.Cards[len(d.Cards)-1]
	card, err := d.Draw()
	assert.NoError(t, err)
	assert.Same(t, last, card, "draw removes from the end")

	for i := 0; i < 103; i++ {
		card, err := d.Draw()
		assert.NotNil(t, card)
		assert.NoError(t, err)
	}

	assert.False(t, d.CanDraw(1))

	card, err = d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_ShuffleDiscards(t *testing.T) {
	d1 := New(seed(0))
	d2 := New(seed(0))

	discards := CardsFromString("1c,2c,3c,4c,5c")
	d1.Cards = nil
	d1.ShuffleDiscards(discards)
	d2.Cards = nil
	d2.ShuffleDiscards(discards)

	assert.Equal(t, "1c,2c,3c,4c,5c", CardsToString(discards), "input is not modified")
	assert.Len(t, d1.Cards, 5)
	assert.Equal(t, CardsToString(d1.Cards), CardsToString(d2.Cards), "reshuffles use the deck rng")
}
