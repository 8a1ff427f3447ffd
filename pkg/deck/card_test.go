package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 1, Ace)
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", CardFromString("2h").String())
	assert.Equal(t, "J♣", CardFromString("11c").String())
	assert.Equal(t, "Q♢", CardFromString("12d").String())
	assert.Equal(t, "K♠", CardFromString("13s").String())
	assert.Equal(t, "A♠", CardFromString("1s").String())
}

func TestCard_Value(t *testing.T) {
	tests := []struct {
		card  string
		value int
	}{
		{"1c", 1},
		{"2d", 2},
		{"9s", 9},
		{"10h", 10},
		{"11c", 10},
		{"12d", 10},
		{"13c", 10},
		{"13s", 10},
		{"13h", 0},
		{"13d", 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.value, CardFromString(test.card).Value(), test.card)
	}
}

func TestNewCard_IsRedKing(t *testing.T) {
	a := assert.New(t)
	a.True(NewCard("a", King, Hearts).IsRedKing)
	a.True(NewCard("b", King, Diamonds).IsRedKing)
	a.False(NewCard("c", King, Clubs).IsRedKing)
	a.False(NewCard("d", Queen, Hearts).IsRedKing)
}

func TestCard_IsSpecial(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("11h").IsSpecial())
	a.True(CardFromString("12h").IsSpecial())
	a.True(CardFromString("13h").IsSpecial())
	a.False(CardFromString("10h").IsSpecial())
	a.False(CardFromString("1h").IsSpecial())
}

func TestCard_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewCard("abcd1234", King, Diamonds))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"abcd1234","rank":"K","suit":"diamonds","value":0,"is_red_king":true}`, string(b))
}

func TestCardFromString(t *testing.T) {
	assert.Nil(t, CardFromString(""))
	assert.Panics(t, func() {
		CardFromString("14c")
	})

	card := CardFromString("10S")
	assert.Equal(t, 10, card.Rank)
	assert.Equal(t, Spades, card.Suit)
	assert.Equal(t, "10S", card.ID)
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("1c,,13h")
	assert.Len(t, cards, 3)
	assert.Nil(t, cards[1])
	assert.Equal(t, "1c,,13h", CardsToString(cards))
}
