package card

import "math/rand"

type CardList []Card

func (ds *CardList) Init(cards []Card) {
	*ds = make([]Card, len(cards))
	copy(*ds, cards)
}

func (ds CardList) Count() int {
	return len(ds)
}

// Shuffle permutes the list in place using the supplied source, so the
// owner of the list controls determinism.
func (ds CardList) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})
}

func (ds *CardList) Add(cards ...Card) {
	*ds = append(*ds, cards...)
}

// PopCard removes and returns the top (last) card, or CardInvalid when
// the list is empty.
func (ds *CardList) PopCard() Card {
	totalCount := ds.Count()
	if totalCount == 0 {
		return CardInvalid
	}
	card := (*ds)[totalCount-1]
	*ds = (*ds)[:totalCount-1]
	return card
}

// Codes renders every card as its 2-character code, in order.
func (ds CardList) Codes() []string {
	out := make([]string, 0, len(ds))
	for _, c := range ds {
		out = append(out, c.Code())
	}
	return out
}
