package evaluator

import "github.com/lox/pokerhands/internal/deck"

type cards = [HandSize]deck.Card

// predicates are tried strongest first; the first match decides the category.
var predicates = [...]struct {
	category Category
	match    func(*cards) bool
}{
	{StraightFlush, isStraightFlush},
	{FourOfAKind, isFourOfAKind},
	{FullHouse, isFullHouse},
	{Flush, isFlush},
	{Straight, isStraight},
	{ThreeOfAKind, isThreeOfAKind},
	{TwoPairs, isTwoPairs},
	{OnePair, isOnePair},
}

// Classify returns the strongest category the sorted hand satisfies.
func Classify(h SortedHand) Category {
	for _, p := range predicates {
		if p.match(&h.cards) {
			return p.category
		}
	}
	return HighCard
}

// ClassifyAll stores each hand's category on the hand. Card order is left
// untouched.
func ClassifyAll(hands []Hand) {
	for i := range hands {
		hands[i].Category = Classify(hands[i].Sorted())
	}
}

// Best returns the highest category among the hands, HighCard when empty.
func Best(hands []Hand) Category {
	best := HighCard
	for _, h := range hands {
		if h.Category > best {
			best = h.Category
		}
	}
	return best
}

// Winners returns the indices of every hand holding the best category.
func Winners(hands []Hand) []int {
	best := Best(hands)
	var winners []int
	for i, h := range hands {
		if h.Category == best {
			winners = append(winners, i)
		}
	}
	return winners
}

func isFlush(c *cards) bool {
	for _, card := range c[1:] {
		if card.Suit != c[0].Suit {
			return false
		}
	}
	return true
}

// isStraight walks the ranks upward from the first card. A leading Ace only
// starts a straight when followed by Two (Ace low) or Ten (Ace high, checked
// as if it were the rank before Ten).
func isStraight(c *cards) bool {
	next := c[0].Rank
	if next == deck.Ace {
		switch c[1].Rank {
		case deck.Two:
		case deck.Ten:
			next = deck.Nine
		default:
			return false
		}
	}
	for _, card := range c[1:] {
		next++
		if card.Rank != next {
			return false
		}
	}
	return true
}

func isStraightFlush(c *cards) bool {
	return isStraight(c) && isFlush(c)
}

func isFourOfAKind(c *cards) bool {
	return sameRank(c, 0, 4) || sameRank(c, 1, 5)
}

func isFullHouse(c *cards) bool {
	return (sameRank(c, 0, 3) && sameRank(c, 3, 5)) ||
		(sameRank(c, 0, 2) && sameRank(c, 2, 5))
}

func isThreeOfAKind(c *cards) bool {
	for i := 0; i+3 <= HandSize; i++ {
		if sameRank(c, i, i+3) {
			return true
		}
	}
	return false
}

func isTwoPairs(c *cards) bool {
	return (sameRank(c, 0, 2) && sameRank(c, 2, 4)) ||
		(sameRank(c, 0, 2) && sameRank(c, 3, 5)) ||
		(sameRank(c, 1, 3) && sameRank(c, 3, 5))
}

func isOnePair(c *cards) bool {
	for i := 1; i < HandSize; i++ {
		if c[i].Rank == c[i-1].Rank {
			return true
		}
	}
	return false
}

// sameRank reports whether cards [from, to) all share one rank.
func sameRank(c *cards, from, to int) bool {
	for i := from + 1; i < to; i++ {
		if c[i].Rank != c[from].Rank {
			return false
		}
	}
	return true
}
