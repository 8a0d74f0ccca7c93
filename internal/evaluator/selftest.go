package evaluator

import (
	"errors"
	"fmt"
)

// SelfTestCase is one fixed hand and the category it must classify as.
type SelfTestCase struct {
	Hand     Hand
	Expected Category
}

// SelfTestCases returns the regression fixture classified on every run: one
// hand per category, from High Card up to a Broadway straight flush.
func SelfTestCases() []SelfTestCase {
	return []SelfTestCase{
		{MustParseHand("2d3c4d6sQh"), HighCard},
		{MustParseHand("4h5h5d7hTs"), OnePair},
		{MustParseHand("3d3hTcTdQc"), TwoPairs},
		{MustParseHand("3d3h3sTdQc"), ThreeOfAKind},
		{MustParseHand("As2d3c4d5d"), Straight},
		{MustParseHand("2c3c4c6cQc"), Flush},
		{MustParseHand("3d3h3sTdTc"), FullHouse},
		{MustParseHand("3d3h3s3cQc"), FourOfAKind},
		{MustParseHand("AdTdJdQdKd"), StraightFlush},
	}
}

// SelfTestHands returns the fixture hands, unclassified.
func SelfTestHands() []Hand {
	cases := SelfTestCases()
	hands := make([]Hand, len(cases))
	for i, c := range cases {
		hands[i] = c.Hand
	}
	return hands
}

// SelfTest classifies the fixture and returns the classified hands along with
// an error describing every hand that did not match its expected category.
func SelfTest() ([]Hand, error) {
	cases := SelfTestCases()
	hands := SelfTestHands()
	ClassifyAll(hands)

	var errs []error
	for i, c := range cases {
		if hands[i].Category != c.Expected {
			errs = append(errs, fmt.Errorf("hand %d %v: got %s, want %s",
				i+1, hands[i].Cards, hands[i].Category, c.Expected))
		}
	}
	return hands, errors.Join(errs...)
}
