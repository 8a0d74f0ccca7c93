// Package game runs one round of five-card poker from a fresh deck to the
// winning category.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	r, err := game.Play(rng, 5, 4)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.Best, r.Winners)
//
// A round keeps a snapshot of every stage (ordered deck, shuffled deck, hands
// as dealt, sorted, ranked) so callers can render the pipeline step by step.
//
// # Deterministic Testing
//
// Play takes any deck.RandSource. Pass randutil.New(seed) for reproducible
// rounds, or a scripted source to control every swap of the shuffle. A
// pre-shuffled deck can be supplied with WithDeck.
package game
