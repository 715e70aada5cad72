// Package truco implements the rule engine of a two-sided Truco game played
// against a heuristic opponent, including card strength, hand flow, stake
// raises and match scoring.
//
// # Core Types
//
// Card: An immutable rank and suit pair drawn from a 40-card deck.
//
// Hand: The state of a single hand: both players' cards, the vira, the
// manilha, round wins, the advantage side and the stake multiplier.
//
// Match: A sequence of hands scored toward a fixed goal, owning the balance
// that is settled at the end of every hand.
//
// Opponent: The decision policy of the computer-controlled side.
//
// # Game Flow
//
// A hand is dealt with StartHand and played with PlayCard, one round per
// call, for at most three rounds. RequestRaise escalates the stake from 1x to
// 3x; the opponent may accept or fold, in which case the hand is awarded to
// the player at once.
//
// # Card Strength
//
// Ranks are ordered 4, 5, 6, 7, Q, J, K, A, 2, 3. The rank following the vira
// becomes the manilha and beats every other card; among manilhas the suit
// decides (ouros < espadas < copas < paus).
//
// # Errors
//
// Every error returned by the engine wraps either ErrValidation or
// ErrLifecycle and leaves the state untouched.
package truco
