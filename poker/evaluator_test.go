package poker

import (
	"testing"
)

func parseCards(strs ...string) Hand {
	var hand Hand
	for _, s := range strs {
		hand |= Hand(MustParseCard(s))
	}
	return hand
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand Hand
		want HandType
	}{
		{"high card", parseCards("As", "Kh", "Qd", "Jc", "9s", "7h", "5d"), HighCard},
		{"pair", parseCards("As", "Ah", "Kd", "Qc", "Js", "9h", "7d"), Pair},
		{"two pair", parseCards("As", "Ah", "Kd", "Kc", "Qs", "9h", "7d"), TwoPair},
		{"three of a kind", parseCards("As", "Ah", "Ad", "Kc", "Qs", "9h", "7d"), ThreeOfAKind},
		{"straight", parseCards("As", "Kh", "Qd", "Jc", "Ts", "9h", "7d"), Straight},
		{"wheel", parseCards("As", "2h", "3d", "4c", "5s", "Kh", "Qd"), Straight},
		{"flush", parseCards("As", "Ks", "Qs", "Js", "9s", "7h", "5d"), Flush},
		{"full house", parseCards("As", "Ah", "Ad", "Kc", "Kh", "9h", "7d"), FullHouse},
		{"four of a kind", parseCards("As", "Ah", "Ad", "Ac", "Ks", "9h", "7d"), FourOfAKind},
		{"straight flush", parseCards("As", "Ks", "Qs", "Js", "Ts", "9s", "7h"), StraightFlush},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rank := Evaluate7Cards(tc.hand)
			if rank.Type() != tc.want {
				t.Errorf("Expected %v, got %s", tc.want, rank.String())
			}
		})
	}
}

func TestCompareHands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hand1    Hand
		hand2    Hand
		expected int // 1 if hand1 wins, -1 if hand2 wins, 0 for tie
	}{
		{
			name:     "pair beats high card",
			hand1:    parseCards("As", "Ah", "Kd", "Qc", "Js", "9h", "7d"),
			hand2:    parseCards("As", "Kh", "Qd", "Jc", "9s", "7h", "5d"),
			expected: 1,
		},
		{
			name:     "higher pair beats lower pair",
			hand1:    parseCards("As", "Ah", "Kd", "Qc", "Js", "9h", "7d"),
			hand2:    parseCards("Ks", "Kh", "Ad", "Qc", "Js", "9h", "7d"),
			expected: 1,
		},
		{
			name:     "flush beats straight",
			hand1:    parseCards("As", "Ks", "Qs", "Js", "9s", "7h", "5d"),
			hand2:    parseCards("Ah", "Kd", "Qc", "Jh", "Td", "7s", "5c"),
			expected: 1,
		},
		{
			name:     "same board plays a tie",
			hand1:    parseCards("As", "Kh", "Qd", "Jc", "Ts", "2h", "3d"),
			hand2:    parseCards("As", "Kh", "Qd", "Jc", "Ts", "2c", "3s"),
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := CompareHands(Evaluate7Cards(tc.hand1), Evaluate7Cards(tc.hand2))
			if got != tc.expected {
				t.Errorf("CompareHands = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestStrengthOrdersAscending(t *testing.T) {
	t.Parallel()
	weak := Evaluate7Cards(parseCards("As", "Kh", "Qd", "Jc", "9s", "7h", "5d"))
	strong := Evaluate7Cards(parseCards("As", "Ks", "Qs", "Js", "Ts", "9s", "7h"))

	// HandRank orders descending (lower is stronger); Strength flips it for
	// callers that want bigger-wins numbers.
	if weak <= strong {
		t.Errorf("Expected the straight flush to rank below the high card: %d vs %d", strong, weak)
	}
	if weak.Strength() >= strong.Strength() {
		t.Errorf("Expected the straight flush strength above the high card: %d vs %d",
			strong.Strength(), weak.Strength())
	}
}

func TestBestFive(t *testing.T) {
	t.Parallel()
	hand := parseCards("Ah", "Kh", "Qh", "Jh", "Th", "2c", "7d")
	best, rank := BestFive(hand)

	if rank.Type() != StraightFlush {
		t.Fatalf("Expected a royal flush, got %s", rank.String())
	}
	if best.CountCards() != 5 {
		t.Fatalf("Expected 5 cards, got %d", best.CountCards())
	}
	for _, s := range []string{"Ah", "Kh", "Qh", "Jh", "Th"} {
		if !best.HasCard(MustParseCard(s)) {
			t.Errorf("Best five should include %s", s)
		}
	}
	if best.HasCard(MustParseCard("2c")) || best.HasCard(MustParseCard("7d")) {
		t.Error("Best five should exclude the junk cards")
	}

	// The chosen subset evaluates to the same rank as the full seven.
	if got := Evaluate5Cards(best); got != rank {
		t.Errorf("Best-five rank %d disagrees with reported rank %d", got, rank)
	}

	// Wrong sizes are rejected.
	if got, _ := BestFive(parseCards("Ah", "Kh")); got != 0 {
		t.Error("BestFive of a short hand should be empty")
	}
}
