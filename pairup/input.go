package pairup

import (
	_ "embed"
	"fmt"
)

//go:embed input.txt
var input string

// Input returns the bundled puzzle input.
func Input() string {
	return input
}

// PartOne returns the difference score of the embedded input.
func PartOne() (uint64, error) {
	left, right, err := Parse(input)
	if err != nil {
		return 0, fmt.Errorf("part one: %w", err)
	}
	return DifferenceScore(left, right), nil
}

// PartTwo returns the similarity score of the embedded input.
func PartTwo() (uint64, error) {
	left, right, err := Parse(input)
	if err != nil {
		return 0, fmt.Errorf("part two: %w", err)
	}
	return SimilarityScore(left, right), nil
}
