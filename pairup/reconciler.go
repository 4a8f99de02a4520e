package pairup

import (
	"fmt"
	"io"
)

type ListReconciler interface {
	SetInputs(raw string)
	ParseInputs() error
	ValidateInputs() error
	ComputeDifference() uint64
	ComputeSimilarity() uint64
	DisplayResults(w io.Writer) error
}

type ListReconcilerImpl struct {
	RawInputs  string
	LeftList   []uint32
	RightList  []uint32
	Pairs      []Pair
	TotalDiff  uint64
	Similarity uint64
}

var _ ListReconciler = (*ListReconcilerImpl)(nil)

func (lr *ListReconcilerImpl) SetInputs(raw string) {
	lr.RawInputs = raw
}

// SetLists bypasses parsing for callers that already hold the lists.
func (lr *ListReconcilerImpl) SetLists(left, right []uint32) {
	lr.LeftList = left
	lr.RightList = right
}

func (lr *ListReconcilerImpl) ParseInputs() error {
	left, right, err := Parse(lr.RawInputs)
	if err != nil {
		return err
	}
	lr.LeftList = left
	lr.RightList = right
	return nil
}

func (lr *ListReconcilerImpl) ValidateInputs() error {
	return ValidateLists(lr.LeftList, lr.RightList)
}

func (lr *ListReconcilerImpl) ComputeDifference() uint64 {
	lr.Pairs = Pairs(lr.LeftList, lr.RightList)
	var total uint64
	for _, p := range lr.Pairs {
		total += uint64(p.Diff)
	}
	lr.TotalDiff = total
	return total
}

func (lr *ListReconcilerImpl) ComputeSimilarity() uint64 {
	lr.Similarity = SimilarityScore(lr.LeftList, lr.RightList)
	return lr.Similarity
}

func (lr *ListReconcilerImpl) DisplayResults(w io.Writer) error {
	for _, p := range lr.Pairs {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", p.Left, p.Right, p.Diff); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %d\nSimilarity: %d\n", lr.TotalDiff, lr.Similarity)
	return err
}
