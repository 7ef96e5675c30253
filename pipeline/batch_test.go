package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/pollkit/pollable"
)

func TestBatch(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		inputs []int
		want   [][]int
	}{
		{"exact", 2, []int{1, 2, 3, 4}, [][]int{{1, 2}, {3, 4}}},
		{"partial tail", 2, []int{1, 2, 3}, [][]int{{1, 2}, {3}}},
		{"only partial", 5, []int{1, 2}, [][]int{{1, 2}}},
		{"empty", 3, nil, nil},
		{"zero size", 0, []int{1, 2}, [][]int{{1}, {2}}},
		{"negative size", -4, []int{7}, [][]int{{7}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, run(Batch[int](tc.size), tc.inputs...)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBatch_PartialOnlyAfterClose(t *testing.T) {
	tr := pollable.NewTransformer(Batch[int](2))
	tr.FeedAll(1, 2, 3)
	if diff := cmp.Diff([][]int{{1, 2}}, tr.Drain()); diff != "" {
		t.Errorf("open drain mismatch (-want +got):\n%s", diff)
	}
	if tr.Done() {
		t.Fatal("must not be done before close")
	}
	tr.Close()
	if diff := cmp.Diff([][]int{{3}}, tr.Drain()); diff != "" {
		t.Errorf("final drain mismatch (-want +got):\n%s", diff)
	}
	if !tr.Done() {
		t.Error("expected done")
	}
}

func TestSliding(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		inputs []int
		want   [][]int
	}{
		{"overlapping", 3, []int{1, 2, 3, 4, 5}, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}},
		{"exactly one", 2, []int{1, 2}, [][]int{{1, 2}}},
		{"short input", 4, []int{1, 2}, [][]int{{1, 2}}},
		{"empty", 2, nil, nil},
		{"size one", 0, []int{8, 9}, [][]int{{8}, {9}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, run(Sliding[int](tc.size), tc.inputs...)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSliding_WindowsAreIndependent(t *testing.T) {
	got := run(Sliding[int](2), 1, 2, 3)
	got[0][0] = 100
	if got[1][0] != 2 {
		t.Errorf("windows share storage: %v", got)
	}
}
