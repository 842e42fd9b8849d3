package scoredomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCheckCoverage(t *testing.T) {
	tests := []struct {
		name         string
		judges       []int64
		participants []int64
		submitted    []Key
		want         Coverage
	}{
		{
			name:         "all submitted",
			judges:       []int64{1, 2},
			participants: []int64{10},
			submitted:    []Key{{1, 10}, {2, 10}},
			want:         Coverage{Complete: true, Round: RoundFinals, Expected: 2, Submitted: 2, Missing: []Key{}},
		},
		{
			name:         "missing pairs are listed in order",
			judges:       []int64{2, 1},
			participants: []int64{11, 10},
			submitted:    []Key{{1, 10}},
			want: Coverage{
				Round:     RoundFinals,
				Expected:  4,
				Submitted: 1,
				Missing:   []Key{{1, 11}, {2, 10}, {2, 11}},
			},
		},
		{
			name:         "no judges is vacuously complete",
			participants: []int64{10, 11},
			want:         Coverage{Complete: true, Round: RoundFinals, Missing: []Key{}},
		},
		{
			name:   "no participants is vacuously complete",
			judges: []int64{1},
			want:   Coverage{Complete: true, Round: RoundFinals, Missing: []Key{}},
		},
		{
			name:         "stray submissions are ignored",
			judges:       []int64{1},
			participants: []int64{10},
			submitted:    []Key{{1, 10}, {7, 10}, {1, 99}},
			want:         Coverage{Complete: true, Round: RoundFinals, Expected: 1, Submitted: 1, Missing: []Key{}},
		},
		{
			name:         "duplicate ids count once",
			judges:       []int64{1, 1},
			participants: []int64{10, 10},
			want:         Coverage{Round: RoundFinals, Expected: 1, Missing: []Key{{1, 10}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCoverage(RoundFinals, tt.judges, tt.participants, tt.submitted)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CheckCoverage() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(got.Missing) == 0, got.Complete)
		})
	}
}
