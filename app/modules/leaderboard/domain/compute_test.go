package leaderboarddomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		rows []ScoreRow
		want []Entry
	}{
		{
			name: "no scores",
			rows: nil,
			want: []Entry{},
		},
		{
			name: "mean of three judges",
			rows: []ScoreRow{
				{JudgeID: 1, ParticipantID: 10, FullName: "Ayesha Khan", Score: 80},
				{JudgeID: 2, ParticipantID: 10, FullName: "Ayesha Khan", Score: 90},
				{JudgeID: 3, ParticipantID: 10, FullName: "Ayesha Khan", Score: 70},
			},
			want: []Entry{{Rank: 1, UserID: 10, FullName: "Ayesha Khan", AverageScore: 80, JudgesCount: 3}},
		},
		{
			name: "sorted by average descending",
			rows: []ScoreRow{
				{JudgeID: 1, ParticipantID: 10, FullName: "A", Score: 60},
				{JudgeID: 1, ParticipantID: 11, FullName: "B", Score: 95},
				{JudgeID: 2, ParticipantID: 11, FullName: "B", Score: 85},
				{JudgeID: 1, ParticipantID: 12, FullName: "C", Score: 75},
			},
			want: []Entry{
				{Rank: 1, UserID: 11, FullName: "B", AverageScore: 90, JudgesCount: 2},
				{Rank: 2, UserID: 12, FullName: "C", AverageScore: 75, JudgesCount: 1},
				{Rank: 3, UserID: 10, FullName: "A", AverageScore: 60, JudgesCount: 1},
			},
		},
		{
			name: "ties share rank and break by participant id",
			rows: []ScoreRow{
				{JudgeID: 1, ParticipantID: 30, FullName: "Late", Score: 88},
				{JudgeID: 1, ParticipantID: 20, FullName: "Early", Score: 88},
				{JudgeID: 1, ParticipantID: 40, FullName: "Third", Score: 70},
			},
			want: []Entry{
				{Rank: 1, UserID: 20, FullName: "Early", AverageScore: 88, JudgesCount: 1},
				{Rank: 1, UserID: 30, FullName: "Late", AverageScore: 88, JudgesCount: 1},
				{Rank: 3, UserID: 40, FullName: "Third", AverageScore: 70, JudgesCount: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.rows)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeIsOrderIndependent(t *testing.T) {
	rows := []ScoreRow{
		{JudgeID: 1, ParticipantID: 10, FullName: "A", Score: 70},
		{JudgeID: 2, ParticipantID: 11, FullName: "B", Score: 70},
		{JudgeID: 2, ParticipantID: 10, FullName: "A", Score: 90},
		{JudgeID: 1, ParticipantID: 11, FullName: "B", Score: 90},
	}
	reversed := make([]ScoreRow, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	if diff := cmp.Diff(Compute(rows), Compute(reversed)); diff != "" {
		t.Errorf("input order changed the leaderboard (-forward +reversed):\n%s", diff)
	}
}
