package leaderboarddomain

import "sort"

// ScoreRow is one judge's score for one participant in the requested round.
type ScoreRow struct {
	JudgeID       int64
	ParticipantID int64
	FullName      string
	Score         float64
}

// Entry is one ranked line of the leaderboard.
type Entry struct {
	Rank         int     `json:"Rank"`
	UserID       int64   `json:"UserID"`
	FullName     string  `json:"FullName"`
	AverageScore float64 `json:"AverageScore"`
	JudgesCount  int     `json:"JudgesCount"`
}

type accumulator struct {
	participantID int64
	fullName      string
	sum           float64
	count         int
	judges        map[int64]struct{}
}

// Compute ranks participants by the mean of their scores.
//
// Scores are folded in a single pass into one accumulator per participant,
// kept in first-seen order. The result is sorted by average descending with
// ties broken by participant id ascending. Equal averages share a rank and
// the next distinct average skips ahead (1, 1, 3).
func Compute(rows []ScoreRow) []Entry {
	index := make(map[int64]int, len(rows))
	accs := make([]*accumulator, 0)

	for _, row := range rows {
		i, ok := index[row.ParticipantID]
		if !ok {
			i = len(accs)
			index[row.ParticipantID] = i
			accs = append(accs, &accumulator{
				participantID: row.ParticipantID,
				fullName:      row.FullName,
				judges:        make(map[int64]struct{}),
			})
		}
		acc := accs[i]
		acc.sum += row.Score
		acc.count++
		acc.judges[row.JudgeID] = struct{}{}
	}

	entries := make([]Entry, len(accs))
	for i, acc := range accs {
		entries[i] = Entry{
			UserID:       acc.participantID,
			FullName:     acc.fullName,
			AverageScore: acc.sum / float64(acc.count),
			JudgesCount:  len(acc.judges),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AverageScore != entries[j].AverageScore {
			return entries[i].AverageScore > entries[j].AverageScore
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		if i > 0 && entries[i].AverageScore == entries[i-1].AverageScore {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}

	return entries
}
