package scoredomain

import "sort"

// Key identifies one judge's score for one participant.
type Key struct {
	JudgeID       int64 `json:"JudgeID"`
	ParticipantID int64 `json:"ParticipantID"`
}

// Coverage reports whether every assigned judge scored every registered participant.
type Coverage struct {
	Complete  bool  `json:"complete"`
	Round     Round `json:"round"`
	Expected  int   `json:"expected"`
	Submitted int   `json:"submitted"`
	Missing   []Key `json:"missing"`
}

// CheckCoverage compares judges x participants against the submitted keys.
// Submissions outside the expected grid are ignored. With no judges or no
// participants there is nothing to score and coverage is complete. Missing
// pairs are ordered by judge then participant.
func CheckCoverage(round Round, judges, participants []int64, submitted []Key) Coverage {
	judgeSet := uniqueSorted(judges)
	participantSet := uniqueSorted(participants)

	have := make(map[Key]struct{}, len(submitted))
	for _, k := range submitted {
		have[k] = struct{}{}
	}

	cov := Coverage{
		Round:    round,
		Expected: len(judgeSet) * len(participantSet),
		Missing:  []Key{},
	}
	for _, j := range judgeSet {
		for _, p := range participantSet {
			k := Key{JudgeID: j, ParticipantID: p}
			if _, ok := have[k]; ok {
				cov.Submitted++
				continue
			}
			cov.Missing = append(cov.Missing, k)
		}
	}
	cov.Complete = len(cov.Missing) == 0
	return cov
}

func uniqueSorted(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
