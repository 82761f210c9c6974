package match

import (
	"sort"
)

// Candidate is a known name scored against a misspelled one.
type Candidate struct {
	Name  string
	Score float64 // normalized Levenshtein similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// DefaultMinScore is the minimum similarity for a candidate to be suggested.
const DefaultMinScore = 0.5

// RankCandidates scores every known name against target.
// Returns candidates sorted by score (descending).
func RankCandidates(target string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NormalizedLevenshteinScore(target, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n known names that look like target, best first.
func Suggest(target string, known []string, n int) []string {
	ranked := RankCandidates(target, known).AboveThreshold(DefaultMinScore).Top(n)
	if len(ranked) == 0 {
		return nil
	}

	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
