// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package score

import "sort"

// DefaultThreshold is the minimum combined similarity a candidate must
// reach to be reported as a likely duplicate.
const DefaultThreshold = 0.6

// Weights of the combined score when both title and composer are present.
// When the query has no composer the title similarity stands alone.
const (
	titleWeight    = 0.7
	composerWeight = 0.3
)

// Confidence tiers attached to a match.
type Confidence string

const (
	// ConfidenceHigh: the canonical ids match exactly.
	ConfidenceHigh Confidence = "high"

	// ConfidenceMedium: combined similarity of at least 0.8.
	ConfidenceMedium Confidence = "medium"

	// ConfidenceLow: at or above the threshold but below 0.8.
	ConfidenceLow Confidence = "low"
)

// Candidate is one already registered piece reference to match against.
type Candidate struct {
	Title    string
	Composer string
}

// Match is a candidate that scored at or above the threshold.
type Match struct {
	Candidate Candidate

	// Index is the candidate's position in the input slice, i.e. its
	// original registration order.
	Index int

	// Score is the combined weighted similarity in [0, 1].
	Score float64

	Confidence Confidence
}

// FindSimilarPieces ranks candidates by similarity to the given (title,
// composer) query and returns those at or above threshold, best first.
//
// The combined score is a weighted average of title and composer
// similarity; when the query carries no composer, only the title counts.
// Ties are broken by the candidate's registration order (the sort is
// stable), so results are deterministic across runs.
//
// A non-positive threshold selects DefaultThreshold.
func FindSimilarPieces(title, composer string, candidates []Candidate, threshold float64) []Match {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	queryID := CanonicalID(title, composer)

	matches := make([]Match, 0, len(candidates))
	for i, cand := range candidates {
		titleScore := Similarity(title, cand.Title)

		var combined float64
		if composer == "" || cand.Composer == "" {
			combined = titleScore
		} else {
			composerScore := Similarity(NormalizeComposer(composer), NormalizeComposer(cand.Composer))
			combined = titleWeight*titleScore + composerWeight*composerScore
		}

		candID := CanonicalID(cand.Title, cand.Composer)

		confidence := ConfidenceLow
		switch {
		case queryID == candID:
			confidence = ConfidenceHigh
			combined = 1
		case combined >= 0.8:
			confidence = ConfidenceMedium
		}

		if combined < threshold {
			continue
		}

		matches = append(matches, Match{
			Candidate:  cand,
			Index:      i,
			Score:      combined,
			Confidence: confidence,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// IsSameScoreWithFuzzy reports whether two canonical ids likely refer to
// the same work: an exact canonical match short-circuits to true,
// otherwise the combined similarity of the parsed parts must reach
// threshold.
func IsSameScoreWithFuzzy(a, b string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	if IsSameScore(a, b) {
		return true
	}
	if IsOpaqueID(a) || IsOpaqueID(b) {
		return false
	}

	at, ac := ParseID(a)
	bt, bc := ParseID(b)

	titleScore := Similarity(at, bt)
	if ac == "" || bc == "" {
		return titleScore >= threshold
	}

	composerScore := Similarity(ac, bc)
	return titleWeight*titleScore+composerWeight*composerScore >= threshold
}
