package pipeline

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// minComparableWords is the minimum word count for a meaningful comparison
	minComparableWords = 10
	// minWordLength filters out short stopword-like tokens
	minWordLength = 3
	// maxMatchingTerms bounds the reported common-keyword list
	maxMatchingTerms = 10
)

var (
	nonWordChars = regexp.MustCompile(`[^a-z0-9\s+#]`)
	multiSpaces  = regexp.MustCompile(`\s+`)
)

// SimilarityResult holds the text-level overlap between resume and job posting
type SimilarityResult struct {
	OverallSimilarity float64  `json:"overall_similarity"` // 0-100, two decimals
	TopMatchingTerms  []string `json:"top_matching_terms"`
	OverlapCount      int      `json:"overlap_count"`
}

// CalculateSimilarity measures how much of the job posting's vocabulary the
// resume covers. Scores are the share of distinct job-posting words (length
// >= 3 after cleaning) that also appear in the resume, scaled to 0-100.
// Either text shorter than minComparableWords scores 0.
func CalculateSimilarity(resumeText, jobText string) SimilarityResult {
	resumeClean := basicClean(resumeText)
	jobClean := basicClean(jobText)

	if len(strings.Fields(resumeClean)) < minComparableWords ||
		len(strings.Fields(jobClean)) < minComparableWords {
		return SimilarityResult{TopMatchingTerms: []string{}}
	}

	resumeWords := wordSet(resumeClean)
	jobWords := wordSet(jobClean)
	if len(jobWords) == 0 {
		return SimilarityResult{TopMatchingTerms: []string{}}
	}

	overlap := make([]string, 0)
	for w := range resumeWords {
		if jobWords[w] {
			overlap = append(overlap, w)
		}
	}

	// Longer words tend to be more meaningful; ties alphabetical for
	// deterministic output
	sort.Slice(overlap, func(i, j int) bool {
		if len(overlap[i]) != len(overlap[j]) {
			return len(overlap[i]) > len(overlap[j])
		}
		return overlap[i] < overlap[j]
	})

	top := overlap
	if len(top) > maxMatchingTerms {
		top = top[:maxMatchingTerms]
	}

	return SimilarityResult{
		OverallSimilarity: round2(float64(len(overlap)) / float64(len(jobWords)) * 100),
		TopMatchingTerms:  top,
		OverlapCount:      len(overlap),
	}
}

// basicClean lowercases and strips everything except alphanumerics, spaces,
// and the + and # characters that appear in skill names like "c++" and "c#".
func basicClean(text string) string {
	text = strings.ToLower(text)
	text = nonWordChars.ReplaceAllString(text, " ")
	text = multiSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func wordSet(cleaned string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(cleaned) {
		if len(w) >= minWordLength {
			words[w] = true
		}
	}
	return words
}
