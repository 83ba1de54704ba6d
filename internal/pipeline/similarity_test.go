package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSimilarity_IdenticalTexts(t *testing.T) {
	text := "experienced python developer building scalable distributed backend services with postgres and kubernetes daily"

	result := CalculateSimilarity(text, text)

	assert.Equal(t, 100.0, result.OverallSimilarity)
	assert.NotEmpty(t, result.TopMatchingTerms)
}

func TestCalculateSimilarity_DisjointTexts(t *testing.T) {
	resume := "gardening cooking painting hiking sailing photography pottery woodworking knitting baking"
	job := "python javascript kubernetes docker postgres redis terraform ansible golang rust"

	result := CalculateSimilarity(resume, job)

	assert.Equal(t, 0.0, result.OverallSimilarity)
	assert.Equal(t, 0, result.OverlapCount)
}

func TestCalculateSimilarity_ShortTextScoresZero(t *testing.T) {
	job := "we need a python developer with cloud experience and strong sql skills today"

	result := CalculateSimilarity("too short", job)

	assert.Equal(t, 0.0, result.OverallSimilarity)
	assert.Empty(t, result.TopMatchingTerms)
}

func TestCalculateSimilarity_PartialOverlap(t *testing.T) {
	resume := "python developer with experience in docker and postgres plus automated testing in production systems"
	job := "seeking python engineer knowing docker postgres and kafka for streaming workloads at huge scale"

	result := CalculateSimilarity(resume, job)

	assert.Greater(t, result.OverallSimilarity, 0.0)
	assert.Less(t, result.OverallSimilarity, 100.0)
	assert.Contains(t, result.TopMatchingTerms, "python")
	assert.Contains(t, result.TopMatchingTerms, "postgres")
}

func TestCalculateSimilarity_TermsSortedByLength(t *testing.T) {
	resume := "ab kubernetes sql deployment experience production engineering python testing infrastructure work"
	job := "kubernetes sql deployment experience production engineering python testing infrastructure work"

	result := CalculateSimilarity(resume, job)

	for i := 1; i < len(result.TopMatchingTerms); i++ {
		assert.GreaterOrEqual(t,
			len(result.TopMatchingTerms[i-1]), len(result.TopMatchingTerms[i]),
			"terms should be sorted longest first")
	}
}

func TestBasicClean_PreservesSkillPunctuation(t *testing.T) {
	cleaned := basicClean("Expert in C++, C#, and .NET (5 years)!")

	assert.Equal(t, "c++ c# and net 5 years", cleaned)
}
