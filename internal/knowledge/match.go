package knowledge

import "strings"

// abbreviations maps common short forms to the canonical graph spelling
var abbreviations = map[string]string{
	"ml":  "machine learning",
	"dl":  "deep learning",
	"ai":  "artificial intelligence",
	"py":  "python",
	"js":  "javascript",
	"tf":  "tensorflow",
	"k8s": "kubernetes",
}

// Normalize lowercases a skill name, trims it, and expands known abbreviations
func Normalize(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if expanded, ok := abbreviations[normalized]; ok {
		return expanded
	}
	return normalized
}

// NormalizeAndMatch reports whether two skill names refer to the same skill
// under the engine's loose matching rule: after normalization, one name must
// contain the other. The rule is intentionally permissive (it tolerates
// naming variance at the cost of false positives such as "java" matching
// "javascript") and is the single place a stricter matcher could be swapped in.
func NormalizeAndMatch(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// matchesAny reports whether any of the known skills matches the given name
func matchesAny(known []string, name string) bool {
	for _, k := range known {
		if NormalizeAndMatch(k, name) {
			return true
		}
	}
	return false
}

// normalizeAll normalizes a list of skill names
func normalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, Normalize(s))
	}
	return out
}
