// Package extraction pulls structured signals out of raw resume and job
// description text: taxonomy-matched skills with confidence, resume
// sections, and contact details.
package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/candidate-fit/internal/types"
)

const (
	contextWindow    = 50
	maxContextLength = 100

	baseConfidence       = 0.5
	perMentionBoost      = 0.1
	maxMentionConfidence = 1.0
)

// taxonomySchema constrains the taxonomy file to a map of category name to
// a non-empty list of skill names.
const taxonomySchema = `{
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "array",
    "minItems": 1,
    "items": {"type": "string", "minLength": 1}
  }
}`

// TaxonomyError reports a taxonomy file that could not be loaded or failed
// schema validation.
type TaxonomyError struct {
	Path   string
	Reason string
	Err    error
}

func (e *TaxonomyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("skill taxonomy %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("skill taxonomy %s: %s", e.Path, e.Reason)
}

func (e *TaxonomyError) Unwrap() error { return e.Err }

// Extractor matches text against a category-keyed skill taxonomy
type Extractor struct {
	taxonomy   map[string][]string
	categories []string
}

// NewExtractor loads and validates the taxonomy at path
func NewExtractor(path string) (*Extractor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &TaxonomyError{Path: path, Reason: "read failed", Err: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(taxonomySchema),
		gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &TaxonomyError{Path: path, Reason: "schema check failed", Err: err}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, &TaxonomyError{Path: path, Reason: strings.Join(details, "; ")}
	}

	var taxonomy map[string][]string
	if err := json.Unmarshal(raw, &taxonomy); err != nil {
		return nil, &TaxonomyError{Path: path, Reason: "decode failed", Err: err}
	}

	categories := make([]string, 0, len(taxonomy))
	for category := range taxonomy {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &Extractor{taxonomy: taxonomy, categories: categories}, nil
}

// ExtractSkills scans text for every taxonomy skill. Each category's
// mentions are sorted by descending confidence; categories with no mentions
// are omitted.
func (e *Extractor) ExtractSkills(text string) types.ExtractedSkills {
	textLower := strings.ToLower(text)
	extracted := make(types.ExtractedSkills)

	for _, category := range e.categories {
		var mentions []types.SkillMention

		for _, skill := range e.taxonomy[category] {
			skillLower := strings.ToLower(skill)
			count := strings.Count(textLower, skillLower)
			if count == 0 {
				continue
			}

			confidence := baseConfidence + float64(count)*perMentionBoost
			if confidence > maxMentionConfidence {
				confidence = maxMentionConfidence
			}

			mentions = append(mentions, types.SkillMention{
				Skill:      skill,
				Category:   category,
				Count:      count,
				Confidence: round2(confidence),
				Context:    truncate(e.extractContext(text, skill), maxContextLength),
			})
		}

		if len(mentions) > 0 {
			sort.SliceStable(mentions, func(i, j int) bool {
				return mentions[i].Confidence > mentions[j].Confidence
			})
			extracted[category] = mentions
		}
	}

	return extracted
}

// extractContext returns the text surrounding the first skill mention
func (e *Extractor) extractContext(text, skill string) string {
	pos := strings.Index(strings.ToLower(text), strings.ToLower(skill))
	if pos == -1 {
		return ""
	}

	start := pos - contextWindow
	if start < 0 {
		start = 0
	}
	end := pos + len(skill) + contextWindow
	if end > len(text) {
		end = len(text)
	}

	return text[start:end]
}

// ExtractSkillYears looks for an explicit years figure tied to one skill,
// such as "5 years of Python" or "Python (3 yrs)". Returns 0 when no figure
// is stated.
func (e *Extractor) ExtractSkillYears(text, skill string) float64 {
	textLower := strings.ToLower(text)
	quoted := regexp.QuoteMeta(strings.ToLower(skill))

	patterns := []string{
		`(\d+)\s*(?:years?|yrs?)\s+(?:of\s+)?` + quoted,
		quoted + `\s*\((\d+)\s*(?:years?|yrs?)\)`,
		quoted + `.*?(\d+)\s*(?:years?|yrs?)`,
	}

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(textLower); m != nil {
			years, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				return years
			}
		}
	}

	return 0
}

// Categories returns the taxonomy category names in sorted order
func (e *Extractor) Categories() []string {
	out := make([]string, len(e.categories))
	copy(out, e.categories)
	return out
}

// CategoryOf reports which taxonomy category contains skill, matched
// case-insensitively. The second return is false for unknown skills.
func (e *Extractor) CategoryOf(skill string) (string, bool) {
	skillLower := strings.ToLower(skill)
	for _, category := range e.categories {
		for _, s := range e.taxonomy[category] {
			if strings.ToLower(s) == skillLower {
				return category, true
			}
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
