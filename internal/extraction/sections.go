package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/candidate-fit/internal/types"
)

// sectionPatterns maps canonical section names to their header forms
var sectionPatterns = map[string]*regexp.Regexp{
	"experience":     regexp.MustCompile(`(?i)(experience|work history|employment|professional experience)`),
	"education":      regexp.MustCompile(`(?i)(education|academic|qualification|degree)`),
	"skills":         regexp.MustCompile(`(?i)(skills|technical skills|core competencies|expertise)`),
	"projects":       regexp.MustCompile(`(?i)(projects|portfolio|work samples)`),
	"certifications": regexp.MustCompile(`(?i)(certifications|certificates|training)`),
}

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,5}[-\s.]?[0-9]{1,5}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	digitRun        = regexp.MustCompile(`[0-9]`)
)

const minPhoneDigits = 7

// DetectSections splits resume text into named sections. Each section runs
// from its header to the next detected header; only the first occurrence of
// a section name is kept. Text with no recognizable headers comes back whole
// under "general".
func DetectSections(text string) map[string]string {
	text = strings.TrimSpace(text)

	type headerHit struct {
		name      string
		start     int
		headerEnd int
	}

	var hits []headerHit
	for name, pattern := range sectionPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			hits = append(hits, headerHit{name: name, start: loc[0], headerEnd: loc[1]})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].start != hits[j].start {
			return hits[i].start < hits[j].start
		}
		return hits[i].name < hits[j].name
	})

	sections := make(map[string]string)
	for i, hit := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		if _, seen := sections[hit.name]; !seen {
			sections[hit.name] = strings.TrimSpace(text[hit.headerEnd:end])
		}
	}

	if len(sections) == 0 {
		sections["general"] = text
	}

	return sections
}

// ExtractContactInfo pulls email, phone, LinkedIn, and GitHub handles out of
// resume text. Absent fields stay empty.
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{
		Email:    emailPattern.FindString(text),
		LinkedIn: linkedinPattern.FindString(text),
		GitHub:   githubPattern.FindString(text),
	}

	// The phone pattern is loose enough to hit years and version numbers,
	// so only matches with enough digits count.
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		if len(digitRun.FindAllString(candidate, -1)) >= minPhoneDigits {
			info.Phone = strings.TrimSpace(candidate)
			break
		}
	}

	return info
}
