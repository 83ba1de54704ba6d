// Package experience derives a candidate's work history profile from the
// experience section of a resume: total years, seniority, role count, and
// notable achievements.
package experience

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/candidate-fit/internal/types"
)

var (
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	roleIndicators = []*regexp.Regexp{
		regexp.MustCompile(`\n[A-Z][a-z]+\s+(Engineer|Developer|Analyst|Scientist|Manager|Intern)`),
		regexp.MustCompile(`\n[A-Z][a-z]+\s+[A-Z][a-z]+\s+(Engineer|Developer)`),
	}

	achievementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[-•]\s*([^-•\n]{20,150})`),
		regexp.MustCompile(`(Achieved|Improved|Increased|Decreased|Led|Built|Developed)\s+([^.\n]{20,150})`),
	}

	seniorKeywords = []string{"senior", "lead", "principal", "architect"}
	juniorKeywords = []string{"junior", "associate", "trainee"}

	requiredYearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)`)
	fresherPattern       = regexp.MustCompile(`(?i)\b(fresher|entry.level|no experience|recent graduate|new grad)\b`)
)

const maxAchievements = 3

// AnalyzeExperience profiles the experience section of a resume
func AnalyzeExperience(experienceText string) types.ExperienceProfile {
	years := extractYears(experienceText)
	totalYears := totalYears(years, time.Now().Year())

	return types.ExperienceProfile{
		TotalYears:     totalYears,
		SeniorityLevel: detectSeniority(experienceText, totalYears),
		NumberOfRoles:  countRoles(experienceText),
		YearsMentioned: years,
	}
}

// extractYears finds all four-digit year mentions in text
func extractYears(text string) []int {
	matches := yearPattern.FindAllString(text, -1)
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		years = append(years, y)
	}
	return years
}

// totalYears estimates career length from year mentions. With two or more
// years it spans earliest to latest (capped at currentYear); a single year
// is read as a start date.
func totalYears(years []int, currentYear int) float64 {
	if len(years) == 0 {
		return 0
	}

	if len(years) >= 2 {
		minYear, maxYear := years[0], years[0]
		for _, y := range years[1:] {
			if y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
		if maxYear > currentYear {
			maxYear = currentYear
		}
		return float64(maxYear - minYear)
	}

	return float64(currentYear - years[0])
}

// detectSeniority prefers explicit title keywords over years banding
func detectSeniority(text string, years float64) string {
	lower := strings.ToLower(text)

	for _, word := range seniorKeywords {
		if strings.Contains(lower, word) {
			return types.SenioritySenior
		}
	}
	for _, word := range juniorKeywords {
		if strings.Contains(lower, word) {
			return types.SeniorityJunior
		}
	}
	if strings.Contains(lower, "intern") {
		return types.SeniorityEntry
	}

	switch {
	case years >= 5:
		return types.SenioritySenior
	case years >= 3:
		return types.SeniorityMid
	case years >= 1:
		return types.SeniorityJunior
	default:
		return types.SeniorityEntry
	}
}

// countRoles counts job title lines; a non-empty experience section always
// counts as at least one role
func countRoles(text string) int {
	count := 0
	for _, pattern := range roleIndicators {
		count += len(pattern.FindAllString(text, -1))
	}
	if count < 1 {
		count = 1
	}
	return count
}

// ExtractKeyAchievements pulls up to maxAchievements distinct achievement
// statements from bullet points and action-verb sentences
func ExtractKeyAchievements(experienceText string) []string {
	var achievements []string
	seen := make(map[string]bool)

	for _, pattern := range achievementPatterns {
		for _, match := range pattern.FindAllStringSubmatch(experienceText, -1) {
			achievement := strings.TrimSpace(strings.Join(match[1:], " "))
			if len(achievement) <= 20 || seen[achievement] {
				continue
			}
			seen[achievement] = true
			achievements = append(achievements, achievement)
		}
	}

	if len(achievements) > maxAchievements {
		achievements = achievements[:maxAchievements]
	}
	return achievements
}

// AnalyzeJobRequirements reads the experience demands out of a job
// description: the years figure, the implied level, and whether the role is
// open to candidates without experience.
func AnalyzeJobRequirements(jobText string) types.JobRequirements {
	req := types.JobRequirements{}

	if m := requiredYearsPattern.FindStringSubmatch(jobText); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			req.RequiredYears = float64(y)
		}
	}

	req.IsFresherRole = fresherPattern.MatchString(jobText) || req.RequiredYears == 0
	req.RequiredLevel = detectSeniority(jobText, req.RequiredYears)

	return req
}
