package jobs

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Listing is the normalized job record served to clients.
type Listing struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Type            string   `json:"type"`
	ExperienceLevel string   `json:"experienceLevel"`
	Salary          string   `json:"salary"`
	PostedDate      string   `json:"postedDate"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Remote          bool     `json:"remote"`
	ApplyURL        string   `json:"applyUrl"`
	Logo            string   `json:"logo,omitempty"`
}

// normalize converts one raw upstream job into a Listing.
func normalize(job rawJob, now time.Time) Listing {
	description := stripHTML(job.JobDescription)

	requirements := job.JobRequiredSkills
	if len(requirements) == 0 {
		requirements = extractRequirements(description)
	}

	return Listing{
		ID:              job.JobID,
		Title:           fallbackString(job.JobTitle, "Untitled Position"),
		Company:         fallbackString(job.EmployerName, "Unknown Company"),
		Location:        formatLocation(job),
		Type:            employmentType(job.JobEmploymentType),
		ExperienceLevel: experienceLevel(job),
		Salary:          formatSalary(job.JobMinSalary, job.JobMaxSalary),
		PostedDate:      relativeTime(job.JobPostedAtUTC, now),
		Description:     description,
		Requirements:    requirements,
		Remote:          job.JobIsRemote,
		ApplyURL:        job.JobApplyLink,
		Logo:            job.EmployerLogo,
	}
}

func fallbackString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// formatLocation joins the non-empty location parts, preferring "Remote" for
// remote listings with no city.
func formatLocation(job rawJob) string {
	if job.JobIsRemote && job.JobCity == "" {
		return "Remote"
	}

	var parts []string
	for _, part := range []string{job.JobCity, job.JobState, job.JobCountry} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, ", ")
}

// employmentType maps upstream employment-type codes to display labels.
func employmentType(raw string) string {
	switch strings.ToUpper(raw) {
	case "FULLTIME", "FULL-TIME":
		return "Full-time"
	case "PARTTIME", "PART-TIME":
		return "Part-time"
	case "CONTRACTOR", "CONTRACT":
		return "Contract"
	case "INTERN", "INTERNSHIP":
		return "Internship"
	case "":
		return "Full-time"
	default:
		return raw
	}
}

// experienceLevel buckets required experience in months into a seniority
// label. Listings without the field default to mid level.
func experienceLevel(job rawJob) string {
	if job.RequiredExperience == nil || job.RequiredExperience.RequiredExperienceInMonths == nil {
		return "Mid Level"
	}
	months := *job.RequiredExperience.RequiredExperienceInMonths
	switch {
	case months < 12:
		return "Entry Level"
	case months < 36:
		return "Junior"
	case months < 60:
		return "Mid Level"
	default:
		return "Senior"
	}
}

// formatSalary renders a salary range as rounded dollar figures with
// thousands separators.
func formatSalary(minSalary, maxSalary *float64) string {
	switch {
	case minSalary != nil && maxSalary != nil:
		return fmt.Sprintf("$%s - $%s", formatMoney(*minSalary), formatMoney(*maxSalary))
	case minSalary != nil:
		return fmt.Sprintf("From $%s", formatMoney(*minSalary))
	case maxSalary != nil:
		return fmt.Sprintf("Up to $%s", formatMoney(*maxSalary))
	default:
		return "Not specified"
	}
}

// formatMoney rounds to a whole dollar amount and inserts comma separators.
func formatMoney(v float64) string {
	digits := fmt.Sprintf("%d", int64(math.Round(v)))

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if negative {
		return "-" + sb.String()
	}
	return sb.String()
}

// relativeTime renders an RFC 3339 posting timestamp as a coarse "ago"
// string. Unparseable or missing timestamps come back as "Recently".
func relativeTime(postedAt string, now time.Time) string {
	if postedAt == "" {
		return "Recently"
	}
	posted, err := time.Parse(time.RFC3339, postedAt)
	if err != nil {
		return "Recently"
	}

	elapsed := now.Sub(posted)
	switch {
	case elapsed >= 30*24*time.Hour:
		months := int(elapsed.Hours() / (30 * 24))
		return pluralAgo(months, "month")
	case elapsed >= 24*time.Hour:
		return pluralAgo(int(elapsed.Hours()/24), "day")
	case elapsed >= time.Hour:
		return pluralAgo(int(elapsed.Hours()), "hour")
	case elapsed >= time.Minute:
		return pluralAgo(int(elapsed.Minutes()), "minute")
	default:
		return "Just now"
	}
}

func pluralAgo(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// stripHTML flattens an HTML job description to plain text. Descriptions that
// carry no markup pass through unchanged apart from whitespace cleanup.
func stripHTML(description string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return strings.TrimSpace(description)
	}
	// Block elements collapse together without separators when flattened.
	doc.Find("p, li, h1, h2, h3, h4, h5, h6, div, br").AfterHtml(" ")
	text := doc.Text()
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	sentencePattern   = regexp.MustCompile(`[.!?]+`)
)

// requirementKeywords flag sentences that likely describe a qualification.
var requirementKeywords = []string{
	"experience", "knowledge", "proficient", "familiar", "degree",
	"years", "skill", "ability", "understanding", "expertise",
	"javascript", "typescript", "react", "node", "python", "java",
	"css", "html", "sql", "aws", "docker", "git",
}

// defaultRequirements is served when no usable sentences can be mined from
// the description.
var defaultRequirements = []string{
	"Relevant experience in the field",
	"Strong communication skills",
	"Ability to work in a team environment",
}

// extractRequirements mines qualification-like sentences from a plain-text
// description. At most five sentences of reasonable length survive.
func extractRequirements(description string) []string {
	var requirements []string
	for _, sentence := range sentencePattern.Split(description, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 20 || len(sentence) > 120 {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, keyword := range requirementKeywords {
			if strings.Contains(lower, keyword) {
				requirements = append(requirements, sentence)
				break
			}
		}
		if len(requirements) == 5 {
			break
		}
	}
	if len(requirements) == 0 {
		return append([]string(nil), defaultRequirements...)
	}
	return requirements
}
