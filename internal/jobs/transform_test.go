package jobs

import (
	"reflect"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name string
		job  rawJob
		want string
	}{
		{"full", rawJob{JobCity: "Austin", JobState: "TX", JobCountry: "US"}, "Austin, TX, US"},
		{"partial", rawJob{JobState: "TX", JobCountry: "US"}, "TX, US"},
		{"remote no city", rawJob{JobIsRemote: true}, "Remote"},
		{"remote with city", rawJob{JobIsRemote: true, JobCity: "Austin"}, "Austin"},
		{"empty", rawJob{}, "Not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLocation(tt.job); got != tt.want {
				t.Errorf("formatLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmploymentType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"FULLTIME", "Full-time"},
		{"PARTTIME", "Part-time"},
		{"CONTRACTOR", "Contract"},
		{"INTERN", "Internship"},
		{"", "Full-time"},
		{"Seasonal", "Seasonal"},
	}

	for _, tt := range tests {
		if got := employmentType(tt.raw); got != tt.want {
			t.Errorf("employmentType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExperienceLevel(t *testing.T) {
	withMonths := func(m int) rawJob {
		return rawJob{RequiredExperience: &struct {
			RequiredExperienceInMonths *int `json:"required_experience_in_months"`
		}{RequiredExperienceInMonths: intPtr(m)}}
	}

	tests := []struct {
		name string
		job  rawJob
		want string
	}{
		{"missing", rawJob{}, "Mid Level"},
		{"entry", withMonths(6), "Entry Level"},
		{"junior", withMonths(12), "Junior"},
		{"junior upper", withMonths(35), "Junior"},
		{"mid", withMonths(36), "Mid Level"},
		{"senior", withMonths(60), "Senior"},
		{"very senior", withMonths(120), "Senior"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := experienceLevel(tt.job); got != tt.want {
				t.Errorf("experienceLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name string
		min  *float64
		max  *float64
		want string
	}{
		{"range", floatPtr(85000), floatPtr(120000), "$85,000 - $120,000"},
		{"min only", floatPtr(85000), nil, "From $85,000"},
		{"max only", nil, floatPtr(1234567.6), "Up to $1,234,568"},
		{"none", nil, nil, "Not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSalary(tt.min, tt.max); got != tt.want {
				t.Errorf("formatSalary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		postedAt string
		want     string
	}{
		{"just now", "2025-06-15T11:59:30Z", "Just now"},
		{"minutes", "2025-06-15T11:45:00Z", "15 minutes ago"},
		{"one hour", "2025-06-15T10:30:00Z", "1 hour ago"},
		{"days", "2025-06-12T12:00:00Z", "3 days ago"},
		{"months", "2025-03-15T12:00:00Z", "3 months ago"},
		{"unparseable", "yesterday", "Recently"},
		{"empty", "", "Recently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeTime(tt.postedAt, now); got != tt.want {
				t.Errorf("relativeTime(%q) = %q, want %q", tt.postedAt, got, tt.want)
			}
		})
	}
}

func TestStripHTML(t *testing.T) {
	in := "<div><h2>About</h2><p>We build   things.</p><ul><li>Fast</li></ul></div>"
	got := stripHTML(in)
	want := "About We build things. Fast"
	if got != want {
		t.Errorf("stripHTML() = %q, want %q", got, want)
	}

	plain := "No markup here."
	if got := stripHTML(plain); got != plain {
		t.Errorf("stripHTML(%q) = %q", plain, got)
	}
}

func TestExtractRequirements(t *testing.T) {
	desc := "Join us. We require 3+ years of experience with React and TypeScript. " +
		"You should have strong knowledge of CSS layout techniques. " +
		"Free snacks provided every single day in all our offices worldwide. " +
		"Hi."
	got := extractRequirements(desc)

	want := []string{
		"We require 3+ years of experience with React and TypeScript",
		"You should have strong knowledge of CSS layout techniques",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractRequirements() = %v, want %v", got, want)
	}
}

func TestExtractRequirements_Default(t *testing.T) {
	got := extractRequirements("Short text.")
	if len(got) != 3 || got[0] != "Relevant experience in the field" {
		t.Errorf("expected default requirements, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	job := rawJob{
		JobID:             "abc123",
		JobTitle:          "Frontend Engineer",
		EmployerName:      "Acme",
		JobCity:           "Austin",
		JobState:          "TX",
		JobCountry:        "US",
		JobEmploymentType: "FULLTIME",
		JobApplyLink:      "https://jobs.example.com/abc123",
		JobDescription:    "<p>Build UIs. Requires experience with React components and hooks.</p>",
		JobIsRemote:       false,
		JobPostedAtUTC:    "2025-06-13T12:00:00Z",
		JobMinSalary:      floatPtr(90000),
		JobMaxSalary:      floatPtr(130000),
	}

	got := normalize(job, now)

	if got.ID != "abc123" || got.Title != "Frontend Engineer" || got.Company != "Acme" {
		t.Errorf("identity fields wrong: %+v", got)
	}
	if got.Location != "Austin, TX, US" {
		t.Errorf("Location = %q", got.Location)
	}
	if got.Type != "Full-time" {
		t.Errorf("Type = %q", got.Type)
	}
	if got.Salary != "$90,000 - $130,000" {
		t.Errorf("Salary = %q", got.Salary)
	}
	if got.PostedDate != "2 days ago" {
		t.Errorf("PostedDate = %q", got.PostedDate)
	}
	if got.Description != "Build UIs. Requires experience with React components and hooks." {
		t.Errorf("Description = %q", got.Description)
	}
	if len(got.Requirements) == 0 {
		t.Error("expected requirements mined from description")
	}
}

func TestNormalize_EmptyFieldsGetPlaceholders(t *testing.T) {
	got := normalize(rawJob{JobID: "x"}, time.Now())
	if got.Title != "Untitled Position" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Company != "Unknown Company" {
		t.Errorf("Company = %q", got.Company)
	}
	if got.Salary != "Not specified" {
		t.Errorf("Salary = %q", got.Salary)
	}
	if got.PostedDate != "Recently" {
		t.Errorf("PostedDate = %q", got.PostedDate)
	}
}
