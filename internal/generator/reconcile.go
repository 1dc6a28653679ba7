package generator

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/devgen/devproject-generator/internal/llm"
	"github.com/devgen/devproject-generator/internal/schemas"
	"github.com/devgen/devproject-generator/internal/types"
)

// jsonArrayPattern matches the first bracket-delimited array of
// brace-delimited objects embedded in free text, for replies where the model
// wrapped its JSON in markdown or commentary.
var jsonArrayPattern = regexp.MustCompile(`\[\s*\{[\s\S]*\}\s*\]`)

// Reconcile turns a raw model reply into a schema-complete project list.
// It never fails: parse errors and unusable shapes degrade to the fallback
// catalog, and every element is run through field-level defaulting so no
// required field is ever absent. Values the model did provide are preserved
// verbatim, even where they conflict with the profile.
func Reconcile(raw string, profile types.UserProfile) []types.ProjectIdea {
	cleaned := llm.CleanJSONBlock(raw)
	projects, ok := parseCandidate(cleaned)
	if !ok {
		log.Printf("completion output unusable, serving fallback catalog: %v",
			schemas.ValidateProjectArray(cleaned))
		projects = DefaultProjects(profile.Skills)
	}

	for i := range projects {
		applyDefaults(&projects[i], i, profile)
	}
	return projects
}

// parseCandidate attempts strict parsing first, then embedded-array
// extraction. Both attempts are gated on the candidate being a non-empty
// JSON array of objects.
func parseCandidate(text string) ([]types.ProjectIdea, bool) {
	if projects, ok := decodeProjectArray(text); ok {
		return projects, true
	}

	match := jsonArrayPattern.FindString(text)
	if match == "" {
		return nil, false
	}
	return decodeProjectArray(match)
}

func decodeProjectArray(doc string) ([]types.ProjectIdea, bool) {
	if !schemas.IsProjectArray(doc) {
		return nil, false
	}
	var projects []types.ProjectIdea
	if err := json.Unmarshal([]byte(doc), &projects); err != nil {
		return nil, false
	}
	return projects, true
}

// applyDefaults fills every missing or empty field of a project from
// deterministic per-request fallbacks. Present values are never overwritten,
// so running it on an already-complete record is a no-op.
func applyDefaults(p *types.ProjectIdea, index int, profile types.UserProfile) {
	if p.ID == 0 {
		p.ID = index + 1
	}
	if p.Title == "" {
		p.Title = "Unnamed Project"
	}
	if p.Difficulty == "" {
		p.Difficulty = titleCase(profile.Complexity)
	}
	if p.EstimatedTime == "" {
		p.EstimatedTime = TimeEstimate(profile.TimeCommitment)
	}
	if p.Type == "" {
		p.Type = FormatProjectType(profile.ProjectType)
	}
	if p.Description == "" {
		p.Description = fmt.Sprintf("A project using %s", strings.Join(profile.Skills, ", "))
	}
	// Overview falls back to the (possibly just defaulted) description.
	if p.Overview == "" {
		p.Overview = p.Description
	}
	if p.EmployerAppeal == "" {
		p.EmployerAppeal = fmt.Sprintf("This project demonstrates proficiency in %s and problem-solving skills.",
			strings.Join(firstN(profile.Skills, 3), ", "))
	}
	if len(p.Features) == 0 {
		p.Features = []string{"Feature 1", "Feature 2", "Feature 3"}
	}
	if len(p.TechStack) == 0 {
		p.TechStack = append([]string{}, profile.Skills...)
	}
	if len(p.LearningOpportunities) == 0 {
		p.LearningOpportunities = []string{"Learning opportunity"}
	}
	if len(p.ImplementationSteps) == 0 {
		p.ImplementationSteps = []types.ImplementationPhase{}
	}
	if len(p.Challenges) == 0 {
		p.Challenges = []string{}
	}
	if len(p.Resources) == 0 {
		p.Resources = []types.Resource{}
	}
}
