// Package generator implements the project idea generation pipeline:
// prompt construction, the single chat-completion call, and reconciliation
// of unreliable model output into schema-complete project records.
package generator

import (
	"fmt"
	"strings"

	"github.com/devgen/devproject-generator/internal/types"
)

// SystemPrompt is the fixed system-role instruction for the completion call.
const SystemPrompt = "You are a helpful assistant that generates detailed project ideas for developers. Respond in JSON format with comprehensive information about each project."

// projectTypeNames maps project-type keys to their display names. Unknown
// keys are title-cased verbatim by FormatProjectType.
var projectTypeNames = map[string]string{
	"ecommerce": "E-commerce",
	"dashboard": "Dashboard",
	"social":    "Social Network",
	"tool":      "Developer Tool",
	"portfolio": "Portfolio",
	"game":      "Browser Game",
	"blog":      "Blog System",
	"api":       "API Integration",
}

// ExperienceLevel buckets a 0-100 experience score into a display label.
// The UI computes the same buckets independently, so the boundaries here
// must not drift.
func ExperienceLevel(experience int) string {
	switch {
	case experience < 25:
		return "Beginner"
	case experience < 50:
		return "Intermediate"
	case experience < 75:
		return "Advanced"
	default:
		return "Expert"
	}
}

// TimeEstimate maps a time-commitment code to an hour-range label.
func TimeEstimate(timeCommitment string) string {
	switch timeCommitment {
	case "small":
		return "5-10 hours"
	case "medium":
		return "10-25 hours"
	case "large":
		return "25-50+ hours"
	default:
		return "a few hours"
	}
}

// FormatProjectType resolves a project-type key to its display name.
func FormatProjectType(projectType string) string {
	if name, ok := projectTypeNames[projectType]; ok {
		return name
	}
	return titleCase(projectType)
}

// titleCase upper-cases the first byte only, leaving the rest untouched.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildPrompt turns a user profile into the generation instruction for the
// model. It asks for exactly 4 projects with 13 named fields each and embeds
// an example object to bias the model toward valid JSON array output.
func BuildPrompt(profile types.UserProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate 4 detailed project ideas for a %s-level frontend developer with the following specifications:\n\n",
		ExperienceLevel(profile.Experience))

	sb.WriteString("DEVELOPER PROFILE:\n")
	fmt.Fprintf(&sb, "- Skills: %s\n", strings.Join(profile.Skills, ", "))
	fmt.Fprintf(&sb, "- Experience Level: %s (%d/100)\n", ExperienceLevel(profile.Experience), profile.Experience)
	fmt.Fprintf(&sb, "- Project Complexity Preference: %s\n", profile.Complexity)
	fmt.Fprintf(&sb, "- Project Type Focus: %s\n", profile.ProjectType)
	fmt.Fprintf(&sb, "- Available Time: %s (%s)\n", TimeEstimate(profile.TimeCommitment), profile.TimeCommitment)
	if profile.Industry != "" {
		fmt.Fprintf(&sb, "- Industry Domain: %s\n", profile.Industry)
	}

	sb.WriteString(`
FOR EACH PROJECT, INCLUDE:
1. Title: A professional, concise project name
2. Difficulty: One of: Simple, Medium, or Complex
3. Estimated Time: Realistic completion timeframe
4. Type: The specific category this project falls under
5. Description: Brief explanation of what the project is
6. Overview: A more detailed description of the project's purpose and value
7. Employer Appeal: Why this project would impress potential employers
8. Features: 5-7 specific implementable features
9. Tech Stack: Required technologies, including the developer's skills plus complementary libraries
10. Learning Opportunities: 4-5 specific skills the developer will gain
11. Challenges: 2-3 potential technical challenges and how to address them
12. Implementation Steps: 3-4 phases of development with tasks and time estimates for each
13. Resources: 2-4 helpful resources with links and descriptions

RESPONSE FORMAT:
Return the response in valid JSON format as an array of project objects. Each project should follow this structure:

`)
	sb.WriteString(exampleSchema)

	return sb.String()
}

// exampleSchema is the literal example embedded in every prompt. Kept as one
// block so the model sees real JSON rather than a prose description.
const exampleSchema = `[
  {
    "title": "Project Title",
    "difficulty": "Medium",
    "estimatedTime": "1-2 weeks",
    "type": "Dashboard",
    "description": "Project description here",
    "overview": "A more comprehensive overview of the project, its purpose, and target audience",
    "employerAppeal": "Why this project is valuable for employment",
    "features": [
      "Feature 1 with explanation",
      "Feature 2 with explanation",
      "Feature 3 with explanation",
      "Feature 4 with explanation",
      "Feature 5 with explanation"
    ],
    "techStack": ["Tech 1", "Tech 2", "Tech 3"],
    "learningOpportunities": [
      "Learning opportunity 1",
      "Learning opportunity 2",
      "Learning opportunity 3",
      "Learning opportunity 4"
    ],
    "challenges": [
      "Challenge 1 and solution approach",
      "Challenge 2 and solution approach"
    ],
    "implementationSteps": [
      {
        "phase": "Setup",
        "description": "Initial project configuration",
        "tasks": [
          "Task 1",
          "Task 2",
          "Task 3"
        ],
        "estimatedTime": "X hours/days"
      },
      {
        "phase": "Core Development",
        "description": "Building main features",
        "tasks": [
          "Task 1",
          "Task 2",
          "Task 3"
        ],
        "estimatedTime": "X hours/days"
      }
    ],
    "resources": [
      {
        "title": "Resource title",
        "url": "Resource URL",
        "type": "Tutorial/Documentation/Article",
        "description": "Brief description of resource"
      }
    ]
  }
]`
