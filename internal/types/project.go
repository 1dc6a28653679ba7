package types

// ProjectIdea is a schema-complete project suggestion returned by the
// generation pipeline. Raw model output may omit any of these fields; the
// reconciler guarantees every one is populated before the idea leaves the
// server.
type ProjectIdea struct {
	ID                    int                   `json:"id"`
	Title                 string                `json:"title"`
	Difficulty            string                `json:"difficulty"`
	EstimatedTime         string                `json:"estimatedTime"`
	Type                  string                `json:"type"`
	Description           string                `json:"description"`
	Overview              string                `json:"overview"`
	EmployerAppeal        string                `json:"employerAppeal"`
	Features              []string              `json:"features"`
	TechStack             []string              `json:"techStack"`
	LearningOpportunities []string              `json:"learningOpportunities"`
	ImplementationSteps   []ImplementationPhase `json:"implementationSteps"`
	Challenges            []string              `json:"challenges"`
	Resources             []Resource            `json:"resources"`
}

// ImplementationPhase is one development phase within a project plan.
type ImplementationPhase struct {
	Phase         string   `json:"phase"`
	Description   string   `json:"description"`
	Tasks         []string `json:"tasks"`
	EstimatedTime string   `json:"estimatedTime"`
}

// Resource is a learning resource attached to a project idea.
type Resource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
