// Package types provides type definitions for structured data used throughout the project generator.
package types

// UserProfile is the set of constraints a developer submits to drive project generation.
type UserProfile struct {
	Skills         []string `json:"skills"`
	Experience     int      `json:"experience"`
	Complexity     string   `json:"complexity"`
	ProjectType    string   `json:"projectType"`
	Industry       string   `json:"industry,omitempty"`
	TimeCommitment string   `json:"timeCommitment"`
}

// HasRequiredFields reports whether the profile carries everything the
// pipeline needs. Experience and industry are optional; the rest must be
// present before any model call is made.
func (p *UserProfile) HasRequiredFields() bool {
	return len(p.Skills) > 0 && p.Complexity != "" && p.ProjectType != "" && p.TimeCommitment != ""
}
