package server

import (
	"encoding/json"
	"net/http"

	"github.com/devgen/devproject-generator/internal/types"
)

// generateResponse is the envelope for generation results.
type generateResponse struct {
	Projects []types.ProjectIdea `json:"projects"`
}

// handleGenerateProjects produces project ideas for a skill profile.
// Provider failures never surface to the client: the pipeline degrades to
// the fallback catalog and this handler still answers 200.
func (s *Server) handleGenerateProjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		s.errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	if !profile.HasRequiredFields() {
		s.errorResponse(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	projects := s.generator.Generate(r.Context(), profile)
	s.jsonResponse(w, http.StatusOK, generateResponse{Projects: projects})
}
