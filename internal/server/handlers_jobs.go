package server

import (
	"log"
	"net/http"
	"strconv"
)

// handleJobSearch proxies a listing search to the jobs API. Upstream
// failures surface as 502 so clients can distinguish them from empty
// result sets.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = "frontend developer"
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		location = "remote"
	}

	pages := 1
	if raw := r.URL.Query().Get("pages"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pages = n
		}
	}
	remoteOnly := r.URL.Query().Get("remote") == "true"

	listings, err := s.jobs.Search(r.Context(), query, location, pages, remoteOnly)
	if err != nil {
		log.Printf("job search failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "job search unavailable")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": listings})
}

// handleJobDetails returns one normalized listing by id.
func (s *Server) handleJobDetails(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if jobID == "" {
		s.errorResponse(w, http.StatusBadRequest, "job id is required")
		return
	}

	listing, err := s.jobs.Details(r.Context(), jobID)
	if err != nil {
		log.Printf("job details failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "job search unavailable")
		return
	}

	s.jsonResponse(w, http.StatusOK, listing)
}

// handleJobSalary returns the raw estimated-salary document for a title.
func (s *Server) handleJobSalary(w http.ResponseWriter, r *http.Request) {
	jobTitle := r.URL.Query().Get("job_title")
	if jobTitle == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_title is required")
		return
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		location = "remote"
	}

	salary, err := s.jobs.EstimatedSalary(r.Context(), jobTitle, location)
	if err != nil {
		log.Printf("salary estimate failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "job search unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(salary); err != nil {
		log.Printf("Error writing salary response: %v", err)
	}
}
