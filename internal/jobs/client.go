// Package jobs provides a client for the JSearch job-listings API and
// normalization of its raw listings into the application's job format.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultHost is the RapidAPI host for the JSearch API.
const DefaultHost = "jsearch.p.rapidapi.com"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Error represents a failure talking to the jobs API.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("jobs api error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("jobs api error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client calls the JSearch API with a RapidAPI key.
type Client struct {
	apiKey     string
	host       string
	httpClient *http.Client
}

// NewClient creates a jobs API client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		host:   DefaultHost,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// rawSearchResponse is the upstream search/details envelope.
type rawSearchResponse struct {
	Status string   `json:"status"`
	Data   []rawJob `json:"data"`
}

// rawJob mirrors the subset of upstream listing fields the board consumes.
type rawJob struct {
	JobID              string   `json:"job_id"`
	JobTitle           string   `json:"job_title"`
	EmployerName       string   `json:"employer_name"`
	EmployerLogo       string   `json:"employer_logo"`
	JobCity            string   `json:"job_city"`
	JobState           string   `json:"job_state"`
	JobCountry         string   `json:"job_country"`
	JobEmploymentType  string   `json:"job_employment_type"`
	JobApplyLink       string   `json:"job_apply_link"`
	JobDescription     string   `json:"job_description"`
	JobIsRemote        bool     `json:"job_is_remote"`
	JobPostedAtUTC     string   `json:"job_posted_at_datetime_utc"`
	JobMinSalary       *float64 `json:"job_min_salary"`
	JobMaxSalary       *float64 `json:"job_max_salary"`
	JobRequiredSkills  []string `json:"job_required_skills"`
	RequiredExperience *struct {
		RequiredExperienceInMonths *int `json:"required_experience_in_months"`
	} `json:"job_required_experience"`
}

// Search fetches listings for a query and location, fanning out one request
// per page and flattening the results in page order.
func (c *Client) Search(ctx context.Context, query, location string, pages int, remoteOnly bool) ([]Listing, error) {
	if pages < 1 {
		pages = 1
	}

	remote := "no"
	if remoteOnly {
		remote = "yes"
	}

	results := make([][]Listing, pages)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < pages; i++ {
		g.Go(func() error {
			params := url.Values{}
			params.Set("query", fmt.Sprintf("%s in %s", query, location))
			params.Set("page", fmt.Sprintf("%d", i+1))
			params.Set("num_pages", "1")
			params.Set("remote_jobs_only", remote)

			var resp rawSearchResponse
			if err := c.get(ctx, "/search", params, &resp); err != nil {
				return err
			}
			if resp.Status != "OK" {
				return &Error{URL: "/search", Message: fmt.Sprintf("unexpected status %q", resp.Status)}
			}

			listings := make([]Listing, 0, len(resp.Data))
			now := time.Now()
			for _, job := range resp.Data {
				listings = append(listings, normalize(job, now))
			}
			results[i] = listings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Listing
	for _, page := range results {
		all = append(all, page...)
	}
	return all, nil
}

// Details fetches one listing by job id, normalized like search results.
func (c *Client) Details(ctx context.Context, jobID string) (*Listing, error) {
	params := url.Values{}
	params.Set("job_id", jobID)

	var resp rawSearchResponse
	if err := c.get(ctx, "/job-details", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, &Error{URL: "/job-details", Message: fmt.Sprintf("job %s not found", jobID)}
	}

	listing := normalize(resp.Data[0], time.Now())
	return &listing, nil
}

// EstimatedSalary fetches the raw estimated-salary document for a job title
// and location. The upstream shape is passed through untouched.
func (c *Client) EstimatedSalary(ctx context.Context, jobTitle, location string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("job_title", jobTitle)
	params.Set("location", location)
	params.Set("location_type", "ANY")
	params.Set("years_of_experience", "ALL")

	var raw json.RawMessage
	if err := c.get(ctx, "/estimated-salary", params, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// get issues one keyed GET against the API and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("https://%s%s?%s", c.host, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &Error{URL: reqURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: reqURL, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{URL: reqURL, Message: fmt.Sprintf("status %d: %s", resp.StatusCode, string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{URL: reqURL, Message: "failed to decode response", Cause: err}
	}
	return nil
}
