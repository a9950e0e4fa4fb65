package jobs

import (
	"encoding/json"
	"os"
	"strings"
)

type Listings struct {
	Items []*Listing
}

// Listing mirrors the record shape returned by the job search workflow.
type Listing struct {
	ID             string  `json:"job_id,omitempty"`
	Title          string  `json:"job_title,omitempty"`
	EmployerName   string  `json:"employer_name,omitempty"`
	EmployerSite   string  `json:"employer_website,omitempty"`
	Publisher      string  `json:"job_publisher,omitempty"`
	EmploymentType string  `json:"job_employment_type,omitempty"`
	ApplyLink      string  `json:"job_apply_link,omitempty"`
	Description    string  `json:"job_description,omitempty"`
	IsRemote       bool    `json:"job_is_remote,omitempty"`
	PostedAt       string  `json:"job_posted_at_datetime_utc,omitempty"`
	City           string  `json:"job_city,omitempty"`
	State          string  `json:"job_state,omitempty"`
	Country        string  `json:"job_country,omitempty"`
	SalaryPeriod   string  `json:"job_salary_period,omitempty"`
	MinSalary      float64 `json:"job_min_salary,omitempty"`
	MaxSalary      float64 `json:"job_max_salary,omitempty"`
	SalaryCurrency string  `json:"job_salary_currency,omitempty"`
}

func (l *Listings) Len() int {
	return len(l.Items)
}

// Remote returns only the listings flagged or located as remote.
func (l *Listings) Remote() *Listings {
	out := &Listings{}
	for _, listing := range l.Items {
		if listing.IsRemote || strings.Contains(strings.ToLower(listing.Location()), "remote") {
			out.Items = append(out.Items, listing)
		}
	}
	return out
}

// Location renders the city/state/country fields as one display string.
func (l *Listing) Location() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{l.City, l.State, l.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func (l *Listings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return "", err
	}
	return file.Name(), nil
}
