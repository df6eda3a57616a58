package domain

import "time"

type JobStatus string

const (
	JobStatusDraft  JobStatus = "DRAFT"
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// Requirement is one custom question an employer attaches to a job posting.
// Applicants answer required ones at submit time.
type Requirement struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type Job struct {
	ID               int32         `json:"id"`
	CompanyID        int32         `json:"company_id"`
	PostedBy         int32         `json:"posted_by"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Location         string        `json:"location"`
	Status           JobStatus     `json:"status"`
	Requirements     []Requirement `json:"requirements"`
	ApplicationCount int32         `json:"application_count"`
	Deadline         *time.Time    `json:"deadline,omitempty"`
	CreatedOn        time.Time     `json:"created_on"`
	UpdatedOn        time.Time     `json:"updated_on"`
}
