package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusSubmitted    ApplicationStatus = "SUBMITTED"
	ApplicationStatusViewed       ApplicationStatus = "VIEWED"
	ApplicationStatusShortlisted  ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewing ApplicationStatus = "INTERVIEWING"
	ApplicationStatusOffered      ApplicationStatus = "OFFERED"
	ApplicationStatusHired        ApplicationStatus = "HIRED"
	ApplicationStatusRejected     ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn    ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusViewed, ApplicationStatusShortlisted,
		ApplicationStatusInterviewing, ApplicationStatusOffered, ApplicationStatusHired,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case ApplicationStatusHired, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// IsResolved reports whether the employer side has closed the application.
// A resolved application cannot be withdrawn by the applicant.
func (s ApplicationStatus) IsResolved() bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected
}

// EmployerSettable reports whether an employer (or admin) may set s as the new
// status of an application. SUBMITTED is entry-only and WITHDRAWN belongs to
// the applicant.
func (s ApplicationStatus) EmployerSettable() bool {
	switch s {
	case ApplicationStatusViewed, ApplicationStatusShortlisted, ApplicationStatusInterviewing,
		ApplicationStatusOffered, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether an employer-driven move from one status to
// another is allowed. Terminal statuses accept nothing; between non-terminal
// statuses any employer-settable target is accepted, including re-setting the
// current one.
func CanTransition(from, to ApplicationStatus) bool {
	if from.IsTerminal() {
		return false
	}
	return to.EmployerSettable()
}

// Field is one answer to a job's application requirement, matched by name.
type Field struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Application struct {
	ID          int32 `json:"id"`
	JobID       int32 `json:"job_id"`
	ApplicantID int32 `json:"applicant_id"`
	// EmployerID and CompanyID are copied from the job at submit time and
	// never change afterwards, even if the job is reassigned.
	EmployerID int32             `json:"employer_id"`
	CompanyID  int32             `json:"company_id"`
	Fields     []Field           `json:"fields"`
	Status     ApplicationStatus `json:"status"`
	CreatedOn  time.Time         `json:"created_on"`
	UpdatedOn  time.Time         `json:"updated_on"`
}
