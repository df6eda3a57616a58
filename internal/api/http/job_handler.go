package http

import (
	"encoding/json"
	"net/http"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/service"
)

type JobHandler struct {
	jobSvc service.JobService
}

func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

type createJobRequest struct {
	CompanyID    int32                `json:"company_id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Location     string               `json:"location"`
	Status       domain.JobStatus     `json:"status"`
	Requirements []domain.Requirement `json:"requirements"`
	Deadline     *time.Time           `json:"deadline"`
}

// Create handles POST /api/v1/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
		return
	}

	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	job := &domain.Job{
		CompanyID:    req.CompanyID,
		PostedBy:     principal.UserID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Status:       req.Status,
		Requirements: req.Requirements,
		Deadline:     req.Deadline,
	}
	if err := h.jobSvc.CreateJob(r.Context(), principal, job); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// Get handles GET /api/v1/jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid job id"})
		return
	}

	job, err := h.jobSvc.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// List handles GET /api/v1/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.JobStatus(r.URL.Query().Get("status"))
	page := queryInt32(r, "page", 1)
	limit := queryInt32(r, "limit", 20)

	jobs, total, err := h.jobSvc.ListJobs(r.Context(), status, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: jobs, Total: total, Page: page, Limit: limit})
}
