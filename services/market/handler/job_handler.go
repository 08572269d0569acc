package handler

import (
	"fmt"
	"net/http"

	model "buildmart/internal/models"
	"buildmart/services/market/helpers"
	"buildmart/utils"

	"github.com/gin-gonic/gin"
)

type JobServiceInterface interface {
	CreateJob(session model.Session, title, description string, minimumBudget float64, milestones []model.Milestone) (model.Job, error)
	GetJob(jobID string) (model.Job, error)
}

type JobHandler struct {
	service JobServiceInterface
}

func NewJobHandler(service JobServiceInterface) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJobHandler handles POST /jobs
func (h *JobHandler) CreateJobHandler(c *gin.Context) {
	session, ok := helpers.SessionFromContext(c)
	if !ok {
		return
	}

	var req helpers.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateJobHandler", err)
		return
	}

	job, err := h.service.CreateJob(session, req.Title, req.Description, req.MinimumBudget, helpers.ToMilestones(req.Milestones))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateJobHandler: failed to create job", map[string]any{
			"client_id": session.UserID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, job, "job created successfully")
	helpers.LogSuccess("CreateJobHandler", "job created successfully", map[string]any{
		"job_id":    job.JobID,
		"client_id": job.ClientID,
		"title":     job.Title,
	})
}

// GetJobHandler handles GET /jobs/:job_id
func (h *JobHandler) GetJobHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	job, err := h.service.GetJob(jobID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetJobHandler: error retrieving job", map[string]any{"job_id": jobID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, job, "job retrieved successfully")
}
