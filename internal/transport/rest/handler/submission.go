package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"campaignlens/internal/service"
)

// SubmissionHandler handles respondent intake endpoints
type SubmissionHandler struct {
	submissionSvc *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionSvc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// IntakeRequest is the request body for submitting survey answers
type IntakeRequest struct {
	Answers []map[string]any `json:"answers"`
}

// Intake handles POST /v1/campaigns/{id}/submissions
func (h *SubmissionHandler) Intake(w http.ResponseWriter, r *http.Request) {
	campaignID := mux.Vars(r)["id"]

	var req IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	subID, err := h.submissionSvc.Intake(r.Context(), campaignID, req.Answers)
	if err != nil {
		switch err {
		case service.ErrCampaignNotFound:
			writeError(w, http.StatusNotFound, err.Error())
		case service.ErrCampaignNotOpen:
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"submissionId": subID})
}
