package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"campaignlens/internal/model"
	"campaignlens/internal/service"
	"campaignlens/internal/transport/rest/middleware"
)

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	campaignSvc   *service.CampaignService
	submissionSvc *service.SubmissionService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignSvc *service.CampaignService, submissionSvc *service.SubmissionService) *CampaignHandler {
	return &CampaignHandler{
		campaignSvc:   campaignSvc,
		submissionSvc: submissionSvc,
	}
}

// CreateCampaignRequest is the request body for creating a campaign
type CreateCampaignRequest struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// SetFormRequest is the request body for replacing a campaign's survey form
type SetFormRequest struct {
	Questions []map[string]any `json:"questions"`
}

// Create handles POST /v1/campaigns
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	status := model.CampaignStatus(req.Status)
	if status == "" {
		status = model.CampaignDraft
	}

	campaign := &model.Campaign{
		HostID: hostID,
		Name:   req.Name,
		Status: status,
	}

	id, err := h.campaignSvc.Create(r.Context(), campaign)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"campaignId": id})
}

// List handles GET /v1/campaigns
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	campaigns, err := h.campaignSvc.GetByHostID(r.Context(), hostID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

// Get handles GET /v1/campaigns/{id}
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaignID := mux.Vars(r)["id"]

	campaign, err := h.campaignSvc.GetByID(r.Context(), campaignID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if campaign == nil {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}

	counts, err := h.submissionSvc.Counts(r.Context(), campaignID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaign": campaign,
		"counts":   counts,
	})
}

// Update handles PUT /v1/campaigns/{id}
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	campaignID := mux.Vars(r)["id"]
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.campaignSvc.GetByID(r.Context(), campaignID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if campaign == nil {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}

	if req.Name != "" {
		campaign.Name = req.Name
	}
	if req.Status != "" {
		campaign.Status = model.CampaignStatus(req.Status)
	}

	if err := h.campaignSvc.Update(r.Context(), campaign); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

// SetForm handles PUT /v1/campaigns/{id}/form
func (h *CampaignHandler) SetForm(w http.ResponseWriter, r *http.Request) {
	campaignID := mux.Vars(r)["id"]
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SetFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "questions are required")
		return
	}

	formID, err := h.campaignSvc.SetQuestions(r.Context(), campaignID, req.Questions)
	if err != nil {
		if err == service.ErrCampaignNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"formId": formID})
}
