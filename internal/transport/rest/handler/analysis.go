package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"campaignlens/internal/analysis"
	"campaignlens/internal/service"
	"campaignlens/internal/transport/rest/middleware"
)

const defaultLeadLimit = 20

// AnalysisHandler handles analysis pack endpoints
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

// Build handles POST /v1/campaigns/{id}/analysis
func (h *AnalysisHandler) Build(w http.ResponseWriter, r *http.Request) {
	campaignID := mux.Vars(r)["id"]
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	pack, err := h.analysisSvc.BuildPack(r.Context(), campaignID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, analysis.ErrNoFormAssigned),
			errors.Is(err, analysis.ErrNoQuestions),
			errors.Is(err, analysis.ErrNoSubmissions):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, pack)
}

// Status handles GET /v1/campaigns/{id}/analysis/status
func (h *AnalysisHandler) Status(w http.ResponseWriter, r *http.Request) {
	campaignID := mux.Vars(r)["id"]

	status, err := h.analysisSvc.GetStatus(r.Context(), campaignID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if status == nil {
		writeError(w, http.StatusNotFound, "no analysis build recorded")
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// Leads handles GET /v1/campaigns/{id}/leads
func (h *AnalysisHandler) Leads(w http.ResponseWriter, r *http.Request) {
	campaignID := mux.Vars(r)["id"]

	limit := defaultLeadLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	leads, err := h.analysisSvc.TopLeads(r.Context(), campaignID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leads": leads})
}

// LeadRank handles GET /v1/campaigns/{id}/leads/{submissionId}
func (h *AnalysisHandler) LeadRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	campaignID := vars["id"]
	submissionID := vars["submissionId"]

	rank, err := h.analysisSvc.LeadRank(r.Context(), campaignID, submissionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rank < 0 {
		writeError(w, http.StatusNotFound, "submission not in lead queue")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submissionId": submissionID,
		"rank":         rank,
	})
}
