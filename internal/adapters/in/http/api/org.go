package api

import (
	"net/http"
	"strings"

	"emperror.dev/errors"

	"github.com/bnema/forcedeck/internal/adapters/dto"
	"github.com/bnema/forcedeck/internal/domain"
)

const fetchFailed = "Failed to fetch from Salesforce"

// handleApexClasses handles POST /api/apexClasses.
func (h *Handler) handleApexClasses(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthenticatedRequest
	if !h.decode(w, r, &req) || !h.requireCredentials(w, req.Credentials()) {
		return
	}

	classes, total, err := h.orgSvc.ListApexClasses(r.Context(), req.Credentials())
	if err != nil {
		h.sendUpstreamError(w, r, err, fetchFailed)
		return
	}

	h.sendJSON(w, http.StatusOK, dto.ApexClassesResponse{
		Success:   true,
		Classes:   classes,
		TotalSize: total,
		Provider:  dto.ProviderToolingAPI,
		Timestamp: h.timestamp(),
	})
}

// handleApexClass handles POST /api/apexClass.
func (h *Handler) handleApexClass(w http.ResponseWriter, r *http.Request) {
	var req dto.ApexClassRequest
	if !h.decode(w, r, &req) {
		return
	}

	creds := req.Credentials()
	fields := domain.CheckCredentials(creds)
	fields["className"] = domain.FieldPresent
	if strings.TrimSpace(req.ClassName) == "" {
		fields["className"] = domain.FieldMissing
	}
	if verr := domain.NewValidationError("missing required fields", fields); verr != nil {
		h.sendJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Missing required fields",
			Details: verr.Fields,
		})
		return
	}

	class, err := h.orgSvc.GetApexClass(r.Context(), creds, req.ClassName)
	if errors.Is(err, domain.ErrApexClassMissing) {
		h.sendJSON(w, http.StatusNotFound, map[string]string{
			"error":     "Apex class not found",
			"className": req.ClassName,
		})
		return
	}
	if err != nil {
		h.sendUpstreamError(w, r, err, fetchFailed)
		return
	}

	h.sendJSON(w, http.StatusOK, dto.ApexClassResponse{
		Success:   true,
		Class:     class,
		Provider:  dto.ProviderToolingAPI,
		Timestamp: h.timestamp(),
	})
}

// handleUsers handles POST /api/users.
func (h *Handler) handleUsers(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthenticatedRequest
	if !h.decode(w, r, &req) || !h.requireCredentials(w, req.Credentials()) {
		return
	}

	users, total, err := h.orgSvc.ListActiveUsers(r.Context(), req.Credentials())
	if err != nil {
		h.sendUpstreamError(w, r, err, fetchFailed)
		return
	}

	h.sendJSON(w, http.StatusOK, dto.UsersResponse{
		Success:   true,
		Users:     users,
		TotalSize: total,
		Provider:  dto.ProviderRESTAPI,
		Timestamp: h.timestamp(),
	})
}

// handleLoginHistory handles POST /api/loginHistory.
func (h *Handler) handleLoginHistory(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginHistoryRequest
	if !h.decode(w, r, &req) || !h.requireCredentials(w, req.Credentials()) {
		return
	}

	logins, err := h.orgSvc.LoginHistory(r.Context(), req.Credentials(), req.Limit)
	if err != nil {
		h.sendUpstreamError(w, r, err, "Failed to fetch login history")
		return
	}

	h.sendJSON(w, http.StatusOK, dto.LoginHistoryResponse{Success: true, Logins: logins})
}

// handleChatterFeed handles POST /api/salesforceChatter. The dashboard
// expects the bare records array.
func (h *Handler) handleChatterFeed(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthenticatedRequest
	if !h.decode(w, r, &req) || !h.requireCredentials(w, req.Credentials()) {
		return
	}

	items, err := h.orgSvc.ChatterFeed(r.Context(), req.Credentials())
	if err != nil {
		h.sendUpstreamError(w, r, err, "Failed to fetch Chatter posts")
		return
	}

	h.sendJSON(w, http.StatusOK, items)
}

// handleChatterPost handles PUT /api/salesforceChatter and answers 201 with
// the feed element Salesforce created.
func (h *Handler) handleChatterPost(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatterPostRequest
	if !h.decode(w, r, &req) || !h.requireCredentials(w, req.Credentials()) {
		return
	}

	post := domain.ChatterPost{Text: req.PostText, SubjectID: req.SubjectID}
	created, err := h.orgSvc.PostChatter(r.Context(), req.Credentials(), post)
	if err != nil {
		h.sendUpstreamError(w, r, err, "Failed to create Chatter post")
		return
	}

	h.sendJSON(w, http.StatusCreated, created)
}

// handleTemplates handles GET /api/templates?folder=. The token comes from
// the Authorization header and the instance from configuration.
func (h *Handler) handleTemplates(w http.ResponseWriter, r *http.Request) {
	token := h.cfg.AccessToken
	if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && strings.TrimSpace(bearer) != "" {
		token = strings.TrimSpace(bearer)
	}
	if token == "" {
		h.sendError(w, http.StatusUnauthorized, "Unauthorized request")
		return
	}
	if strings.TrimSpace(h.cfg.InstanceURL) == "" {
		h.sendError(w, http.StatusServiceUnavailable, "Salesforce instance URL is not configured")
		return
	}

	creds := domain.Credentials{InstanceURL: h.cfg.InstanceURL, AccessToken: token}
	templates, err := h.orgSvc.EmailTemplates(r.Context(), creds, r.URL.Query().Get("folder"))
	if err != nil {
		h.sendUpstreamError(w, r, err, "Failed to fetch templates from Salesforce")
		return
	}

	h.sendJSON(w, http.StatusOK, dto.TemplatesResponse{Success: true, Templates: templates})
}

// handleHealth handles POST /api/health by returning the org limits.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthenticatedRequest
	if !h.decode(w, r, &req) || !h.requireCredentials(w, req.Credentials()) {
		return
	}

	limits, err := h.orgSvc.Limits(r.Context(), req.Credentials())
	if err != nil {
		h.sendUpstreamError(w, r, err, "Salesforce API error")
		return
	}

	h.sendJSON(w, http.StatusOK, dto.LimitsResponse{Success: true, Data: limits})
}
