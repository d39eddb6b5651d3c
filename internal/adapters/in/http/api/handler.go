// Package api implements the HTTP adapter for the dashboard JSON API.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/adapters/dto"
	"github.com/bnema/forcedeck/internal/boundaries/in"
	"github.com/bnema/forcedeck/internal/domain"
	"github.com/bnema/forcedeck/internal/logging"
)

// timestampLayout matches the millisecond UTC timestamps the dashboard parses.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Config holds the fallback credentials of the templates endpoint, which
// receives only a bearer token from its callers.
type Config struct {
	InstanceURL string
	AccessToken string
}

// Handler implements the HTTP handler for the dashboard API.
type Handler struct {
	deploySvc in.DeployService
	orgSvc    in.OrgService
	cfg       Config
	mux       *http.ServeMux
	now       func() time.Time
	log       zerowrap.Logger
}

// NewHandler creates a new API handler with all routes registered.
func NewHandler(deploySvc in.DeployService, orgSvc in.OrgService, cfg Config, log zerowrap.Logger) *Handler {
	h := &Handler{
		deploySvc: deploySvc,
		orgSvc:    orgSvc,
		cfg:       cfg,
		mux:       http.NewServeMux(),
		now:       time.Now,
		log:       log,
	}
	h.RegisterRoutes(h.mux)
	return h
}

// RegisterRoutes registers the API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/updateApexClass", h.handleUpdateApexClass)
	mux.HandleFunc("POST /api/apexClasses", h.handleApexClasses)
	mux.HandleFunc("POST /api/apexClass", h.handleApexClass)
	mux.HandleFunc("POST /api/users", h.handleUsers)
	mux.HandleFunc("POST /api/loginHistory", h.handleLoginHistory)
	mux.HandleFunc("POST /api/salesforceChatter", h.handleChatterFeed)
	mux.HandleFunc("PUT /api/salesforceChatter", h.handleChatterPost)
	mux.HandleFunc("GET /api/templates", h.handleTemplates)
	mux.HandleFunc("POST /api/health", h.handleHealth)
	mux.HandleFunc("GET /healthz", h.handleLiveness)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := zerowrap.CtxWithFields(logging.WithFallback(r.Context(), h.log), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "api",
		zerowrap.FieldMethod:  r.Method,
		zerowrap.FieldPath:    r.URL.Path,
	})
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

// sendJSON sends a JSON response.
func (h *Handler) sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// sendError sends an error response.
func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, dto.ErrorResponse{Error: message})
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(timestampLayout)
}

// decode reads a JSON body into dst. It answers 400 and returns false when
// the body is malformed or too large.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log := zerowrap.FromCtx(r.Context())
		log.Debug().Err(err).Msg("invalid request body")
		h.sendError(w, http.StatusBadRequest, "Invalid request body format")
		return false
	}
	return true
}

// requireCredentials answers 400 with the per-field states when creds are unusable.
func (h *Handler) requireCredentials(w http.ResponseWriter, creds domain.Credentials) bool {
	verr := domain.NewValidationError("missing authentication data", domain.CheckCredentials(creds))
	if verr == nil {
		return true
	}
	h.sendJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Missing authentication data",
		Details: verr.Fields,
	})
	return false
}

// sendUpstreamError maps an org query failure to a response. Upstream HTTP
// statuses are passed through; timeouts become 504.
func (h *Handler) sendUpstreamError(w http.ResponseWriter, r *http.Request, err error, fetchMessage string) {
	log := zerowrap.FromCtx(r.Context())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		h.sendJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Missing required fields",
			Details: verr.Fields,
		})
		return
	}

	var gerr *domain.GatewayError
	if errors.As(err, &gerr) {
		switch gerr.Kind {
		case domain.GatewayTimeout:
			log.Warn().Err(err).Msg("salesforce request timed out")
			h.sendJSON(w, http.StatusGatewayTimeout, dto.ErrorResponse{
				Error:   "Request timeout",
				Details: "The request took too long to complete",
			})
			return
		case domain.GatewayHTTP:
			log.Warn().Err(err).Int(zerowrap.FieldStatus, gerr.StatusCode).Msg("salesforce rejected request")
			h.sendJSON(w, gerr.StatusCode, dto.ErrorResponse{
				Error:      fetchMessage,
				Details:    gerr.Body,
				Status:     gerr.StatusCode,
				StatusText: http.StatusText(gerr.StatusCode),
			})
			return
		case domain.GatewayDecode:
			log.Error().Err(err).Msg("unexpected salesforce response")
			h.sendError(w, http.StatusInternalServerError, "Invalid response from Salesforce")
			return
		}
	}

	log.Error().Err(err).Msg("request failed")
	h.sendJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}

func (h *Handler) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	h.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
