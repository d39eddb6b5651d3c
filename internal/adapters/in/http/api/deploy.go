package api

import (
	"net/http"

	"emperror.dev/errors"
	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/adapters/dto"
	"github.com/bnema/forcedeck/internal/domain"
)

// handleUpdateApexClass handles POST /api/updateApexClass.
//
// Validation problems and compile or deploy failures are 400s. A failure to
// create one of the Tooling records is a 500, or a 504 when it timed out.
func (h *Handler) handleUpdateApexClass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerowrap.FromCtx(ctx)

	var req dto.UpdateApexClassRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.deploySvc.DeployClassUpdate(ctx, req.ClassID, req.ClassBody, req.Credentials())
	if err != nil {
		h.sendDeployError(w, r, err)
		return
	}

	if !result.Success {
		log.Info().
			Str("class_id", req.ClassID).
			Str("async_status", string(result.Status)).
			Bool("timed_out", result.TimedOut).
			Msg("apex class update rejected")
		h.sendJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Failed to update Apex class",
			Details: result,
		})
		return
	}

	h.sendJSON(w, http.StatusOK, dto.UpdateApexClassResponse{
		Success:   true,
		Message:   "Apex class updated successfully",
		Timestamp: h.timestamp(),
	})
}

func (h *Handler) sendDeployError(w http.ResponseWriter, r *http.Request, err error) {
	log := zerowrap.FromCtx(r.Context())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		h.sendJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Missing required fields",
			Details: verr.Fields,
		})
		return
	}

	var derr *domain.DeployError
	if errors.As(err, &derr) {
		details := dto.DeployErrorDetails{
			Message: derr.Error(),
			Phase:   string(derr.Phase),
		}
		if derr.Details != nil {
			details.Details = derr.Details
		}

		status := http.StatusInternalServerError
		if derr.Kind == domain.GatewayTimeout {
			status = http.StatusGatewayTimeout
		}
		log.Error().Err(err).Str("phase", string(derr.Phase)).Msg("apex class update failed")
		h.sendJSON(w, status, dto.ErrorResponse{
			Error:   "Error during Apex class update",
			Details: details,
		})
		return
	}

	log.Error().Err(err).Msg("apex class update failed")
	h.sendJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}
