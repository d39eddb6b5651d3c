package api

import (
	"net/http"
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/forcedeck/internal/domain"
)

const deployBody = `{"classId":"01pxx0000000001","classBody":"public class Foo {}",` + authJSON + `}`

func TestHandler_UpdateApexClass_Success(t *testing.T) {
	h, deploySvc, _ := newTestHandler(t, Config{})
	deploySvc.EXPECT().
		DeployClassUpdate(mock.Anything, "01pxx0000000001", "public class Foo {}", testCreds).
		Return(&domain.DeploymentResult{Success: true, Status: domain.AsyncStatusCompleted, Attempts: 1}, nil).
		Once()

	rec := serve(h, http.MethodPost, "/api/updateApexClass", deployBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"Apex class updated successfully","timestamp":"2024-03-01T12:30:00.000Z"}`,
		rec.Body.String())
}

func TestHandler_UpdateApexClass_ValidationError(t *testing.T) {
	h, deploySvc, _ := newTestHandler(t, Config{})
	fields := map[string]string{
		"classId":     domain.FieldMissing,
		"classBody":   domain.FieldPresent,
		"instanceUrl": domain.FieldPresent,
		"accessToken": domain.FieldPresent,
	}
	deploySvc.EXPECT().
		DeployClassUpdate(mock.Anything, "", "public class Foo {}", testCreds).
		Return(nil, domain.NewValidationError("missing required fields", fields)).
		Once()

	rec := serve(h, http.MethodPost, "/api/updateApexClass", `{"classBody":"public class Foo {}",`+authJSON+`}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields", body["error"])
	assert.Equal(t, "missing", body["details"].(map[string]any)["classId"])
}

func TestHandler_UpdateApexClass_CompileFailure(t *testing.T) {
	h, deploySvc, _ := newTestHandler(t, Config{})
	result := &domain.DeploymentResult{
		Phase:          domain.PhasePoll,
		Status:         domain.AsyncStatusFailed,
		ErrorMessage:   "Compilation failed",
		CompilerErrors: &domain.CompilerErrors{Raw: "line 3: unexpected token"},
		ComponentFailures: []domain.ComponentFailure{{
			ProblemType: "Error",
			Problem:     "Unexpected token '}'.",
			LineNumber:  float64(3),
		}},
		Attempts:  2,
		RequestID: "1drxx0000000001",
	}
	deploySvc.EXPECT().DeployClassUpdate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(result, nil).Once()

	rec := serve(h, http.MethodPost, "/api/updateApexClass", deployBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to update Apex class", body["error"])
	details := body["details"].(map[string]any)
	assert.Equal(t, false, details["success"])
	assert.Equal(t, "Failed", details["status"])
	assert.Equal(t, "Compilation failed", details["errorMsg"])
	assert.Equal(t, "line 3: unexpected token", details["compilerErrors"])
	assert.Len(t, details["deploymentErrors"], 1)
}

func TestHandler_UpdateApexClass_TimedOut(t *testing.T) {
	h, deploySvc, _ := newTestHandler(t, Config{})
	deploySvc.EXPECT().DeployClassUpdate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.DeploymentResult{
			Phase:        domain.PhasePoll,
			Status:       domain.AsyncStatusQueued,
			ErrorMessage: "status check timed out",
			TimedOut:     true,
			Attempts:     15,
		}, nil).Once()

	rec := serve(h, http.MethodPost, "/api/updateApexClass", deployBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := decodeBody(t, rec)["details"].(map[string]any)
	assert.Equal(t, true, details["timedOut"])
	assert.Equal(t, float64(15), details["attemptsPerformed"])
}

func TestHandler_UpdateApexClass_DeployErrors(t *testing.T) {
	raw := domain.ParseErrorBody("Bad things happened")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantPhase  string
		wantDetail any
	}{
		{
			name: "member creation rejected",
			err: &domain.DeployError{
				Phase:      domain.PhaseClassMemberCreation,
				Kind:       domain.GatewayHTTP,
				StatusCode: http.StatusBadRequest,
				Status:     "400 Bad Request",
				Details:    &raw,
			},
			wantStatus: http.StatusInternalServerError,
			wantPhase:  "class_member_creation",
			wantDetail: map[string]any{"rawError": "Bad things happened"},
		},
		{
			name: "container creation timed out",
			err: &domain.DeployError{
				Phase: domain.PhaseContainerCreation,
				Kind:  domain.GatewayTimeout,
				Err:   &domain.GatewayError{Kind: domain.GatewayTimeout},
			},
			wantStatus: http.StatusGatewayTimeout,
			wantPhase:  "container_creation",
		},
		{
			name: "deploy request unreachable",
			err: &domain.DeployError{
				Phase: domain.PhaseDeploymentRequest,
				Kind:  domain.GatewayTransport,
				Err:   errors.New("connection refused"),
			},
			wantStatus: http.StatusInternalServerError,
			wantPhase:  "deployment_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deploySvc, _ := newTestHandler(t, Config{})
			deploySvc.EXPECT().DeployClassUpdate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tt.err).Once()

			rec := serve(h, http.MethodPost, "/api/updateApexClass", deployBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "Error during Apex class update", body["error"])
			details := body["details"].(map[string]any)
			assert.Equal(t, tt.wantPhase, details["phase"])
			assert.Equal(t, tt.err.Error(), details["message"])
			assert.Equal(t, tt.wantDetail, details["details"])
		})
	}
}
