package deploy

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/forcedeck/internal/domain"
)

func TestTranslate_Completed(t *testing.T) {
	rec := record(domain.AsyncStatusCompleted)
	res := Translate(context.Background(), PollResult{RequestID: "1dr1", Record: &rec, FinalStatus: rec.Status, Attempts: 4})

	assert.True(t, res.Success)
	assert.Equal(t, domain.AsyncStatusCompleted, res.Status)
	assert.Equal(t, 4, res.Attempts)
	assert.Equal(t, "1dr1", res.RequestID)
	assert.Empty(t, res.ErrorMessage)
	assert.Nil(t, res.CompilerErrors)
}

func TestTranslate_TimedOut(t *testing.T) {
	t.Run("with last record", func(t *testing.T) {
		rec := record(domain.AsyncStatusQueued)
		res := Translate(context.Background(), PollResult{Record: &rec, TimedOut: true, Attempts: 15})

		assert.False(t, res.Success)
		assert.True(t, res.TimedOut)
		assert.Equal(t, domain.PhasePoll, res.Phase)
		assert.Equal(t, "status check timed out", res.ErrorMessage)
		assert.Equal(t, domain.AsyncStatusQueued, res.Status)
		assert.Equal(t, 15, res.Attempts)
	})

	t.Run("without any record", func(t *testing.T) {
		res := Translate(context.Background(), PollResult{TimedOut: true, Attempts: 15})

		assert.True(t, res.TimedOut)
		assert.Equal(t, domain.AsyncStatusTimeout, res.Status)
	})
}

func TestTranslate_FailedWithStructuredErrors(t *testing.T) {
	rec := domain.ContainerAsyncRequest{
		ID:             "1dr1",
		Status:         domain.AsyncStatusFailed,
		ErrorMsg:       strPtr("Compilation failed"),
		CompilerErrors: json.RawMessage(`"[{\"line\":3,\"problem\":\"Unexpected token ';'.\",\"name\":\"Foo\"}]"`),
		DeployDetails:  json.RawMessage(`{"allComponentMessages":[],"componentFailures":[` +
			`{"problemType":"Error","problem":"Unexpected token ';'.","componentType":"ApexClass","lineNumber":3,"columnNumber":14},` +
			`{"problemType":"Error","problem":"Variable does not exist: x","componentType":"ApexClass","lineNumber":7,"columnNumber":"9"}]}`),
	}

	res := Translate(context.Background(), PollResult{Record: &rec, FinalStatus: rec.Status, Attempts: 2})

	assert.False(t, res.Success)
	assert.False(t, res.TimedOut)
	assert.Equal(t, domain.PhasePoll, res.Phase)
	assert.Equal(t, domain.AsyncStatusFailed, res.Status)
	assert.Equal(t, "Compilation failed", res.ErrorMessage)

	require.NotNil(t, res.CompilerErrors)
	parsed, ok := res.CompilerErrors.Parsed.([]any)
	require.True(t, ok)
	require.Len(t, parsed, 1)
	assert.Equal(t, float64(3), parsed[0].(map[string]any)["line"])

	require.Len(t, res.ComponentFailures, 2)
	assert.Equal(t, domain.ComponentFailure{
		ProblemType:   "Error",
		Problem:       "Unexpected token ';'.",
		ComponentType: "ApexClass",
		LineNumber:    float64(3),
		ColumnNumber:  float64(14),
	}, res.ComponentFailures[0])
	assert.Equal(t, "9", res.ComponentFailures[1].ColumnNumber)
}

func TestTranslate_NonJSONCompilerErrors(t *testing.T) {
	rec := domain.ContainerAsyncRequest{
		Status:         domain.AsyncStatusError,
		CompilerErrors: json.RawMessage(`"line 3: unexpected token"`),
	}

	var res *domain.DeploymentResult
	require.NotPanics(t, func() {
		res = Translate(context.Background(), PollResult{Record: &rec})
	})

	require.NotNil(t, res.CompilerErrors)
	assert.Nil(t, res.CompilerErrors.Parsed)
	assert.Equal(t, "line 3: unexpected token", res.CompilerErrors.Raw)
	assert.Equal(t, "Unknown error", res.ErrorMessage)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"compilerErrors":"line 3: unexpected token"`)
}

func TestTranslate_DeployDetailsAsString(t *testing.T) {
	details, err := json.Marshal(`{"componentFailures":{"problemType":"Error","problem":"boom","componentType":"ApexClass","lineNumber":1,"columnNumber":1}}`)
	require.NoError(t, err)
	rec := domain.ContainerAsyncRequest{Status: domain.AsyncStatusFailed, DeployDetails: details}

	res := Translate(context.Background(), PollResult{Record: &rec})

	require.Len(t, res.ComponentFailures, 1)
	assert.Equal(t, "boom", res.ComponentFailures[0].Problem)
}

func TestTranslate_UnparseableDeployDetailsIgnored(t *testing.T) {
	rec := domain.ContainerAsyncRequest{
		Status:        domain.AsyncStatusFailed,
		ErrorMsg:      strPtr("Deployment failed"),
		DeployDetails: json.RawMessage(`"not json at all"`),
	}

	res := Translate(context.Background(), PollResult{Record: &rec})

	assert.Empty(t, res.ComponentFailures)
	assert.Equal(t, "Deployment failed", res.ErrorMessage)
}

func TestTranslate_NullPayloads(t *testing.T) {
	rec := domain.ContainerAsyncRequest{
		Status:         domain.AsyncStatusAborted,
		CompilerErrors: json.RawMessage(`null`),
		DeployDetails:  json.RawMessage(`null`),
	}

	res := Translate(context.Background(), PollResult{Record: &rec})

	assert.Equal(t, domain.AsyncStatusAborted, res.Status)
	assert.Nil(t, res.CompilerErrors)
	assert.Nil(t, res.ComponentFailures)
}
