package deploy

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/forcedeck/internal/boundaries/out/mocks"
	"github.com/bnema/forcedeck/internal/domain"
)

const (
	testClassID     = "01pxx0000000001AAA"
	testClassBody   = "public class Foo { }"
	testContainerID = "1dcxx0000000001"
	testMemberID    = "400xx0000000001"
)

func newTestService(t *testing.T, tooling *mocks.MockToolingClient, cfg Config) (*Service, *recordingSleeper) {
	t.Helper()
	sleeper := &recordingSleeper{}
	poller := NewPoller(tooling, WithSleep(sleeper.sleep))
	return NewService(tooling, nil, cfg, testLogger(), WithPoller(poller)), sleeper
}

func expectContainer(tooling *mocks.MockToolingClient) {
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectMetadataContainer, mock.Anything).
		Return(testContainerID, nil).
		Once()
}

func expectMember(tooling *mocks.MockToolingClient) {
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectApexClassMember, map[string]interface{}{
			"ContentEntityId":     testClassID,
			"Body":                testClassBody,
			"MetadataContainerId": testContainerID,
		}).
		Return(testMemberID, nil).
		Once()
}

func expectAsyncRequest(tooling *mocks.MockToolingClient) {
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectContainerAsyncRequest, map[string]interface{}{
			"MetadataContainerId": testContainerID,
			"IsCheckOnly":         false,
		}).
		Return(testRequestID, nil).
		Once()
}

func expectCreates(tooling *mocks.MockToolingClient) {
	expectContainer(tooling)
	expectMember(tooling)
	expectAsyncRequest(tooling)
}

func TestService_DeployClassUpdate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		classID string
		body    string
		creds   domain.Credentials
		field   string
		state   string
	}{
		{"blank class id", "  ", testClassBody, testCreds(), "classId", domain.FieldMissing},
		{"blank body", testClassID, "", testCreds(), "classBody", domain.FieldMissing},
		{"missing token", testClassID, testClassBody, domain.Credentials{InstanceURL: "https://acme.my.salesforce.com"}, "accessToken", domain.FieldMissing},
		{"missing instance", testClassID, testClassBody, domain.Credentials{AccessToken: "tok"}, "instanceUrl", domain.FieldMissing},
		{"invalid instance", testClassID, testClassBody, domain.Credentials{InstanceURL: "acme.my.salesforce.com", AccessToken: "tok"}, "instanceUrl", domain.FieldInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tooling := mocks.NewMockToolingClient(t)
			svc, sleeper := newTestService(t, tooling, Config{})

			res, err := svc.DeployClassUpdate(context.Background(), tt.classID, tt.body, tt.creds)

			assert.Nil(t, res)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.state, verr.Fields[tt.field])
			assert.Equal(t, 0, sleeper.count())
			tooling.AssertNotCalled(t, "CreateToolingRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_DeployClassUpdate_CompletedOnFirstPoll(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, sleeper := newTestService(t, tooling, Config{})

	expectCreates(tooling)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), expectedStatusQuery(), mock.Anything).
		RunAndReturn(respondWith(record(domain.AsyncStatusCompleted))).
		Once()

	res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, testRequestID, res.RequestID)
	assert.Equal(t, []time.Duration{DefaultPollInterval}, sleeper.calls)
}

func TestService_DeployClassUpdate_CompletedOnLastAttempt(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, sleeper := newTestService(t, tooling, Config{})

	expectCreates(tooling)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), mock.Anything, mock.Anything).
		RunAndReturn(respondWith(record(domain.AsyncStatusQueued))).
		Times(14)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), mock.Anything, mock.Anything).
		RunAndReturn(respondWith(record(domain.AsyncStatusCompleted))).
		Once()

	res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 15, res.Attempts)
	assert.Equal(t, 15, sleeper.count())
	tooling.AssertNumberOfCalls(t, "ToolingQuery", 15)
}

func TestService_DeployClassUpdate_TimesOut(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, sleeper := newTestService(t, tooling, Config{CleanupContainer: true})

	expectCreates(tooling)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), mock.Anything, mock.Anything).
		RunAndReturn(respondWith(record(domain.AsyncStatusQueued))).
		Times(15)

	res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.True(t, res.TimedOut)
	assert.Equal(t, domain.PhasePoll, res.Phase)
	assert.Equal(t, "status check timed out", res.ErrorMessage)
	assert.Equal(t, domain.AsyncStatusQueued, res.Status)
	assert.Equal(t, 15, res.Attempts)
	tooling.AssertNumberOfCalls(t, "ToolingQuery", 15)

	require.Len(t, sleeper.calls, 15)
	for _, d := range sleeper.calls {
		assert.Equal(t, 2*time.Second, d)
	}
	// The job may still run, so the container is left alone.
	tooling.AssertNotCalled(t, "DeleteToolingRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DeployClassUpdate_CompileFailure(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, _ := newTestService(t, tooling, Config{})

	failed := domain.ContainerAsyncRequest{
		ID:             testRequestID,
		Status:         domain.AsyncStatusFailed,
		CompilerErrors: []byte(`"[{\"line\":1,\"problem\":\"Missing ';' at '}'\"}]"`),
		DeployDetails:  []byte(`{"componentFailures":[` +
			`{"problemType":"Error","problem":"Missing ';' at '}'","componentType":"ApexClass","lineNumber":1,"columnNumber":19},` +
			`{"problemType":"Error","problem":"Invalid type: Bar","componentType":"ApexClass","lineNumber":1,"columnNumber":5}]}`),
	}

	expectCreates(tooling)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), mock.Anything, mock.Anything).
		RunAndReturn(respondWith(failed)).
		Once()

	res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, domain.AsyncStatusFailed, res.Status)
	assert.Equal(t, "Unknown error", res.ErrorMessage)
	require.NotNil(t, res.CompilerErrors)
	assert.NotNil(t, res.CompilerErrors.Parsed)
	require.Len(t, res.ComponentFailures, 2)
	assert.Equal(t, "Missing ';' at '}'", res.ComponentFailures[0].Problem)
	assert.Equal(t, float64(19), res.ComponentFailures[0].ColumnNumber)
	assert.Equal(t, "Invalid type: Bar", res.ComponentFailures[1].Problem)
}

func TestService_DeployClassUpdate_MemberCreationRejected(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, sleeper := newTestService(t, tooling, Config{})

	expectContainer(tooling)
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectApexClassMember, mock.Anything).
		Return("", &domain.GatewayError{
			Kind:       domain.GatewayHTTP,
			StatusCode: 400,
			Status:     "400 Bad Request",
			Body:       "Bad Request: entity is locked",
		}).
		Once()

	res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	assert.Nil(t, res)
	var deployErr *domain.DeployError
	require.ErrorAs(t, err, &deployErr)
	assert.Equal(t, domain.PhaseClassMemberCreation, deployErr.Phase)
	assert.Equal(t, domain.GatewayHTTP, deployErr.Kind)
	assert.Equal(t, 400, deployErr.StatusCode)
	require.NotNil(t, deployErr.Details)
	assert.Equal(t, domain.BodyRaw, deployErr.Details.Format)
	assert.Equal(t, "Bad Request: entity is locked", deployErr.Details.Raw)
	assert.Equal(t, "failed to create ApexClassMember: 400 Bad Request", deployErr.Error())

	assert.Equal(t, 0, sleeper.count())
	tooling.AssertNumberOfCalls(t, "CreateToolingRecord", 2)
	tooling.AssertNotCalled(t, "ToolingQuery", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DeployClassUpdate_DeployRequestRejectedWithJSON(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, _ := newTestService(t, tooling, Config{})

	expectContainer(tooling)
	expectMember(tooling)
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectContainerAsyncRequest, mock.Anything).
		Return("", &domain.GatewayError{
			Kind:       domain.GatewayHTTP,
			StatusCode: 400,
			Status:     "400 Bad Request",
			Body:       `[{"message":"Container is in use","errorCode":"INVALID_OPERATION"}]`,
		}).
		Once()

	_, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	var deployErr *domain.DeployError
	require.ErrorAs(t, err, &deployErr)
	assert.Equal(t, domain.PhaseDeploymentRequest, deployErr.Phase)
	require.NotNil(t, deployErr.Details)
	assert.Equal(t, domain.BodyJSON, deployErr.Details.Format)
	assert.Len(t, deployErr.Details.JSON, 1)
}

func TestService_DeployClassUpdate_ContainerCreationTimeout(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, _ := newTestService(t, tooling, Config{})

	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectMetadataContainer, mock.Anything).
		Return("", &domain.GatewayError{Kind: domain.GatewayTimeout, Err: context.DeadlineExceeded}).
		Once()

	_, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	var deployErr *domain.DeployError
	require.ErrorAs(t, err, &deployErr)
	assert.Equal(t, domain.PhaseContainerCreation, deployErr.Phase)
	assert.Equal(t, domain.GatewayTimeout, deployErr.Kind)
	assert.Nil(t, deployErr.Details)
	assert.ErrorIs(t, err, domain.ErrRequestTimeout)
	tooling.AssertNumberOfCalls(t, "CreateToolingRecord", 1)
}

func TestService_DeployClassUpdate_DistinctContainers(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, _ := newTestService(t, tooling, Config{})

	var names []string
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectMetadataContainer, mock.Anything).
		Run(func(_ context.Context, _ domain.Credentials, _ string, fields map[string]interface{}) {
			names = append(names, fields["Name"].(string))
		}).
		Return(testContainerID, nil).
		Times(2)
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectApexClassMember, mock.Anything).
		Return(testMemberID, nil).
		Times(2)
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectContainerAsyncRequest, mock.Anything).
		Return(testRequestID, nil).
		Times(2)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), mock.Anything, mock.Anything).
		RunAndReturn(respondWith(record(domain.AsyncStatusCompleted))).
		Times(2)

	for i := 0; i < 2; i++ {
		res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())
		require.NoError(t, err)
		assert.True(t, res.Success)
	}

	require.Len(t, names, 2)
	assert.NotEqual(t, names[0], names[1])
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "ApexClassUpdate_"), name)
		assert.LessOrEqual(t, len(name), 32, name)
	}
}

func TestService_DeployClassUpdate_CleanupAfterTerminalState(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, _ := newTestService(t, tooling, Config{CleanupContainer: true})

	expectCreates(tooling)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), mock.Anything, mock.Anything).
		RunAndReturn(respondWith(record(domain.AsyncStatusCompleted))).
		Once()
	tooling.EXPECT().
		DeleteToolingRecord(mock.Anything, testCreds(), domain.SObjectMetadataContainer, testContainerID).
		Return(&domain.GatewayError{Kind: domain.GatewayHTTP, StatusCode: 404, Status: "404 Not Found"}).
		Once()

	res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	require.NoError(t, err, "cleanup failures are not surfaced")
	assert.True(t, res.Success)
}

func TestService_DeployClassUpdate_CleanupAfterMemberFailure(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	svc, _ := newTestService(t, tooling, Config{CleanupContainer: true})

	expectContainer(tooling)
	tooling.EXPECT().
		CreateToolingRecord(mock.Anything, testCreds(), domain.SObjectApexClassMember, mock.Anything).
		Return("", &domain.GatewayError{Kind: domain.GatewayTransport, Err: assert.AnError}).
		Once()
	tooling.EXPECT().
		DeleteToolingRecord(mock.Anything, testCreds(), domain.SObjectMetadataContainer, testContainerID).
		Return(nil).
		Once()

	_, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	var deployErr *domain.DeployError
	require.ErrorAs(t, err, &deployErr)
	assert.Equal(t, domain.GatewayTransport, deployErr.Kind)
}

func TestService_DeployClassUpdate_RecordsMetrics(t *testing.T) {
	tooling := mocks.NewMockToolingClient(t)
	metrics := mocks.NewMockDeployMetrics(t)
	sleeper := &recordingSleeper{}
	svc := NewService(tooling, metrics, Config{}, testLogger(),
		WithPoller(NewPoller(tooling, WithSleep(sleeper.sleep))))

	expectCreates(tooling)
	tooling.EXPECT().
		ToolingQuery(mock.Anything, testCreds(), mock.Anything, mock.Anything).
		RunAndReturn(respondWith(record(domain.AsyncStatusFailed))).
		Once()
	metrics.EXPECT().
		RecordDeploy(mock.Anything, domain.PhasePoll, false, 1, mock.AnythingOfType("time.Duration")).
		Once()

	res, err := svc.DeployClassUpdate(context.Background(), testClassID, testClassBody, testCreds())

	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestService_ContainerName(t *testing.T) {
	svc := NewService(nil, nil, Config{}, testLogger(), WithClock(func() time.Time {
		return time.UnixMilli(1700000000000)
	}))

	name := svc.containerName()

	assert.True(t, strings.HasPrefix(name, "ApexClassUpdate_loyw3v28_"), name)
	assert.Len(t, name, 31)
}
