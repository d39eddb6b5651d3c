package domain

import (
	"encoding/json"
	"fmt"
)

// Tooling API sObject names used by the class deployment workflow.
const (
	SObjectMetadataContainer     = "MetadataContainer"
	SObjectApexClassMember       = "ApexClassMember"
	SObjectContainerAsyncRequest = "ContainerAsyncRequest"
)

// AsyncRequestStatus is the Status field of a ContainerAsyncRequest.
type AsyncRequestStatus string

const (
	AsyncStatusQueued    AsyncRequestStatus = "Queued"
	AsyncStatusCompleted AsyncRequestStatus = "Completed"
	AsyncStatusFailed    AsyncRequestStatus = "Failed"
	AsyncStatusError     AsyncRequestStatus = "Error"
	AsyncStatusAborted   AsyncRequestStatus = "Aborted"

	// AsyncStatusTimeout is reported when polling gave up before any record was read.
	AsyncStatusTimeout AsyncRequestStatus = "Timeout"
	// AsyncStatusUnknown is reported when a terminal record carries no status.
	AsyncStatusUnknown AsyncRequestStatus = "Unknown"
)

// IsTerminal reports whether no further transitions can happen.
// Anything not explicitly terminal, including values Salesforce may add later,
// keeps polling alive.
func (s AsyncRequestStatus) IsTerminal() bool {
	switch s {
	case AsyncStatusCompleted, AsyncStatusFailed, AsyncStatusError, AsyncStatusAborted:
		return true
	}
	return false
}

// MetadataContainer is a disposable scratch workspace, one per deploy attempt.
type MetadataContainer struct {
	ID   string
	Name string
}

// ApexClassMember is the pending new body of a class, staged in a container.
type ApexClassMember struct {
	ID                  string
	ContentEntityID     string
	Body                string
	MetadataContainerID string
}

// ContainerAsyncRequest is the row polled while the deploy job runs.
// CompilerErrors and DeployDetails are kept undecoded: depending on the org
// they arrive as JSON strings holding JSON, as plain text, or as objects.
type ContainerAsyncRequest struct {
	ID             string             `json:"Id"`
	Status         AsyncRequestStatus `json:"Status"`
	CompilerErrors json.RawMessage    `json:"CompilerErrors"`
	ErrorMsg       *string            `json:"ErrorMsg"`
	DeployDetails  json.RawMessage    `json:"DeployDetails"`
}

// DeployPhase names the step of the deployment workflow that produced a failure.
type DeployPhase string

const (
	PhaseContainerCreation   DeployPhase = "container_creation"
	PhaseClassMemberCreation DeployPhase = "class_member_creation"
	PhaseDeploymentRequest   DeployPhase = "deployment_request"
	PhasePoll                DeployPhase = "poll"
)

// DeployError is a failure in one of the create steps. No deploy job ran
// (or its id is unknown) when this is returned.
type DeployError struct {
	Phase      DeployPhase
	Kind       GatewayErrorKind
	StatusCode int
	Status     string
	Details    *ErrorBody
	Err        error
}

func (e *DeployError) Error() string {
	target := map[DeployPhase]string{
		PhaseContainerCreation:   SObjectMetadataContainer,
		PhaseClassMemberCreation: SObjectApexClassMember,
		PhaseDeploymentRequest:   SObjectContainerAsyncRequest,
	}[e.Phase]
	if e.Kind == GatewayHTTP {
		return fmt.Sprintf("failed to create %s: %s", target, e.Status)
	}
	return fmt.Sprintf("failed to create %s: %v", target, e.Err)
}

func (e *DeployError) Unwrap() error {
	return e.Err
}

// CompilerErrors holds the CompilerErrors column, structured when it parsed
// as JSON and verbatim otherwise.
type CompilerErrors struct {
	Parsed any
	Raw    string
}

// IsZero reports whether there is anything to show.
func (c *CompilerErrors) IsZero() bool {
	return c == nil || (c.Parsed == nil && c.Raw == "")
}

// MarshalJSON emits the parsed structure when available, the raw string otherwise.
func (c CompilerErrors) MarshalJSON() ([]byte, error) {
	if c.Parsed != nil {
		return json.Marshal(c.Parsed)
	}
	return json.Marshal(c.Raw)
}

// ComponentFailure is one entry of DeployDetails.componentFailures.
// Field values are preserved exactly as Salesforce sent them.
type ComponentFailure struct {
	ProblemType   string `json:"problemType"`
	Problem       string `json:"problem"`
	ComponentType string `json:"componentType"`
	LineNumber    any    `json:"lineNumber"`
	ColumnNumber  any    `json:"columnNumber"`
}

// DeploymentResult is the single verdict of one class deployment.
type DeploymentResult struct {
	Success           bool               `json:"success"`
	Phase             DeployPhase        `json:"phase,omitempty"`
	Status            AsyncRequestStatus `json:"status,omitempty"`
	ErrorMessage      string             `json:"errorMsg,omitempty"`
	CompilerErrors    *CompilerErrors    `json:"compilerErrors,omitempty"`
	ComponentFailures []ComponentFailure `json:"deploymentErrors,omitempty"`
	TimedOut          bool               `json:"timedOut,omitempty"`
	Attempts          int                `json:"attemptsPerformed,omitempty"`
	RequestID         string             `json:"requestId,omitempty"`
}
