package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"emperror.dev/errors"
	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/domain"
)

const (
	msgStatusTimedOut = "status check timed out"
	msgUnknownError   = "Unknown error"
)

// Translate turns the final poll state into a DeploymentResult. It never
// fails: payloads that do not parse are kept verbatim or dropped with a
// warning.
func Translate(ctx context.Context, poll PollResult) *domain.DeploymentResult {
	if poll.TimedOut || poll.Record == nil {
		status := domain.AsyncStatusTimeout
		if poll.Record != nil && poll.Record.Status != "" {
			status = poll.Record.Status
		}
		return &domain.DeploymentResult{
			Phase:        domain.PhasePoll,
			Status:       status,
			ErrorMessage: msgStatusTimedOut,
			TimedOut:     true,
			Attempts:     poll.Attempts,
			RequestID:    poll.RequestID,
		}
	}

	record := poll.Record
	if record.Status == domain.AsyncStatusCompleted {
		return &domain.DeploymentResult{
			Success:   true,
			Status:    domain.AsyncStatusCompleted,
			Attempts:  poll.Attempts,
			RequestID: poll.RequestID,
		}
	}

	status := record.Status
	if status == "" {
		status = domain.AsyncStatusUnknown
	}
	message := msgUnknownError
	if record.ErrorMsg != nil && *record.ErrorMsg != "" {
		message = *record.ErrorMsg
	}

	return &domain.DeploymentResult{
		Phase:             domain.PhasePoll,
		Status:            status,
		ErrorMessage:      message,
		CompilerErrors:    parseCompilerErrors(record.CompilerErrors),
		ComponentFailures: parseComponentFailures(ctx, record.DeployDetails),
		Attempts:          poll.Attempts,
		RequestID:         poll.RequestID,
	}
}

// parseCompilerErrors accepts the column as a JSON string (usually holding
// serialized JSON) or as an already structured value.
func parseCompilerErrors(raw json.RawMessage) *domain.CompilerErrors {
	text, isString, ok := unwrapJSONString(raw)
	if !ok {
		return nil
	}
	if !isString {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return &domain.CompilerErrors{Raw: string(raw)}
		}
		return &domain.CompilerErrors{Parsed: parsed, Raw: string(raw)}
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return &domain.CompilerErrors{Raw: text}
	}
	return &domain.CompilerErrors{Parsed: parsed, Raw: text}
}

// parseComponentFailures extracts componentFailures from DeployDetails.
// Salesforce sends either a single object or a list.
func parseComponentFailures(ctx context.Context, raw json.RawMessage) []domain.ComponentFailure {
	text, isString, ok := unwrapJSONString(raw)
	if !ok {
		return nil
	}
	payload := []byte(text)
	if !isString {
		payload = raw
	}

	failures, err := decodeComponentFailures(payload)
	if err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("ignoring unparseable deploy details")
		return nil
	}
	return failures
}

func decodeComponentFailures(payload []byte) ([]domain.ComponentFailure, error) {
	var details struct {
		ComponentFailures json.RawMessage `json:"componentFailures"`
	}
	if err := json.Unmarshal(payload, &details); err != nil {
		return nil, errors.Wrap(err, "decode deploy details")
	}

	list := bytes.TrimSpace(details.ComponentFailures)
	if len(list) == 0 || bytes.Equal(list, []byte("null")) {
		return nil, nil
	}
	if list[0] == '{' {
		var single domain.ComponentFailure
		if err := json.Unmarshal(list, &single); err != nil {
			return nil, errors.Wrap(err, "decode component failure")
		}
		return []domain.ComponentFailure{single}, nil
	}

	var failures []domain.ComponentFailure
	if err := json.Unmarshal(list, &failures); err != nil {
		return nil, errors.Wrap(err, "decode component failures")
	}
	return failures, nil
}

// unwrapJSONString reports the string content when raw is a JSON string.
// ok is false for absent, null and blank values.
func unwrapJSONString(raw json.RawMessage) (text string, isString, ok bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false, false
	}
	if trimmed[0] != '"' {
		return string(trimmed), false, true
	}
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return string(trimmed), false, true
	}
	if strings.TrimSpace(text) == "" {
		return "", true, false
	}
	return text, true, true
}
