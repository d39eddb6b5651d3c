package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/boundaries/out"
	"github.com/bnema/forcedeck/internal/domain"
)

const (
	// DefaultPollInterval is the wait before each status check.
	DefaultPollInterval = 2 * time.Second
	// DefaultPollMaxAttempts bounds the number of status checks.
	DefaultPollMaxAttempts = 15

	statusQuery = "SELECT Id, Status, CompilerErrors, ErrorMsg, DeployDetails FROM ContainerAsyncRequest WHERE Id='%s'"
)

// SleepFunc waits for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// PollResult is what the poller knows when it stops. Record is the last
// successfully fetched row, nil if none was read.
type PollResult struct {
	RequestID   string
	FinalStatus domain.AsyncRequestStatus
	Record      *domain.ContainerAsyncRequest
	TimedOut    bool
	Attempts    int
}

// Poller watches a ContainerAsyncRequest until it reaches a terminal status
// or the attempt budget runs out.
type Poller struct {
	tooling     out.ToolingClient
	interval    time.Duration
	maxAttempts int
	sleep       SleepFunc
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithInterval sets the wait before each attempt. Non-positive values keep the default.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithMaxAttempts sets the attempt budget. Non-positive values keep the default.
func WithMaxAttempts(n int) PollerOption {
	return func(p *Poller) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithSleep replaces the timer-based sleep, mostly for tests.
func WithSleep(sleep SleepFunc) PollerOption {
	return func(p *Poller) {
		if sleep != nil {
			p.sleep = sleep
		}
	}
}

// NewPoller creates a poller with a 2s interval and 15 attempts unless overridden.
func NewPoller(tooling out.ToolingClient, opts ...PollerOption) *Poller {
	p := &Poller{
		tooling:     tooling,
		interval:    DefaultPollInterval,
		maxAttempts: DefaultPollMaxAttempts,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PollUntilTerminal sleeps before every status check, including the first.
// A failed check or an empty record set still consumes an attempt. When
// the budget is exhausted, or ctx ends, the result is marked TimedOut and
// carries the last record seen.
func (p *Poller) PollUntilTerminal(ctx context.Context, requestID string, creds domain.Credentials) PollResult {
	log := zerowrap.FromCtxWithField(ctx, "async_request_id", requestID)

	result := PollResult{RequestID: requestID}
	soql := fmt.Sprintf(statusQuery, domain.EscapeSOQL(requestID))

	for result.Attempts < p.maxAttempts {
		if err := p.sleep(ctx, p.interval); err != nil {
			log.Warn().Err(err).Int("attempts", result.Attempts).Msg("status polling interrupted")
			break
		}
		result.Attempts++

		var page domain.QueryResult[domain.ContainerAsyncRequest]
		if err := p.tooling.ToolingQuery(ctx, creds, soql, &page); err != nil {
			log.Warn().Err(err).Int("attempt", result.Attempts).Msg("status check failed")
			continue
		}
		if len(page.Records) == 0 {
			log.Warn().Int("attempt", result.Attempts).Msg("status check returned no records")
			continue
		}

		record := page.Records[0]
		result.Record = &record
		result.FinalStatus = record.Status
		log.Debug().
			Int("attempt", result.Attempts).
			Str(zerowrap.FieldStatus, string(record.Status)).
			Msg("deploy status")

		if record.Status.IsTerminal() {
			return result
		}
	}

	result.TimedOut = true
	return result
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
