package deploy

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/domain"
)

func testLogger() zerowrap.Logger {
	return zerowrap.New(zerowrap.Config{Level: "disabled"})
}

func testCreds() domain.Credentials {
	return domain.Credentials{
		InstanceURL: "https://acme.my.salesforce.com",
		AccessToken: "00Dxx0000000001!AQ4AQ",
	}
}

type recordingSleeper struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (r *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.calls = append(r.calls, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *recordingSleeper) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func record(status domain.AsyncRequestStatus) domain.ContainerAsyncRequest {
	return domain.ContainerAsyncRequest{ID: "1drxx0000000001", Status: status}
}

// respondWith fills the query envelope passed to ToolingQuery.
func respondWith(records ...domain.ContainerAsyncRequest) func(context.Context, domain.Credentials, string, interface{}) error {
	return func(_ context.Context, _ domain.Credentials, _ string, result interface{}) error {
		page := result.(*domain.QueryResult[domain.ContainerAsyncRequest])
		page.TotalSize = len(records)
		page.Done = true
		page.Records = records
		return nil
	}
}

func strPtr(s string) *string {
	return &s
}
