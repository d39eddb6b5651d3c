package app

import (
	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/adapters/out/salesforce"
	"github.com/bnema/forcedeck/internal/adapters/out/telemetry"
	"github.com/bnema/forcedeck/internal/boundaries/out"
	"github.com/bnema/forcedeck/internal/usecase/deploy"
	"github.com/bnema/forcedeck/internal/usecase/org"
)

// services holds the wired use cases and the adapters they own.
type services struct {
	client    *salesforce.Client
	deploySvc *deploy.Service
	orgSvc    *org.Service
}

// createServices wires the Salesforce gateway into the use cases.
func createServices(cfg Config, version string, log zerowrap.Logger) *services {
	client := salesforce.New(
		salesforce.WithAPIVersion(cfg.Salesforce.APIVersion),
		salesforce.WithTimeout(cfg.Salesforce.RequestTimeout),
		salesforce.WithUserAgent("forcedeck/"+version),
		salesforce.WithLogger(log),
	)

	var metrics out.DeployMetrics
	m, err := telemetry.NewMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("deploy metrics unavailable")
	} else {
		metrics = m
	}

	return &services{
		client:    client,
		deploySvc: deploy.NewService(client, metrics, cfg.DeployConfig(), log),
		orgSvc:    org.NewService(client, client, log),
	}
}

func (s *services) close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}
