package app

import (
	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/boundaries/in"
	"github.com/bnema/forcedeck/internal/logging"
)

// Kernel provides in-process service access for local CLI execution.
//
// It does not start HTTP servers or register signal handlers.
type Kernel struct {
	cfg     Config
	svc     *services
	log     zerowrap.Logger
	cleanup func()
}

// NewKernel loads configuration and wires the use cases without listening.
func NewKernel(configPath, version string) (*Kernel, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := logging.Setup(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &Kernel{
		cfg:     cfg,
		svc:     createServices(cfg, version, log),
		log:     log,
		cleanup: cleanup,
	}, nil
}

func (k *Kernel) Close() error {
	if k == nil {
		return nil
	}
	k.svc.close()
	if k.cleanup != nil {
		k.cleanup()
	}
	return nil
}

func (k *Kernel) Deploy() in.DeployService { return k.svc.deploySvc }

func (k *Kernel) Org() in.OrgService { return k.svc.orgSvc }

func (k *Kernel) Logger() zerowrap.Logger { return k.log }

// DefaultInstanceURL is the configured salesforce.instance_url.
func (k *Kernel) DefaultInstanceURL() string { return k.cfg.Salesforce.InstanceURL }

// DefaultAccessToken is the configured salesforce.access_token.
func (k *Kernel) DefaultAccessToken() string { return k.cfg.Salesforce.AccessToken }
