package salesforce

import (
	"github.com/bnema/zerowrap"
	"resty.dev/v3"
)

var _ resty.Logger = restyLogger{}

// restyLogger sends resty's own warnings and debug output to zerowrap
// instead of stderr.
type restyLogger struct {
	log zerowrap.Logger
}

func newRestyLogger(log zerowrap.Logger) restyLogger {
	return restyLogger{log: log.WithFields(map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "salesforce",
	})}
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
