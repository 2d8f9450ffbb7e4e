package watchdog

import (
	"github.com/core-tools/hsu-memwatch/pkg/logging"
)

const SeverityInfo = "info"

// ReportRecord is the structured record handed to the reporting sink for
// every restart attempt, successful or not.
type ReportRecord struct {
	Subject  string
	Message  string
	Severity string
}

// Reporter consumes restart report records
type Reporter interface {
	Report(record ReportRecord)
}

type logReporter struct {
	logger logging.Logger
}

// NewLogReporter returns a Reporter that writes report records to a logger.
func NewLogReporter(logger logging.Logger) Reporter {
	return &logReporter{
		logger: logger,
	}
}

func (r *logReporter) Report(record ReportRecord) {
	r.logger.Infof("%s: %s", record.Subject, record.Message)
}
