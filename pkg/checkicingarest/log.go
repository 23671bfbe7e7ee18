package checkicingarest

import (
	"os"

	"github.com/kdar/factorlog"
)

// diagnostics go to stderr so they never mix with the plugin output
var log = factorlog.New(os.Stderr, factorlog.NewStdFormatter(
	`[%{Date} %{Time "15:04:05.000"}]`+
		`[%{Severity}]`+
		`[%{ShortFile}:%{Line}] %{Message}`))

func setLogLevel(verbose int) {
	switch {
	case verbose <= 0:
		log.SetMinMaxSeverity(factorlog.ERROR, factorlog.PANIC)
	case verbose == 1:
		log.SetMinMaxSeverity(factorlog.DEBUG, factorlog.PANIC)
	default:
		log.SetMinMaxSeverity(factorlog.TRACE, factorlog.PANIC)
	}
}

func init() {
	setLogLevel(0)
}
