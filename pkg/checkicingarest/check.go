// Package checkicingarest forwards a check command invocation to the
// icinga-powershell-restapi daemon and translates the JSON response
// back into the standard monitoring plugin contract: output text on
// stdout and an exit code of 0 (OK), 1 (WARNING), 2 (CRITICAL) or
// 3 (UNKNOWN).
package checkicingarest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
	"github.com/mackerelio/checkers"
)

// VERSION of this tool
const VERSION = "0.2.1"

// process exit codes, the plugin severities plus the usage error
const (
	ExitOK       = 0
	ExitWarning  = 1
	ExitCritical = 2
	ExitUnknown  = 3
	ExitUsage    = 4
)

const usageHint = "usage: check_icinga_rest [options] -c <command> -- [-Parameter <value>|-Switch ...]\n"

// Check runs a complete invocation: it classifies the arguments, sends
// the request and writes the plugin output. The returned value is meant
// to be the process exit code.
//
// Plugin output goes to output, usage hints and error details go to
// errOutput. A transport or protocol failure still produces an UNKNOWN
// plugin result on output so the monitoring agent always receives a
// well-formed check result.
func Check(ctx context.Context, output, errOutput io.Writer, args []string) int {
	opts, checkArgs, err := parseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(output, err.Error())

			return ExitOK
		}
		fmt.Fprintf(errOutput, "%s\n%s", err.Error(), usageHint)

		return ExitUsage
	}

	if opts.Version {
		fmt.Fprintf(output, "check_icinga_rest v%s\n", VERSION)

		return ExitOK
	}

	setLogLevel(len(opts.Verbose))

	params, err := bindParameters(checkArgs)
	if err != nil {
		fmt.Fprintf(errOutput, "%s\n%s", err.Error(), usageHint)

		return ExitUsage
	}

	res, err := opts.execute(ctx, Invocation{Command: opts.Command[0], Parameters: params})
	if err != nil {
		fmt.Fprintf(errOutput, "%s\n", err.Error())
		fmt.Fprintf(output, "%s - %s\n", checkers.UNKNOWN, err.Error())

		return ExitUnknown
	}

	fmt.Fprintf(output, "%s\n", res.Output)

	return int(res.State)
}
