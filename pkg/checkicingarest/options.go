package checkicingarest

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
)

const (
	// DefaultHostname is where the icinga-powershell-restapi daemon is
	// expected, it normally only listens on the loopback interface.
	DefaultHostname = "localhost"

	// DefaultPort is the daemon's default TCP port.
	DefaultPort = 5668

	// DefaultTimeout bounds the whole request in seconds.
	DefaultTimeout = 60

	// checkerPath is the daemon's check execution endpoint.
	checkerPath = "/v1/checker"
)

type toolOptions struct {
	Command  []string `short:"c" long:"command" description:"Name or alias of the check command to run, ex.: Invoke-IcingaCheckCPU"`
	Hostname string   `short:"H" long:"hostname" default:"localhost" description:"Host name or address of the REST API daemon"`
	Port     int      `short:"p" long:"port" default:"5668" description:"TCP port the REST API daemon listens on"`
	URL      string   `short:"u" long:"url" description:"Base url of the REST API daemon, overrides -H / -p, ex.: https://localhost:5668"`
	Insecure bool     `short:"k" long:"insecure" description:"Skip TLS certificate verification"`
	Timeout  int      `short:"t" long:"timeout" default:"60" description:"Timeout in seconds for the whole request"`
	Verbose  []bool   `short:"v" long:"verbose" description:"Print diagnostics to stderr, use twice for trace output"`
	Version  bool     `short:"V" long:"version" description:"Print version and exit"`

	endpoint string // final checker url, built once after parsing
}

// parseArgs splits the raw argument list at the first literal "--" into
// tool options and forwarded check parameters. Everything in front of
// the separator must be a known tool option, everything after it is
// handed to the parameter binder untouched.
func parseArgs(args []string) (*toolOptions, []string, error) {
	head := args
	tail := []string{}
	sep := -1
	for i, arg := range args {
		if arg == "--" {
			sep = i

			break
		}
	}
	if sep >= 0 {
		head, tail = args[:sep], args[sep+1:]
	}

	opts := &toolOptions{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "check_icinga_rest"
	remaining, err := parser.ParseArgs(head)
	if err != nil {
		return nil, nil, err
	}
	if opts.Version {
		return opts, nil, nil
	}

	if len(remaining) > 0 {
		return nil, nil, &ArgumentError{fmt.Errorf("unexpected argument in front of '--': %s", remaining[0])}
	}
	if sep < 0 {
		return nil, nil, &ArgumentError{fmt.Errorf("missing '--' separator in front of the check parameters")}
	}
	switch len(opts.Command) {
	case 0:
		return nil, nil, &ArgumentError{fmt.Errorf("no check command given, -c/--command is required")}
	case 1:
	default:
		return nil, nil, &ArgumentError{fmt.Errorf("-c/--command must be given exactly once")}
	}
	if opts.Timeout <= 0 {
		return nil, nil, &ArgumentError{fmt.Errorf("timeout must be a positive number of seconds")}
	}

	endpoint, err := opts.buildEndpoint()
	if err != nil {
		return nil, nil, &ArgumentError{err}
	}
	opts.endpoint = endpoint

	return opts, tail, nil
}

func (opts *toolOptions) buildEndpoint() (string, error) {
	if opts.URL == "" {
		hostPort := net.JoinHostPort(opts.Hostname, strconv.Itoa(opts.Port))

		return "https://" + hostPort + checkerPath, nil
	}

	parsed, err := url.Parse(opts.URL)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %s", opts.URL, err.Error())
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid url %s: scheme must be http or https", opts.URL)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + checkerPath
	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed.String(), nil
}
