package checkicingarest

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mackerelio/checkers"
)

// the daemon wraps results under the command name, this field marks the
// flat variant
const responseFieldExitcode = "exitcode"

// CheckResult is the final plugin result: a severity and the output
// text written verbatim to stdout.
type CheckResult struct {
	State  checkers.Status
	Output string
}

// exitCode is the daemon's exitcode field, either the plugin severity
// or an empty object when the check was accepted but not executed.
type exitCode struct {
	code     int64
	executed bool
}

func (e *exitCode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		e.executed = false

		return nil
	}
	if err := json.Unmarshal(data, &e.code); err != nil {
		return fmt.Errorf("exitcode is neither a number nor an empty object: %s", string(data))
	}
	e.executed = true

	return nil
}

// perfData is a string, a list of strings or an empty object.
type perfData struct {
	values []string
}

func (p *perfData) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		p.values = []string{single}
	case '[':
		return json.Unmarshal(data, &p.values)
	case '{':
		// empty object means no perfdata
	default:
		return fmt.Errorf("unexpected perfdata: %s", string(data))
	}

	return nil
}

func (p *perfData) String() string {
	return strings.Join(p.values, "")
}

type checkerResult struct {
	Exitcode    *exitCode `json:"exitcode"`
	Checkresult *string   `json:"checkresult"`
	Perfdata    perfData  `json:"perfdata"`
}

// decodeResponse turns the daemon's JSON body into a CheckResult. The
// daemon nests the result under the command name, but a flat result
// object is accepted as well.
func decodeResponse(command string, body []byte) (*CheckResult, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &ProtocolError{fmt.Errorf("cannot parse json response: %s", err.Error())}
	}

	raw := json.RawMessage(body)
	if _, ok := probe[responseFieldExitcode]; !ok {
		entry, ok := probe[command]
		if !ok {
			if len(probe) == 0 {
				return nil, &ProtocolError{fmt.Errorf("no check result in response")}
			}
			keys := make([]string, 0, len(probe))
			for key := range probe {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			entry = probe[keys[0]]
		}
		raw = entry
	}

	var res checkerResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &ProtocolError{fmt.Errorf("cannot parse check result: %s", err.Error())}
	}
	switch {
	case res.Exitcode == nil:
		return nil, &ProtocolError{fmt.Errorf("response lacks the exitcode field")}
	case res.Checkresult == nil:
		return nil, &ProtocolError{fmt.Errorf("response lacks the checkresult field")}
	case res.Exitcode.executed && (res.Exitcode.code < 0 || res.Exitcode.code > 3):
		return nil, &ProtocolError{fmt.Errorf("exit code %d outside the plugin range 0..3", res.Exitcode.code)}
	}

	state := checkers.UNKNOWN
	if res.Exitcode.executed {
		state = checkers.Status(res.Exitcode.code)
	}
	output := strings.ReplaceAll(*res.Checkresult, "\r\n", "\n")
	if perf := res.Perfdata.String(); perf != "" {
		output = output + " | " + perf
	}

	return &CheckResult{State: state, Output: output}, nil
}
