package checkicingarest

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/consol-monitoring/check_icinga_rest/pkg/psvalue"
)

// Parameter is one named argument forwarded to the check command.
type Parameter struct {
	Name  string
	Value psvalue.Value
}

// isParameterName reports whether the token starts a new parameter.
// A name is a dash followed by a letter, so negative numbers and range
// expressions like -10:20 never count as names.
func isParameterName(token string) bool {
	if !strings.HasPrefix(token, "-") {
		return false
	}
	next, _ := utf8.DecodeRuneInString(strings.TrimLeft(token, "-"))

	return unicode.IsLetter(next)
}

// bindParameters turns the forwarded arguments into an ordered list of
// named, typed parameters. A name followed by another name or by the
// end of the list becomes a switch set to true. Positional tokens bound
// to no parameter are ignored. A repeated name keeps its first position
// but takes the last value.
func bindParameters(args []string) ([]Parameter, error) {
	params := make([]Parameter, 0, len(args))
	index := make(map[string]int)
	for i := 0; i < len(args); i++ {
		if !isParameterName(args[i]) {
			log.Debugf("ignoring positional argument: %s", args[i])

			continue
		}
		name := strings.TrimLeft(args[i], "-")
		value := psvalue.BoolValue(true)
		if i+1 < len(args) && !isParameterName(args[i+1]) {
			i++
			parsed, err := psvalue.Parse(args[i])
			if err != nil {
				return nil, &ArgumentError{fmt.Errorf("invalid value for parameter '%s': %s", name, err.Error())}
			}
			value = parsed
		}
		if pos, ok := index[name]; ok {
			params[pos].Value = value

			continue
		}
		index[name] = len(params)
		params = append(params, Parameter{Name: name, Value: value})
	}

	return params, nil
}
