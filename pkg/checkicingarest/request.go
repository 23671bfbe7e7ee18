package checkicingarest

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// request body field names, fixed by the daemon contract
const (
	requestFieldCommand   = "command"
	requestFieldArguments = "arguments"
)

// Invocation is a check command plus its ordered parameters.
type Invocation struct {
	Command    string
	Parameters []Parameter
}

// MarshalJSON assembles the request body by hand so the parameter order
// from the command line survives into the arguments object.
func (inv Invocation) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"` + requestFieldCommand + `":`)
	command, err := json.Marshal(inv.Command)
	if err != nil {
		return nil, err
	}
	buf.Write(command)
	buf.WriteString(`,"` + requestFieldArguments + `":{`)
	for i, param := range inv.Parameters {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(param.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(param.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}
