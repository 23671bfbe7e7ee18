package checkicingarest

import (
	"errors"
	"testing"

	"github.com/consol-monitoring/check_icinga_rest/pkg/psvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParameters(t *testing.T) {
	params, err := bindParameters([]string{
		"-Parameter1", "123",
		"-Parameter2",
		"-Parameter3", "-123",
		"-Parameter4", "-10:20",
		"-Parameter5", "'@:20'",
	})
	require.NoError(t, err)
	assert.Equal(t, []Parameter{
		{Name: "Parameter1", Value: number(t, "123")},
		{Name: "Parameter2", Value: psvalue.BoolValue(true)},
		{Name: "Parameter3", Value: number(t, "-123")},
		{Name: "Parameter4", Value: psvalue.StringValue("-10:20")},
		{Name: "Parameter5", Value: psvalue.StringValue("@:20")},
	}, params)
}

func TestBindParametersPositionals(t *testing.T) {
	// positional arguments are not supported and simply skipped
	params, err := bindParameters([]string{"foo", "bar", "baz"})
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestBindParametersSwitches(t *testing.T) {
	// switches can be interleaved anywhere
	params, err := bindParameters([]string{"-Warning", "0", "-NoPerfData", "-Critical", "1"})
	require.NoError(t, err)
	assert.Equal(t, []Parameter{
		{Name: "Warning", Value: number(t, "0")},
		{Name: "NoPerfData", Value: psvalue.BoolValue(true)},
		{Name: "Critical", Value: number(t, "1")},
	}, params)

	// a switch at the end of the list has no value either
	params, err = bindParameters([]string{"-Verbosity"})
	require.NoError(t, err)
	assert.Equal(t, []Parameter{{Name: "Verbosity", Value: psvalue.BoolValue(true)}}, params)
}

func TestBindParametersLastWins(t *testing.T) {
	params, err := bindParameters([]string{"-Warning", "10", "-Critical", "20", "-Warning", "30"})
	require.NoError(t, err)
	assert.Equal(t, []Parameter{
		{Name: "Warning", Value: number(t, "30")},
		{Name: "Critical", Value: number(t, "20")},
	}, params)
}

func TestBindParametersBadValue(t *testing.T) {
	_, err := bindParameters([]string{"-Foo", "'unterminated"})
	require.Error(t, err)
	argErr := &ArgumentError{}
	assert.True(t, errors.As(err, &argErr), "bad value is an ArgumentError")
	assert.Contains(t, err.Error(), "Foo")
}

func number(t *testing.T, literal string) psvalue.Value {
	t.Helper()
	value, ok := psvalue.NumberValue(literal)
	require.Truef(t, ok, "number %s", literal)

	return value
}
