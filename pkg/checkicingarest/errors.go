package checkicingarest

// ArgumentError is a malformed command line. No check is attempted and
// the tool exits with ExitUsage instead of a plugin state.
type ArgumentError struct {
	err error
}

func (e *ArgumentError) Error() string { return e.err.Error() }
func (e *ArgumentError) Unwrap() error { return e.err }

// TransportError covers connection, TLS, timeout and HTTP status
// failures while talking to the daemon.
type TransportError struct {
	err error
}

func (e *TransportError) Error() string { return e.err.Error() }
func (e *TransportError) Unwrap() error { return e.err }

// ProtocolError is a response which arrived fine but does not follow
// the daemon's JSON contract.
type ProtocolError struct {
	err error
}

func (e *ProtocolError) Error() string { return e.err.Error() }
func (e *ProtocolError) Unwrap() error { return e.err }
