package bus

import "fmt"

// PayloadError reports a message that failed validation: malformed JSON, an
// unknown action, or an out-of-range choice. Per spec.md's BusPayload kind,
// the policy is always the same regardless of which check failed: log a
// warning and drop the message.
type PayloadError struct {
	Reason string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("bus: %s", e.Reason)
}

// TransportError reports a broker-level failure: connect timeout, publish
// rejected, unexpected disconnect. Per spec.md's BusTransport kind, this is
// always logged and never fatal - the underlying client handles reconnects.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bus: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
