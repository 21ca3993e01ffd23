package adapter

// EnvelopeKind tells which of the three envelope states is populated.
type EnvelopeKind int

const (
	// KindResult carries a payload and the raw response.
	KindResult EnvelopeKind = iota
	// KindMetadata carries only the raw response and its request id.
	KindMetadata
	// KindError carries a captured error.
	KindError
)

// String returns string representation of the kind
func (k EnvelopeKind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindMetadata:
		return "metadata"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Envelope is the single outcome of one invocation.
type Envelope struct {
	Kind      EnvelopeKind
	Operation string

	Payload   any
	Response  any
	RequestID string

	// NextMarker is set when more pages remain that were not requested.
	NextMarker string
	Pages      int

	Err error
}

// OK reports whether the invocation succeeded.
func (e Envelope) OK() bool {
	return e.Kind != KindError
}

// Unwrap returns the payload (or the response for metadata envelopes) and
// the captured error.
func (e Envelope) Unwrap() (any, error) {
	switch e.Kind {
	case KindError:
		return nil, e.Err
	case KindMetadata:
		return e.Response, nil
	default:
		return e.Payload, nil
	}
}

func resultEnvelope(op string, payload, response any, requestID string) Envelope {
	return Envelope{
		Kind:      KindResult,
		Operation: op,
		Payload:   payload,
		Response:  response,
		RequestID: requestID,
	}
}

func metadataEnvelope(op string, response any, requestID string) Envelope {
	return Envelope{
		Kind:      KindMetadata,
		Operation: op,
		Response:  response,
		RequestID: requestID,
	}
}

func errorEnvelope(op string, err error) Envelope {
	return Envelope{
		Kind:      KindError,
		Operation: op,
		Err:       err,
	}
}
