package redisresp

import "bytes"

// placeholderT is the type of the reserved placeholder sentinel. It has no
// exported fields and is never equal to any string, so it can never be
// confused with a legitimate textual argument.
type placeholderT struct{}

// Placeholder is the reserved sentinel that, when it appears in a Request's
// Args, stands in for one CRLF-separated segment of that Request's Payload
// at encode time. Identity (==) is how the encoder recognizes it; it is not
// a string and callers cannot accidentally produce an equivalent value.
var Placeholder = &placeholderT{}

// Request describes one command invocation: the command name, an optional
// opaque binary payload, and an ordered argument list in which Placeholder
// may appear any number of times, each occurrence consuming one
// CRLF-separated segment of Payload in order.
//
// A Request is immutable once built by NewRequest or one of the command
// shorthands in the cmd_*.go files; callers should not mutate Args or
// Payload in place afterward. It carries no connection and performs no I/O;
// building one never fails.
type Request struct {
	Command string
	Payload []byte
	Args    []interface{}
}

// NewRequest builds a Request from a command name, an opaque payload, and a
// list of arguments. Each element of args is a string, a number or bool
// (normalized to text by Encode), or Placeholder; use one of the command
// shorthands to build requests from richer Go values (byte slices, options
// structs).
func NewRequest(command string, payload []byte, args ...interface{}) Request {
	return Request{Command: command, Payload: payload, Args: args}
}

// IdentityRequest is the algebraic identity element: empty command, empty
// payload, no arguments. It is never sent to a server; Concat with it on
// either side returns the other operand's payload unchanged.
var IdentityRequest = Request{}

// payloadSegments splits r.Payload on CRLF into the segments that
// Placeholder occurrences will consume, in order. A lone trailing empty
// segment produced by a payload that ends in CRLF is dropped, per the
// source's established segment-splitting convention; an empty payload
// yields zero segments.
func (r Request) payloadSegments() [][]byte {
	if len(r.Payload) == 0 {
		return nil
	}
	segs := bytes.Split(r.Payload, delim)
	if n := len(segs); n > 0 && len(segs[n-1]) == 0 {
		segs = segs[:n-1]
	}
	return segs
}

// placeholderCount returns how many times Placeholder appears in r.Args.
func (r Request) placeholderCount() int {
	var n int
	for _, a := range r.Args {
		if a == Placeholder {
			n++
		}
	}
	return n
}

// Equal reports whether r and other have byte-identical Payloads. Command
// and Args are ignored, per the Request algebra in spec §4.1/§8.
func (r Request) Equal(other Request) bool {
	return bytes.Equal(r.Payload, other.Payload)
}

// Less implements a total order over Requests by comparing Payloads
// byte-wise (length first, then content), ignoring Command and Args.
func (r Request) Less(other Request) bool {
	if len(r.Payload) != len(other.Payload) {
		return len(r.Payload) < len(other.Payload)
	}
	return bytes.Compare(r.Payload, other.Payload) < 0
}

// Concat returns a new Request whose Payload is the byte-wise concatenation
// of r's and other's Payloads. Command and Args are taken from r; other's
// Command and Args are discarded. Concat with IdentityRequest on either side
// is a byte-wise no-op on the Payload.
func (r Request) Concat(other Request) Request {
	out := make([]byte, 0, len(r.Payload)+len(other.Payload))
	out = append(out, r.Payload...)
	out = append(out, other.Payload...)
	return Request{Command: r.Command, Payload: out, Args: r.Args}
}

// MapPayload returns a new Request with fn applied to r's Payload. Command
// and Args are carried over unchanged.
func (r Request) MapPayload(fn func([]byte) []byte) Request {
	return Request{Command: r.Command, Payload: fn(r.Payload), Args: r.Args}
}

// ExtendPayload returns a new Request whose Payload is r's Payload with b
// appended. It is Concat against an anonymous Request carrying only b.
func (r Request) ExtendPayload(b []byte) Request {
	return r.Concat(Request{Payload: b})
}

// ExtractPayload returns r's Payload as-is, the comonadic "extract"
// counterpart to MapPayload/Concat.
func (r Request) ExtractPayload() []byte {
	return r.Payload
}
