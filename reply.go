package redisresp

// Reply is the result of reading one complete value off the wire: its
// exact raw bytes (header line(s) included, nested children concatenated
// in wire order) plus the Success/Failure classification from §4.3.
//
// Reply is intentionally the lowest-level return type from ReadReply; it
// carries no parsed structure. DecodeReply peels it into a Value.
type Reply struct {
	raw     []byte
	failure bool
}

// Success reports whether the reply is not an error/null-bulk per the
// classification rule in ReadReply.
func (r Reply) Success() bool { return !r.failure }

// Failure reports whether the reply classifies as an error outcome: a
// leading '-', a null bulk string, or a bulk string whose body begins
// with the error sigil.
func (r Reply) Failure() bool { return r.failure }

// Raw returns the reply's exact wire bytes, as consumed by ReadReply. The
// returned slice must not be modified by the caller.
func (r Reply) Raw() []byte { return r.raw }
