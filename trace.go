package redisresp

// Trace holds optional callback hooks invoked at defined points during a
// session's life: every field is an optional function, letting the
// caller wire in whatever logging or metrics library it likes without
// this package importing one itself. A nil field is simply not called.
type Trace struct {
	// RequestWritten is called after Execute/ExecutePipeline attempts to
	// write a request's encoded bytes, successfully or not.
	RequestWritten func(TraceRequestWritten)

	// ReplyRead is called after a reply has been read (or reading it
	// failed).
	ReplyRead func(TraceReplyRead)

	// SessionClosed is called once, when WithSession closes its
	// connection on the way out.
	SessionClosed func(TraceSessionClosed)
}

// TraceRequestWritten describes one write attempt.
type TraceRequestWritten struct {
	Request Request
	Err     error
}

// TraceReplyRead describes one reply read attempt. Reply is the zero
// value if Err is non-nil.
type TraceReplyRead struct {
	Reply Reply
	Err   error
}

// TraceSessionClosed describes the outcome of closing a session's
// connection. Err is the error, if any, body returned, not any error
// from Close itself — Close's own error is swallowed the same way
// WithSession's defer swallows it, since the session is already on its
// way out.
type TraceSessionClosed struct {
	Err error
}

// tracedConn is implemented by Conn values that carry an attached Trace,
// optionally satisfied the same way connStateTracker is: netConn
// implements it, other Conn values are simply not traced.
type tracedConn interface {
	getTrace() *Trace
}

func fireRequestWritten(conn Conn, req Request, err error) {
	tc, ok := conn.(tracedConn)
	if !ok {
		return
	}
	t := tc.getTrace()
	if t == nil || t.RequestWritten == nil {
		return
	}
	t.RequestWritten(TraceRequestWritten{Request: req, Err: err})
}

func fireReplyRead(conn Conn, reply Reply, err error) {
	tc, ok := conn.(tracedConn)
	if !ok {
		return
	}
	t := tc.getTrace()
	if t == nil || t.ReplyRead == nil {
		return
	}
	t.ReplyRead(TraceReplyRead{Reply: reply, Err: err})
}

func fireSessionClosed(conn Conn, err error) {
	tc, ok := conn.(tracedConn)
	if !ok {
		return
	}
	t := tc.getTrace()
	if t == nil || t.SessionClosed == nil {
		return
	}
	t.SessionClosed(TraceSessionClosed{Err: err})
}
