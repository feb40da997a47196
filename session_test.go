package redisresp

import (
	"errors"
	. "testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSessionClosesOnSuccess(t *T) {
	c := newFakeConn("+PONG\r\n")
	dial := func() (Conn, error) { return c, nil }

	err := WithSession(dial, func(conn Conn) error {
		_, err := Execute(Ping(""), conn)
		return err
	})

	require.NoError(t, err)
	assert.True(t, c.closed)
}

func TestWithSessionClosesOnBodyError(t *T) {
	c := newFakeConn("")
	dial := func() (Conn, error) { return c, nil }
	bodyErr := errors.New("body failed")

	err := WithSession(dial, func(conn Conn) error { return bodyErr })

	assert.Equal(t, bodyErr, err)
	assert.True(t, c.closed)
}

func TestWithSessionPropagatesDialError(t *T) {
	dialErr := errors.New("connect refused")
	dial := func() (Conn, error) { return nil, dialErr }

	called := false
	err := WithSession(dial, func(conn Conn) error {
		called = true
		return nil
	})

	assert.Equal(t, dialErr, err)
	assert.False(t, called, "body must not run if dial fails")
}

func TestWithSessionFiresSessionClosedTrace(t *T) {
	var got TraceSessionClosed
	fired := false
	tr := &Trace{SessionClosed: func(e TraceSessionClosed) {
		fired = true
		got = e
	}}

	c := &tracedFakeConn{fakeConn: newFakeConn(""), trace: tr}
	dial := func() (Conn, error) { return c, nil }
	bodyErr := errors.New("oops")

	_ = WithSession(dial, func(conn Conn) error { return bodyErr })

	assert.True(t, fired)
	assert.Equal(t, bodyErr, got.Err)
}

// tracedFakeConn adds the tracedConn method on top of fakeConn so
// Trace hooks can be exercised without a real netConn.
type tracedFakeConn struct {
	*fakeConn
	trace *Trace
}

func (c *tracedFakeConn) getTrace() *Trace { return c.trace }
