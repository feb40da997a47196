package redisresp

import (
	. "testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeRunsStepsSequentially(t *T) {
	c := newFakeConn("$3\r\nfoo\r\n+OK\r\n")

	var capturedPrev []byte
	steps := []PipeStep{
		StepRequest{Request: Get("k")},
		StepFunc{Fn: func(prev []byte) Request {
			capturedPrev = prev
			return Set("copy-of-k", prev, SetOptions{})
		}},
	}

	reply, err := Pipe(steps, c)
	require.NoError(t, err)
	assert.True(t, reply.Success())
	assert.Equal(t, []byte("foo"), capturedPrev)

	want := encodeStrArr("GET", "k") + encodeStrArr("SET", "copy-of-k", "foo")
	assert.Equal(t, want, c.out.String())
}

func TestPipeFirstStepCannotBeFunction(t *T) {
	c := newFakeConn("")
	steps := []PipeStep{
		StepFunc{Fn: func(prev []byte) Request { return Ping("") }},
	}
	_, err := Pipe(steps, c)
	require.Error(t, err)
	assert.True(t, IsMalformedRequest(err))
}

func TestPipeNoStepsErrors(t *T) {
	c := newFakeConn("")
	_, err := Pipe(nil, c)
	require.Error(t, err)
	assert.True(t, IsMalformedRequest(err))
}
