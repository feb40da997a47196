package redisresp

import (
	. "testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteFiresTraceHooks(t *T) {
	var written TraceRequestWritten
	var read TraceReplyRead
	tr := &Trace{
		RequestWritten: func(e TraceRequestWritten) { written = e },
		ReplyRead:      func(e TraceReplyRead) { read = e },
	}

	c := &tracedFakeConn{fakeConn: newFakeConn("+PONG\r\n"), trace: tr}
	reply, err := Execute(Ping(""), c)
	require.NoError(t, err)

	assert.Equal(t, "PING", written.Request.Command)
	assert.NoError(t, written.Err)
	assert.Equal(t, reply.Raw(), read.Reply.Raw())
	assert.NoError(t, read.Err)
}

func TestExecuteSkipsTraceHooksWhenConnIsUntraced(t *T) {
	c := newFakeConn("+PONG\r\n")
	_, err := Execute(Ping(""), c)
	require.NoError(t, err)
}

func TestExecutePipelineFiresRequestWrittenPerRequest(t *T) {
	var writes []string
	tr := &Trace{
		RequestWritten: func(e TraceRequestWritten) { writes = append(writes, e.Request.Command) },
	}

	c := &tracedFakeConn{fakeConn: newFakeConn("+OK\r\n+OK\r\n"), trace: tr}
	_, err := ExecutePipeline([]Request{Ping(""), Ping("")}, c)
	require.NoError(t, err)

	assert.Equal(t, []string{"PING", "PING"}, writes)
}
