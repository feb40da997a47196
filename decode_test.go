package redisresp

import (
	. "testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadReplySimpleString(t *T) {
	c := newFakeConn("+OK\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Success())
	assert.Equal(t, []byte("+OK\r\n"), r.Raw())
}

func TestReadReplyError(t *T) {
	c := newFakeConn("-WRONGTYPE bad type\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Failure())
}

func TestReadReplyInteger(t *T) {
	c := newFakeConn(":1000\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Success())
}

func TestReadReplyBulkString(t *T) {
	c := newFakeConn("$5\r\nhello\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Success())
	assert.Equal(t, []byte("$5\r\nhello\r\n"), r.Raw())
}

func TestReadReplyZeroLengthBulkString(t *T) {
	c := newFakeConn("$0\r\n\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Success(), "empty bulk string is Success, distinct from null bulk")
}

func TestReadReplyNullBulkStringIsFailure(t *T) {
	c := newFakeConn("$-1\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Failure())
	assert.Equal(t, []byte("$-1\r\n"), r.Raw())
}

func TestReadReplyBulkStringLeadingMinusIsFailure(t *T) {
	// wire quirk preserved for compatibility: a bulk string whose body
	// starts with '-' classifies as Failure even though the outer sigil
	// is '$'.
	c := newFakeConn("$4\r\n-ERR\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Failure())
}

func TestReadReplyArray(t *T) {
	c := newFakeConn("*2\r\n$1\r\na\r\n:5\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Success())
	assert.Equal(t, []byte("*2\r\n$1\r\na\r\n:5\r\n"), r.Raw())
}

func TestReadReplyNestedArray(t *T) {
	c := newFakeConn("*2\r\n$1\r\na\r\n*2\r\n:1\r\n:2\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.Equal(t, []byte("*2\r\n$1\r\na\r\n*2\r\n:1\r\n:2\r\n"), r.Raw())
}

func TestReadReplyDeeplyNestedArrayDoesNotOverflow(t *T) {
	// 2000 singleton arrays nested inside each other, terminated by one
	// integer. A recursive decoder without a depth guard would blow the
	// stack on this; the flat pending-slot counter must not.
	const depth = 2000
	script := ""
	for i := 0; i < depth; i++ {
		script += "*1\r\n"
	}
	script += ":1\r\n"

	c := newFakeConn(script)
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.True(t, r.Success())
}

func TestReadReplyNullArrayConsumesNoChildren(t *T) {
	c := newFakeConn("*-1\r\n+OK\r\n")
	r, err := ReadReply(c)
	require.NoError(t, err)
	assert.Equal(t, []byte("*-1\r\n"), r.Raw())

	next, err := ReadReply(c)
	require.NoError(t, err)
	assert.Equal(t, []byte("+OK\r\n"), next.Raw())
}

func TestReadReplyTruncatedStreamIsTruncatedError(t *T) {
	c := newFakeConn("$5\r\nhel")
	_, err := ReadReply(c)
	require.Error(t, err)
	assert.True(t, IsTruncated(err))
}

func TestReadReplyUnknownSigilIsProtocolViolation(t *T) {
	c := newFakeConn("!oops\r\n")
	_, err := ReadReply(c)
	require.Error(t, err)
	assert.True(t, IsProtocolViolation(err))
}

func TestReadNReplies(t *T) {
	c := newFakeConn("+a\r\n+b\r\n+c\r\n")
	replies, err := ReadNReplies(c, 3)
	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, []byte("+a\r\n"), replies[0].Raw())
	assert.Equal(t, []byte("+c\r\n"), replies[2].Raw())
}
