package redisresp

import (
	"net"
	. "testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetConnReadLineAndReadExact(t *T) {
	client, server := net.Pipe()
	defer server.Close()

	go func() {
		server.Write([]byte("+OK\r\n$5\r\nhello\r\n"))
	}()

	conn := NewConn(client)
	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []byte("+OK"), line)

	bulkHeader, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []byte("$5"), bulkHeader)

	body, err := conn.ReadExact(7)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello\r\n"), body)
}

func TestNetConnWriteAll(t *T) {
	client, server := net.Pipe()
	defer client.Close()

	received := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := server.Read(buf)
		received <- buf[:n]
	}()

	conn := NewConn(client)
	require.NoError(t, conn.WriteAll([]byte("*1\r\n$4\r\nPING\r\n")))
	assert.Equal(t, []byte("*1\r\n$4\r\nPING\r\n"), <-received)
}

func TestNetConnCloseIsIdempotent(t *T) {
	client, server := net.Pipe()
	defer server.Close()

	conn := NewConn(client)
	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
}

func TestNetConnStateMachineRejectsWriteWhileAwaitingReply(t *T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	nc := NewConn(client).(*netConn)
	require.NoError(t, nc.beginWrite(1))
	nc.writeDone(1)

	err := nc.beginWrite(1)
	require.Error(t, err)
	assert.True(t, IsInvalidState(err))

	nc.repliesConsumed(1)
	require.NoError(t, nc.beginWrite(1))
}

func TestWithDefaultPort(t *T) {
	assert.Equal(t, "127.0.0.1:6379", withDefaultPort("127.0.0.1"))
	assert.Equal(t, "example.com:1234", withDefaultPort("example.com:1234"))
}
