package redisresp

// WithSession opens a connection via dial, runs body against it, and
// closes the connection on every exit path, whether body returns nil or
// an error. Cleanup runs exactly once regardless of how body exits
// (normal return or panic), applied here to a single borrowed
// connection rather than a worker pool.
//
// body is free to issue any mix of Execute / ExecutePipeline / Pipe
// calls against the Conn it's given; it reports its result through
// whatever closure state it captures.
func WithSession(dial DialFunc, body func(Conn) error) error {
	conn, err := dial()
	if err != nil {
		return err
	}
	defer func() {
		bodyErr := recover()
		fireSessionClosed(conn, err)
		conn.Close()
		if bodyErr != nil {
			panic(bodyErr)
		}
	}()

	err = body(conn)
	return err
}
