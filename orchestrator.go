package redisresp

// connStateTracker is implemented by Conn values that track the
// Idle/Writing/AwaitingReply/Closed state machine from spec §4.5.
// netConn implements it; a Conn that doesn't (a hand-rolled test double,
// say) simply isn't checked for InvalidState — Execute and
// ExecutePipeline still work against it, they just can't enforce the
// single-write-in-flight rule for that particular Conn.
type connStateTracker interface {
	beginWrite(expected int) error
	writeDone(expected int)
	repliesConsumed(n int)
}

// Execute writes request's encoded form to conn and reads back exactly
// one reply. Request/reply pairing needs no bookkeeping beyond this:
// only one exchange is ever in flight.
func Execute(request Request, conn Conn) (Reply, error) {
	encoded, err := Encode(request)
	if err != nil {
		return Reply{}, err
	}

	tracker, tracked := conn.(connStateTracker)
	if tracked {
		if err := tracker.beginWrite(1); err != nil {
			return Reply{}, err
		}
	}

	writeErr := conn.WriteAll(encoded)
	fireRequestWritten(conn, request, writeErr)
	if writeErr != nil {
		return Reply{}, writeErr
	}
	if tracked {
		tracker.writeDone(1)
	}

	reply, err := ReadReply(conn)
	fireReplyRead(conn, reply, err)
	if tracked {
		tracker.repliesConsumed(1)
	}
	if err != nil {
		return Reply{}, err
	}
	return reply, nil
}

// ExecutePipeline writes every request in requests back-to-back — each
// request's own encoding already ends in the CRLF that separates it from
// the next, so no extra framing is inserted — then reads exactly
// len(requests) replies, in order. The count is authoritative;
// ExecutePipeline never infers completion from stream idleness.
func ExecutePipeline(requests []Request, conn Conn) ([]Reply, error) {
	var out []byte
	for _, r := range requests {
		encoded, err := Encode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)
	}

	tracker, tracked := conn.(connStateTracker)
	if tracked {
		if err := tracker.beginWrite(len(requests)); err != nil {
			return nil, err
		}
	}

	writeErr := conn.WriteAll(out)
	for _, r := range requests {
		fireRequestWritten(conn, r, writeErr)
	}
	if writeErr != nil {
		return nil, writeErr
	}
	if tracked {
		tracker.writeDone(len(requests))
	}

	replies := make([]Reply, len(requests))
	var err error
	for i := range replies {
		replies[i], err = ReadReply(conn)
		fireReplyRead(conn, replies[i], err)
		if tracked {
			tracker.repliesConsumed(1)
		}
		if err != nil {
			return nil, err
		}
	}
	return replies, nil
}
