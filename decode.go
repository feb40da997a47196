package redisresp

import (
	"errors"
	"io"
	"strconv"
)

// ReadReply consumes exactly one complete reply from c and returns it. On
// return the stream is positioned immediately after the reply's terminating
// CRLF (or after its final element's CRLF, for arrays).
//
// Nesting is handled with an explicit pending-slot counter rather than
// recursion, per spec §9's guidance to not stack-overflow on pathological
// nested arrays: every RESP value, scalar or array, occupies one "slot";
// reading an array of n elements replaces its own now-consumed slot with n
// more slots, which are the very next values on the wire. Because RESP
// children always follow their array header immediately, this flat counter
// reproduces the same preorder traversal recursion would, without growing
// the Go call stack.
func ReadReply(c Conn) (Reply, error) {
	var buf []byte
	var firstSigil byte
	var firstBulkBody []byte
	var firstBulkIsNil bool
	isFirst := true

	need := 1
	for need > 0 {
		line, err := c.ReadLine()
		if err != nil {
			return Reply{}, wrapReadErr(err)
		}
		if len(line) == 0 {
			return Reply{}, ErrProtocolViolation.New("empty reply line")
		}

		buf = append(buf, line...)
		buf = append(buf, delim...)
		need--

		sigil := line[0]
		thisIsFirst := isFirst
		if isFirst {
			firstSigil = sigil
			isFirst = false
		}

		switch sigil {
		case sigilSimpleStr, sigilError, sigilInt:
			// no further bytes to consume beyond the line just read

		case sigilBulkStr:
			n, err := parseReplyLen(line[1:])
			if err != nil {
				return Reply{}, err
			}
			if n == -1 {
				if thisIsFirst {
					firstBulkIsNil = true
				}
				continue
			}
			body, err := c.ReadExact(int(n) + 2)
			if err != nil {
				return Reply{}, wrapReadErr(err)
			}
			buf = append(buf, body...)
			if thisIsFirst && len(body) >= 2 {
				firstBulkBody = body[:len(body)-2]
			}

		case sigilArray:
			n, err := parseReplyLen(line[1:])
			if err != nil {
				return Reply{}, err
			}
			if n >= 0 {
				need += int(n)
			}

		default:
			return Reply{}, ErrProtocolViolation.New("unrecognized reply sigil %q", string(sigil))
		}
	}

	failure := classifyFailure(firstSigil, firstBulkIsNil, firstBulkBody)
	return Reply{raw: buf, failure: failure}, nil
}

// ReadNReplies reads exactly n replies off of c, in order, using ReadReply
// repeatedly. It does not infer completion from idleness; the count n is
// authoritative, matching ExecutePipeline's contract.
func ReadNReplies(c Conn, n int) ([]Reply, error) {
	replies := make([]Reply, n)
	for i := 0; i < n; i++ {
		r, err := ReadReply(c)
		if err != nil {
			return nil, err
		}
		replies[i] = r
	}
	return replies, nil
}

// classifyFailure implements spec §4.3's success/failure rule: a leading
// '-' is always Failure; a null bulk string ($-1) is Failure per decision
// #1 in SPEC_FULL.md; a non-null bulk string whose first body byte matches
// the error sigil is Failure too, preserving the source's lenient (and
// over-matching) quirk documented in spec §9; everything else is Success.
func classifyFailure(firstSigil byte, firstBulkIsNil bool, firstBulkBody []byte) bool {
	switch firstSigil {
	case sigilError:
		return true
	case sigilBulkStr:
		if firstBulkIsNil {
			return true
		}
		return len(firstBulkBody) > 0 && firstBulkBody[0] == sigilError
	default:
		return false
	}
}

func parseReplyLen(b []byte) (int64, error) {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, ErrProtocolViolation.New("invalid length header %q: %v", string(b), err)
	}
	if n < -1 {
		return 0, ErrProtocolViolation.New("invalid length header %q", string(b))
	}
	return n, nil
}

func wrapReadErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated.Wrap(err, "reply truncated")
	}
	return err
}
