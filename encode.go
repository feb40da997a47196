package redisresp

import "strconv"

// Encode serializes r into the exact bytes to transmit to the server: a
// RESP array of len(r.Args)+1 bulk strings, the command name followed by
// each argument. Placeholder occurrences in r.Args consume, in order, the
// CRLF-separated segments of r.Payload.
//
// Encode is pure: it never touches a connection and has no side effects
// beyond the returned error. It fails with ErrMalformedRequest if the
// number of Placeholder occurrences doesn't match the number of payload
// segments, or if r.Command is empty.
func Encode(r Request) ([]byte, error) {
	if r.Command == "" {
		return nil, ErrMalformedRequest.New("request has an empty command")
	}

	segs := r.payloadSegments()
	if want, got := r.placeholderCount(), len(segs); want != got {
		return nil, ErrMalformedRequest.New(
			"request has %d placeholder(s) in Args but Payload supplies %d segment(s)", want, got)
	}

	// resolve each argument to its final wire bytes up front so the total
	// size is known before any allocation, per the single-contiguous-buffer
	// requirement.
	fields := make([][]byte, 0, len(r.Args)+1)
	fields = append(fields, []byte(r.Command))

	segIdx := 0
	for _, a := range r.Args {
		if a == Placeholder {
			fields = append(fields, segs[segIdx])
			segIdx++
			continue
		}
		fields = append(fields, []byte(argToText(a)))
	}

	size := len(arrayHeaderBytes(len(fields)))
	for _, f := range fields {
		size += bulkStrSize(f)
	}

	out := make([]byte, 0, size)
	out = appendArrayHeader(out, len(fields))
	for _, f := range fields {
		out = appendBulkStr(out, f)
	}
	return out, nil
}

func arrayHeaderBytes(n int) []byte {
	return appendArrayHeader(nil, n)
}

func appendArrayHeader(dst []byte, n int) []byte {
	dst = append(dst, sigilArray)
	dst = strconv.AppendInt(dst, int64(n), 10)
	dst = append(dst, delim...)
	return dst
}

func bulkStrSize(b []byte) int {
	// '$' + digits of len(b) + CRLF + b + CRLF
	return 1 + len(strconv.Itoa(len(b))) + 2 + len(b) + 2
}

func appendBulkStr(dst, b []byte) []byte {
	dst = append(dst, sigilBulkStr)
	dst = strconv.AppendInt(dst, int64(len(b)), 10)
	dst = append(dst, delim...)
	dst = append(dst, b...)
	dst = append(dst, delim...)
	return dst
}
