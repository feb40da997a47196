package redisresp

import "bytes"

// buildRequest is the single point through which every command shorthand
// builds its Request. Each element of parts is either a plain scalar
// (normalized to text via argToText) or a []byte, which routes through
// Payload behind a Placeholder instead — the binary-safe path described
// in SPEC_FULL.md §4.1.1, so raw bytes never get interpolated into
// otherwise-textual command args.
func buildRequest(command string, parts ...interface{}) Request {
	args := make([]interface{}, 0, len(parts))
	var segs [][]byte

	for _, p := range parts {
		if b, ok := p.([]byte); ok {
			segs = append(segs, b)
			args = append(args, Placeholder)
			continue
		}
		args = append(args, argToText(p))
	}

	if len(segs) == 0 {
		return NewRequest(command, nil, args...)
	}
	payload := bytes.Join(segs, delim)
	payload = append(payload, delim...)
	return NewRequest(command, payload, args...)
}

// optIf appends flag (with any trailing values) to parts when cond holds,
// used by shorthands with optional flag modifiers (SET's GET, COPY's and
// RESTORE's REPLACE, MIGRATE's COPY/REPLACE, ZRANGE's WITHSCORES, etc).
func optIf(parts []interface{}, cond bool, values ...interface{}) []interface{} {
	if !cond {
		return parts
	}
	return append(parts, values...)
}
