package redisresp

import "github.com/joomcode/errorx"

// Error taxonomy, per spec §7. Each kind below is an errorx trait attached
// to a type in a dedicated namespace, so callers can test for a kind with
// errorx.HasTrait (or errors.Is/errors.As, which errorx supports natively)
// without needing to know this package's concrete error types.
//
// ServerError and IOError are deliberately absent here: a ServerError is
// carried as a Reply value (see Reply.Failure), never returned as a Go
// error, and an IOError is whatever the underlying Conn produced — this
// package does not wrap it in a trait, it propagates it as-is.
var (
	TraitMalformedRequest  = errorx.RegisterTrait("malformed_request")
	TraitTruncated         = errorx.RegisterTrait("truncated")
	TraitProtocolViolation = errorx.RegisterTrait("protocol_violation")
	TraitInvalidState      = errorx.RegisterTrait("invalid_state")
)

var namespace = errorx.NewNamespace("redisresp")

var (
	// ErrMalformedRequest is returned by Encode when the number of
	// Placeholder occurrences in a Request's Args does not match the
	// number of CRLF-separated segments its Payload supplies, or when a
	// real command is encoded with an empty Command.
	ErrMalformedRequest = namespace.NewType("malformed_request", TraitMalformedRequest)

	// ErrTruncated is returned by ReadReply when the stream reaches EOF
	// before a complete reply has been read.
	ErrTruncated = namespace.NewType("truncated", TraitTruncated)

	// ErrProtocolViolation is returned by ReadReply when a reply's leading
	// sigil is unrecognized or a length header fails to parse as an
	// integer.
	ErrProtocolViolation = namespace.NewType("protocol_violation", TraitProtocolViolation)

	// ErrInvalidState is returned when a caller attempts to start a new
	// write on a Conn while replies from a prior write are still
	// outstanding.
	ErrInvalidState = namespace.NewType("invalid_state", TraitInvalidState)
)

// IsMalformedRequest reports whether err (or any error it wraps) is a
// malformed-request error.
func IsMalformedRequest(err error) bool { return errorx.HasTrait(err, TraitMalformedRequest) }

// IsTruncated reports whether err (or any error it wraps) signals a
// truncated reply.
func IsTruncated(err error) bool { return errorx.HasTrait(err, TraitTruncated) }

// IsProtocolViolation reports whether err (or any error it wraps) signals a
// RESP protocol violation.
func IsProtocolViolation(err error) bool { return errorx.HasTrait(err, TraitProtocolViolation) }

// IsInvalidState reports whether err (or any error it wraps) signals a
// Conn used out of its allowed write/await-reply sequencing.
func IsInvalidState(err error) bool { return errorx.HasTrait(err, TraitInvalidState) }
