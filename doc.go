// Package redisresp is a client library for a RESP2 key/value server. It
// builds well-formed requests for the command surface, encodes them onto a
// byte stream, decodes the server's streaming replies, and orchestrates
// connection lifecycle, pipelining, and dependent-step command sequences.
//
// Dial and NewConn provide the one bundled transport; this package does
// not pool connections, cluster them, or speak RESP3, and leaves
// reconnection policy and pub/sub to the caller.
package redisresp
