package redisresp

// Wire-level RESP2 constants.
var (
	delim    = []byte{'\r', '\n'}
	delimEnd = delim[len(delim)-1]
)

const (
	sigilSimpleStr = '+'
	sigilError     = '-'
	sigilInt       = ':'
	sigilBulkStr   = '$'
	sigilArray     = '*'
)
