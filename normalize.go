package redisresp

import (
	"fmt"
	"strconv"
)

// stringifyNumber renders a Go number using its shortest decimal form, per
// spec §4.1's normalization table: 0.1 -> "0.1", 5000.0 -> "5000", -5 ->
// "-5".
func stringifyNumber(v interface{}) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	return "", false
}

// argToText normalizes an arbitrary shorthand-builder argument into its
// textual wire form. It is the single point through which every command
// shorthand's scalar arguments pass. []byte arguments get no special case
// here (fmt.Sprint renders them as a list of byte values); buildRequest
// routes them through Payload before this function is reached, so it is
// only for the textual (non-payload) case.
func argToText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	}
	if s, ok := stringifyNumber(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
