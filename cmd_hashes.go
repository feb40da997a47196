package redisresp

// HSet builds an HSET request from an alternating field, value, field,
// value, ... argument list.
func HSet(key string, fieldValues ...interface{}) Request {
	parts := append([]interface{}{key}, fieldValues...)
	return buildRequest("HSET", parts...)
}

// HSetNX builds an HSETNX request.
func HSetNX(key, field string, value interface{}) Request {
	return buildRequest("HSETNX", key, field, value)
}

// HMSet builds an HMSET request from an alternating field, value, ...
// argument list.
func HMSet(key string, fieldValues ...interface{}) Request {
	parts := append([]interface{}{key}, fieldValues...)
	return buildRequest("HMSET", parts...)
}

// HGet builds an HGET request.
func HGet(key, field string) Request { return buildRequest("HGET", key, field) }

// HMGet builds an HMGET request for one or more fields.
func HMGet(key string, fields ...string) Request {
	parts := append([]interface{}{key}, stringsToArgs(fields)...)
	return buildRequest("HMGET", parts...)
}

// HGetAll builds an HGETALL request.
func HGetAll(key string) Request { return buildRequest("HGETALL", key) }

// HDel builds an HDEL request for one or more fields.
func HDel(key string, fields ...string) Request {
	parts := append([]interface{}{key}, stringsToArgs(fields)...)
	return buildRequest("HDEL", parts...)
}

// HExists builds an HEXISTS request.
func HExists(key, field string) Request { return buildRequest("HEXISTS", key, field) }

// HKeys builds an HKEYS request.
func HKeys(key string) Request { return buildRequest("HKEYS", key) }

// HVals builds an HVALS request.
func HVals(key string) Request { return buildRequest("HVALS", key) }

// HLen builds an HLEN request.
func HLen(key string) Request { return buildRequest("HLEN", key) }

// HIncrBy builds an HINCRBY request.
func HIncrBy(key, field string, delta int64) Request {
	return buildRequest("HINCRBY", key, field, delta)
}

// HIncrByFloat builds an HINCRBYFLOAT request.
func HIncrByFloat(key, field string, delta float64) Request {
	return buildRequest("HINCRBYFLOAT", key, field, delta)
}

// HScan builds an HSCAN request starting at cursor with optional
// MATCH/COUNT clauses (TYPE is ignored for HSCAN per its ScanOptions
// doc).
func HScan(key string, cursor int64, opts ScanOptions) Request {
	opts.Type = ""
	parts := append([]interface{}{key, cursor}, opts.flatten()...)
	return buildRequest("HSCAN", parts...)
}

// HRandField builds an HRANDFIELD request. When withCount is false,
// count and withValues are ignored and HRANDFIELD returns a single
// field.
func HRandField(key string, withCount bool, count int64, withValues bool) Request {
	parts := []interface{}{key}
	if withCount {
		parts = append(parts, count)
		if withValues {
			parts = append(parts, "WITHVALUES")
		}
	}
	return buildRequest("HRANDFIELD", parts...)
}
