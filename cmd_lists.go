package redisresp

// LPush builds an LPUSH request for one or more values.
func LPush(key string, values ...interface{}) Request {
	parts := append([]interface{}{key}, values...)
	return buildRequest("LPUSH", parts...)
}

// RPush builds an RPUSH request for one or more values.
func RPush(key string, values ...interface{}) Request {
	parts := append([]interface{}{key}, values...)
	return buildRequest("RPUSH", parts...)
}

// LPushX builds an LPUSHX request for one or more values.
func LPushX(key string, values ...interface{}) Request {
	parts := append([]interface{}{key}, values...)
	return buildRequest("LPUSHX", parts...)
}

// RPushX builds an RPUSHX request for one or more values.
func RPushX(key string, values ...interface{}) Request {
	parts := append([]interface{}{key}, values...)
	return buildRequest("RPUSHX", parts...)
}

// LPop builds an LPOP request. When withCount is false, count is
// omitted and LPOP pops a single element.
func LPop(key string, withCount bool, count int64) Request {
	parts := []interface{}{key}
	if withCount {
		parts = append(parts, count)
	}
	return buildRequest("LPOP", parts...)
}

// RPop builds an RPOP request. When withCount is false, count is
// omitted and RPOP pops a single element.
func RPop(key string, withCount bool, count int64) Request {
	parts := []interface{}{key}
	if withCount {
		parts = append(parts, count)
	}
	return buildRequest("RPOP", parts...)
}

// LLen builds an LLEN request.
func LLen(key string) Request { return buildRequest("LLEN", key) }

// LRange builds an LRANGE request.
func LRange(key string, start, stop int64) Request {
	return buildRequest("LRANGE", key, start, stop)
}

// LIndex builds an LINDEX request.
func LIndex(key string, index int64) Request { return buildRequest("LINDEX", key, index) }

// LSet builds an LSET request.
func LSet(key string, index int64, value interface{}) Request {
	return buildRequest("LSET", key, index, value)
}

// LInsert builds an LINSERT request. before selects BEFORE vs AFTER.
func LInsert(key string, before bool, pivot, value interface{}) Request {
	where := "AFTER"
	if before {
		where = "BEFORE"
	}
	return buildRequest("LINSERT", key, where, pivot, value)
}

// LRem builds an LREM request.
func LRem(key string, count int64, value interface{}) Request {
	return buildRequest("LREM", key, count, value)
}

// LTrim builds an LTRIM request.
func LTrim(key string, start, stop int64) Request {
	return buildRequest("LTRIM", key, start, stop)
}

// RPopLPush builds an RPOPLPUSH request.
func RPopLPush(src, dst string) Request { return buildRequest("RPOPLPUSH", src, dst) }

// LMove builds an LMOVE request. srcLeft/dstLeft select LEFT vs RIGHT
// for the source and destination ends respectively.
func LMove(src, dst string, srcLeft, dstLeft bool) Request {
	srcWhere, dstWhere := "RIGHT", "RIGHT"
	if srcLeft {
		srcWhere = "LEFT"
	}
	if dstLeft {
		dstWhere = "LEFT"
	}
	return buildRequest("LMOVE", src, dst, srcWhere, dstWhere)
}
