package redisresp

// ZAddOptions carries ZADD's optional NX/XX/GT/LT/CH/INCR modifiers. At
// most one of NX/XX and at most one of GT/LT make sense together; when
// both of a pair are set, only NX (over XX) and GT (over LT) are sent.
type ZAddOptions struct {
	NX, XX bool
	GT, LT bool
	CH     bool
	Incr   bool
}

func (o ZAddOptions) flatten() []interface{} {
	var parts []interface{}
	if o.NX {
		parts = append(parts, "NX")
	} else if o.XX {
		parts = append(parts, "XX")
	}
	if o.GT {
		parts = append(parts, "GT")
	} else if o.LT {
		parts = append(parts, "LT")
	}
	if o.CH {
		parts = append(parts, "CH")
	}
	if o.Incr {
		parts = append(parts, "INCR")
	}
	return parts
}

// ZAdd builds a ZADD request from opts's modifiers and an alternating
// score, member, score, member, ... argument list.
func ZAdd(key string, opts ZAddOptions, scoreMembers ...interface{}) Request {
	parts := append([]interface{}{key}, opts.flatten()...)
	parts = append(parts, scoreMembers...)
	return buildRequest("ZADD", parts...)
}

// ZScore builds a ZSCORE request.
func ZScore(key string, member interface{}) Request { return buildRequest("ZSCORE", key, member) }

// ZRangeOptions carries ZRANGE/ZREVRANGE's optional WITHSCORES clause.
type ZRangeOptions struct {
	WithScores bool
}

// ZRange builds a ZRANGE request.
func ZRange(key string, start, stop int64, opts ZRangeOptions) Request {
	parts := []interface{}{key, start, stop}
	parts = optIf(parts, opts.WithScores, "WITHSCORES")
	return buildRequest("ZRANGE", parts...)
}

// ZRevRange builds a ZREVRANGE request.
func ZRevRange(key string, start, stop int64, opts ZRangeOptions) Request {
	parts := []interface{}{key, start, stop}
	parts = optIf(parts, opts.WithScores, "WITHSCORES")
	return buildRequest("ZREVRANGE", parts...)
}

// ZRangeByScoreOptions carries ZRANGEBYSCORE's optional WITHSCORES and
// LIMIT clauses.
type ZRangeByScoreOptions struct {
	WithScores bool
	Offset     int64
	Count      int64
	WithLimit  bool
}

// ZRangeByScore builds a ZRANGEBYSCORE request. min/max accept the
// score bounds as strings so callers can pass "-inf"/"+inf" or an
// exclusive "(score" form verbatim.
func ZRangeByScore(key string, min, max string, opts ZRangeByScoreOptions) Request {
	parts := []interface{}{key, min, max}
	parts = optIf(parts, opts.WithScores, "WITHSCORES")
	if opts.WithLimit {
		parts = append(parts, "LIMIT", opts.Offset, opts.Count)
	}
	return buildRequest("ZRANGEBYSCORE", parts...)
}

// ZRank builds a ZRANK request.
func ZRank(key string, member interface{}) Request { return buildRequest("ZRANK", key, member) }

// ZRevRank builds a ZREVRANK request.
func ZRevRank(key string, member interface{}) Request {
	return buildRequest("ZREVRANK", key, member)
}

// ZRem builds a ZREM request for one or more members.
func ZRem(key string, members ...interface{}) Request {
	parts := append([]interface{}{key}, members...)
	return buildRequest("ZREM", parts...)
}

// ZCard builds a ZCARD request.
func ZCard(key string) Request { return buildRequest("ZCARD", key) }

// ZCount builds a ZCOUNT request.
func ZCount(key, min, max string) Request { return buildRequest("ZCOUNT", key, min, max) }

// ZIncrBy builds a ZINCRBY request.
func ZIncrBy(key string, delta float64, member interface{}) Request {
	return buildRequest("ZINCRBY", key, delta, member)
}

// ZScan builds a ZSCAN request starting at cursor with optional
// MATCH/COUNT clauses.
func ZScan(key string, cursor int64, opts ScanOptions) Request {
	opts.Type = ""
	parts := append([]interface{}{key, cursor}, opts.flatten()...)
	return buildRequest("ZSCAN", parts...)
}

// ZPopMin builds a ZPOPMIN request. When withCount is false, count is
// omitted and ZPOPMIN pops a single member.
func ZPopMin(key string, withCount bool, count int64) Request {
	parts := []interface{}{key}
	if withCount {
		parts = append(parts, count)
	}
	return buildRequest("ZPOPMIN", parts...)
}

// ZPopMax builds a ZPOPMAX request. When withCount is false, count is
// omitted and ZPOPMAX pops a single member.
func ZPopMax(key string, withCount bool, count int64) Request {
	parts := []interface{}{key}
	if withCount {
		parts = append(parts, count)
	}
	return buildRequest("ZPOPMAX", parts...)
}
