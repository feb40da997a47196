package redisresp

// SAdd builds an SADD request for one or more members.
func SAdd(key string, members ...interface{}) Request {
	parts := append([]interface{}{key}, members...)
	return buildRequest("SADD", parts...)
}

// SRem builds an SREM request for one or more members.
func SRem(key string, members ...interface{}) Request {
	parts := append([]interface{}{key}, members...)
	return buildRequest("SREM", parts...)
}

// SMembers builds an SMEMBERS request.
func SMembers(key string) Request { return buildRequest("SMEMBERS", key) }

// SIsMember builds an SISMEMBER request.
func SIsMember(key string, member interface{}) Request {
	return buildRequest("SISMEMBER", key, member)
}

// SMIsMember builds an SMISMEMBER request for one or more members.
func SMIsMember(key string, members ...interface{}) Request {
	parts := append([]interface{}{key}, members...)
	return buildRequest("SMISMEMBER", parts...)
}

// SCard builds an SCARD request.
func SCard(key string) Request { return buildRequest("SCARD", key) }

// SPop builds an SPOP request. When withCount is false, count is
// omitted and SPOP pops a single member.
func SPop(key string, withCount bool, count int64) Request {
	parts := []interface{}{key}
	if withCount {
		parts = append(parts, count)
	}
	return buildRequest("SPOP", parts...)
}

// SRandMember builds an SRANDMEMBER request. When withCount is false,
// count is omitted and SRANDMEMBER returns a single member.
func SRandMember(key string, withCount bool, count int64) Request {
	parts := []interface{}{key}
	if withCount {
		parts = append(parts, count)
	}
	return buildRequest("SRANDMEMBER", parts...)
}

// SUnion builds an SUNION request over one or more keys.
func SUnion(keys ...string) Request { return buildRequest("SUNION", stringsToArgs(keys)...) }

// SInter builds an SINTER request over one or more keys.
func SInter(keys ...string) Request { return buildRequest("SINTER", stringsToArgs(keys)...) }

// SDiff builds an SDIFF request over one or more keys.
func SDiff(keys ...string) Request { return buildRequest("SDIFF", stringsToArgs(keys)...) }

// SUnionStore builds an SUNIONSTORE request.
func SUnionStore(dst string, keys ...string) Request {
	parts := append([]interface{}{dst}, stringsToArgs(keys)...)
	return buildRequest("SUNIONSTORE", parts...)
}

// SInterStore builds an SINTERSTORE request.
func SInterStore(dst string, keys ...string) Request {
	parts := append([]interface{}{dst}, stringsToArgs(keys)...)
	return buildRequest("SINTERSTORE", parts...)
}

// SDiffStore builds an SDIFFSTORE request.
func SDiffStore(dst string, keys ...string) Request {
	parts := append([]interface{}{dst}, stringsToArgs(keys)...)
	return buildRequest("SDIFFSTORE", parts...)
}

// SMove builds an SMOVE request.
func SMove(src, dst string, member interface{}) Request {
	return buildRequest("SMOVE", src, dst, member)
}

// SScan builds an SSCAN request starting at cursor with optional
// MATCH/COUNT clauses.
func SScan(key string, cursor int64, opts ScanOptions) Request {
	opts.Type = ""
	parts := append([]interface{}{key, cursor}, opts.flatten()...)
	return buildRequest("SSCAN", parts...)
}
