package redisresp

// ScanOptions carries SCAN/HSCAN/SSCAN/ZSCAN's optional MATCH/COUNT/TYPE
// clauses. A zero value adds no clauses. TYPE is only meaningful for
// SCAN itself; HSCAN/SSCAN/ZSCAN ignore it since their iterated values
// have no type of their own.
type ScanOptions struct {
	Match string
	Count int64
	Type  string
}

func (o ScanOptions) flatten() []interface{} {
	var parts []interface{}
	if o.Match != "" {
		parts = append(parts, "MATCH", o.Match)
	}
	if o.Count > 0 {
		parts = append(parts, "COUNT", o.Count)
	}
	if o.Type != "" {
		parts = append(parts, "TYPE", o.Type)
	}
	return parts
}

// Del builds a DEL request for one or more keys.
func Del(keys ...string) Request {
	return buildRequest("DEL", stringsToArgs(keys)...)
}

// Exists builds an EXISTS request for one or more keys.
func Exists(keys ...string) Request {
	return buildRequest("EXISTS", stringsToArgs(keys)...)
}

// Expire builds an EXPIRE request with a TTL in seconds.
func Expire(key string, seconds int64) Request {
	return buildRequest("EXPIRE", key, seconds)
}

// ExpireAt builds an EXPIREAT request with a Unix timestamp in seconds.
func ExpireAt(key string, unixSeconds int64) Request {
	return buildRequest("EXPIREAT", key, unixSeconds)
}

// PExpire builds a PEXPIRE request with a TTL in milliseconds.
func PExpire(key string, millis int64) Request {
	return buildRequest("PEXPIRE", key, millis)
}

// PExpireAt builds a PEXPIREAT request with a Unix timestamp in
// milliseconds.
func PExpireAt(key string, unixMillis int64) Request {
	return buildRequest("PEXPIREAT", key, unixMillis)
}

// TTL builds a TTL request.
func TTL(key string) Request { return buildRequest("TTL", key) }

// PTTL builds a PTTL request.
func PTTL(key string) Request { return buildRequest("PTTL", key) }

// Persist builds a PERSIST request.
func Persist(key string) Request { return buildRequest("PERSIST", key) }

// Type builds a TYPE request.
func Type(key string) Request { return buildRequest("TYPE", key) }

// Rename builds a RENAME request.
func Rename(key, newKey string) Request { return buildRequest("RENAME", key, newKey) }

// RenameNX builds a RENAMENX request.
func RenameNX(key, newKey string) Request { return buildRequest("RENAMENX", key, newKey) }

// Copy builds a COPY request. When replace is true, REPLACE is appended.
func Copy(src, dst string, replace bool) Request {
	parts := []interface{}{src, dst}
	parts = optIf(parts, replace, "REPLACE")
	return buildRequest("COPY", parts...)
}

// Move builds a MOVE request to the given database index.
func Move(key string, db int) Request { return buildRequest("MOVE", key, db) }

// RandomKey builds a RANDOMKEY request.
func RandomKey() Request { return buildRequest("RANDOMKEY") }

// Scan builds a SCAN request starting at cursor with optional clauses.
func Scan(cursor int64, opts ScanOptions) Request {
	parts := append([]interface{}{cursor}, opts.flatten()...)
	return buildRequest("SCAN", parts...)
}

// SortOptions carries SORT's optional BY/LIMIT/GET/ORDER/ALPHA/STORE
// clauses. GET may be repeated any number of times, per SORT's pattern
// expansion; an empty Get slice adds no GET clauses.
type SortOptions struct {
	By     string
	Offset int64
	Count  int64
	Get    []string
	Desc   bool
	Alpha  bool
	Store  string
}

func (o SortOptions) hasLimit() bool { return o.Offset != 0 || o.Count != 0 }

// Sort builds a SORT request for key with opts's clauses flattened in
// the canonical order: BY, LIMIT, GET..., DESC, ALPHA, STORE. ASC is
// never sent; it is the server's default order.
func Sort(key string, opts SortOptions) Request {
	parts := []interface{}{key}
	if opts.By != "" {
		parts = append(parts, "BY", opts.By)
	}
	if opts.hasLimit() {
		parts = append(parts, "LIMIT", opts.Offset, opts.Count)
	}
	for _, pattern := range opts.Get {
		parts = append(parts, "GET", pattern)
	}
	if opts.Desc {
		parts = append(parts, "DESC")
	}
	if opts.Alpha {
		parts = append(parts, "ALPHA")
	}
	if opts.Store != "" {
		parts = append(parts, "STORE", opts.Store)
	}
	return buildRequest("SORT", parts...)
}

// Dump builds a DUMP request.
func Dump(key string) Request { return buildRequest("DUMP", key) }

// Restore builds a RESTORE request. serialized is routed through Payload
// since DUMP output is arbitrary binary data.
func Restore(key string, ttlMillis int64, serialized []byte, replace bool) Request {
	parts := []interface{}{key, ttlMillis, serialized}
	parts = optIf(parts, replace, "REPLACE")
	return buildRequest("RESTORE", parts...)
}

// MigrateAuth carries MIGRATE's optional AUTH/AUTH2 clause.
type MigrateAuth struct {
	User string // empty for single-password AUTH
	Pass string
}

// Migrate builds a MIGRATE request. Per the fixed positional layout
// MIGRATE uses, when len(keys) == 1 that key occupies the single-key
// slot and no KEYS clause is appended; when len(keys) > 1 the single-key
// slot is the empty string and a trailing "KEYS k1 k2 ..." clause carries
// the keys instead (SPEC_FULL.md open question #4).
func Migrate(host string, port int, keys []string, destDB int, timeoutMillis int64, copyKey, replace bool, auth *MigrateAuth) Request {
	singleKey := ""
	if len(keys) == 1 {
		singleKey = keys[0]
	}

	parts := []interface{}{host, port, singleKey, destDB, timeoutMillis}
	parts = optIf(parts, copyKey, "COPY")
	parts = optIf(parts, replace, "REPLACE")
	if auth != nil {
		if auth.User != "" {
			parts = append(parts, "AUTH2", auth.User, auth.Pass)
		} else {
			parts = append(parts, "AUTH", auth.Pass)
		}
	}
	if len(keys) > 1 {
		parts = append(parts, "KEYS")
		for _, k := range keys {
			parts = append(parts, k)
		}
	}
	return buildRequest("MIGRATE", parts...)
}

// Touch builds a TOUCH request for one or more keys.
func Touch(keys ...string) Request { return buildRequest("TOUCH", stringsToArgs(keys)...) }

// Unlink builds an UNLINK request for one or more keys.
func Unlink(keys ...string) Request { return buildRequest("UNLINK", stringsToArgs(keys)...) }

func stringsToArgs(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
