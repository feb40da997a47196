package redisresp

// Get builds a GET request.
func Get(key string) Request { return buildRequest("GET", key) }

// SetExpiry selects SET's mutually-exclusive expiry clause. The zero
// value adds no expiry clause.
type SetExpiry struct {
	EX, PX, EXAT, PXAT int64
	KeepTTL            bool
}

func (e SetExpiry) flatten() []interface{} {
	switch {
	case e.EX != 0:
		return []interface{}{"EX", e.EX}
	case e.PX != 0:
		return []interface{}{"PX", e.PX}
	case e.EXAT != 0:
		return []interface{}{"EXAT", e.EXAT}
	case e.PXAT != 0:
		return []interface{}{"PXAT", e.PXAT}
	case e.KeepTTL:
		return []interface{}{"KEEPTTL"}
	}
	return nil
}

// SetOptions carries SET's optional modifiers: one of NX/XX, an expiry
// clause, and GET (return the old value instead of OK). value may be a
// string or a []byte; []byte routes through Payload.
type SetOptions struct {
	NX, XX bool
	Expiry SetExpiry
	Get    bool
}

// Set builds a SET request with opts's modifiers flattened in the
// canonical order: expiry clause, NX/XX, GET.
func Set(key string, value interface{}, opts SetOptions) Request {
	parts := []interface{}{key, value}
	parts = append(parts, opts.Expiry.flatten()...)
	if opts.NX {
		parts = append(parts, "NX")
	} else if opts.XX {
		parts = append(parts, "XX")
	}
	parts = optIf(parts, opts.Get, "GET")
	return buildRequest("SET", parts...)
}

// GetSet builds a GETSET request.
func GetSet(key string, value interface{}) Request { return buildRequest("GETSET", key, value) }

// GetDel builds a GETDEL request.
func GetDel(key string) Request { return buildRequest("GETDEL", key) }

// Append builds an APPEND request.
func Append(key string, value interface{}) Request { return buildRequest("APPEND", key, value) }

// StrLen builds a STRLEN request.
func StrLen(key string) Request { return buildRequest("STRLEN", key) }

// Incr builds an INCR request.
func Incr(key string) Request { return buildRequest("INCR", key) }

// IncrBy builds an INCRBY request.
func IncrBy(key string, delta int64) Request { return buildRequest("INCRBY", key, delta) }

// IncrByFloat builds an INCRBYFLOAT request.
func IncrByFloat(key string, delta float64) Request {
	return buildRequest("INCRBYFLOAT", key, delta)
}

// Decr builds a DECR request.
func Decr(key string) Request { return buildRequest("DECR", key) }

// DecrBy builds a DECRBY request.
func DecrBy(key string, delta int64) Request { return buildRequest("DECRBY", key, delta) }

// MGet builds an MGET request for one or more keys.
func MGet(keys ...string) Request { return buildRequest("MGET", stringsToArgs(keys)...) }

// MSet builds an MSET request from an alternating key, value, key,
// value, ... argument list.
func MSet(kvs ...interface{}) Request { return buildRequest("MSET", kvs...) }

// MSetNX builds an MSETNX request from an alternating key, value, key,
// value, ... argument list.
func MSetNX(kvs ...interface{}) Request { return buildRequest("MSETNX", kvs...) }

// SetNX builds a SETNX request.
func SetNX(key string, value interface{}) Request { return buildRequest("SETNX", key, value) }

// SetEX builds a SETEX request with a TTL in seconds.
func SetEX(key string, seconds int64, value interface{}) Request {
	return buildRequest("SETEX", key, seconds, value)
}

// PSetEX builds a PSETEX request with a TTL in milliseconds.
func PSetEX(key string, millis int64, value interface{}) Request {
	return buildRequest("PSETEX", key, millis, value)
}

// GetRange builds a GETRANGE request. start/end are plain integer
// bounds, excluded from binary-safe handling as they're never payload
// data.
func GetRange(key string, start, end int64) Request {
	return buildRequest("GETRANGE", key, start, end)
}

// SetRange builds a SETRANGE request.
func SetRange(key string, offset int64, value interface{}) Request {
	return buildRequest("SETRANGE", key, offset, value)
}

// BitCount builds a BITCOUNT request. When withRange is false, start/end
// are omitted.
func BitCount(key string, start, end int64, withRange bool) Request {
	parts := []interface{}{key}
	if withRange {
		parts = append(parts, start, end)
	}
	return buildRequest("BITCOUNT", parts...)
}

// BitOp builds a BITOP request. op is one of AND, OR, XOR, NOT.
func BitOp(op, destKey string, srcKeys ...string) Request {
	parts := append([]interface{}{op, destKey}, stringsToArgs(srcKeys)...)
	return buildRequest("BITOP", parts...)
}

// BitPos builds a BITPOS request. When withRange is false, start/end are
// omitted; end is only sent when both withRange and withEnd hold.
func BitPos(key string, bit int, start, end int64, withRange, withEnd bool) Request {
	parts := []interface{}{key, bit}
	if withRange {
		parts = append(parts, start)
		if withEnd {
			parts = append(parts, end)
		}
	}
	return buildRequest("BITPOS", parts...)
}

// BitFieldOp is one GET/SET/INCRBY sub-operation within a BITFIELD call,
// per BITFIELD's per-operation clause syntax.
type BitFieldOp struct {
	Kind     string // "GET", "SET", or "INCRBY"
	Type     string // e.g. "u8", "i16"
	Offset   string // e.g. "0" or "#1"
	Value    int64  // meaningful for SET/INCRBY
	Overflow string // "WRAP", "SAT", or "FAIL"; empty to omit
}

// BitField builds a BITFIELD request from an ordered list of
// sub-operations, each optionally preceded by its own OVERFLOW clause.
func BitField(key string, ops ...BitFieldOp) Request {
	parts := []interface{}{key}
	for _, op := range ops {
		if op.Overflow != "" {
			parts = append(parts, "OVERFLOW", op.Overflow)
		}
		switch op.Kind {
		case "GET":
			parts = append(parts, "GET", op.Type, op.Offset)
		case "SET":
			parts = append(parts, "SET", op.Type, op.Offset, op.Value)
		case "INCRBY":
			parts = append(parts, "INCRBY", op.Type, op.Offset, op.Value)
		}
	}
	return buildRequest("BITFIELD", parts...)
}

// GetBit builds a GETBIT request.
func GetBit(key string, offset int64) Request { return buildRequest("GETBIT", key, offset) }

// SetBit builds a SETBIT request.
func SetBit(key string, offset int64, value int) Request {
	return buildRequest("SETBIT", key, offset, value)
}
