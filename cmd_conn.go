package redisresp

// Ping builds a PING request. An empty message omits the argument
// entirely, matching PING's zero-arg form.
func Ping(message string) Request {
	if message == "" {
		return buildRequest("PING")
	}
	return buildRequest("PING", message)
}

// Echo builds an ECHO request.
func Echo(message string) Request { return buildRequest("ECHO", message) }

// Select builds a SELECT request for the given database index.
func Select(db int) Request { return buildRequest("SELECT", db) }

// Auth builds an AUTH request. An empty user issues single-password
// AUTH; otherwise AUTH is issued with both user and pass.
func Auth(user, pass string) Request {
	if user == "" {
		return buildRequest("AUTH", pass)
	}
	return buildRequest("AUTH", user, pass)
}

// FlushDB builds a FLUSHDB request.
func FlushDB() Request { return buildRequest("FLUSHDB") }

// FlushAll builds a FLUSHALL request.
func FlushAll() Request { return buildRequest("FLUSHALL") }

// DBSize builds a DBSIZE request.
func DBSize() Request { return buildRequest("DBSIZE") }
