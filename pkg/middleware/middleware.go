package middleware

// Middleware instance, guard operational endpoint (metrics, memstats) with static credential
type Middleware struct {
	username, password string
}

// NewMiddleware create new middleware instance
func NewMiddleware(username, password string) *Middleware {
	return &Middleware{
		username: username,
		password: password,
	}
}
