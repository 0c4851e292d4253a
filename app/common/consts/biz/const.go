package biz

type ctxKey string

// IDENTITY_KEY carries the verified caller identity through request contexts.
const IDENTITY_KEY ctxKey = "identity"

const (
	AUTH_HEADER   = "Authorization"
	BEARER_PREFIX = "Bearer "
)
