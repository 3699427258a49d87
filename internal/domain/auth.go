package domain

import "time"

// Identity is the trusted caller identity extracted from a validated
// credential. It is the only accepted source of caller identity for the
// remainder of request processing; no request field may substitute for it.
type Identity struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
