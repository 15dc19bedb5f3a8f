// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package common

// Status is the result of a negotiation round.  The values follow the
// GSSAPI convention used by implementations such as pykerberos: zero
// means the exchange needs more rounds, one means the context on this
// side is established.  There is no numeric error value; failures are
// reported as Go errors.
type Status int

const (
	// StatusContinue indicates that more challenge/response rounds
	// are needed before the context is established.
	StatusContinue Status = 0

	// StatusComplete indicates that the context is established and
	// no further negotiation rounds are needed on this side.
	StatusComplete Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusComplete:
		return "complete"
	}

	return "unknown"
}
