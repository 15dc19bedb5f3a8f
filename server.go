// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package kerberos

import (
	"github.com/schlenk/go-kerberos/common"
)

// ServerContext is the acceptor side of a negotiation.  Unlike the
// initiator it takes no security flags;  the properties of the context
// are those requested by the peer.
//
// A ServerContext is not safe for concurrent use.
type ServerContext struct {
	negotiationContext
}

// ServerInit creates an acceptor context for the given service
// principal (type@fqdn form).
func ServerInit(service string, opts ...ContextOption) (*ServerContext, error) {
	ctx, err := newContext(common.RoleAcceptor, service, 0, opts)
	if err != nil {
		return nil, err
	}

	return &ServerContext{*ctx}, nil
}

// Step processes a single negotiation round using the client's base64
// challenge.  The token to send back is available from Response
// afterwards.
func (s *ServerContext) Step(challenge string) (common.Status, error) {
	return s.step(challenge)
}

// Response returns the base64 token produced by the last successful
// Step, to be delivered to the client.
func (s *ServerContext) Response() (string, error) {
	return s.response()
}

// UserName returns the principal name of the authenticating peer.  It
// is only valid once Step has reported StatusComplete.
func (s *ServerContext) UserName() (string, error) {
	return s.userName()
}

// TargetName would return the acceptor's own negotiated identity when
// it did not supply explicit credentials.  The provider binding does
// not expose it, so the operation reports ErrNotSupported.
func (s *ServerContext) TargetName() (string, error) {
	return "", common.ErrNotSupported
}

// Status reports the result of the most recent Step, or
// StatusContinue if none has run yet.
func (s *ServerContext) Status() common.Status {
	return s.status
}

// Clean releases the provider and poisons the context.  It is
// idempotent and always reports StatusComplete.
func (s *ServerContext) Clean() common.Status {
	return s.clean()
}
