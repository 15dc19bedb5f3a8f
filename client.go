// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package kerberos

import (
	"github.com/schlenk/go-kerberos/common"
)

// ClientContext is the initiator side of a negotiation.  It is created
// with status StatusContinue and must be released with Clean once the
// caller is finished with it, whether or not the negotiation completed.
//
// A ClientContext is not safe for concurrent use.
type ClientContext struct {
	negotiationContext
}

// ClientInit creates an initiator context for the given service
// principal (type@fqdn form) requesting the given security flags.
// The flags are passed to the provider unmodified.
func ClientInit(service string, flags common.ContextFlag, opts ...ContextOption) (*ClientContext, error) {
	ctx, err := newContext(common.RoleInitiator, service, flags, opts)
	if err != nil {
		return nil, err
	}

	return &ClientContext{*ctx}, nil
}

// Step processes a single negotiation round using the server's base64
// challenge, which may be empty only on the first call.  The token to
// send back is available from Response afterwards.
func (c *ClientContext) Step(challenge string) (common.Status, error) {
	return c.step(challenge)
}

// Response returns the base64 token produced by the last successful
// Step, to be delivered to the server.
func (c *ClientContext) Response() (string, error) {
	return c.response()
}

// UserName returns the authenticated principal name.  It is only
// valid once Step has reported StatusComplete.
func (c *ClientContext) UserName() (string, error) {
	return c.userName()
}

// Status reports the result of the most recent Step, or
// StatusContinue if none has run yet.
func (c *ClientContext) Status() common.Status {
	return c.status
}

// Clean releases the provider and poisons the context.  It is
// idempotent and always reports StatusComplete.
func (c *ClientContext) Clean() common.Status {
	return c.clean()
}

// Wrap protects data (base64 form) using the established context,
// sealing it when seal is true.  Only valid once the negotiation is
// complete.
func (c *ClientContext) Wrap(data string, seal bool) (string, error) {
	return c.wrap(data, seal)
}

// Unwrap recovers the payload of a protected token (base64 form)
// received from the server.  Only valid once the negotiation is
// complete.
func (c *ClientContext) Unwrap(challenge string) (string, error) {
	return c.unwrap(challenge)
}
