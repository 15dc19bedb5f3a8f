// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package kerberos

import (
	"github.com/schlenk/go-kerberos/common"
)

// maxValidateRounds bounds the in-process negotiation.  Kerberos
// completes in a small constant number of rounds;  anything longer
// means the providers are not converging.
const maxValidateRounds = 10

// Validate checks that user and password can complete a negotiation
// for service by driving an initiator and an acceptor context against
// each other in-process.  A realm may be appended to the user name
// with '@';  defaultRealm is used otherwise.
//
// Validate reduces every failure, of any kind, to false.  Callers
// needing to distinguish configuration problems from credential
// problems should drive the contexts themselves.
func Validate(user, password, service, defaultRealm string, opts ...ContextOption) bool {
	clientOpts := opts
	if user != "" || password != "" {
		username, realm := splitPrincipal(user, defaultRealm)
		clientOpts = append([]ContextOption{WithCredentials(username, password, realm)}, opts...)
	}

	client, err := ClientInit(service, common.DefaultClientFlags, clientOpts...)
	if err != nil {
		return false
	}
	defer client.Clean()

	server, err := ServerInit(service, opts...)
	if err != nil {
		return false
	}
	defer server.Clean()

	// challenge always holds the latest token produced by the side
	// that stepped last, destined for the side about to step
	challenge := ""
	for round := 0; round < maxValidateRounds; round++ {
		if client.Status() != common.StatusComplete {
			if round > 0 && challenge == "" {
				// the server completed without a token the
				// client still needs
				return false
			}
			if _, err := client.Step(challenge); err != nil {
				return false
			}
			challenge = responseOrEmpty(&client.negotiationContext)
		} else {
			challenge = ""
		}

		if bothComplete(client, server) {
			return true
		}

		if server.Status() != common.StatusComplete {
			if challenge == "" {
				// the client completed without a token the
				// server still needs
				return false
			}
			if _, err := server.Step(challenge); err != nil {
				return false
			}
			challenge = responseOrEmpty(&server.negotiationContext)
		} else {
			challenge = ""
		}

		if bothComplete(client, server) {
			return true
		}
	}

	return false
}

func bothComplete(client *ClientContext, server *ServerContext) bool {
	return client.Status() == common.StatusComplete &&
		server.Status() == common.StatusComplete
}

// responseOrEmpty treats "no token produced" as an empty challenge;
// a side that has completed may legitimately have nothing to send.
func responseOrEmpty(c *negotiationContext) string {
	text, err := c.response()
	if err != nil {
		return ""
	}

	return text
}
