// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package common

import (
	"fmt"
	"strings"

	"github.com/schlenk/go-kerberos/pkg/loggable"
)

// Role selects which half of the negotiation a provider drives.
type Role int

const (
	RoleInitiator Role = iota
	RoleAcceptor
)

func (r Role) String() string {
	if r == RoleAcceptor {
		return "acceptor"
	}

	return "initiator"
}

// ProviderConfig carries the parameters a provider factory needs to
// construct a provider handle for one context.
type ProviderConfig struct {
	Logger loggable.Loggable

	// Role determines whether the provider initiates or accepts.
	Role Role

	// Service is the target service principal in type@fqdn form,
	// eg. imap@mail.example.com.
	Service string

	// Flags are the security properties requested by an initiator.
	// Acceptors have none.
	Flags ContextFlag

	// Principal, KeytabPath and ConfigPath select explicit initiator
	// credentials instead of the ambient credentials cache.
	Principal  string
	KeytabPath string
	ConfigPath string

	// Username, Password and Realm are password credentials.  Not
	// every provider supports them.
	Username string
	Password string
	Realm    string
}

// Provider is the handle to the external security provider owned by a
// single negotiation context.  Providers are not safe for concurrent
// use;  each context owns exactly one provider and releases it once.
type Provider interface {
	// AuthorizeRound runs a single negotiation round.  input is the
	// decoded peer token, or nil on an initiator's first round.  The
	// returned token, if non-nil, should be delivered to the peer.
	AuthorizeRound(input []byte) (Status, []byte, error)

	// IsEstablished reports whether the security context is complete.
	IsEstablished() bool

	// PeerName returns the authenticated principal name of the peer.
	// Only meaningful once the context is established.
	PeerName() string

	// Wrap protects a message using the established context.  The
	// payload is encrypted when seal is true, signed otherwise.
	Wrap(data []byte, seal bool) ([]byte, error)

	// Unwrap recovers the payload of a token produced by the peer's
	// Wrap call.
	Unwrap(token []byte) ([]byte, error)

	// Release frees the provider resources.  The handle must not be
	// used afterwards.
	Release() error
}

// ProviderFactory constructs a provider from its configuration.
type ProviderFactory func(ProviderConfig) (Provider, error)

// ServicePrincipal converts a service in type@fqdn form to the
// type/fqdn form used by GSSAPI providers.
func ServicePrincipal(service string) (string, error) {
	parts := strings.SplitN(service, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("service %q is not in type@fqdn form", service)
	}

	return parts[0] + "/" + parts[1], nil
}
