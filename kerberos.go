// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.

/*
Package kerberos implements the stateful negotiation layer of a
multi-round Kerberos (GSSAPI style) authentication exchange.

An initiator creates a context with ClientInit and an acceptor with
ServerInit.  Each side alternately calls Step with the base64 token
most recently produced by the other side's Step (the initiator's first
Step runs without a challenge), sending the token obtained from
Response to its peer, until both sides report StatusComplete.  Clean
releases the provider resources;  a cleaned context must not be used
again.

The cryptographic work of each round is delegated to a security
provider selected by mechanism name.  The default is the pure-Go
Kerberos V mechanism registered by the gssapi sub-package.
*/
package kerberos

import (
	"log"

	"github.com/schlenk/go-kerberos/common"
	"github.com/schlenk/go-kerberos/pkg/loggable"

	_ "github.com/schlenk/go-kerberos/gssapi"
)

// DefaultMech is the mechanism used by contexts that do not select one.
const DefaultMech = "kerberos_v5"

type ContextOption func(*contextOptions) error

type contextOptions struct {
	logger    loggable.Loggable
	mech      string
	principal string
	keytab    string
	krbConf   string
	username  string
	password  string
	realm     string
}

// WithMech selects the security mechanism backing the context.  The
// name must be registered, otherwise context creation fails.
func WithMech(name string) ContextOption {
	return func(o *contextOptions) error {
		if name != "" {
			o.mech = name
		}

		return nil
	}
}

// WithPrincipal supplies an explicit initiator principal (uname@REALM)
// instead of the ambient credentials cache.
func WithPrincipal(principal string) ContextOption {
	return func(o *contextOptions) error {
		o.principal = principal
		return nil
	}
}

// WithKeytab supplies the path of the keytab holding the key for the
// principal selected with WithPrincipal.
func WithKeytab(path string) ContextOption {
	return func(o *contextOptions) error {
		o.keytab = path
		return nil
	}
}

// WithKrb5Conf supplies the path of the Kerberos configuration file.
// The KRB5_CONFIG environment variable or /etc/krb5.conf is used
// otherwise.
func WithKrb5Conf(path string) ContextOption {
	return func(o *contextOptions) error {
		o.krbConf = path
		return nil
	}
}

// WithCredentials supplies password credentials to mechanisms that
// support them.
func WithCredentials(username, password, realm string) ContextOption {
	return func(o *contextOptions) error {
		o.username = username
		o.password = password
		o.realm = realm
		return nil
	}
}

func WithDebugLogger(l *log.Logger) ContextOption {
	return func(o *contextOptions) error {
		return loggable.WithDebugLogger(l)(&o.logger)
	}
}
func WithInfoLogger(l *log.Logger) ContextOption {
	return func(o *contextOptions) error {
		return loggable.WithInfoLogger(l)(&o.logger)
	}
}
func WithWarnLogger(l *log.Logger) ContextOption {
	return func(o *contextOptions) error {
		return loggable.WithWarnLogger(l)(&o.logger)
	}
}
func WithErrorLogger(l *log.Logger) ContextOption {
	return func(o *contextOptions) error {
		return loggable.WithErrorLogger(l)(&o.logger)
	}
}

func (o *contextOptions) providerConfig(role common.Role, service string, flags common.ContextFlag) common.ProviderConfig {
	return common.ProviderConfig{
		Logger:     o.logger,
		Role:       role,
		Service:    service,
		Flags:      flags,
		Principal:  o.principal,
		KeytabPath: o.keytab,
		ConfigPath: o.krbConf,
		Username:   o.username,
		Password:   o.password,
		Realm:      o.realm,
	}
}
