// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.

/*
Package gssapi binds negotiation contexts to the pure-Go GSSAPI
Kerberos V mechanism from github.com/golang-auth/go-gssapi.

The binding is registered under the name "kerberos_v5" and is the
default provider used by negotiation contexts.  Initiators obtain
credentials from the ambient credentials cache, or from an explicit
principal/keytab when the context is configured with one.  Acceptors
always use the keytab.
*/
package gssapi

import (
	"errors"
	"sync"

	"github.com/schlenk/go-kerberos/common"
	"github.com/schlenk/go-kerberos/pkg/loggable"
	"github.com/schlenk/go-kerberos/registry"

	"github.com/golang-auth/go-gssapi/v2"
	_ "github.com/golang-auth/go-gssapi/v2/krb5"
)

// MechName is the name under which this provider is registered.
const MechName = "kerberos_v5"

func init() {
	registry.Register(MechName, NewProvider)
}

var (
	flagMapOnce sync.Once
	flagMap     map[common.ContextFlag]gssapi.ContextFlag
)

// nativeFlags translates the request flags of the public API to the
// provider's native flag values.  The mapping table is built once and
// is read-only afterwards.
func nativeFlags(f common.ContextFlag) gssapi.ContextFlag {
	flagMapOnce.Do(func() {
		flagMap = map[common.ContextFlag]gssapi.ContextFlag{
			common.FlagDelegate: gssapi.ContextFlagDeleg,
			common.FlagMutual:   gssapi.ContextFlagMutual,
			common.FlagReplay:   gssapi.ContextFlagReplay,
			common.FlagSequence: gssapi.ContextFlagSequence,
			common.FlagConf:     gssapi.ContextFlagConf,
			common.FlagInteg:    gssapi.ContextFlagInteg,
		}
	})

	var native gssapi.ContextFlag
	for ours, theirs := range flagMap {
		if f&ours != 0 {
			native |= theirs
		}
	}

	return native
}

// Krb5Provider drives one side of a Kerberos V context establishment.
type Krb5Provider struct {
	loggable.Loggable

	cfg     common.ProviderConfig
	mech    gssapi.Mech
	started bool
}

// NewProvider is the registered factory for the kerberos_v5 mechanism.
func NewProvider(cfg common.ProviderConfig) (common.Provider, error) {
	if cfg.Password != "" {
		return nil, &common.InitError{
			Mech: MechName,
			Err:  errors.New("password credentials are not supported by this mechanism"),
		}
	}

	m := gssapi.NewMech(MechName)
	if m == nil {
		return nil, &common.InitError{Mech: MechName, Err: common.ErrUnknownMech}
	}

	return &Krb5Provider{
		Loggable: cfg.Logger,
		cfg:      cfg,
		mech:     m,
	}, nil
}

func (p *Krb5Provider) AuthorizeRound(input []byte) (common.Status, []byte, error) {
	if p.mech == nil {
		return common.StatusContinue, nil, common.ErrContextClosed
	}

	if !p.started {
		if err := p.start(); err != nil {
			return common.StatusContinue, nil, err
		}
		p.started = true

		// the mechanism expects an empty (not absent) token on the
		// initiator's first round
		if p.cfg.Role == common.RoleInitiator && input == nil {
			input = []byte{}
		}
	}

	out, err := p.mech.Continue(input)
	if err != nil {
		return common.StatusContinue, nil, err
	}

	status := common.StatusContinue
	if p.mech.IsEstablished() {
		status = common.StatusComplete
	}

	p.Debugf("gssapi: %s round done (status=%s, %d token bytes out)",
		p.cfg.Role, status, len(out))

	return status, out, nil
}

func (p *Krb5Provider) start() error {
	name, err := common.ServicePrincipal(p.cfg.Service)
	if err != nil {
		return err
	}

	if p.cfg.Role == common.RoleAcceptor {
		p.Debugf("gssapi: accepting for %s", name)
		return p.mech.Accept(name)
	}

	flags := nativeFlags(p.cfg.Flags)
	p.Debugf("gssapi: initiating to %s, flags [%s]", name, flags.String())

	if p.cfg.Principal != "" {
		return p.mech.InitiateByPrincipalAndPath(
			p.cfg.Principal, p.cfg.KeytabPath, p.cfg.ConfigPath, name, flags, nil)
	}

	return p.mech.Initiate(name, flags, nil)
}

func (p *Krb5Provider) IsEstablished() bool {
	return p.mech != nil && p.mech.IsEstablished()
}

func (p *Krb5Provider) PeerName() string {
	if p.mech == nil {
		return ""
	}

	return p.mech.PeerName()
}

func (p *Krb5Provider) Wrap(data []byte, seal bool) ([]byte, error) {
	if p.mech == nil {
		return nil, common.ErrContextClosed
	}

	return p.mech.Wrap(data, seal)
}

func (p *Krb5Provider) Unwrap(token []byte) ([]byte, error) {
	if p.mech == nil {
		return nil, common.ErrContextClosed
	}

	out, _, err := p.mech.Unwrap(token)
	return out, err
}

func (p *Krb5Provider) Release() error {
	p.mech = nil
	p.started = false
	return nil
}
