// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package kerberos

import (
	"errors"
	"regexp"
	"strings"

	"github.com/schlenk/go-kerberos/common"
	"github.com/schlenk/go-kerberos/pkg/loggable"
	"github.com/schlenk/go-kerberos/registry"
	"github.com/schlenk/go-kerberos/token"
)

var validHostnameRegex = regexp.MustCompile(`^(([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9\-]*[a-zA-Z0-9])\.)*([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9\-]*[A-Za-z0-9])$`)

// negotiationContext holds the state shared by the initiator and
// acceptor sides:  the exclusively-owned provider handle, the service
// principal, the requested flags, the most recent outbound token and
// the status of the last round.
//
// A context is not safe for concurrent use.  After clean() the
// provider field is nil and all further operations fail with
// ErrContextClosed.
type negotiationContext struct {
	loggable.Loggable

	provider  common.Provider
	service   string
	flags     common.ContextFlag
	lastToken []byte
	status    common.Status
}

func newContext(role common.Role, service string, flags common.ContextFlag, opts []ContextOption) (*negotiationContext, error) {
	o := contextOptions{mech: DefaultMech}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	if err := checkService(service); err != nil {
		return nil, &common.InitError{Mech: o.mech, Err: err}
	}

	p, err := registry.NewProvider(o.mech, o.providerConfig(role, service, flags))
	if err != nil {
		var initErr *common.InitError
		if errors.As(err, &initErr) {
			return nil, err
		}

		return nil, &common.InitError{Mech: o.mech, Err: err}
	}

	c := &negotiationContext{
		Loggable: o.logger,
		provider: p,
		service:  service,
		flags:    flags,
		status:   common.StatusContinue,
	}

	c.Debugf("kerberos: new %s context for %s (mech %s)", role, service, o.mech)
	return c, nil
}

func checkService(service string) error {
	if _, err := common.ServicePrincipal(service); err != nil {
		return err
	}

	fqdn := service[strings.IndexByte(service, '@')+1:]
	if !validHostnameRegex.MatchString(fqdn) {
		return errors.New("bad hostname in service principal " + service)
	}

	return nil
}

// step runs one authorization round with the peer's challenge, which
// may be empty only on the initiator's first round.
func (c *negotiationContext) step(challenge string) (common.Status, error) {
	if c.provider == nil {
		return common.StatusContinue, common.ErrContextClosed
	}

	data, err := token.Decode(challenge)
	if err != nil {
		return c.status, err
	}

	status, out, err := c.provider.AuthorizeRound(data)
	if err != nil {
		// never degrade a failed round to a continue result
		return c.status, &common.StepError{Err: err}
	}

	c.lastToken = out
	c.status = status

	return status, nil
}

// response encodes the token produced by the last round.
func (c *negotiationContext) response() (string, error) {
	if c.provider == nil {
		return "", common.ErrContextClosed
	}

	if c.lastToken == nil {
		return "", common.ErrEmptyResponse
	}

	return token.Encode(c.lastToken), nil
}

func (c *negotiationContext) userName() (string, error) {
	if c.provider == nil {
		return "", common.ErrContextClosed
	}

	if c.status != common.StatusComplete {
		return "", common.ErrNotComplete
	}

	return c.provider.PeerName(), nil
}

// clean releases the provider exactly once and poisons the context.
// It always reports StatusComplete so that teardown never fails the
// caller's flow.
func (c *negotiationContext) clean() common.Status {
	if c.provider != nil {
		if err := c.provider.Release(); err != nil {
			c.Errorf("kerberos: releasing provider: %v", err)
		}
		c.provider = nil
	}
	c.lastToken = nil

	return common.StatusComplete
}

func (c *negotiationContext) wrap(data string, seal bool) (string, error) {
	raw, err := c.protectedInput(data)
	if err != nil {
		return "", err
	}

	out, err := c.provider.Wrap(raw, seal)
	if err != nil {
		return "", &common.StepError{Err: err}
	}

	return token.Encode(out), nil
}

func (c *negotiationContext) unwrap(challenge string) (string, error) {
	raw, err := c.protectedInput(challenge)
	if err != nil {
		return "", err
	}

	out, err := c.provider.Unwrap(raw)
	if err != nil {
		return "", &common.StepError{Err: err}
	}

	return token.Encode(out), nil
}

func (c *negotiationContext) protectedInput(data string) ([]byte, error) {
	if c.provider == nil {
		return nil, common.ErrContextClosed
	}

	if c.status != common.StatusComplete {
		return nil, common.ErrNotComplete
	}

	return token.Decode(data)
}
