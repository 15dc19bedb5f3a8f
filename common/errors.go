// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when a response token is requested
	// before any successful step has produced one.
	ErrEmptyResponse = errors.New("no response token available before a successful step")

	// ErrNotComplete is returned when an identity is queried before
	// the negotiation has completed.
	ErrNotComplete = errors.New("context is not complete")

	// ErrContextClosed is returned when a context is used after Clean.
	ErrContextClosed = errors.New("context has been cleaned")

	// ErrNotSupported is returned by operations that this provider
	// binding deliberately does not implement.
	ErrNotSupported = errors.New("operation not supported")

	// ErrUnknownMech is returned when no provider is registered under
	// the requested mechanism name.
	ErrUnknownMech = errors.New("no such security mechanism")
)

// InitError reports a failure to construct the security provider for
// a context.
type InitError struct {
	Mech string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s provider: %v", e.Mech, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// StepError reports the failure of a single authorization round.  It
// carries the provider's native diagnostic.
type StepError struct {
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("negotiation step failed: %v", e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// TokenFormatError reports a token that could not be decoded from its
// wire form.
type TokenFormatError struct {
	Err error
}

func (e *TokenFormatError) Error() string {
	return fmt.Sprintf("malformed security token: %v", e.Err)
}

func (e *TokenFormatError) Unwrap() error {
	return e.Err
}

// PrincipalLookupError reports a failed service principal lookup.
type PrincipalLookupError struct {
	Service string
	Host    string
	Err     error
}

func (e *PrincipalLookupError) Error() string {
	return fmt.Sprintf("looking up principal for %s/%s: %v", e.Service, e.Host, e.Err)
}

func (e *PrincipalLookupError) Unwrap() error {
	return e.Err
}
