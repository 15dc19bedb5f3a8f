// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package registry

import (
	"regexp"

	"github.com/schlenk/go-kerberos/common"
)

// mechanism names look like "kerberos_v5" or a dotted OID
var mechNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,39}$`)

var factories map[string]common.ProviderFactory

func init() {
	factories = make(map[string]common.ProviderFactory)
}

// Register should be called by provider implementations to make a
// mechanism available to negotiation contexts
func Register(name string, f common.ProviderFactory) {
	if !mechNameRegexp.MatchString(name) {
		panic("Bad mechanism name: " + name)
	}

	_, ok := factories[name]

	// can't register two providers with the same name
	if ok {
		panic("Cannot have two providers named " + name)
	}

	factories[name] = f
}

// IsRegistered can be used to find out whether a named
// mechanism is registered or not
func IsRegistered(name string) bool {
	_, ok := factories[name]

	return ok
}

// NewProvider constructs a provider for the named mechanism
func NewProvider(name string, cfg common.ProviderConfig) (common.Provider, error) {
	f, ok := factories[name]
	if !ok {
		return nil, common.ErrUnknownMech
	}

	return f(cfg)
}

// Mechs returns the list of registered mechanism names
func Mechs() (l []string) {
	l = make([]string, 0, len(factories))

	for name := range factories {
		l = append(l, name)
	}

	return
}
