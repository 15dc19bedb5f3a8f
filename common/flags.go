// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package common

// ContextFlag represents the security properties that an initiator
// requests for a context.  The numeric values match the native request
// flags of the GSSAPI provider and are passed through to it unmodified.
type ContextFlag uint32

const (
	FlagDelegate ContextFlag = 1 << iota // delegate credentials to the acceptor
	FlagMutual                           // request that the acceptor authenticates itself
	FlagReplay                           // enable replay detection for protected messages
	FlagSequence                         // enable out-of-sequence detection for protected messages
	FlagConf                             // request message confidentiality
	FlagInteg                            // request message integrity
)

// Flags with no equivalent in the provider binding.  They exist for
// API compatibility and are always zero.
const (
	FlagAnonymous ContextFlag = 0
	FlagProtReady ContextFlag = 0
	FlagTrans     ContextFlag = 0
)

// DefaultClientFlags is the flag set requested by initiators that do
// not ask for anything in particular.
const DefaultClientFlags = FlagMutual | FlagSequence

// FlagList returns a slice of individual flags derived from the
// composite value f
func FlagList(f ContextFlag) (fl []ContextFlag) {
	t := ContextFlag(1)
	for i := 0; i < 32; i++ {
		if f&t != 0 {
			fl = append(fl, t)
		}

		t <<= 1
	}

	return
}

// FlagName returns a human-readable description of a context flag value
func FlagName(f ContextFlag) string {
	switch f {
	case FlagDelegate:
		return "Credential delegation"
	case FlagMutual:
		return "Mutual authentication"
	case FlagReplay:
		return "Message replay detection"
	case FlagSequence:
		return "Out of sequence message detection"
	case FlagConf:
		return "Confidentiality"
	case FlagInteg:
		return "Integrity"
	}

	return "Unknown"
}
