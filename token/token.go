// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.

// Package token translates between raw binary security tokens and the
// base64 text form in which they cross the wire.
package token

import (
	"encoding/base64"
	"strings"

	"github.com/schlenk/go-kerberos/common"
)

// Encode produces the wire form of a security token.  The output is a
// single unbroken line;  callers may embed it directly in header-like
// protocol fields.
func Encode(data []byte) string {
	text := base64.StdEncoding.EncodeToString(data)

	// the standard encoder never folds lines, but the contract is
	// that it must not, so enforce it
	if strings.ContainsAny(text, "\r\n") {
		text = strings.NewReplacer("\r", "", "\n", "").Replace(text)
	}

	return text
}

// Decode recovers a binary token from its wire form.  An empty input
// decodes to a nil token rather than an error, so that the first round
// of a negotiation can run without a peer challenge.
func Decode(text string) ([]byte, error) {
	if text == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, &common.TokenFormatError{Err: err}
	}

	return data, nil
}
