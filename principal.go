// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package kerberos

import (
	"fmt"
	"os"
	"strings"

	"github.com/jcmturner/gokrb5/v8/keytab"

	"github.com/schlenk/go-kerberos/common"
)

// GetServerPrincipalDetails returns the service principal for the
// server given a service type and hostname, by scanning the local
// keytab (KRB5_KTNAME or /etc/krb5.keytab) for a matching entry.
func GetServerPrincipalDetails(service, hostname string) (string, error) {
	ktFile := krbKtFile()

	kt, err := keytab.Load(ktFile)
	if err != nil {
		return "", &common.PrincipalLookupError{Service: service, Host: hostname, Err: err}
	}

	for _, ent := range kt.Entries {
		comp := ent.Principal.Components
		if len(comp) == 2 && comp[0] == service && comp[1] == hostname {
			return fmt.Sprintf("%s/%s@%s", service, hostname, ent.Principal.Realm), nil
		}
	}

	return "", &common.PrincipalLookupError{
		Service: service,
		Host:    hostname,
		Err:     fmt.Errorf("no entry in %s", ktFile),
	}
}

func krbKtFile() string {
	ktFile, ok := os.LookupEnv("KRB5_KTNAME")
	if !ok {
		ktFile = "/etc/krb5.keytab"
	}

	return strings.TrimPrefix(ktFile, "FILE:")
}
