// Copyright 2021 Jake Scott. All rights reserved.
// Use of this source code is governed by the Apache License
// version 2.0 that can be found in the LICENSE file.
package kerberos

import (
	"os"
	"strings"

	"github.com/jcmturner/gokrb5/v8/client"
	"github.com/jcmturner/gokrb5/v8/config"

	"github.com/schlenk/go-kerberos/common"
)

// CheckPassword verifies that user and password match the credentials
// held by the realm authority, by obtaining a ticket-granting ticket
// with the password and then a ticket for service (type@fqdn form).
// A realm may be appended to the user name with '@';  defaultRealm is
// used otherwise.
//
// The local Kerberos configuration (KRB5_CONFIG or /etc/krb5.conf)
// must list the realm and its KDCs.
func CheckPassword(user, password, service, defaultRealm string) error {
	username, realm := splitPrincipal(user, defaultRealm)

	spn, err := common.ServicePrincipal(service)
	if err != nil {
		return &common.InitError{Mech: DefaultMech, Err: err}
	}

	cfg, err := config.Load(krbConfFile())
	if err != nil {
		return &common.InitError{Mech: DefaultMech, Err: err}
	}

	cl := client.NewWithPassword(username, realm, password, cfg,
		client.DisablePAFXFAST(true))
	defer cl.Destroy()

	if err := cl.Login(); err != nil {
		return &common.StepError{Err: err}
	}

	if _, _, err := cl.GetServiceTicket(spn); err != nil {
		return &common.StepError{Err: err}
	}

	return nil
}

// ChangePassword would change the user's password on the KDC.  The
// operation is not implemented by this binding.
func ChangePassword(user, oldPassword, newPassword string) error {
	return common.ErrNotSupported
}

// splitPrincipal separates an optional @REALM suffix from a user name,
// falling back to defaultRealm.
func splitPrincipal(user, defaultRealm string) (username, realm string) {
	username, realm = user, defaultRealm
	if i := strings.IndexByte(user, '@'); i >= 0 {
		username, realm = user[:i], user[i+1:]
	}

	return
}

func krbConfFile() string {
	cfgFile, ok := os.LookupEnv("KRB5_CONFIG")
	if !ok {
		cfgFile = "/etc/krb5.conf"
	}

	return cfgFile
}
