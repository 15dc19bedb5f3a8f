package kerberos

import (
	"testing"

	"github.com/schlenk/go-kerberos/common"
	"github.com/schlenk/go-kerberos/registry"

	"github.com/stretchr/testify/assert"
)

func TestValidateSuccess(t *testing.T) {
	// mutual-auth shape: the acceptor completes on the first client
	// token, the initiator on the acceptor's reply
	pair := registerPair("mock_validate_ok", 2, 1)

	ok := Validate("user", "hunter2", testService, "EXAMPLE.COM",
		WithMech("mock_validate_ok"))
	assert.True(t, ok)

	assert.True(t, pair.client.IsEstablished())
	assert.True(t, pair.server.IsEstablished())

	// both providers released by the deferred Clean calls
	assert.Equal(t, 1, pair.client.releases)
	assert.Equal(t, 1, pair.server.releases)
}

func TestValidateBadPassword(t *testing.T) {
	registry.Register("mock_validate_pw", func(cfg common.ProviderConfig) (common.Provider, error) {
		p := &mockProvider{cfg: cfg, peer: "user@EXAMPLE.COM"}
		if cfg.Role == common.RoleInitiator {
			p.rounds = 2
			p.failStep = cfg.Password != "hunter2"
		} else {
			p.rounds = 1
		}

		return p, nil
	})

	assert.False(t, Validate("user", "wrong", testService, "EXAMPLE.COM",
		WithMech("mock_validate_pw")))

	assert.True(t, Validate("user", "hunter2", testService, "EXAMPLE.COM",
		WithMech("mock_validate_pw")))
}

func TestValidateUserRealmSplit(t *testing.T) {
	var captured common.ProviderConfig
	registry.Register("mock_validate_realm", func(cfg common.ProviderConfig) (common.Provider, error) {
		if cfg.Role == common.RoleInitiator {
			captured = cfg
		}

		return &mockProvider{cfg: cfg, rounds: 1}, nil
	})

	Validate("user@OTHER.ORG", "pw", testService, "EXAMPLE.COM",
		WithMech("mock_validate_realm"))
	assert.Equal(t, "user", captured.Username)
	assert.Equal(t, "OTHER.ORG", captured.Realm)

	Validate("user", "pw", testService, "EXAMPLE.COM",
		WithMech("mock_validate_realm"))
	assert.Equal(t, "EXAMPLE.COM", captured.Realm)
}

func TestValidateInitFailure(t *testing.T) {
	assert.False(t, Validate("user", "pw", testService, "EXAMPLE.COM",
		WithMech("never_registered")))
}

func TestValidateBounded(t *testing.T) {
	// providers that never complete must not loop forever
	pair := registerPair("mock_validate_loop", 0, 0)

	assert.False(t, Validate("user", "pw", testService, "EXAMPLE.COM",
		WithMech("mock_validate_loop")))

	assert.LessOrEqual(t, pair.client.stepped, maxValidateRounds)
	assert.LessOrEqual(t, pair.server.stepped, maxValidateRounds)
}

func TestValidateStalledPeer(t *testing.T) {
	// the client completes without producing a token the server still
	// needs;  the helper must fail rather than spin
	registry.Register("mock_validate_stall", func(cfg common.ProviderConfig) (common.Provider, error) {
		p := &mockProvider{cfg: cfg}
		if cfg.Role == common.RoleInitiator {
			p.rounds = 1
		} else {
			p.rounds = 5
		}

		return p, nil
	})

	assert.False(t, Validate("user", "pw", testService, "EXAMPLE.COM",
		WithMech("mock_validate_stall")))
}
