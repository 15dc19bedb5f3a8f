package kerberos

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/schlenk/go-kerberos/common"
	"github.com/stretchr/testify/assert"
)

func TestSplitPrincipal(t *testing.T) {
	var tests = []struct {
		user     string
		def      string
		username string
		realm    string
	}{
		{"user", "EXAMPLE.COM", "user", "EXAMPLE.COM"},
		{"user@OTHER.ORG", "EXAMPLE.COM", "user", "OTHER.ORG"},
		{"user@", "EXAMPLE.COM", "user", ""},
	}

	for _, tt := range tests {
		username, realm := splitPrincipal(tt.user, tt.def)
		assert.Equal(t, tt.username, username)
		assert.Equal(t, tt.realm, realm)
	}
}

func TestCheckPasswordBadService(t *testing.T) {
	err := CheckPassword("user", "pw", "not-a-service", "EXAMPLE.COM")
	var initErr *common.InitError
	assert.True(t, errors.As(err, &initErr))
}

func TestCheckPasswordBadConfig(t *testing.T) {
	t.Setenv("KRB5_CONFIG", filepath.Join(t.TempDir(), "missing.conf"))

	err := CheckPassword("user", "pw", testService, "EXAMPLE.COM")
	var initErr *common.InitError
	assert.True(t, errors.As(err, &initErr))
}

func TestChangePasswordNotSupported(t *testing.T) {
	err := ChangePassword("user", "old", "new")
	assert.ErrorIs(t, err, common.ErrNotSupported)
}
