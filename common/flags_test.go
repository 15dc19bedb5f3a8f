package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagList(t *testing.T) {
	fl := FlagList(FlagMutual | FlagConf | FlagInteg)
	assert.Equal(t, []ContextFlag{FlagMutual, FlagConf, FlagInteg}, fl)

	assert.Nil(t, FlagList(0))
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "Mutual authentication", FlagName(FlagMutual))
	assert.Equal(t, "Unknown", FlagName(1<<30))
}

func TestReservedFlagsAreZero(t *testing.T) {
	// flags with no provider equivalent must not affect the request
	assert.Equal(t, ContextFlag(0), FlagAnonymous|FlagProtReady|FlagTrans)
}

func TestDefaultClientFlags(t *testing.T) {
	assert.Equal(t, FlagMutual|FlagSequence, DefaultClientFlags)
}

func TestServicePrincipal(t *testing.T) {
	var tests = []struct {
		service string
		want    string
		ok      bool
	}{
		{"imap@mail.example.com", "imap/mail.example.com", true},
		{"HTTP@web.example.com", "HTTP/web.example.com", true},
		{"no-separator", "", false},
		{"@mail.example.com", "", false},
		{"imap@", "", false},
	}

	for _, tt := range tests {
		got, err := ServicePrincipal(tt.service)
		if tt.ok {
			assert.NoError(t, err, tt.service)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, tt.service)
		}
	}
}
