package conventions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/checkmycrypto/internal/conventions"
)

func TestConfigPath(t *testing.T) {
	tests := map[string]struct {
		home    string
		expPath string
	}{
		"A home directory should have the config inside the data dir.": {
			home:    "/home/user",
			expPath: "/home/user/.checkmycrypto/config.yaml",
		},
		"An empty home should be relative.": {
			home:    "",
			expPath: ".checkmycrypto/config.yaml",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expPath, conventions.ConfigPath(test.home))
		})
	}
}
