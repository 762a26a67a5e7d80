package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
)

func TestRootCommandLoadDemoConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scan_delay: 1s\n"), 0o600))
	missingPath := filepath.Join(dir, "missing.yaml")

	tests := map[string]struct {
		root         RootCommand
		expScanDelay time.Duration
		expErr       bool
	}{
		"Existing config should be loaded.": {
			root:         RootCommand{ConfigPath: cfgPath, Logger: log.Noop},
			expScanDelay: time.Second,
		},
		"Missing default config should use defaults.": {
			root:         RootCommand{ConfigPath: missingPath, defaultConfigPath: missingPath, Logger: log.Noop},
			expScanDelay: model.DefaultScanDelay,
		},
		"Missing explicit config should fail.": {
			root:   RootCommand{ConfigPath: missingPath, Logger: log.Noop},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := test.root.LoadDemoConfig(context.Background())
			if test.expErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expScanDelay, cfg.ScanDelay)
		})
	}
}
