package config_test

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/checkmycrypto/internal/config"
	"github.com/slok/checkmycrypto/internal/model"
)

func TestYAMLRepositoryGetConfig(t *testing.T) {
	tests := map[string]struct {
		fs     fstest.MapFS
		path   string
		expCfg func() model.DemoConfig
		expErr error
	}{
		"Empty config should load the defaults.": {
			fs: fstest.MapFS{
				"demo.yaml": &fstest.MapFile{Data: []byte("---\n")},
			},
			path:   "demo.yaml",
			expCfg: model.DefaultDemoConfig,
		},
		"Durations should be loaded.": {
			fs: fstest.MapFS{
				"demo.yaml": &fstest.MapFile{Data: []byte(`scan_delay: 500ms
workflow_period: 1s
`)},
			},
			path: "demo.yaml",
			expCfg: func() model.DemoConfig {
				c := model.DefaultDemoConfig()
				c.ScanDelay = 500 * time.Millisecond
				c.WorkflowPeriod = time.Second
				return c
			},
		},
		"Custom addresses and stages should replace the defaults.": {
			fs: fstest.MapFS{
				"demo.yaml": &fstest.MapFile{Data: []byte(`addresses:
  - value: 0xaaa
    outcome: risky
  - value: 0xbbb
    outcome: clean
workflow_stages:
  - caption: Send
    node: messenger
  - caption: Report
    node: report
`)},
			},
			path: "demo.yaml",
			expCfg: func() model.DemoConfig {
				c := model.DefaultDemoConfig()
				c.Addresses = []model.DemoAddress{
					{Value: "0xaaa", Outcome: model.OutcomeRisky},
					{Value: "0xbbb", Outcome: model.OutcomeClean},
				}
				c.WorkflowStages = []model.WorkflowStage{
					{Caption: "Send", ActiveNode: model.WorkflowNodeMessenger},
					{Caption: "Report", ActiveNode: model.WorkflowNodeReport},
				}
				return c
			},
		},
		"Missing file should fail.": {
			fs:     fstest.MapFS{},
			path:   "demo.yaml",
			expErr: fs.ErrNotExist,
		},
		"Invalid duration should fail.": {
			fs: fstest.MapFS{
				"demo.yaml": &fstest.MapFile{Data: []byte("scan_delay: soon\n")},
			},
			path:   "demo.yaml",
			expErr: model.ErrNotValid,
		},
		"Negative duration should fail.": {
			fs: fstest.MapFS{
				"demo.yaml": &fstest.MapFile{Data: []byte("workflow_period: -1s\n")},
			},
			path:   "demo.yaml",
			expErr: model.ErrNotValid,
		},
		"Unknown outcome should fail.": {
			fs: fstest.MapFS{
				"demo.yaml": &fstest.MapFile{Data: []byte(`addresses:
  - value: 0xaaa
    outcome: maybe
`)},
			},
			path:   "demo.yaml",
			expErr: model.ErrNotValid,
		},
		"Unknown stage node should fail.": {
			fs: fstest.MapFS{
				"demo.yaml": &fstest.MapFile{Data: []byte(`workflow_stages:
  - caption: Send
    node: fax
`)},
			},
			path:   "demo.yaml",
			expErr: model.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo := config.NewYAMLRepository(test.fs)

			cfg, err := repo.GetConfig(context.Background(), test.path)
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expCfg(), cfg)
		})
	}
}

func TestYAMLRepositoryGetConfigMalformed(t *testing.T) {
	repo := config.NewYAMLRepository(fstest.MapFS{
		"demo.yaml": &fstest.MapFile{Data: []byte("addresses: [\n")},
	})

	_, err := repo.GetConfig(context.Background(), "demo.yaml")
	assert.Error(t, err)
}
