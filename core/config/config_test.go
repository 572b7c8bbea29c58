package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "csv", cfg.SideA.Kind)
	assert.Equal(t, "Alfa", cfg.Recon.SideAName)
	assert.Equal(t, "Gamma", cfg.Recon.SideBName)
	assert.Equal(t, "reconciliation_report.xlsx", cfg.Report.Path)
	assert.Equal(t, "excel", cfg.Report.Format)
	assert.False(t, cfg.Report.Upload)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SIDE_A_KIND", "excel")
	t.Setenv("SIDE_A_IDENTITY_COLUMN", "Code")
	t.Setenv("RECON_SIDE_A_NAME", "Ledger")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "excel", cfg.SideA.Kind)
	assert.Equal(t, "Code", cfg.SideA.IdentityColumn)
	assert.Equal(t, "Ledger", cfg.Recon.SideAName)
}

func TestSourceConfig_IsValidKind(t *testing.T) {
	for _, kind := range []string{SourceKindCSV, SourceKindZipCSV, SourceKindExcel, SourceKindDatabase, SourceKindStorageZip} {
		assert.True(t, SourceConfig{Kind: kind}.IsValidKind(), kind)
	}
	assert.False(t, SourceConfig{Kind: "ftp"}.IsValidKind())
	assert.False(t, SourceConfig{}.IsValidKind())
}
