package packages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "packages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
packages:
  - type: RUN
    data: [15000, 1, 75]
  - type: SWM
    data: [720, 1.5, 80, 25, 40]
`)

	pkgs, err := Load(path)
	require.NoError(t, err)

	want := []models.Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "SWM", Data: []float64{720, 1.5, 80, 25, 40}},
	}
	assert.Equal(t, want, pkgs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	require.ErrorIs(t, err, ErrNoFilePath)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "packages: []\n"))
	require.ErrorIs(t, err, ErrNoPackages)

	_, err = Load(writeFile(t, "packages:\n  - type: RUN\n    data: [a, b]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse packages file")
}

func TestDefault(t *testing.T) {
	pkgs := Default()
	require.Len(t, pkgs, 3)
	assert.Equal(t, "SWM", pkgs[0].Type)
	assert.Equal(t, "RUN", pkgs[1].Type)
	assert.Equal(t, "WLK", pkgs[2].Type)
}
