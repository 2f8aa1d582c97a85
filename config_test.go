package main

import (
	"os"
	"path/filepath"
	"testing"

	c "github.com/udhaar-dev/udhaar/constants"
	m "github.com/udhaar-dev/udhaar/models"
	"github.com/udhaar-dev/udhaar/translations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessConfig(t *testing.T) {
	conf := m.Config{}
	processConfig(&conf)

	assert.Equal(t, c.ConfigVersion, conf.Version)
	assert.NotNil(t, conf.Keybindings)

	// existing values are left alone
	conf = m.Config{Version: "9", Keybindings: map[string][]string{"F2": {c.ActionArchive}}}
	processConfig(&conf)

	assert.Equal(t, "9", conf.Version)
	assert.Len(t, conf.Keybindings, 1)
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	exists, err := fileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))

	exists, err = fileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoadConfFrom(t *testing.T) {
	en, err := translations.Load(AllTranslations, "en_US.UTF-8")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\nlanguage: hi_IN.UTF-8\nkeybindings:\n  F2: [archive]\n"), 0o644))

	conf, loaded, err := loadConfFrom(path, en)
	require.NoError(t, err)
	assert.Equal(t, path, loaded)
	assert.Equal(t, "dark", conf.Theme)
	assert.Equal(t, "hi_IN.UTF-8", conf.Language)
	assert.Equal(t, []string{c.ActionArchive}, conf.Keybindings["F2"])

	_, _, err = loadConfFrom(filepath.Join(t.TempDir(), "missing.yml"), en)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("{{{ not yaml"), 0o644))

	_, _, err = loadConfFrom(bad, en)
	assert.Error(t, err)
}
