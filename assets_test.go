package main

import (
	"testing"

	c "github.com/udhaar-dev/udhaar/constants"
	m "github.com/udhaar-dev/udhaar/models"
	"github.com/udhaar-dev/udhaar/themes"
	"github.com/udhaar-dev/udhaar/translations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the embedded assets end to end: the yaml has to
// parse, and every key the code reads at runtime has to resolve to a value
// in the default theme/language.

func TestEmbeddedThemes(t *testing.T) {
	std, err := themes.Load(AllThemes, "")
	require.NoError(t, err)

	for _, key := range []string{
		"StatusTextPassive",
		"StatusTextError",
		"StatusTextSuccess",
		"NudgeBanner",
		"BalanceOwesYou",
		"BalanceYouOwe",
		"BalanceSettled",
		"DetailHeadline",
		"HelpKey",
	} {
		assert.NotEmpty(t, std[key], "standard theme is missing %v", key)
	}

	dark, err := themes.Load(AllThemes, "dark")
	require.NoError(t, err)

	// dark overrides a subset and inherits the rest from standard
	assert.NotEqual(t, std["StatusTextPassive"], dark["StatusTextPassive"])
	assert.Equal(t, std["StatusTextError"], dark["StatusTextError"])

	_, err = themes.Load(AllThemes, "no-such-theme")
	assert.Error(t, err)
}

func TestEmbeddedTranslations(t *testing.T) {
	en, err := translations.Load(AllTranslations, "en_US.UTF-8")
	require.NoError(t, err)

	for _, key := range []string{
		"HomePeopleListTitle",
		"FormErrorPersonRequired",
		"FormErrorAmountInvalid",
		"StatusArchived",
		"StatusUndone",
		"NudgeBannerText",
		"PromptArchiveText",
	} {
		assert.NotEmpty(t, en[key], "en_US is missing %v", key)
	}

	hi, err := translations.Load(AllTranslations, "hi_IN.UTF-8")
	require.NoError(t, err)

	// hi_IN is deliberately partial; untranslated keys fall back to en_US
	assert.NotEqual(t, en["FormPersonLabel"], hi["FormPersonLabel"])
	assert.Equal(t, en["StatusSaved"], hi["StatusSaved"])
}

func TestEmbeddedExampleConfig(t *testing.T) {
	en, err := translations.Load(AllTranslations, "en_US.UTF-8")
	require.NoError(t, err)

	conf, file, err := loadConfFromEmbed("example.yml", ExampleConfig, en)
	require.NoError(t, err)

	assert.Equal(t, "example.yml", file)
	assert.Equal(t, c.ConfigVersion, conf.Version)
	assert.Equal(t, "standard", conf.Theme)
}

func TestHelpTextRenders(t *testing.T) {
	var err error

	UD.T, err = translations.Load(AllTranslations, "en_US.UTF-8")
	require.NoError(t, err)

	conf := m.Config{Keybindings: map[string][]string{"F2": {c.ActionArchive}}}

	got := getHelpText(conf)

	assert.Contains(t, got, "udhaar")
	assert.Contains(t, got, "Keyboard shortcuts")
	assert.Contains(t, got, "10-second window")
	assert.Contains(t, got, "F2")
}
