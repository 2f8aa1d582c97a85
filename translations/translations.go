package translations

import (
	"embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultLanguage = "en_US.UTF-8"

// load reads translations/${language}.yml into a map of strings, falling
// back to the default language file when the requested one is missing.
func load(allTranslations embed.FS, language string) (map[string]string, error) {
	if language == "" {
		language = defaultLanguage
	}

	t := make(map[string]string)
	file := fmt.Sprintf("translations/%v.yml", language)

	b, err := allTranslations.ReadFile(file)
	if err != nil {
		slog.Warn("no translation file, using default", "file", file, "err", err)

		file = fmt.Sprintf("translations/%v.yml", defaultLanguage)

		b, err = allTranslations.ReadFile(file)
		if err != nil {
			return t, fmt.Errorf("failed to load default language file %v: %w", file, err)
		}
	}

	err = yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal file %v: %w", file, err)
	}

	return t, nil
}

// Load returns the merged translation map for the requested language. The
// default language is always loaded first so that untranslated strings
// still show visible text in some language (instead of an empty string).
// An empty language argument falls back to the LANG environment variable,
// which is how the language is picked when the config does not set one.
func Load(allTranslations embed.FS, language string) (map[string]string, error) {
	t, err := load(allTranslations, defaultLanguage)
	if err != nil {
		return t, fmt.Errorf("failed to load default translations %v: %w", defaultLanguage, err)
	}

	if language == "" {
		language = os.Getenv("LANG")
	}

	switch language {
	case "":
		fallthrough
	case defaultLanguage:
		return t, nil
	default:
		break
	}

	u, err := load(allTranslations, language)
	if err != nil {
		return t, fmt.Errorf("failed to load specified translations %v: %w", language, err)
	}

	// merge the two maps
	for k, v := range u {
		t[k] = v
	}

	return t, nil
}
