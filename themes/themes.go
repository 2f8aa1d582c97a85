package themes

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const defaultTheme = "standard"

// load reads themes/${theme}.yml into a map of color strings.
func load(allThemes embed.FS, theme string) (map[string]string, error) {
	if theme == "" {
		theme = defaultTheme
	}

	t := make(map[string]string)
	file := fmt.Sprintf("themes/%v.yml", theme)

	b, err := allThemes.ReadFile(file)
	if err != nil {
		return t, fmt.Errorf("failed to load file %v: %w", file, err)
	}

	err = yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal file %v: %w", file, err)
	}

	return t, nil
}

// Load returns the merged color map for the requested theme. The default
// theme is always loaded first, so any key the chosen theme leaves out
// still resolves to a visible color.
func Load(allThemes embed.FS, theme string) (map[string]string, error) {
	t, err := load(allThemes, defaultTheme)
	if err != nil {
		return t, fmt.Errorf("failed to load default theme %v: %w", defaultTheme, err)
	}

	switch theme {
	case "":
		fallthrough
	case defaultTheme:
		return t, nil
	default:
		break
	}

	u, err := load(allThemes, theme)
	if err != nil {
		return t, fmt.Errorf("failed to load specified theme %v: %w", theme, err)
	}

	// merge the two maps
	for k, v := range u {
		t[k] = v
	}

	return t, nil
}
