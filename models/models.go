package models

// Config is the user-editable configuration, stored as yaml. Records are
// not part of it; they live in their own files under the data directory.
type Config struct {
	Keybindings map[string][]string `yaml:"keybindings"`
	Theme       string              `yaml:"theme"`
	Language    string              `yaml:"language"`
	Version     string              `yaml:"version"`
	// DataDir overrides where the records and archive files are kept. When
	// empty, they go under the XDG data home.
	DataDir string `yaml:"dataDir"`
	// LogLevel accepts slog level names: debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}

// Screen identifies which of the three screens is in front.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenAddEntry
	ScreenPersonDetail
)

// ScreenState is the whole of the transient view state: the screen in
// front, and, only for the person detail screen, which person it shows.
// The fields are unexported so a detail state without a person, or a stale
// person lingering on another screen, cannot be constructed.
type ScreenState struct {
	screen Screen
	person string
}

func HomeState() ScreenState {
	return ScreenState{screen: ScreenHome}
}

func AddEntryState() ScreenState {
	return ScreenState{screen: ScreenAddEntry}
}

// PersonDetailState captures the selected person. An empty person is not a
// valid selection, so it falls back to the home state instead.
func PersonDetailState(person string) ScreenState {
	if person == "" {
		return HomeState()
	}

	return ScreenState{screen: ScreenPersonDetail, person: person}
}

func (s ScreenState) Screen() Screen {
	return s.screen
}

// Person returns the selected person. The second return value is false on
// every screen except person detail.
func (s ScreenState) Person() (string, bool) {
	if s.screen != ScreenPersonDetail {
		return "", false
	}

	return s.person, true
}

// TableCell carries the text and tview markup for one rendered table cell.
type TableCell struct {
	Color  string
	Text   string
	Expand int
	Align  int
}
