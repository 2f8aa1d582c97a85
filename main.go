package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"path/filepath"

	c "github.com/udhaar-dev/udhaar/constants"
	"github.com/udhaar-dev/udhaar/lib"
	"github.com/udhaar-dev/udhaar/logging"
	m "github.com/udhaar-dev/udhaar/models"
	"github.com/udhaar-dev/udhaar/themes"
	"github.com/udhaar-dev/udhaar/translations"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

//go:embed translations/*.yml
var AllTranslations embed.FS

//go:embed themes/*.yml
var AllThemes embed.FS

//go:embed example.yml
var ExampleConfig embed.FS

const (
	// PageHome is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine
	// the current page.
	PageHome = "Home"
	// PageAddEntry is not shown to the user ever, and is only used in the
	// code. Its primary purpose is for use in switch/case statements to
	// determine the current page.
	PageAddEntry = "AddEntry"
	// PagePersonDetail is not shown to the user ever, and is only used in
	// the code. Its primary purpose is for use in switch/case statements to
	// determine the current page.
	PagePersonDetail = "PersonDetail"
	// PageHelp is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine
	// the current page.
	PageHelp = "Help"
	// PagePrompt is not shown to the user ever, and is only used in the
	// code. Its primary purpose is for use in switch/case statements to
	// determine the current page.
	PagePrompt = "Prompt"
)

type Udhaar struct {
	// The tview/tcell terminal application.
	App *tview.Application

	// The currently loaded configuration.
	Config m.Config

	// Durable storage for the active and archived record sets.
	Store *lib.Store

	// Owns the archive snapshot and the 10-second undo window.
	Archiver *lib.Archiver

	// Which screen is in front and, on the person detail screen, which
	// person it shows. Never read the person out of anything else.
	State m.ScreenState

	// The primary primitive that the app uses as its root in the terminal.
	Layout *tview.Flex

	// Translations that are loaded at runtime.
	T map[string]string

	// All default & custom colors are stored in here at runtime. Themes can
	// be switched via the config or the theme flag.
	Colors map[string]string

	// The previously focused primitive.
	Previous tview.Primitive

	// The previously shown page (via the primary pages primitive).
	PrevPage string

	// The primary page-switching primitive.
	Pages *tview.Pages

	// The free-text query currently applied to the home records table.
	FilterQuery string

	// All activated key bindings. Composed of the user's key bindings merged
	// on top of the default key bindings, as one would expect.
	//
	// usage example: KeyBindings["Ctrl+Z"] = ["undo"].
	KeyBindings map[string][]string

	// All activated action bindings. Composed of the user's configured
	// actions merged on top of the default actions, as one would expect.
	//
	// usage example: ActionBindings["undo"] = ["Ctrl+Z", "Rune[u]"].
	ActionBindings map[string][]string

	// Shows the help text on the help page.
	HelpTextView *tview.TextView

	// Always shown on every page - renders the keyboard shortcuts for the
	// current bindings.
	BottomPageNavText *tview.TextView

	// Status and error messages shown below the people list.
	HomeStatusText *tview.TextView

	// A single line above the records table suggesting an old record worth
	// chasing up. Empty when nothing qualifies.
	NudgeText *tview.TextView

	// The list of everyone who appears in the active records. Selecting an
	// entry opens the person detail screen.
	PeopleList *tview.List

	// All active records (or the filtered subset) on the home screen.
	RecordsTable *tview.Table

	// The filter input below the records table.
	FilterField *tview.InputField

	// The add-entry form.
	AddEntryForm *tview.Form

	// Validation errors shown below the add-entry form.
	AddEntryStatusText *tview.TextView

	// The table of one person's records on the detail screen.
	DetailTable *tview.Table

	// The balance headline on the detail screen.
	DetailHeadline *tview.TextView

	// Status and error messages shown below the detail table.
	DetailStatusText *tview.TextView

	// There is a hidden page that only shows a modal, used for the exit and
	// archive confirmations.
	PromptBox *tview.Modal

	// Header cells for the records tables. Loaded once at runtime with
	// values from the translation table.
	RecordsTableHeaders []m.TableCell

	// The name of the configuration file. This will get populated if set by
	// a flag at runtime, and determines the name of the file that this
	// program will save configuration changes to. The value can be an
	// absolute or a relative path. See the loadConfig function.
	FlagConfigFile string

	// Overrides the configured theme when non-empty.
	FlagTheme string

	// Print the version and exit.
	FlagVersion bool
}

// UD contains all shared data in a global. Avoid using globals where
// possible, but in the context of an application like this, things will get
// extremely messy without a global unless I spend a ton of time cleaning up
// and refactoring.
//
//nolint:gochecknoglobals
var UD Udhaar

// For an input keybinding (straight from event.Name()), an output action
// will be returned, for example - "Ctrl+Z" will return "undo".
func getDefaultKeybind(name string) string {
	a, ok := c.DefaultMappings[name]
	if !ok {
		return ""
	}

	return a
}

// capture is the primary input capture handler for the app, and should be
// used like: app.SetInputCapture(capture)
func capture(e *tcell.EventKey) *tcell.EventKey {
	n := e.Name()

	var final *tcell.EventKey
	final = e

	foundBinding := false

	for binding, actions := range UD.Config.Keybindings {
		if n != binding {
			continue
		}

		foundBinding = true

		for i := range actions {
			final = action(actions[i], final)
		}
	}

	if !foundBinding {
		// execute default action
		return action(getDefaultKeybind(n), e)
	}

	return final
}

// bootstrap is the initialization function for the app, including
// initializing globals. This function should only ever be run once.
//
// t is the translation map, and conf is the freshly loaded config.
func bootstrap(t map[string]string, conf m.Config) {
	UD.KeyBindings = GetCombinedKeybindings(conf.Keybindings, c.DefaultMappings)
	UD.ActionBindings = GetAllBoundActions(conf.Keybindings, c.DefaultMappings)

	UD.App = tview.NewApplication()

	UD.Pages = tview.NewPages()

	UD.State = m.HomeState()

	// the undo window lapses on a timer goroutine, so hand control back to
	// the event loop before touching any primitives
	UD.Archiver = lib.NewArchiver(UD.Store, 0, func() {
		UD.App.QueueUpdateDraw(func() {
			setHomeStatus(statusPassive(t["StatusUndoExpired"]))
		})
	})

	getHelpModal()

	UD.PromptBox = tview.NewModal()

	UD.Pages.AddPage(PageHome, getHomePage(), true, true).
		AddPage(PageAddEntry, getAddEntryPage(), true, true).
		AddPage(PagePersonDetail, getPersonDetailPage(), true, true).
		AddPage(PageHelp, UD.HelpTextView, true, true).
		AddPage(PagePrompt, UD.PromptBox, true, true)

	UD.Pages.SwitchToPage(PageHome)

	UD.BottomPageNavText = tview.NewTextView()

	UD.BottomPageNavText.SetDynamicColors(true)
	setBottomPageNavText()

	UD.Layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(UD.Pages, 0, 1, true).AddItem(UD.BottomPageNavText, 1, 0, false)

	UD.App.SetFocus(UD.PeopleList)

	UD.App.SetInputCapture(capture)
}

// parseFlags parses the command line flags, using t as the translation map.
func parseFlags(t map[string]string) {
	flag.StringVar(&UD.FlagConfigFile, t["FlagConfigFileFlag"], "", t["FlagConfigFileDesc"])
	flag.StringVar(&UD.FlagTheme, t["FlagThemeFlag"], "", t["FlagThemeDesc"])
	flag.BoolVar(&UD.FlagVersion, t["FlagVersionFlag"], false, t["FlagVersionDesc"])
	flag.Parse()
}

func main() {
	var err error

	UD.T, err = translations.Load(AllTranslations, "")
	if err != nil {
		log.Fatalf("failed to load translations: %v", err.Error())
	}

	parseFlags(UD.T)

	if UD.FlagVersion {
		fmt.Printf("%v %v\n", UD.T["AppName"], c.Version)
		return
	}

	UD.Config, UD.FlagConfigFile, err = loadConfig(UD.FlagConfigFile, UD.T, ExampleConfig)
	if err != nil {
		log.Fatalf("%v: %v", UD.T["ErrorFailedToLoadConfig"], err.Error())
	}

	processConfig(&UD.Config)

	if UD.Config.Language != "" {
		UD.T, err = translations.Load(AllTranslations, UD.Config.Language)
		if err != nil {
			log.Fatalf("failed to load translations: %v", err.Error())
		}
	}

	logFile := filepath.Join(xdg.StateHome, c.DefaultConfigParentDir, c.LogFileName)

	closeLog, err := logging.Setup(logFile, UD.Config.LogLevel)
	if err != nil {
		log.Fatalf("%v: %v", UD.T["ErrorFailedToSetUpLogging"], err.Error())
	}
	defer closeLog() //nolint:errcheck

	theme := UD.Config.Theme
	if UD.FlagTheme != "" {
		theme = UD.FlagTheme
	}

	UD.Colors, err = themes.Load(AllThemes, theme)
	if err != nil {
		log.Fatalf("%v: %v", UD.T["ErrorFailedToLoadThemes"], err.Error())
	}

	dataDir := UD.Config.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, c.DefaultDataParentDir)
	}

	UD.Store = lib.NewStore(dataDir)

	// materialize the config on first run so there is a file to edit
	exists, err := fileExists(UD.FlagConfigFile)
	if err == nil && !exists {
		saveConfig()
	}

	bootstrap(UD.T, UD.Config)

	if err := UD.App.SetRoot(UD.Layout, true).EnableMouse(true).Run(); err != nil {
		panic(err)
	}
}
