package constants

const (
	// ModeCash and ModeUPI are the only supported payment modes. The strings
	// are stored as-is in the records file, so changing them is a breaking
	// change for existing data.
	ModeCash = "Cash"
	ModeUPI  = "UPI"

	// Who bore the cost of a payment record.
	StatusIPaid    = "I Paid"
	StatusTheyPaid = "They Paid"
	StatusSplit    = "Split"
)

// Modes and Statuses are the dropdown option lists, in display order.
var (
	Modes    = []string{ModeCash, ModeUPI}
	Statuses = []string{StatusIPaid, StatusTheyPaid, StatusSplit}
)

const (
	CurrencySymbol = "₹"

	// MillisecondsPerDay converts a timestamp delta into an age in days for
	// the nudge check.
	MillisecondsPerDay = 86_400_000

	// A record qualifies for a nudge when its age in days is strictly
	// between these two bounds.
	NudgeMinAgeDays = 3
	NudgeMaxAgeDays = 7

	// UndoWindowSeconds is how long an archive can be taken back before it
	// becomes permanent.
	UndoWindowSeconds = 10
)

const (
	// The two storage slots. Active records are what the user sees; archived
	// records only ever accumulate.
	ActiveSlot  = "records.yml"
	ArchiveSlot = "archive.yml"

	DefaultConfig          = "config.yml"
	DefaultConfigParentDir = "udhaar"
	DefaultDataParentDir   = "udhaar"
	LogFileName            = "udhaar.log"

	ConfigVersion = "1"

	Version = "0.1.0"
)

// Reset terminates any tview color/style markup.
const Reset = "[-:-:-:-]"

// Action names bound to keys via the keybindings config. Keep these in sync
// with AllActions below.
const (
	ActionQuit    = "quit"
	ActionHelp    = "help"
	ActionHome    = "home"
	ActionAdd     = "add"
	ActionArchive = "archive"
	ActionUndo    = "undo"
	ActionSearch  = "search"
	ActionShare   = "share"
	ActionDelete  = "delete"
	ActionEsc     = "esc"
	ActionTab     = "tab"
	ActionBackTab = "backtab"
)

// AllActions is used when rendering the help page.
var AllActions = []string{
	ActionQuit,
	ActionHelp,
	ActionHome,
	ActionAdd,
	ActionArchive,
	ActionUndo,
	ActionSearch,
	ActionShare,
	ActionDelete,
	ActionEsc,
	ActionTab,
	ActionBackTab,
}

// DefaultMappings maps a tcell event name (as returned from event.Name())
// to the action that should run when no user keybinding matched. Rune keys
// show up as e.g. "Rune[a]".
var DefaultMappings = map[string]string{
	"Ctrl+C":  ActionQuit,
	"Rune[q]": ActionQuit,
	"F1":      ActionHelp,
	"Rune[?]": ActionHelp,
	"Rune[h]": ActionHome,
	"Rune[a]": ActionAdd,
	"Rune[x]": ActionArchive,
	"Rune[u]": ActionUndo,
	"Ctrl+Z":  ActionUndo,
	"Rune[/]": ActionSearch,
	"Rune[s]": ActionShare,
	"Rune[d]": ActionDelete,
	"Delete":  ActionDelete,
	"Esc":     ActionEsc,
	"Tab":     ActionTab,
	"Backtab": ActionBackTab,
}

// records table values

const (
	ColumnPerson = "Person"
	ColumnAmount = "Amount"
	ColumnStatus = "Status"
	ColumnMode   = "Mode"
	ColumnLabel  = "Label"
	ColumnDate   = "Date"
	ColumnProof  = "Proof"
)

const (
	ColumnPersonIndex = iota
	ColumnAmountIndex
	ColumnStatusIndex
	ColumnModeIndex
	ColumnLabelIndex
	ColumnDateIndex
	ColumnProofIndex
)

var RecordsColumns = []string{
	ColumnPerson,
	ColumnAmount,
	ColumnStatus,
	ColumnMode,
	ColumnLabel,
	ColumnDate,
	ColumnProof,
}
