package main

import (
	"bytes"
	"log"
	"slices"
	"sort"
	"strings"
	"text/template"

	c "github.com/udhaar-dev/udhaar/constants"
	m "github.com/udhaar-dev/udhaar/models"

	"github.com/rivo/tview"
)

const HelpTextTemplate = `[lightgreen::b]udhaar[-:-:-:-]

[gold]
           _ _
 _   _  __| | |__   __ _  __ _ _ __
| | | |/ _  | '_ \ / _  |/ _  | '__|
| |_| | (_| | | | | (_| | (_| | |
 \__,_|\__,_|_| |_|\__,_|\__,_|_|
[-:-:-:-]


[lightgreen::b]General information[-:-:-:-]

[white]udhaar keeps track of small debts between you and the people around you:
chai, auto fares, split lunches. Every payment becomes a [gold]record[white], and the
running balance per person tells you who owes whom.

[lightgreen::b]More on records[-:-:-:-]

[white]Each record has the following fields:

- Person: The name of the other person. Names are free text and case
          sensitive, so [gold]Rohit[white] and [gold]rohit[white] are two different people.
- Amount: A positive amount of money, such as [gold]120[white] or [gold]99.50[white].
- Status: Who paid. [gold]I Paid[white] means they owe you the full amount,
          [gold]They Paid[white] means you owe them the full amount, and [gold]Split[white]
          means they owe you half.
- Mode:   How the money moved: [gold]Cash[white] or [gold]UPI[white].
- Label:  An optional note about what the money was for.
- Proof:  An optional screenshot or photo. Give the add-entry form a file
          path and the image is stored inside the record.

[lightgreen::b]Balances[-:-:-:-]

[white]The left-hand list on the home page shows one balance per person, summed
over their active records. [lightgreen]Owes you[white] means money is coming your way,
[orange]You owe[white] means the opposite, and settled balances say so.

[lightgreen::b]Archiving[-:-:-:-]

[white]Once you have settled up, archive the active records to clear the slate.
Nothing is deleted: archived records move to a separate file and stay there
forever. After archiving you have a {{ .UndoSeconds }}-second window to change your
mind and bring everything back exactly as it was. Archiving again during
the window makes the previous archive permanent.

[lightgreen::b]Filtering and nudges[-:-:-:-]

[white]The filter field below the records table matches a case-insensitive
substring against each record's person, label, amount, and mode. The
banner above the table suggests a record worth chasing up when one has
been sitting unsettled for a few days.

[lightgreen::b]Keyboard shortcuts[-:-:-:-]
{{ range .Bindings }}
[aqua]{{ printf "%-20v" .Keys }}[white]{{ .Label }}
{{- end }}
`

type helpBinding struct {
	Action string
	Label  string
	Keys   string
}

// getHelpKeyBindings flattens the combined action bindings into rows for
// the help template, one row per action in a stable order.
func getHelpKeyBindings(conf m.Config) []helpBinding {
	bound := GetAllBoundActions(conf.Keybindings, c.DefaultMappings)

	out := make([]helpBinding, 0, len(c.AllActions))

	for _, a := range c.AllActions {
		keys := slices.Clone(bound[a])
		sort.Strings(keys)

		for i := range keys {
			keys[i] = formatKeybind(keys[i])
		}

		out = append(out, helpBinding{
			Action: a,
			Label:  actionLabel(a),
			Keys:   strings.Join(keys, ", "),
		})
	}

	return out
}

func getHelpText(conf m.Config) (output string) {
	type tmplDataShape struct {
		Conf        m.Config
		Bindings    []helpBinding
		UndoSeconds int
	}

	tmplData := tmplDataShape{
		Conf:        conf,
		Bindings:    getHelpKeyBindings(conf),
		UndoSeconds: c.UndoWindowSeconds,
	}

	tmpl, err := template.New("help").Parse(HelpTextTemplate)
	if err != nil {
		log.Fatalf("failed to parse help text template: %v", err.Error())
	}

	var b bytes.Buffer

	err = tmpl.Execute(&b, tmplData)
	if err != nil {
		log.Fatalf("failed to render help text: %v", err.Error())
	}

	return b.String()
}

// getHelpModal builds the help page's text view and fills it with the
// rendered help text.
func getHelpModal() {
	UD.HelpTextView = tview.NewTextView()
	UD.HelpTextView.SetBorder(true)
	UD.HelpTextView.SetText(getHelpText(UD.Config)).SetDynamicColors(true)
}
