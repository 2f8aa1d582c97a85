package main

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	c "github.com/udhaar-dev/udhaar/constants"
	"github.com/udhaar-dev/udhaar/lib"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// GetCombinedKeybindings takes the user's configured keybindings and the
// default mappings and combines them into a map of keybinding to actions.
// A user binding replaces the default action for that key entirely.
//
// usage example: result["Ctrl+Z"] = ["undo"].
func GetCombinedKeybindings(kb map[string][]string, defaults map[string]string) map[string][]string {
	r := make(map[string][]string)

	for binding, action := range defaults {
		r[binding] = []string{action}
	}

	for binding, actions := range kb {
		r[binding] = actions
	}

	return r
}

// GetAllBoundActions inverts the combined keybindings, producing a map of
// action to every keybinding that triggers it. Default bindings that the
// user has overridden are left out.
//
// usage example: result["undo"] = ["Ctrl+Z", "Rune[u]"].
func GetAllBoundActions(kb map[string][]string, defaults map[string]string) map[string][]string {
	r := make(map[string][]string)

	for binding, actions := range kb {
		for i := range actions {
			r[actions[i]] = append(r[actions[i]], binding)
		}
	}

	for binding, action := range defaults {
		if _, ok := kb[binding]; ok {
			// the user rebound this key
			continue
		}

		r[action] = append(r[action], binding)
	}

	return r
}

// formatKeybind makes tcell event names presentable, for example "Rune[a]"
// renders as "a".
func formatKeybind(binding string) string {
	if strings.HasPrefix(binding, "Rune[") {
		return strings.TrimSuffix(strings.TrimPrefix(binding, "Rune["), "]")
	}

	return binding
}

// actionLabel returns the translated label for an action, for use in the
// bottom nav and the help page.
func actionLabel(action string) string {
	switch action {
	case c.ActionQuit:
		return UD.T["ActionLabelQuit"]
	case c.ActionHelp:
		return UD.T["ActionLabelHelp"]
	case c.ActionHome:
		return UD.T["ActionLabelHome"]
	case c.ActionAdd:
		return UD.T["ActionLabelAdd"]
	case c.ActionArchive:
		return UD.T["ActionLabelArchive"]
	case c.ActionUndo:
		return UD.T["ActionLabelUndo"]
	case c.ActionSearch:
		return UD.T["ActionLabelSearch"]
	case c.ActionShare:
		return UD.T["ActionLabelShare"]
	case c.ActionDelete:
		return UD.T["ActionLabelDelete"]
	case c.ActionEsc:
		return UD.T["ActionLabelEsc"]
	case c.ActionTab:
		return UD.T["ActionLabelTab"]
	case c.ActionBackTab:
		return UD.T["ActionLabelBackTab"]
	default:
		return action
	}
}

// shortestKeybind picks the most compact presentable binding for an action,
// so that the bottom nav shows "a" instead of something like "Ctrl+A" when
// both are bound. Ties resolve alphabetically to keep the output stable.
func shortestKeybind(bindings []string) string {
	if len(bindings) == 0 {
		return ""
	}

	sorted := slices.Clone(bindings)
	sort.Strings(sorted)

	best := formatKeybind(sorted[0])

	for i := range sorted {
		if f := formatKeybind(sorted[i]); len(f) < len(best) {
			best = f
		}
	}

	return best
}

// setBottomPageNavText renders the keyboard shortcuts that matter most on
// the current page into the single-line nav at the bottom of the screen.
func setBottomPageNavText() {
	if UD.BottomPageNavText == nil {
		return
	}

	pageName, _ := UD.Pages.GetFrontPage()

	var actions []string

	switch pageName {
	case PageHome:
		actions = []string{c.ActionAdd, c.ActionSearch, c.ActionArchive, c.ActionUndo, c.ActionHelp, c.ActionQuit}
	case PageAddEntry:
		actions = []string{c.ActionTab, c.ActionEsc}
	case PagePersonDetail:
		actions = []string{c.ActionShare, c.ActionDelete, c.ActionAdd, c.ActionEsc}
	case PageHelp:
		actions = []string{c.ActionEsc, c.ActionQuit}
	case PagePrompt:
		actions = []string{c.ActionTab}
	default:
		actions = c.AllActions
	}

	var sb strings.Builder

	for _, a := range actions {
		key := shortestKeybind(UD.ActionBindings[a])
		if key == "" {
			continue
		}

		fmt.Fprintf(&sb, " %v%v%v %v ", UD.Colors["HelpKey"], key, c.Reset, actionLabel(a))
	}

	UD.BottomPageNavText.SetText(sb.String())
}

func actionQuit() *tcell.EventKey {
	promptExit()
	return nil
}

func actionHelp(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageAddEntry, PagePrompt, PageHelp:
		// already on help: don't clobber PrevPage, or Esc leads back here
		return e
	default:
		switch UD.App.GetFocus() {
		case UD.FilterField:
			return e
		default:
			UD.PrevPage = pageName
			UD.Pages.SwitchToPage(PageHelp)
			setBottomPageNavText()

			return nil
		}
	}
}

func actionHome(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageAddEntry, PagePrompt:
		return e
	case PageHome:
		switch UD.App.GetFocus() {
		case UD.FilterField:
			return e
		default:
			UD.App.SetFocus(UD.PeopleList)
			return nil
		}
	default:
		showHome()
		return nil
	}
}

func actionAdd(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageAddEntry, PagePrompt, PageHelp:
		return e
	case PageHome:
		if UD.App.GetFocus() == UD.FilterField {
			return e
		}

		showAddEntry()

		return nil
	case PagePersonDetail:
		showAddEntry()
		return nil
	default:
		return e
	}
}

func actionArchive(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageHome:
		if UD.App.GetFocus() == UD.FilterField {
			return e
		}

		active := UD.Store.LoadActive()
		if len(active) == 0 {
			setHomeStatus(statusPassive(UD.T["StatusNothingToArchive"]))
			return nil
		}

		promptArchive(len(active))

		return nil
	default:
		return e
	}
}

func actionUndo(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageHome:
		if UD.App.GetFocus() == UD.FilterField {
			return e
		}

		restored := UD.Archiver.Undo()
		if restored == 0 {
			setHomeStatus(statusPassive(UD.T["StatusNothingToUndo"]))
			return nil
		}

		populateHomePage()
		setHomeStatus(statusSuccess(fmt.Sprintf(UD.T["StatusUndone"], restored)))

		return nil
	default:
		return e
	}
}

func actionSearch(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageHome:
		if UD.App.GetFocus() == UD.FilterField {
			return e
		}

		activateFilterField()

		return nil
	default:
		return e
	}
}

func actionShare(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PagePersonDetail:
		person, ok := UD.State.Person()
		if !ok {
			return e
		}

		records := lib.ForPerson(UD.Store.LoadActive(), person)
		summary := lib.BuildShareSummary(person, records, time.Now())

		if err := clipboard.WriteAll(summary); err != nil {
			setDetailStatus(statusError(UD.T["StatusCopyFailed"]))
			return nil
		}

		setDetailStatus(statusSuccess(UD.T["StatusCopied"]))

		return nil
	default:
		return e
	}
}

func actionDelete(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageHome:
		switch UD.App.GetFocus() {
		case UD.FilterField:
			return e
		case UD.RecordsTable:
			active := UD.Store.LoadActive()
			filtered := lib.Filter(active, UD.FilterQuery)

			cr, cc := UD.RecordsTable.GetSelection()
			actual := cr - 1 // skip header

			if actual < 0 || actual >= len(filtered) {
				return nil
			}

			next, ok := lib.RemoveByID(active, filtered[actual].ID)
			if !ok {
				return nil
			}

			if err := UD.Store.SaveActive(next); err != nil {
				setHomeStatus(statusError(UD.T["StatusSaveFailed"]))
				return nil
			}

			populateHomePage()
			UD.RecordsTable.Select(cr, cc)
			UD.App.SetFocus(UD.RecordsTable)
			setHomeStatus(statusPassive(UD.T["StatusDeleted"]))

			return nil
		default:
			return e
		}
	case PagePersonDetail:
		person, ok := UD.State.Person()
		if !ok {
			return e
		}

		switch UD.App.GetFocus() {
		case UD.DetailTable:
			active := UD.Store.LoadActive()
			records := lib.ForPerson(active, person)

			cr, cc := UD.DetailTable.GetSelection()
			actual := cr - 1 // skip header

			if actual < 0 || actual >= len(records) {
				return nil
			}

			next, ok := lib.RemoveByID(active, records[actual].ID)
			if !ok {
				return nil
			}

			if err := UD.Store.SaveActive(next); err != nil {
				setDetailStatus(statusError(UD.T["StatusSaveFailed"]))
				return nil
			}

			if len(lib.ForPerson(next, person)) == 0 {
				// the person no longer appears anywhere
				showHome()
				return nil
			}

			populatePersonDetail(person)
			populateHomePage()
			UD.DetailTable.Select(cr, cc)
			UD.App.SetFocus(UD.DetailTable)
			setDetailStatus(statusPassive(UD.T["StatusDeleted"]))

			return nil
		default:
			return e
		}
	default:
		return e
	}
}

func actionEsc(e *tcell.EventKey) *tcell.EventKey {
	if UD.App.GetFocus() == UD.FilterField {
		// the field's done func handles escape
		return e
	}

	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageAddEntry:
		// the form's cancel func handles escape
		return e
	case PagePersonDetail:
		showHome()
		return nil
	case PageHelp, PagePrompt:
		UD.Pages.SwitchToPage(UD.PrevPage)
		setBottomPageNavText()

		return nil
	case PageHome:
		if UD.FilterQuery != "" {
			UD.FilterQuery = ""
			UD.FilterField.SetText("")
			populateHomePage()

			return nil
		}

		promptExit()

		return nil
	default:
		promptExit()
		return nil
	}
}

func actionTab(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageHome:
		switch UD.App.GetFocus() {
		case UD.FilterField:
			return e
		case UD.PeopleList:
			UD.App.SetFocus(UD.RecordsTable)
		default:
			UD.App.SetFocus(UD.PeopleList)
		}

		return nil
	default:
		return e
	}
}

func actionBackTab(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := UD.Pages.GetFrontPage()
	switch pageName {
	case PageHome:
		switch UD.App.GetFocus() {
		case UD.FilterField:
			return e
		case UD.RecordsTable:
			UD.App.SetFocus(UD.PeopleList)
		default:
			UD.App.SetFocus(UD.RecordsTable)
		}

		return nil
	default:
		return e
	}
}

// action is the primary decision tree that is triggered when a key event
// comes in. Please ensure that every case statement has a return.
func action(action string, e *tcell.EventKey) *tcell.EventKey {
	switch action {
	case c.ActionQuit:
		return actionQuit()
	case c.ActionHelp:
		return actionHelp(e)
	case c.ActionHome:
		return actionHome(e)
	case c.ActionAdd:
		return actionAdd(e)
	case c.ActionArchive:
		return actionArchive(e)
	case c.ActionUndo:
		return actionUndo(e)
	case c.ActionSearch:
		return actionSearch(e)
	case c.ActionShare:
		return actionShare(e)
	case c.ActionDelete:
		return actionDelete(e)
	case c.ActionEsc:
		return actionEsc(e)
	case c.ActionTab:
		return actionTab(e)
	case c.ActionBackTab:
		return actionBackTab(e)
	default:
		return e
	}
}
