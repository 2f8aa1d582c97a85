package main

import (
	"testing"

	c "github.com/udhaar-dev/udhaar/constants"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCombinedKeybindings(t *testing.T) {
	// Ctrl+Z rebinds a default, F2 is a new binding, and F3 fires two
	// actions from one key
	kb := map[string][]string{
		"Ctrl+Z": {c.ActionQuit},
		"F2":     {c.ActionArchive},
		"F3":     {c.ActionHome, c.ActionSearch},
	}

	combined := GetCombinedKeybindings(kb, c.DefaultMappings)

	// user bindings replace the default action for that key entirely
	assert.Equal(t, []string{c.ActionQuit}, combined["Ctrl+Z"])
	assert.Equal(t, []string{c.ActionArchive}, combined["F2"])
	assert.Equal(t, []string{c.ActionHome, c.ActionSearch}, combined["F3"])

	// untouched defaults survive
	assert.Equal(t, []string{c.ActionUndo}, combined["Rune[u]"])
	assert.Equal(t, []string{c.ActionQuit}, combined["Ctrl+C"])
}

func TestGetAllBoundActions(t *testing.T) {
	kb := map[string][]string{
		"Ctrl+Z": {c.ActionQuit},
		"F2":     {c.ActionArchive},
	}

	bound := GetAllBoundActions(kb, c.DefaultMappings)

	assert.Contains(t, bound[c.ActionQuit], "Ctrl+Z")
	assert.Contains(t, bound[c.ActionArchive], "F2")
	assert.Contains(t, bound[c.ActionArchive], "Rune[x]")

	// Ctrl+Z was rebound away from undo, so undo keeps only its other keys
	assert.NotContains(t, bound[c.ActionUndo], "Ctrl+Z")
	assert.Contains(t, bound[c.ActionUndo], "Rune[u]")
}

func TestEveryDefaultMappingIsAKnownAction(t *testing.T) {
	for binding, action := range c.DefaultMappings {
		assert.Contains(t, c.AllActions, action, "binding %v maps to unknown action %v", binding, action)
	}
}

func TestFormatKeybind(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Rune[a]", want: "a"},
		{input: "Rune[/]", want: "/"},
		{input: "Ctrl+Z", want: "Ctrl+Z"},
		{input: "Esc", want: "Esc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, formatKeybind(tt.input))
		})
	}
}

func TestActionHelpKeepsPrevPage(t *testing.T) {
	UD.App = tview.NewApplication()
	UD.Pages = tview.NewPages()
	UD.Pages.AddPage(PageHome, tview.NewBox(), true, true)
	UD.Pages.AddPage(PageHelp, tview.NewBox(), true, true)
	UD.Pages.SwitchToPage(PageHome)

	// a nil filter field would compare equal to the app's empty focus
	UD.FilterField = tview.NewInputField()

	e := tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)

	require.Nil(t, actionHelp(e))

	front, _ := UD.Pages.GetFrontPage()
	require.Equal(t, PageHelp, front)
	assert.Equal(t, PageHome, UD.PrevPage)

	// invoking help while already on help must not clobber the way back
	assert.Equal(t, e, actionHelp(e))
	assert.Equal(t, PageHome, UD.PrevPage)

	require.Nil(t, actionEsc(e))

	front, _ = UD.Pages.GetFrontPage()
	assert.Equal(t, PageHome, front)
}

func TestShortestKeybind(t *testing.T) {
	require.Empty(t, shortestKeybind(nil))

	assert.Equal(t, "u", shortestKeybind([]string{"Ctrl+Z", "Rune[u]"}))
	assert.Equal(t, "Esc", shortestKeybind([]string{"Esc"}))

	// ties resolve alphabetically so the nav text stays stable
	assert.Equal(t, "a", shortestKeybind([]string{"Rune[b]", "Rune[a]"}))
}
