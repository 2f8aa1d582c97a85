package main

import (
	"log/slog"
	"strings"

	c "github.com/udhaar-dev/udhaar/constants"
	"github.com/udhaar-dev/udhaar/lib"
	m "github.com/udhaar-dev/udhaar/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rivo/tview"
)

func setAddEntryStatus(msg string) {
	if UD.AddEntryStatusText == nil {
		return
	}

	UD.AddEntryStatusText.SetText(msg)
}

// saveNewEntry validates the form values, builds the record, and prepends
// it to the active set. Validation failures keep the user on the form with
// an error message so nothing they typed is lost.
func saveNewEntry(person, amount, mode, status, label, proofPath string) {
	person = strings.TrimSpace(person)
	if person == "" {
		setAddEntryStatus(statusError(UD.T["FormErrorPersonRequired"]))
		return
	}

	amt, err := lib.NewAmount(strings.TrimSpace(amount))
	if err != nil {
		setAddEntryStatus(statusError(UD.T["FormErrorAmountInvalid"]))
		return
	}

	record := lib.NewRecord(person, amt, mode, status)
	record.SetLabel(strings.TrimSpace(label))

	proofFailed := false

	proofPath = strings.TrimSpace(proofPath)
	if proofPath != "" {
		proof, err := lib.EncodeProofFile(proofPath)
		if err != nil {
			// the record still saves, just without the attachment
			slog.Warn("failed to attach proof", "path", proofPath, "err", err)

			proofFailed = true
		} else {
			record.SetProof(proof)
		}
	}

	active := lib.Prepend(UD.Store.LoadActive(), record)

	if err := UD.Store.SaveActive(active); err != nil {
		slog.Error("failed to save new record", "err", err)
		setAddEntryStatus(statusError(UD.T["StatusSaveFailed"]))

		return
	}

	showHome()

	if proofFailed {
		setHomeStatus(statusError(UD.T["FormProofFailed"]))
	} else {
		setHomeStatus(statusSuccess(UD.T["StatusSaved"]))
	}
}

// buildAddEntryForm resets the add-entry form to a blank state, optionally
// prefilled with a person. Runs every time the page is shown so stale input
// never leaks between entries.
func buildAddEntryForm(person string) {
	UD.AddEntryForm.Clear(true)
	setAddEntryStatus("")

	people := lib.People(UD.Store.LoadActive())

	personField := tview.NewInputField()
	personField.SetLabel(UD.T["FormPersonLabel"])
	personField.SetText(person)
	personField.SetFieldWidth(30)
	personField.SetAutocompleteFunc(func(currentText string) (entries []string) {
		if strings.TrimSpace(currentText) == "" {
			return nil
		}

		return fuzzy.FindFold(strings.TrimSpace(currentText), people)
	})
	personField.SetAutocompletedFunc(func(text string, index, source int) bool {
		personField.SetText(text)
		return true
	})

	amountField := tview.NewInputField()
	amountField.SetLabel(UD.T["FormAmountLabel"])
	amountField.SetFieldWidth(12)

	labelField := tview.NewInputField()
	labelField.SetLabel(UD.T["FormLabelLabel"])
	labelField.SetFieldWidth(30)

	proofField := tview.NewInputField()
	proofField.SetLabel(UD.T["FormProofLabel"])
	proofField.SetFieldWidth(40)

	mode := c.Modes[0]
	status := c.Statuses[0]

	UD.AddEntryForm.
		AddFormItem(personField).
		AddFormItem(amountField).
		AddDropDown(UD.T["FormModeLabel"], c.Modes, 0, func(option string, _ int) {
			mode = option
		}).
		AddDropDown(UD.T["FormStatusLabel"], c.Statuses, 0, func(option string, _ int) {
			status = option
		}).
		AddFormItem(labelField).
		AddFormItem(proofField).
		AddButton(UD.T["FormSaveButton"], func() {
			saveNewEntry(
				personField.GetText(),
				amountField.GetText(),
				mode,
				status,
				labelField.GetText(),
				proofField.GetText(),
			)
		}).
		AddButton(UD.T["FormCancelButton"], func() {
			showHome()
		})

	UD.AddEntryForm.SetCancelFunc(func() {
		showHome()
	})
}

// returns the add-entry page: the form plus a status line for validation
// errors.
func getAddEntryPage() *tview.Flex {
	UD.AddEntryForm = tview.NewForm()
	UD.AddEntryForm.SetBorder(true)
	UD.AddEntryForm.SetTitle(UD.T["AddEntryTitle"])

	UD.AddEntryStatusText = tview.NewTextView()
	UD.AddEntryStatusText.SetBorder(true)
	UD.AddEntryStatusText.SetDynamicColors(true)

	buildAddEntryForm("")

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(UD.AddEntryForm, 0, 1, true).
		AddItem(UD.AddEntryStatusText, 3, 0, false)
}

// showAddEntry switches to the add-entry page with a fresh form. When the
// user comes from a person detail page, that person is prefilled.
func showAddEntry() {
	person, _ := UD.State.Person()

	buildAddEntryForm(person)

	UD.State = m.AddEntryState()

	UD.Pages.SwitchToPage(PageAddEntry)
	setBottomPageNavText()
	UD.App.SetFocus(UD.AddEntryForm)
}
