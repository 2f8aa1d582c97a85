package main

import (
	"fmt"

	c "github.com/udhaar-dev/udhaar/constants"
	"github.com/udhaar-dev/udhaar/lib"
	m "github.com/udhaar-dev/udhaar/models"

	"github.com/rivo/tview"
)

func setDetailStatus(msg string) {
	if UD.DetailStatusText == nil {
		return
	}

	UD.DetailStatusText.SetText(msg)
}

// populatePersonDetail fills the detail page with one person's active
// records and their balance headline.
func populatePersonDetail(person string) {
	records := lib.ForPerson(UD.Store.LoadActive(), person)
	balance := lib.ComputeBalance(records)

	UD.DetailHeadline.SetText(fmt.Sprintf("%v%v%v  %v%v%v",
		UD.Colors["DetailHeadline"], person, c.Reset,
		getBalanceColor(balance), lib.FormatBalanceLabel(balance), c.Reset,
	))

	UD.DetailTable.Clear()
	setTableRow(UD.DetailTable, 0, getRecordsTableHeaders())

	for i := range records {
		setTableRow(UD.DetailTable, i+1, getRecordsTableCells(records[i]))
	}

	if len(records) == 0 {
		setDetailStatus(statusPassive(UD.T["DetailNoRecords"]))
		return
	}

	setDetailStatus("")
}

// returns the person detail page: the balance headline on top, that
// person's records in the middle, and a status line at the bottom.
func getPersonDetailPage() *tview.Flex {
	UD.DetailHeadline = tview.NewTextView()
	UD.DetailHeadline.SetDynamicColors(true)
	UD.DetailHeadline.SetBorder(true)

	UD.DetailTable = tview.NewTable().SetFixed(1, 1)
	UD.DetailTable.SetBorder(true)
	UD.DetailTable.SetTitle(UD.T["PersonDetailRecordsTitle"])
	UD.DetailTable.SetSelectable(true, false)

	UD.DetailStatusText = tview.NewTextView()
	UD.DetailStatusText.SetBorder(true)
	UD.DetailStatusText.SetDynamicColors(true)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(UD.DetailHeadline, 3, 0, false).
		AddItem(UD.DetailTable, 0, 1, true).
		AddItem(UD.DetailStatusText, 3, 0, false)
}

// showPersonDetail switches to the detail page for one person.
func showPersonDetail(person string) {
	UD.State = m.PersonDetailState(person)

	if _, ok := UD.State.Person(); !ok {
		// an empty person falls back to home
		showHome()
		return
	}

	populatePersonDetail(person)

	UD.Pages.SwitchToPage(PagePersonDetail)
	setBottomPageNavText()
	UD.App.SetFocus(UD.DetailTable)
}
