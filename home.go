package main

import (
	"fmt"
	"time"

	c "github.com/udhaar-dev/udhaar/constants"
	"github.com/udhaar-dev/udhaar/lib"
	m "github.com/udhaar-dev/udhaar/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/shopspring/decimal"
)

func statusPassive(msg string) string {
	return fmt.Sprintf("%v %v%v", UD.Colors["StatusTextPassive"], msg, c.Reset)
}

func statusError(msg string) string {
	return fmt.Sprintf("%v %v%v", UD.Colors["StatusTextError"], msg, c.Reset)
}

func statusSuccess(msg string) string {
	return fmt.Sprintf("%v %v%v", UD.Colors["StatusTextSuccess"], msg, c.Reset)
}

func setHomeStatus(msg string) {
	if UD.HomeStatusText == nil {
		return
	}

	UD.HomeStatusText.SetText(msg)
}

// setHomeStatusSummary shows the resting status line: how many active
// records there are and how many people they involve.
func setHomeStatusSummary(active lib.RecordSet) {
	setHomeStatus(statusPassive(fmt.Sprintf(UD.T["StatusSummary"], len(active), len(lib.People(active)))))
}

// getBalanceColor picks the theme color matching the sign of a balance.
func getBalanceColor(balance decimal.Decimal) string {
	if balance.IsZero() {
		return UD.Colors["BalanceSettled"]
	}

	if balance.IsPositive() {
		return UD.Colors["BalanceOwesYou"]
	}

	return UD.Colors["BalanceYouOwe"]
}

// populatePeopleList clears out the people list and repopulates it with
// everyone in the active set, one row per person with their balance line
// underneath, including handlers for opening the person detail page.
func populatePeopleList(active lib.RecordSet) {
	UD.PeopleList.Clear()

	people := lib.People(active)

	for i := range people {
		person := people[i]
		balance := lib.ComputeBalance(lib.ForPerson(active, person))

		secondary := fmt.Sprintf("%v%v%v",
			getBalanceColor(balance),
			lib.FormatBalanceLabel(balance),
			c.Reset,
		)

		UD.PeopleList.AddItem(person, secondary, 0, func() {
			showPersonDetail(person)
		})
	}
}

// setNudgeText fills the single-line banner above the records table with a
// gentle reminder when one of the active records has gone unsettled for
// more than a few days. The banner stays empty otherwise.
func setNudgeText(active lib.RecordSet) {
	record, ok := lib.FindNudgeCandidate(active, time.Now())
	if !ok {
		UD.NudgeText.SetText("")
		return
	}

	days := int(time.Since(record.Timestamp).Hours() / 24)

	UD.NudgeText.SetText(fmt.Sprintf("%v %v%v",
		UD.Colors["NudgeBanner"],
		fmt.Sprintf(UD.T["NudgeBannerText"],
			record.Person,
			lib.FormatAsCurrency(record.Amount.Decimal),
			fmt.Sprintf(UD.T["NudgeDaysAgo"], days),
		),
		c.Reset,
	))
}

// recordsColumnKey maps a column name to the key used for both its
// translated header text and its theme color.
func recordsColumnKey(col string) string {
	return fmt.Sprintf("RecordsColumn%v", col)
}

// getRecordsTableHeaders returns the header cells for a records table,
// built from RecordsColumns on the first call and cached after that.
func getRecordsTableHeaders() []m.TableCell {
	if UD.RecordsTableHeaders != nil {
		return UD.RecordsTableHeaders
	}

	for _, col := range c.RecordsColumns {
		key := recordsColumnKey(col)
		cell := m.TableCell{Text: UD.T[key], Color: UD.Colors[key]}

		switch col {
		case c.ColumnPerson, c.ColumnLabel:
			cell.Expand = 1
		case c.ColumnAmount:
			cell.Align = tview.AlignRight
		}

		UD.RecordsTableHeaders = append(UD.RecordsTableHeaders, cell)
	}

	return UD.RecordsTableHeaders
}

// getRecordsTableCells returns the row cells for a single record, indexed
// to line up with the columns of getRecordsTableHeaders.
func getRecordsTableCells(r lib.PaymentRecord) []m.TableCell {
	proof := ""
	if r.HasProof() {
		proof = UD.T["ProofMark"]
	}

	cells := make([]m.TableCell, len(c.RecordsColumns))

	cells[c.ColumnPersonIndex] = m.TableCell{Text: r.Person, Color: UD.Colors[recordsColumnKey(c.ColumnPerson)], Expand: 1}
	cells[c.ColumnAmountIndex] = m.TableCell{
		Text:  lib.FormatAsCurrency(r.Amount.Decimal),
		Color: UD.Colors[recordsColumnKey(c.ColumnAmount)],
		Align: tview.AlignRight,
	}
	cells[c.ColumnStatusIndex] = m.TableCell{Text: r.Status, Color: UD.Colors[recordsColumnKey(c.ColumnStatus)]}
	cells[c.ColumnModeIndex] = m.TableCell{Text: r.Mode, Color: UD.Colors[recordsColumnKey(c.ColumnMode)]}
	cells[c.ColumnLabelIndex] = m.TableCell{Text: r.LabelText(), Color: UD.Colors[recordsColumnKey(c.ColumnLabel)], Expand: 1}
	cells[c.ColumnDateIndex] = m.TableCell{
		Text:  r.Timestamp.Format("2006-01-02"),
		Color: UD.Colors[recordsColumnKey(c.ColumnDate)],
	}
	cells[c.ColumnProofIndex] = m.TableCell{Text: proof, Color: UD.Colors[recordsColumnKey(c.ColumnProof)]}

	return cells
}

// setTableRow constructs and sets the cells for the i'th row of a table.
// Does not clear any existing fields/data.
func setTableRow(table *tview.Table, row int, cells []m.TableCell) {
	for i := range cells {
		cell := tview.NewTableCell(fmt.Sprintf("%v%v%v",
			cells[i].Color,
			cells[i].Text,
			c.Reset,
		))
		if cells[i].Expand > 0 {
			cell.SetExpansion(cells[i].Expand)
		}

		if cells[i].Align != tview.AlignLeft {
			cell.SetAlign(cells[i].Align)
		}

		table.SetCell(row, i, cell)
	}
}

// getRecordsTable rebuilds the records table from the active set, honoring
// the current filter query. Records render newest first, straight from the
// order they are stored in.
func getRecordsTable(active lib.RecordSet) {
	UD.RecordsTable.Clear()

	setTableRow(UD.RecordsTable, 0, getRecordsTableHeaders())

	filtered := lib.Filter(active, UD.FilterQuery)

	for i := range filtered {
		setTableRow(UD.RecordsTable, i+1, getRecordsTableCells(filtered[i]))
	}
}

// populateHomePage refreshes everything on the home page from the store:
// the people list, the nudge banner, the records table, and the resting
// status line.
func populateHomePage() {
	active := UD.Store.LoadActive()

	populatePeopleList(active)
	setNudgeText(active)
	getRecordsTable(active)
	setHomeStatusSummary(active)
}

// activateFilterField focuses the filter field so that keystrokes type into
// the query instead of triggering actions.
func activateFilterField() {
	UD.FilterField.SetFieldBackgroundColor(tcell.ColorDimGray)
	UD.FilterField.SetLabel(fmt.Sprintf("%v %v%v", UD.Colors["StatusTextSuccess"], UD.T["HomeFilterLabel"], c.Reset))
	UD.FilterField.SetText(UD.FilterQuery)

	// don't mess with the previously stored focus if the text field is
	// already focused
	currentFocus := UD.App.GetFocus()
	if currentFocus == UD.FilterField {
		return
	}

	UD.Previous = currentFocus

	UD.App.SetFocus(UD.FilterField)
}

// deactivateFilterField drops the query, returns the filter field to its
// resting state, and hands focus back to whatever had it before.
func deactivateFilterField() {
	UD.FilterField.SetFieldBackgroundColor(tcell.ColorBlack)
	UD.FilterField.SetLabel(fmt.Sprintf("%v %v%v", UD.Colors["StatusTextPassive"], UD.T["HomeFilterAppearsHere"], c.Reset))
	UD.FilterField.SetText("")

	if UD.Previous != nil {
		UD.App.SetFocus(UD.Previous)
	}
}

// returns a simple flex view with two columns:
// - a list of people with their balances (left side)
// - the nudge banner, the records table and the filter field (right side)
func getHomePage() *tview.Flex {
	UD.PeopleList = tview.NewList()
	UD.PeopleList.SetBorder(true)
	UD.PeopleList.ShowSecondaryText(true).
		SetSelectedBackgroundColor(tcell.NewRGBColor(50, 50, 50)).
		SetSelectedTextColor(tcell.ColorWhite).
		SetTitle(UD.T["HomePeopleListTitle"])

	UD.HomeStatusText = tview.NewTextView()
	UD.HomeStatusText.SetBorder(true)
	UD.HomeStatusText.SetDynamicColors(true)

	homeLeftSide := tview.NewFlex().SetDirection(tview.FlexRow)
	homeLeftSide.AddItem(UD.PeopleList, 0, 1, true).
		AddItem(UD.HomeStatusText, 3, 0, true)

	UD.NudgeText = tview.NewTextView()
	UD.NudgeText.SetDynamicColors(true)

	UD.RecordsTable = tview.NewTable().SetFixed(1, 1)
	UD.RecordsTable.SetBorder(true)
	UD.RecordsTable.SetTitle(UD.T["HomeRecordsTableTitle"])
	UD.RecordsTable.SetSelectable(true, false)
	UD.RecordsTable.SetSelectedFunc(func(row, _ int) {
		filtered := lib.Filter(UD.Store.LoadActive(), UD.FilterQuery)

		actual := row - 1 // skip header
		if actual < 0 || actual >= len(filtered) {
			return
		}

		showPersonDetail(filtered[actual].Person)
	})

	UD.FilterField = tview.NewInputField()
	UD.FilterField.SetBorder(true)
	UD.FilterField.SetFieldBackgroundColor(tcell.ColorBlack)
	UD.FilterField.SetLabel(fmt.Sprintf("%v %v%v", UD.Colors["StatusTextPassive"], UD.T["HomeFilterAppearsHere"], c.Reset))
	UD.FilterField.SetChangedFunc(func(text string) {
		UD.FilterQuery = text
		getRecordsTable(UD.Store.LoadActive())
	})
	UD.FilterField.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEscape:
			// drop the query
			deactivateFilterField()
		default:
			// keep the query; hand focus to the table showing the matches
			UD.FilterField.SetFieldBackgroundColor(tcell.ColorBlack)
			UD.App.SetFocus(UD.RecordsTable)
		}
	})

	populateHomePage()

	homeRightSide := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(UD.NudgeText, 1, 0, false).
		AddItem(UD.RecordsTable, 0, 1, false).
		AddItem(UD.FilterField, 3, 0, false)

	return tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(homeLeftSide, 0, 1, true).
		AddItem(homeRightSide, 0, 2, false)
}

// showHome switches to the home page and refreshes it.
func showHome() {
	UD.State = m.HomeState()

	populateHomePage()
	UD.Pages.SwitchToPage(PageHome)
	setBottomPageNavText()
	UD.App.SetFocus(UD.PeopleList)
}
