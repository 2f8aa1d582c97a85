package main

import (
	"fmt"

	c "github.com/udhaar-dev/udhaar/constants"

	"github.com/gdamore/tcell/v2"
)

// This file mainly contains functions for the hidden prompt page in the
// application.

func promptExit() {
	// check if we are already prompting
	currentPage, _ := UD.Pages.GetFrontPage()
	if currentPage == PagePrompt {
		return
	}

	UD.PrevPage = currentPage

	UD.PromptBox.ClearButtons().AddButtons(
		[]string{
			UD.T["PromptExitButtonExit"],
			UD.T["PromptExitButtonNo"],
			UD.T["PromptExitButtonCancel"],
		},
	).SetText(UD.T["PromptExitText"]).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			switch buttonIndex {
			case 0:
				UD.App.Stop()
			case 1:
				fallthrough
			case 2:
				fallthrough
			default:
				UD.Pages.SwitchToPage(UD.PrevPage)
				setBottomPageNavText()

				return
			}
		},
	).SetBackgroundColor(tcell.ColorGoldenrod).
		SetTextColor(tcell.ColorBlack)

	UD.Pages.SwitchToPage(PagePrompt)
	setBottomPageNavText()
	UD.PromptBox.SetFocus(2)
	UD.App.SetFocus(UD.PromptBox)
}

// promptArchive switches to the prompt page and asks for confirmation
// before moving every active record into the archive. On confirmation the
// archive happens immediately and the undo window opens.
//
// count is how many records are about to move.
func promptArchive(count int) {
	currentPage, _ := UD.Pages.GetFrontPage()
	if currentPage == PagePrompt {
		return
	}

	UD.PrevPage = currentPage

	UD.PromptBox.ClearButtons().AddButtons(
		[]string{
			UD.T["PromptArchiveButtonArchive"],
			UD.T["PromptArchiveButtonCancel"],
		},
	).SetText(fmt.Sprintf(UD.T["PromptArchiveText"], count, c.UndoWindowSeconds)).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			switch buttonIndex {
			case 0:
				archived := UD.Archiver.Archive()

				UD.Pages.SwitchToPage(PageHome)
				setBottomPageNavText()
				populateHomePage()

				if archived == 0 {
					setHomeStatus(statusError(UD.T["StatusArchiveFailed"]))
					return
				}

				setHomeStatus(statusSuccess(fmt.Sprintf(UD.T["StatusArchived"], archived)))
			default:
				UD.Pages.SwitchToPage(UD.PrevPage)
				setBottomPageNavText()

				return
			}
		},
	).SetBackgroundColor(tcell.ColorGoldenrod).
		SetTextColor(tcell.ColorBlack)

	UD.Pages.SwitchToPage(PagePrompt)
	setBottomPageNavText()
	UD.PromptBox.SetFocus(1)
	UD.App.SetFocus(UD.PromptBox)
}
