package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"mprog/internal/config"
	"mprog/internal/domain"
)

// ReportViewer displays a launch report in an interactive TUI
type ReportViewer struct {
	config *config.Config
}

// NewReportViewer creates a new ReportViewer
func NewReportViewer(cfg *config.Config) *ReportViewer {
	return &ReportViewer{config: cfg}
}

// View displays the launch report: rounds on the left, the selected round's
// slot assignment on the right.
func (rv *ReportViewer) View(report *domain.LaunchReport) error {
	if len(report.Rounds) == 0 {
		color.Yellow("Launch report holds no rounds")
		return nil
	}

	app := tview.NewApplication()

	// List of rounds (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for _, round := range report.Rounds {
		padded := round.PaddedSlots()
		text := fmt.Sprintf("[yellow]%d.[white] round %d — %d slot(s)", round.Number+1, round.Number, len(round.Entries))
		if padded > 0 {
			text += fmt.Sprintf(" [gray](%d padded)[white]", padded)
		}
		list.AddItem(text, "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header for the selected round
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Slot assignment of the selected round (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Launch %s — job %s, %d slot(s), %d task(s), exit %d | Use ↑↓ to navigate, → to view the round, ← to go back, Ctrl+C to exit ",
		report.Meta.RunID, report.Meta.JobID, report.Meta.Slots, report.Meta.Tasks, report.Meta.ExitCode,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(report.Rounds) {
			round := report.Rounds[index]
			statsView.SetText(fmt.Sprintf("[cyan]round:[white] [yellow]%d[white]  [cyan]padded:[white] [yellow]%d[white]\n", round.Number, round.PaddedSlots()))
			detailsView.SetText(rv.formatRound(round))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatRound formats one round's slot assignment using tview color tags
func (rv *ReportViewer) formatRound(round domain.Round) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]Round %d[white]\n\n", round.Number)
	for _, e := range round.Entries {
		if e.Padding {
			fmt.Fprintf(&builder, "[gray]%4d  %s (padding)[white]\n", e.Slot, e.Command)
		} else {
			fmt.Fprintf(&builder, "[yellow]%4d[white]  %s\n", e.Slot, e.Command)
		}
	}

	return builder.String()
}
