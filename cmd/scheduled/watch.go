package main

import (
	"fmt"

	"evscheduled/internal/runner"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var cfgPath string
	var numDays int
	var startSOC float64

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run a multi-day chain with a live terminal progress view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, activities, err := loadRun(cfgPath)
			if err != nil {
				return err
			}
			params := cfg.Params.ToScheduleParams()

			m := newWatchModel(numDays)
			p := tea.NewProgram(m)

			events := make(chan runner.MultiDayProgress)
			done := make(chan error, 1)
			go func() {
				_, err := runner.RunMultiDay(cmd.Context(), activities, params, numDays, startSOC, func(ev runner.MultiDayProgress) {
					events <- ev
				})
				close(events)
				done <- err
			}()
			go func() {
				for ev := range events {
					p.Send(watchProgressMsg(ev))
				}
				p.Send(watchDoneMsg{err: <-done})
			}()

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML run config (required)")
	cmd.Flags().IntVar(&numDays, "days", 7, "Number of days to chain")
	cmd.Flags().Float64Var(&startSOC, "start-soc", 0.8, "Initial SOC for day 0")
	cmd.MarkFlagRequired("config")
	return cmd
}

// watchModel is a bubbletea Model tracking a multi-day run's progress bar
// and a scrolling log of completed days, in the same spirit as erigon's
// TUI progress tooling (charmbracelet/bubbletea + bubbles + lipgloss).
type watchModel struct {
	total    int
	progress progress.Model
	lines    []string
	err      error
	done     bool
}

type watchProgressMsg runner.MultiDayProgress
type watchDoneMsg struct{ err error }

func newWatchModel(total int) watchModel {
	return watchModel{
		total:    total,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m watchModel) Init() tea.Cmd { return nil }

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case watchProgressMsg:
		status := "ok"
		if msg.Day.Result.Infeasible {
			status = "infeasible"
		}
		m.lines = append(m.lines, fmt.Sprintf(
			"day %d/%d: soc %.3f -> %.3f  utility=%.2f  dssr=%d  [%s]",
			msg.Day.Day+1, msg.Total, msg.Day.StartSOC, msg.Day.EndSOC,
			msg.Day.Result.FinalUtility(), msg.Day.Result.DSSRIterations, status,
		))
		return m, nil
	case watchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

var watchTitleStyle = lipgloss.NewStyle().Bold(true)

func (m watchModel) View() string {
	frac := 0.0
	if m.total > 0 {
		frac = float64(len(m.lines)) / float64(m.total)
	}
	out := watchTitleStyle.Render("evscheduled: multi-day run") + "\n"
	out += m.progress.ViewAs(frac) + "\n\n"
	for _, l := range m.lines {
		out += l + "\n"
	}
	if m.done {
		if m.err != nil {
			out += fmt.Sprintf("\nfinished with error: %v\n", m.err)
		} else {
			out += "\nrun complete.\n"
		}
	} else {
		out += "\n(press q to quit)\n"
	}
	return out
}
