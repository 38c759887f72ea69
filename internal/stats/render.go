package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidle/internal/model"
)

const (
	barChar      = "█"
	minBarWidth  = 10
	defaultWidth = 40
)

// SummaryCell is one labelled headline number.
type SummaryCell struct {
	Label string
	Value string
}

// SummaryCells returns the headline numbers in display order.
func SummaryCells(agg Aggregate) []SummaryCell {
	return []SummaryCell{
		{Label: "Played", Value: strconv.Itoa(agg.GamesPlayed)},
		{Label: "Win %", Value: strconv.Itoa(agg.WinPercentage())},
		{Label: "Current Streak", Value: strconv.Itoa(agg.CurrentStreak)},
		{Label: "Max Streak", Value: strconv.Itoa(agg.MaxStreak)},
	}
}

// DistributionBars renders one line per attempt: the attempt number, a bar
// scaled to the largest bucket within width columns, and the count.
func DistributionBars(agg Aggregate, width int) []string {
	if width <= 0 {
		width = defaultWidth
	}
	maxCount := 0
	for _, n := range agg.GuessDistribution {
		if n > maxCount {
			maxCount = n
		}
	}
	countWidth := runewidth.StringWidth(strconv.Itoa(maxCount))
	barWidth := width - 2 - 1 - countWidth
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	lines := make([]string, 0, len(agg.GuessDistribution))
	for i, n := range agg.GuessDistribution {
		length := 1
		if maxCount > 0 && n > 0 {
			length = n * barWidth / maxCount
			if length < 1 {
				length = 1
			}
		}
		lines = append(lines, fmt.Sprintf("%d %s %s",
			i+1,
			runewidth.FillRight(strings.Repeat(barChar, length), barWidth),
			runewidth.FillLeft(strconv.Itoa(n), countWidth),
		))
	}
	return lines
}

// RenderSummary prints the headline numbers.
func RenderSummary(w io.Writer, agg Aggregate) error {
	if _, err := fmt.Fprintln(w, "Statistics"); err != nil {
		return err
	}
	cells := SummaryCells(agg)
	headers := make([]string, len(cells))
	values := make([]string, len(cells))
	right := map[int]bool{}
	for i, c := range cells {
		headers[i] = c.Label
		values[i] = c.Value
		right[i] = true
	}
	for _, line := range formatTable(headers, [][]string{values}, right) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderDistribution prints the guess distribution.
func RenderDistribution(w io.Writer, agg Aggregate, width int) error {
	if _, err := fmt.Fprintln(w, "Guess Distribution"); err != nil {
		return err
	}
	for _, line := range DistributionBars(agg, width) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// HistoryRows formats finished games for a table, newest first.
func HistoryRows(games []model.GameRecord, now time.Time) (headers []string, rows [][]string) {
	headers = []string{"Played", "Mode", "Target", "Result", "Guesses"}
	rows = make([][]string, 0, len(games))
	for _, g := range games {
		result := "lost"
		if g.Won {
			result = fmt.Sprintf("won in %d", g.Attempts)
		}
		rows = append(rows, []string{
			humanize.RelTime(g.EndedAt, now, "ago", "from now"),
			g.Mode,
			g.Target,
			result,
			strings.Join(g.Guesses, " "),
		})
	}
	return headers, rows
}

// RenderHistory prints finished games.
func RenderHistory(w io.Writer, games []model.GameRecord, now time.Time) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Recent Games (%s)\n", humanize.Comma(int64(len(games)))); err != nil {
		return err
	}
	headers, rows := HistoryRows(games, now)
	for _, line := range formatTable(headers, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderOpeners prints the most played first guesses.
func RenderOpeners(w io.Writer, openers []OpenerCount) error {
	if len(openers) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Favorite Openers"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(openers))
	for _, o := range openers {
		rows = append(rows, []string{o.Word, strconv.Itoa(o.Games), strconv.Itoa(o.Wins)})
	}
	for _, line := range formatTable([]string{"Word", "Games", "Wins"}, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderReport prints every section of a report.
func RenderReport(w io.Writer, report Report, width int, now time.Time) error {
	if err := RenderSummary(w, report.Aggregate); err != nil {
		return err
	}
	if err := RenderDistribution(w, report.Aggregate, width); err != nil {
		return err
	}
	if err := RenderOpeners(w, report.Openers); err != nil {
		return err
	}
	return RenderHistory(w, report.Games, now)
}
