package report

import (
	"fmt"
	"io"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/olekukonko/tablewriter"
)

const NoTeamsMessage = "No teams have been added yet."

type ResultsReport struct {
	Report *domain.Report
}

func NewResultsReport(report *domain.Report) *ResultsReport {
	return &ResultsReport{
		Report: report,
	}
}

// Write выводит сводную таблицу и список голосов по каждой команде
func (r *ResultsReport) Write(writer io.Writer) {
	if r.Report == nil || len(r.Report.Rows) == 0 {
		fmt.Fprintln(writer, NoTeamsMessage)
		return
	}

	r.WriteSummary(writer)
	fmt.Fprintln(writer)
	r.WriteBreakdown(writer)
}

func (r *ResultsReport) WriteSummary(writer io.Writer) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"Team", "Total Votes", "Number of Voters"})

	// Markdown-совместимая разметка
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")

	for _, row := range r.Report.Rows {
		team := row.Team
		if row.Malformed {
			team += " (malformed)"
		}
		table.Append([]string{
			team,
			fmt.Sprint(row.TotalVotes),
			fmt.Sprint(row.VoterCount),
		})
	}

	table.Render()
}

func (r *ResultsReport) WriteBreakdown(writer io.Writer) {
	fmt.Fprintln(writer, "Who Voted for Each Team")
	for _, row := range r.Report.Rows {
		fmt.Fprintf(writer, "%s:\n", row.Team)
		for _, voter := range row.Voters {
			fmt.Fprintf(writer, "- %s voted %d points\n", voter.Username, voter.Vote)
		}
	}
}
