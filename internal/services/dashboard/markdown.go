package dashboard

import (
	"fmt"
	"strings"
)

// Markdown renders the summary as a markdown document
func (s *Summary) Markdown(userName string) string {
	var b strings.Builder

	b.WriteString("# Fleet dashboard\n\n")
	if userName != "" {
		fmt.Fprintf(&b, "Signed in as **%s**. ", userName)
	}
	fmt.Fprintf(&b, "%d vehicles in the fleet.\n\n", s.Vehicles)

	b.WriteString("| KPI | Value | Note |\n|---|---:|---|\n")
	fmt.Fprintf(&b, "| Open work orders | %d | %s |\n", s.Open, openNote(s.Open))
	fmt.Fprintf(&b, "| Overdue maintenance | %d | %s |\n", s.Overdue, overdueNote(s.Overdue))
	fmt.Fprintf(&b, "| New this week | %d | Orders reported in last 7 days |\n\n", s.NewThisWeek)

	b.WriteString("## Work orders per day\n\n")
	if len(s.PerDay) == 0 {
		b.WriteString("_No work orders reported yet._\n\n")
	} else {
		peak := 0
		for _, d := range s.PerDay {
			peak = max(peak, d.Count)
		}
		b.WriteString("```\n")
		for _, d := range s.PerDay {
			fmt.Fprintf(&b, "%s %s %d\n", d.Date, bar(d.Count, peak, 30), d.Count)
		}
		b.WriteString("```\n\n")
	}

	b.WriteString("## Recent work orders\n\n")
	if len(s.Recent) == 0 {
		b.WriteString("_Nothing to show._\n")
		return b.String()
	}
	b.WriteString("| Order | Vehicle | Type | Status | Priority | Reported | Planned |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, r := range s.Recent {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			cell(r.OrderNumber), cell(r.Vehicle), cell(r.Type), cell(r.Status),
			cell(r.Priority), cell(r.ReportedDate), cell(r.PlannedStart))
	}
	return b.String()
}

func openNote(n int) string {
	if n > 0 {
		return "Check technician workload"
	}
	return "All clear"
}

func overdueNote(n int) string {
	if n > 0 {
		return "Schedule ASAP"
	}
	return "Up to date"
}

func bar(n, peak, width int) string {
	if peak == 0 {
		return ""
	}
	size := n * width / peak
	if n > 0 && size == 0 {
		size = 1
	}
	return strings.Repeat("█", size)
}

// cell escapes pipes so values cannot break the table
func cell(s string) string {
	if s == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
