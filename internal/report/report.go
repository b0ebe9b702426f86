package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/orchestrator"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region styles

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	headStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D29922"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// #endregion

// #region render

// Render writes the human-readable report for rep.
func Render(w io.Writer, rep orchestrator.Report) error {
	sections := []string{
		titleStyle.Render("Launch readiness " + rep.RunID),
	}
	if len(rep.Phases) > 0 {
		sections = append(sections, boxStyle.Render(phases(rep.Phases)))
	}
	sections = append(sections,
		boxStyle.Render(producers(rep.Records, rep.Assessment.DataGaps)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Render(aggregator(rep.Assessment)),
			boxStyle.Render(vote(rep)),
		),
	)
	if notes := findings(rep); notes != "" {
		sections = append(sections, boxStyle.Render(notes))
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func phases(ps []orchestrator.PhaseResult) string {
	lines := []string{headStyle.Render("Phases")}
	for _, p := range ps {
		status := goodStyle.Render(string(p.Status))
		if p.Status == orchestrator.StatusFailed {
			status = badStyle.Render(string(p.Status))
		}
		line := fmt.Sprintf("%-12s %s %s", p.Phase, status, mutedStyle.Render(fmt.Sprintf("%dms", p.DurationMs)))
		if p.Verdict != "" {
			line += "  " + verdict(p.Verdict)
		}
		if p.Error != "" {
			line += "  " + mutedStyle.Render(p.Error)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func producers(recs []record.MetricRecord, gaps []record.ProducerID) string {
	lines := []string{headStyle.Render("Producers")}
	for _, r := range recs {
		lines = append(lines, fmt.Sprintf("%-12s %6.1f  headline %6.1f  issues %3d  %s",
			r.ProducerID, r.Value(record.KeyReadinessScore), aggregate.Headline(r), len(r.Issues), verdict(r.ProducerVerdict)))
		names := make([]string, 0, len(r.Flags))
		for name := range r.Flags {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("  %s %s", mark(r.Flags[name]), name))
		}
	}
	for _, id := range gaps {
		lines = append(lines, fmt.Sprintf("%-12s %s", id, warnStyle.Render("no record")))
	}
	return strings.Join(lines, "\n")
}

func aggregator(a aggregate.CompositeAssessment) string {
	lines := []string{
		headStyle.Render("Aggregator"),
		fmt.Sprintf("weighted score %.1f  grade %s", a.WeightedScore, a.Grade),
	}
	for _, item := range aggregate.ChecklistItems {
		lines = append(lines, fmt.Sprintf("  %s %s", mark(a.LaunchChecklist[item]), item))
	}
	lines = append(lines,
		fmt.Sprintf("  %s overall", mark(a.LaunchChecklist[aggregate.ItemOverall])),
		"ready: "+yesNo(a.Ready),
	)
	return strings.Join(lines, "\n")
}

func vote(rep orchestrator.Report) string {
	lines := []string{
		headStyle.Render("Launch vote"),
		fmt.Sprintf("mean score %.1f  grade %s", rep.MeanScore, rep.MeanGrade),
	}
	for _, c := range rep.Vote.Criteria {
		lines = append(lines, fmt.Sprintf("  %s %s", mark(c.Passed), c.Name))
	}
	lines = append(lines,
		fmt.Sprintf("  %d of %d required", rep.Vote.Passed, rep.Vote.Required),
		"launchReady: "+yesNo(rep.Vote.LaunchReady),
	)
	return strings.Join(lines, "\n")
}

func findings(rep orchestrator.Report) string {
	var lines []string
	add := func(title string, style lipgloss.Style, items []string) {
		if len(items) == 0 {
			return
		}
		lines = append(lines, headStyle.Render(title))
		for _, it := range items {
			lines = append(lines, style.Render("  - "+it))
		}
	}
	add("Blockers", badStyle, rep.Assessment.BlockerReasons())
	add("Risks", warnStyle, rep.Assessment.Risks)
	var issues []string
	for _, is := range rep.Issues {
		issues = append(issues, fmt.Sprintf("[%s] %s", is.Severity, is.Description))
	}
	add("Pipeline issues", badStyle, issues)
	add("Recommendations", mutedStyle, rep.Assessment.Recommendations)
	return strings.Join(lines, "\n")
}

// #endregion

// #region helpers

func verdict(v record.Verdict) string {
	switch v {
	case record.VerdictReady:
		return goodStyle.Render(string(v))
	case record.VerdictNeedsMinorFixes:
		return warnStyle.Render(string(v))
	default:
		return badStyle.Render(string(v))
	}
}

func mark(ok bool) string {
	if ok {
		return goodStyle.Render("✓")
	}
	return badStyle.Render("✗")
}

func yesNo(ok bool) string {
	if ok {
		return goodStyle.Render("YES")
	}
	return badStyle.Render("NO")
}

// #endregion
