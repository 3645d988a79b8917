package presenter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/naka-gawa/git-spy/internal/domain"
)

// tableHeaders are the column titles of the repository table.
var tableHeaders = []string{"Repository Name", "Stars", "Language", "Description"}

// RenderReport writes the banner, profile block, language stack, star summary
// and repository table for report to w.
func RenderReport(w io.Writer, report *domain.Report) error {
	var b strings.Builder

	b.WriteString(Banner(BannerText))
	b.WriteString(rule() + "\n")
	b.WriteString(" TARGET IDENTIFIED: " + handleLink(report.Profile) + "\n")
	b.WriteString(rule() + "\n")

	for _, line := range profileLines(report.Profile) {
		b.WriteString(line + "\n")
	}

	if len(report.TopLanguages) > 0 {
		b.WriteString(rule() + "\n")
		b.WriteString(" STACK: " + stackLine(report.TopLanguages) + "\n")
	}
	if report.Stars.Total > 0 {
		b.WriteString(" STARS: " + starsLine(report.Stars) + "\n")
	}

	b.WriteString(rule() + "\n")
	b.WriteString(" TOP ARTIFACTS\n")
	b.WriteString(rule() + "\n")
	b.WriteString(RenderTable(report.Rows) + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// handleLink renders @login as an OSC 8 hyperlink to the profile page.
func handleLink(p domain.Profile) string {
	text := styleHandleAt.Render("@") + styleHandle.Render(p.Login)
	return ansi.SetHyperlink(p.URL()) + text + ansi.ResetHyperlink()
}

func profileLines(p domain.Profile) []string {
	var lines []string
	if p.Name != nil {
		lines = append(lines, keyValue("Name:", styleName.Render(*p.Name)))
	}
	if p.Bio != nil && *p.Bio != "" {
		lines = append(lines, keyValue("Bio:", styleBio.Render(*p.Bio)))
	}
	if p.Location != nil {
		lines = append(lines, keyValue("Location:", styleLocation.Render(*p.Location)))
	}
	lines = append(lines,
		keyValue("Followers:", styleFollower.Render(strconv.Itoa(p.Followers))),
		keyValue("Following:", styleFollower.Render(strconv.Itoa(p.Following))),
		keyValue("Repos:", styleRepos.Render(strconv.Itoa(p.PublicRepos))),
	)
	return lines
}

func stackLine(langs []domain.LanguageCount) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		parts = append(parts, styleLanguage.Render(l.Name)+" "+styleDim.Render(fmt.Sprintf("(%d)", l.Count)))
	}
	return strings.Join(parts, styleDim.Render("  |  "))
}

func starsLine(s domain.StarSummary) string {
	median := strconv.FormatFloat(s.Median, 'f', -1, 64)
	return styleRepos.Render(strconv.Itoa(s.Total)) + styleDim.Render(" total · ") +
		styleRepos.Render(median) + styleDim.Render(" median")
}

// RenderTable renders rows as a rounded table. An empty slice still renders the headers.
func RenderTable(rows []domain.DisplayRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Name, strconv.Itoa(r.Stars), r.Language, r.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableEdge).
		Headers(tableHeaders...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			switch col {
			case 0:
				return styleCell.Inherit(styleRepoName)
			case 2:
				return styleCell.Inherit(styleRepoLang)
			case 3:
				return styleCell.Inherit(styleDim)
			}
			return styleCell
		})

	return t.Render()
}
