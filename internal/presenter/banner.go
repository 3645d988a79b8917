package presenter

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
	"github.com/lucasb-eyer/go-colorful"
)

// BannerText is the title rendered above every report.
const BannerText = "GIT SPY"

// Banner renders text as FIGlet letters colored with the banner gradient.
func Banner(text string) string {
	art := figure.NewFigure(text, "", true).String()
	return Gradient(art, bannerStart, bannerEnd)
}

// Gradient colors each line of text from start to end, column by column.
// Whitespace is kept as is. Every line of the result ends with a newline.
func Gradient(text, start, end string) string {
	from, err := colorful.Hex(start)
	if err != nil {
		return text
	}
	to, err := colorful.Hex(end)
	if err != nil {
		return text
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		runes := []rune(line)
		width := float64(max(1, len(runes)-1))
		for i, r := range runes {
			if unicode.IsSpace(r) {
				b.WriteRune(r)
				continue
			}
			c := from.BlendRgb(to, float64(i)/width)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
