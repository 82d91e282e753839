package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/palette"
	"tableflip.dev/taskboard/pkg/timeutil"
)

// DescriptionWidth is where show wraps descriptions.
const DescriptionWidth = 60

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// Now defaults to time.Now.
	Now func() time.Time
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now == nil {
		return time.Now()
	}
	return pp.Now()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Board prints tasks as a table, one row per card.
func (pp *PrettyPrint) Board(tasks ...*board.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48

	header := []interface{}{bold.Sprint(" "), bold.Sprint("Title"), bold.Sprint("Colour"), bold.Sprint("Z"), bold.Sprint("Created")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	now := pp.now()
	for _, t := range tasks {
		c := palette.Get(t.Color)
		row := []interface{}{
			Status(t),
			pp.title(t),
			c.Style().Sprintf(" %d %s ", c.Index, c.Name),
			strconv.FormatInt(t.Z, 10),
			timeutil.RelativeMillis(t.CreatedAt, now),
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Task prints one task in full.
func (pp *PrettyPrint) Task(t *board.Task) {
	faint := color.New(color.Faint)
	c := palette.Get(t.Color)
	now := pp.now()

	_, _ = c.Style(color.Bold).Fprintf(pp.out(), " %s %s ", Status(t), t.Title)
	pp.NewLine()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("id"), t.ID)
	tbl.AddRow(faint.Sprint("colour"), fmt.Sprintf("%d %s", c.Index, c.Name))
	tbl.AddRow(faint.Sprint("position"), fmt.Sprintf("%s, %s", formatCoord(t.Pos.X), formatCoord(t.Pos.Y)))
	tbl.AddRow(faint.Sprint("z"), strconv.FormatInt(t.Z, 10))
	tbl.AddRow(faint.Sprint("created"), timeutil.RelativeMillis(t.CreatedAt, now))
	if t.UpdatedAt != nil {
		tbl.AddRow(faint.Sprint("updated"), timeutil.RelativeMillis(*t.UpdatedAt, now))
	}
	if t.DoneAt != nil {
		tbl.AddRow(faint.Sprint("done"), timeutil.RelativeMillis(*t.DoneAt, now))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if t.Description != "" {
		pp.NewLine()
		for _, line := range strings.Split(wordwrap.String(t.Description, DescriptionWidth), "\n") {
			_, _ = fmt.Fprintf(pp.out(), "  %s\n", line)
		}
	}
	pp.NewLine()
}

// Palette prints the colour legend.
func (pp *PrettyPrint) Palette() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Colour"), bold.Sprint("Name"), bold.Sprint("Hex"), bold.Sprint("Sample"))
	for _, c := range palette.All() {
		tbl.AddRow(strconv.Itoa(c.Index), c.Name, c.Hex, c.Style().Sprint(" Buy milk "))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) title(t *board.Task) string {
	if t.Done {
		return color.New(color.Faint, color.CrossedOut).Sprint(t.Title)
	}
	return t.Title
}

// Status is the checkbox glyph for t.
func Status(t *board.Task) string {
	if t.Done {
		return "✓"
	}
	return "○"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
