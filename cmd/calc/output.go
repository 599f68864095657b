package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/zephyrtronium/calc"
)

// printer writes evaluation results, marking failures apart from values.
type printer struct {
	out   io.Writer
	plain bool
	ok    *color.Color
	fail  *color.Color
	mark  *color.Color
}

func newPrinter(out io.Writer, useColor, plain bool) *printer {
	p := &printer{
		out:   out,
		plain: plain,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed, color.Bold),
		mark:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.ok, p.fail, p.mark} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// print writes the result of evaluating src. Failures with a position also
// show the offending line of src with a caret under the column.
func (p *printer) print(src string, v float64, err error) {
	if err == nil {
		if p.plain {
			fmt.Fprintln(p.out, calc.FormatValue(v))
			return
		}
		p.ok.Fprintln(p.out, calc.Describe(v, nil))
		return
	}
	p.fail.Fprintln(p.out, calc.Describe(v, err))
	var ie calc.InputError
	if !errors.As(err, &ie) || calc.KindOf(err) == calc.EmptyInput {
		return
	}
	line, width := caret(src, ie.Pos())
	fmt.Fprintf(p.out, "  %s\n", line)
	p.mark.Fprintf(p.out, "  %s^\n", strings.Repeat(" ", width))
}

// caret finds the line of src containing the rune at 1-based column col. It
// returns that line and its display width before the column. Tabs are shown
// as single spaces so that the widths agree.
func caret(src string, col int) (string, int) {
	runes := []rune(src)
	i := col - 1
	if i < 0 {
		i = 0
	}
	if i > len(runes) {
		i = len(runes)
	}
	start := i
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end := i
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	untab := strings.NewReplacer("\t", " ", "\r", "")
	line := untab.Replace(string(runes[start:end]))
	prefix := untab.Replace(string(runes[start:i]))
	return line, runewidth.StringWidth(prefix)
}
