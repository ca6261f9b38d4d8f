package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirnuke/internal/dirnuke"
)

const (
	// clearLine returns the cursor to the start of the line and erases it.
	clearLine  = "\r\033[2K"
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// progressLine is a single, in-place updated status line.
// Diagnostics are printed above it without leaving half-drawn lines behind.
type progressLine struct {
	out    io.Writer // where the live line is drawn
	errOut io.Writer // where diagnostics go
	live   bool

	label    string
	interval time.Duration
	now      func() time.Time

	lastDraw  time.Time
	drawn     bool
	processed int64
	bytes     int64
}

var _ dirnuke.Display = (*progressLine)(nil)

// newProgressLine creates a display for phase. With live unset only
// diagnostics are written.
func newProgressLine(phase dirnuke.Phase, out, errOut io.Writer, live bool, interval time.Duration) *progressLine {
	return &progressLine{
		out:      out,
		errOut:   errOut,
		live:     live,
		label:    phaseStyle(phase, out).Render(phase.Label()),
		interval: interval,
		now:      time.Now,
	}
}

// phaseStyle colours the phase label like a traffic light: green for a harmless
// scan, magenta for removal. Colours are dropped when w is not a terminal.
func phaseStyle(phase dirnuke.Phase, w io.Writer) lipgloss.Style {
	color := lipgloss.Color("2")
	if phase == dirnuke.Nuke {
		color = lipgloss.Color("5")
	}

	return lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(color)
}

func (p *progressLine) Update(processed, bytes int64) {
	p.processed = processed
	p.bytes = bytes

	if !p.live {
		return
	}

	if p.drawn && p.now().Sub(p.lastDraw) < p.interval {
		return
	}

	p.draw()
}

func (p *progressLine) Failure(o dirnuke.Outcome) {
	p.clear()

	fmt.Fprintf(p.errOut, "Error processing '%s': %s\n", o.Path, o.Reason())

	if p.live {
		p.draw()
	}
}

func (p *progressLine) Finish(_ dirnuke.Summary) {
	p.clear()
}

func (p *progressLine) draw() {
	fmt.Fprintf(p.out, "%s%s: %d files, %s", clearLine, p.label,
		p.processed, humanize.IBytes(uint64(p.bytes))) //nolint:gosec // Bytes is always positive

	p.drawn = true
	p.lastDraw = p.now()
}

func (p *progressLine) clear() {
	if !p.drawn {
		return
	}

	fmt.Fprint(p.out, clearLine)

	p.drawn = false
}
