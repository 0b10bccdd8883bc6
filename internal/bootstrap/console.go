package bootstrap

import (
	"io"

	"github.com/fatih/color"
)

// Console prints bootstrap progress for the operator.
type Console struct {
	w      io.Writer
	dim    *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:      w,
		dim:    color.New(color.Faint),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
	}
}

// Searching announces the start of the port scan.
func (c *Console) Searching() {
	c.dim.Fprintln(c.w, "Searching for available port...")
}

// Busy reports a candidate that failed the availability probe.
func (c *Console) Busy(port int) {
	c.yellow.Fprintf(c.w, "Port %d is busy\n", port)
}

// Launching reports the candidate about to be bound.
func (c *Console) Launching(port int) {
	c.dim.Fprintf(c.w, "Launching on port %d...\n", port)
}

// Failed reports a candidate whose real bind failed after a successful probe.
func (c *Console) Failed(port int, err error) {
	c.yellow.Fprintf(c.w, "Port %d failed: %v\n", port, err)
}

// Launched reports the URL the UI is served on.
func (c *Console) Launched(url string) {
	c.green.Fprintf(c.w, "Successfully launched on %s\n", url)
}

// Exhausted reports that every candidate was tried without success.
func (c *Console) Exhausted() {
	c.red.Fprintln(c.w, "All ports failed. Try closing other applications or restart your computer.")
}
