package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // wrap lines of values at this width (in en's)
	Colored   bool           // use colors for output
	Context   *uax11.Context // context for display width calculation
}

// Console is a type for outputting segment trees to a console with a fixed
// width font.
type Console struct {
	config  Config
	value   *color.Color // color for cached aggregates
	pending *color.Color // color for pending deltas
	span    *color.Color // color for node spans
}

var setupGraphemes sync.Once

// NewConsole creates a console formatter.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func NewConsole(config *Config) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if config == nil {
		config = ConfigFromTerminal()
	}
	c := &Console{
		config:  *config,
		value:   color.New(color.FgBlue),
		pending: color.New(color.FgRed, color.Bold),
		span:    color.New(color.Faint),
	}
	if c.config.Context == nil {
		c.config.Context = uax11.LatinContext
	}
	if c.config.LineWidth <= 0 {
		c.config.LineWidth = 65
	}
	if c.config.Colored {
		c.value.EnableColor()
		c.pending.EnableColor()
		c.span.EnableColor()
	} else {
		c.value.DisableColor()
		c.pending.DisableColor()
		c.span.DisableColor()
	}
	return c
}

// width returns the display width of s in en's, for a fixed width font.
func (c *Console) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), c.config.Context)
}

// Print outputs the values and the node table of a tree to stdout, using a
// configuration derived from the terminal.
func Print[V, D any](tree *segtree.Tree[V, D]) error {
	c := NewConsole(nil)
	if err := PrintValues(c, tree, os.Stdout); err != nil {
		return err
	}
	return PrintNodes(c, tree, os.Stdout)
}

// PrintValues outputs all values of a tree in index order, prefixed by
// "Values:", wrapping lines at the configured line width.
//
// Reading all values resolves every pending delta of the tree.
func PrintValues[V, D any](c *Console, tree *segtree.Tree[V, D], w io.Writer) error {
	if c == nil || tree == nil || w == nil {
		return segtree.ErrIllegalArguments
	}
	const prefix = "Values:"
	var out strings.Builder
	out.WriteString(prefix)
	col := c.width(prefix)
	for _, v := range tree.Values() {
		s := fmt.Sprintf("%v", v)
		width := c.width(s)
		if col+1+width > c.config.LineWidth && col > len(prefix) {
			out.WriteString("\n" + strings.Repeat(" ", len(prefix)))
			col = len(prefix)
		}
		out.WriteString(" ")
		out.WriteString(c.value.Sprint(s))
		col += 1 + width
	}
	out.WriteString("\n")
	_, err := io.WriteString(w, out.String())
	return err
}

// PrintNodes outputs the node table of a tree, one node per line in
// pre-order, indented by depth. Nodes with a pending delta are marked with
// the delta. The tree is left untouched.
func PrintNodes[V, D any](c *Console, tree *segtree.Tree[V, D], w io.Writer) error {
	if c == nil || tree == nil || w == nil {
		return segtree.ErrIllegalArguments
	}
	type row struct {
		label string
		width int
		info  segtree.NodeInfo[V, D]
	}
	var rows []row
	col := 0
	tree.Walk(func(info segtree.NodeInfo[V, D]) {
		label := strings.Repeat("  ", info.Depth) + fmt.Sprintf("[%d,%d]", info.Lo, info.Hi)
		width := c.width(label)
		col = max(col, width)
		rows = append(rows, row{label: label, width: width, info: info})
	})
	var out strings.Builder
	for _, r := range rows {
		out.WriteString(c.span.Sprint(r.label))
		out.WriteString(strings.Repeat(" ", col-r.width+2))
		out.WriteString(c.value.Sprint(fmt.Sprintf("%v", r.info.Value)))
		if r.info.Pending {
			out.WriteString("  ")
			out.WriteString(c.pending.Sprint(fmt.Sprintf("Δ %v", r.info.Delta)))
		}
		out.WriteString("\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly. Colors are used
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 30 {
			config.LineWidth = w - 5
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
