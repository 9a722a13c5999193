package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/vellum-ui/vellum/pkg/layout"
)

// printTree writes the computed rect tree, one node per line, indented
// by depth. Color is used only on a terminal and can be forced off.
func printTree(w io.Writer, root *layout.Node, noColor bool) {
	kindColor := color.New(color.FgCyan, color.Bold)
	rectColor := color.New(color.FgGreen)
	dimColor := color.New(color.Faint)

	useColor := !noColor
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		useColor = false
	}
	if !useColor {
		kindColor.DisableColor()
		rectColor.DisableColor()
		dimColor.DisableColor()
	}

	var walk func(n *layout.Node, depth int)
	walk = func(n *layout.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		rect, ok := n.Rect()
		if !ok {
			fmt.Fprintf(w, "%s%s %s\n",
				indent, kindColor.Sprint(n.Kind), dimColor.Sprint("(not laid out)"))
			return
		}

		line := fmt.Sprintf("%s%s %s",
			indent,
			kindColor.Sprint(n.Kind),
			rectColor.Sprintf("[%.1f, %.1f, %.1f x %.1f]", rect.X, rect.Y, rect.Width, rect.Height),
		)
		if n.Text != "" {
			line += " " + dimColor.Sprintf("%q", truncate(n.Text, 32))
		}
		fmt.Fprintln(w, line)

		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
