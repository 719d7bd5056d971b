package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the xrinput banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct{ text, color string }{
		{"                 _                   _   ", "#818cf8"},
		{" __  ___ __     (_)_ __  _ __  _   _| |_ ", "#a78bfa"},
		{" \\ \\/ / '__|____| | '_ \\| '_ \\| | | | __|", "#c084fc"},
		{"  >  <| | |_____| | | | | |_) | |_| | |_ ", "#e879f9"},
		{" /_/\\_\\_|       |_|_| |_| .__/ \\__,_|\\__|", "#f472b6"},
		{"                        |_|              ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Status colors a disposition or outcome label for terminal output.
func Status(label string) termenv.Style {
	p := termenv.ColorProfile()
	s := p.String(label)
	switch label {
	case "running", "pass_through":
		return s.Foreground(p.Color("#818cf8"))
	case "finished", "created":
		return s.Foreground(p.Color("#34d399"))
	case "cancelled", "skipped":
		return s.Foreground(p.Color("#fbbf24"))
	case "ignored":
		return s.Faint()
	}
	return s
}
