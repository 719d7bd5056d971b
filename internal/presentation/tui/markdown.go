package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/xrinput/internal/trace"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/aretw0/xrinput/pkg/domain"
)

// CatalogMarkdown renders the action table as a markdown document.
func CatalogMarkdown(cat *catalog.Catalog) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Action set `%s`\n\n", catalog.ActionSetName)
	sb.WriteString("| Action | Binding | Hands | Kind | Handler |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, s := range cat.Specs() {
		kind := string(s.Kind)
		if s.Pose != domain.PoseNone {
			kind += " (" + string(s.Pose) + ")"
		}
		handler := "-"
		if s.Dispatched() {
			handler = "`" + cat.HandlerID(s.Name) + "`"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			s.Name, s.BindingName, hands(s.Hands), kind, handler)
	}
	fmt.Fprintf(&sb, "\nGrip pose: `%s`, aim pose: `%s`.\n", cat.Grip(), cat.Aim())
	return sb.String()
}

// BindingsMarkdown renders a registration result.
func BindingsMarkdown(res *catalog.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Bindings for `%s`\n\n", res.ActionSet)
	if res.Reused {
		sb.WriteString("Action set already registered; nothing was created.\n")
		return sb.String()
	}
	sb.WriteString("| Action | Hand | Profile | Path | Status |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, r := range res.Created {
		fmt.Fprintf(&sb, "| %s | %s | %s | `%s` | created |\n", r.Action, r.Hand, r.Profile, r.Path)
	}
	for _, r := range res.Skipped {
		fmt.Fprintf(&sb, "| %s | %s | %s | `%s` | skipped |\n", r.Action, r.Hand, r.Profile, r.Path)
	}
	fmt.Fprintf(&sb, "\n%d created, %d skipped.\n", len(res.Created), len(res.Skipped))
	return sb.String()
}

// DescribeStep returns a one-line description of a trace step.
func DescribeStep(s trace.Step) string {
	switch {
	case s.Action != nil:
		return fmt.Sprintf("%s %s %s %.2f", s.Action.Kind, s.Action.Action, s.Action.Hand, s.Action.Value)
	case s.Mouse != nil:
		return fmt.Sprintf("mouse %d,%d", s.Mouse.X, s.Mouse.Y)
	case s.Session != nil:
		if *s.Session {
			return "session running"
		}
		return "session stopped"
	}
	return "?"
}

func hands(hs []domain.Hand) string {
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = string(h)
	}
	return strings.Join(parts, ", ")
}
