package progress

import (
	"fmt"

	"github.com/fatih/color"
)

type renderer interface {
	render(Status, string) string
	complete(string) string
	fail(string) string
}

func newRenderer(style Style, noColor bool) renderer {
	switch style {
	case StyleSimple:
		return &simpleRenderer{}
	default:
		return &spinnerRenderer{noColor: noColor}
	}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerRenderer struct {
	noColor bool
	frame   int
}

func (r *spinnerRenderer) render(status Status, message string) string {
	r.frame = (r.frame + 1) % len(spinnerFrames)
	spinner := spinnerFrames[r.frame]
	if !r.noColor {
		spinner = color.CyanString(spinner)
	}

	line := fmt.Sprintf("\r\033[K%s %s", spinner, message)
	if status.CurrentItem != "" {
		line += fmt.Sprintf(" (%d) %s", status.ItemsProcessed, status.CurrentItem)
	}
	return line
}

func (r *spinnerRenderer) complete(message string) string {
	if r.noColor {
		return message
	}
	return color.GreenString(message)
}

func (r *spinnerRenderer) fail(message string) string {
	if r.noColor {
		return message
	}
	return color.RedString(message)
}

// simpleRenderer emits no control codes; suited for piped output.
type simpleRenderer struct {
	lastCount int64
}

func (r *simpleRenderer) render(status Status, message string) string {
	// Only emit a line when the count advances, to keep piped output sane.
	if status.ItemsProcessed == r.lastCount {
		return ""
	}
	r.lastCount = status.ItemsProcessed
	return fmt.Sprintf("%s: %d items\n", message, status.ItemsProcessed)
}

func (r *simpleRenderer) complete(message string) string {
	return message
}

func (r *simpleRenderer) fail(message string) string {
	return message
}
