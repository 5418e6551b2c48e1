package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sonemaro/jsdocgen/pkg/task"
)

func (f *formatter) formatText(tc *task.Context) (string, error) {
	f.log.Debug("Formatting text plan")

	p := f.buildPlan(tc)

	label := fmt.Sprintf
	if f.config.WithColors {
		cyan := color.New(color.FgCyan).SprintfFunc()
		label = func(format string, a ...interface{}) string {
			return cyan(format, a...)
		}
	}

	var b strings.Builder

	b.WriteString(label("Command:") + "\n")
	b.WriteString("  " + strings.Join(p.Command, " ") + "\n\n")

	b.WriteString(label("Source roots:") + "\n")
	for _, root := range p.SourceRoots {
		b.WriteString("  - " + root + "\n")
	}
	b.WriteString("\n")

	writeField := func(name, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", label("%-16s", name+":"), value))
		}
	}

	writeField("Output dir", p.OutputDir)
	writeField("Tool dir", p.ToolDir)
	writeField("Scratch dir", p.ScratchDir)
	writeField("Config file", p.ConfigFile)
	writeField("Template dir", p.TemplateDir)
	writeField("Tutorials dir", p.TutorialsDir)

	b.WriteString(fmt.Sprintf("%s debug=%v recursive=%v includePrivate=%v lenient=%v\n",
		label("%-16s", "Flags:"),
		p.Debug, p.Recursive, p.IncludePrivate, p.Lenient))

	return b.String(), nil
}
