// Package console renders automation-host progress and diagnostics as
// human-readable terminal output.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/sergei-lamce/STraSAK/internal/project"
)

const barWidth = 24

// Reporter implements project.Events by printing to a writer. Because the
// host invokes it in the middle of a blocking SDK operation, none of its
// methods may panic; rendering problems degrade to plain text.
type Reporter struct {
	w   io.Writer
	bar progress.Model
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return &Reporter{w: w, bar: bar}
}

// Progress prints a bar line for the given percent when the status text is
// non-empty; pure percent ticks without a status are silent.
func (r *Reporter) Progress(percent int, status string) {
	if status == "" {
		return
	}
	fmt.Fprintf(r.w, "%s %3d%% %s\n", r.bar.ViewAs(float64(percent)/100), percent, status)
}

// Message prints a structured engine message: the source line, the
// level-colored "<level>: <text>" line, and the exception detail when present.
func (r *Reporter) Message(msg project.Message) {
	if msg.Source != "" {
		fmt.Fprintln(r.w, sourceStyle.Render(msg.Source))
	}
	fmt.Fprintf(r.w, "%s: %s\n", levelStyle(msg.Level).Render(string(msg.Level)), msg.Text)
	if msg.Exception != "" {
		fmt.Fprintln(r.w, errStyle.Render(msg.Exception))
	}
}

// Printf prints a plain line.
func (r *Reporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Successf prints a line in the success style.
func (r *Reporter) Successf(format string, args ...interface{}) {
	fmt.Fprintln(r.w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Failf prints a line in the error style.
func (r *Reporter) Failf(format string, args ...interface{}) {
	fmt.Fprintln(r.w, errStyle.Render(fmt.Sprintf(format, args...)))
}

func levelStyle(l project.Level) lipgloss.Style {
	switch l {
	case project.LevelWarning:
		return warnStyle
	case project.LevelError:
		return errStyle
	default:
		return infoStyle
	}
}
