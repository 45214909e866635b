package reporters

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

// ConsoleReporter prints colored report lines: green with blue operands for
// steps, blue for announcements, yellow for success and red for failure.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// NewStdoutReporter creates a reporter writing to the standard output.
func NewStdoutReporter() *ConsoleReporter {
	return NewConsoleReporter(os.Stdout)
}

func (it *ConsoleReporter) Step(action, subject, target string) {
	_, _ = fmt.Fprintf(it.out, "%s %s %s %s\n",
		color.Green.Sprint(action),
		color.Blue.Sprint(subject),
		color.Green.Sprint("to"),
		color.Blue.Sprint(target),
	)
}

func (it *ConsoleReporter) Announce(message string) {
	_, _ = fmt.Fprintln(it.out, color.Blue.Sprint(message))
}

func (it *ConsoleReporter) Separator() {
	_, _ = fmt.Fprintln(it.out)
}

func (it *ConsoleReporter) Success(mode entities.Mode, name string) {
	_, _ = fmt.Fprintln(it.out, color.Yellow.Sprintf("Successfully %s %s!", mode.PastTense(), name))
}

func (it *ConsoleReporter) Failure(mode entities.Mode, err error) {
	_, _ = fmt.Fprintln(it.out, color.Red.Sprintf("Error %s git repository: %v", mode.Gerund(), err))
}
