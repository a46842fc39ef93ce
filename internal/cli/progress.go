package cli

import (
	"fmt"
	"io"
)

// stepPrinter renders pipeline progress in the fixed step format:
// a numbered step line, indented detail lines, and a checkmark on success.
type stepPrinter struct {
	out  io.Writer
	step int
}

func newStepPrinter(out io.Writer) *stepPrinter {
	return &stepPrinter{out: out}
}

func (p *stepPrinter) Step(name string) {
	if p.step > 0 {
		fmt.Fprintln(p.out)
	}
	p.step++
	fmt.Fprintf(p.out, "Step %d: %s\n", p.step, name)
}

func (p *stepPrinter) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "  %s\n", fmt.Sprintf(format, args...))
}

func (p *stepPrinter) Done(format string, args ...any) {
	fmt.Fprintf(p.out, "  %s %s\n", successIcon, fmt.Sprintf(format, args...))
}
