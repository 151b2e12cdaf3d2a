package output

import (
	"fmt"
	"io"
	"os"
)

type Class int

const (
	Required Class = iota //explicitly requested information, printed even in quiet mode
	Error
	Normal
	Verbose
)

type Printer struct {
	classes    map[Class]bool
	terminal   io.Writer
	diagnosis  io.Writer
	useEscapes bool
}

// NewPrinter creates a printer that only emits the given classes.
// Nil writers default to standard output and standard error respectively.
func NewPrinter(include []Class, allowEscapes bool, terminal io.Writer, diagnosis io.Writer) (p Printer) {
	if terminal == nil {
		terminal = os.Stdout
	}
	if diagnosis == nil {
		diagnosis = os.Stderr
	}
	p = Printer{
		classes:    map[Class]bool{},
		terminal:   terminal,
		diagnosis:  diagnosis,
		useEscapes: allowEscapes,
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := p.terminal
	if class == Error {
		target = p.diagnosis
	}
	fmt.Fprint(target, p.Sprintf(format, values...))
}

// Sprintf formats like fmt.Sprintf but drops all SgrModifier arguments if escapes are not allowed.
func (p Printer) Sprintf(format string, values ...interface{}) string {
	if !p.useEscapes {
		filtered := make([]interface{}, len(values))
		for i, value := range values {
			if _, isModifier := value.(SgrModifier); isModifier {
				filtered[i] = ""
			} else {
				filtered[i] = value
			}
		}
		values = filtered
	}
	return fmt.Sprintf(format, values...)
}

func (p Printer) Enabled(class Class) bool {
	return p.classes[class]
}
