package output

import "fmt"

// SgrModifier is a "Select Graphic Rendition" parameter of an ANSI escape sequence.
type SgrModifier int

const (
	Reset  SgrModifier = 0
	Dim    SgrModifier = 2
	Green  SgrModifier = 32
	Yellow SgrModifier = 33
)

func (m SgrModifier) String() string {
	return fmt.Sprintf("\x1B[%dm", int(m))
}
