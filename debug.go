package inkbutton

import (
	"fmt"
	"os"
)

// debugf prints a trace line to stderr when debug mode is on.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[inkbutton] "+format+"\n", args...)
}
