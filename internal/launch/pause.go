// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PauseForAck prints a prompt and blocks until the user presses Enter.
// It is a no-op when disabled, or when stdin is not a terminal (piped
// input, CI): in those cases there is no vanishing window to protect.
func PauseForAck(in *os.File, out io.Writer, disabled bool) {
	if disabled || in == nil {
		return
	}
	if !term.IsTerminal(int(in.Fd())) {
		return
	}

	fmt.Fprint(out, "Press Enter to close...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
