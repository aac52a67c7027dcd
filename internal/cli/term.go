package cli

import (
	"io"

	"golang.org/x/sys/unix"
)

// fdHolder is implemented by *os.File.
type fdHolder interface {
	Fd() uintptr
}

// terminalWidth returns the column count of w if it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(fdHolder)
	if !ok {
		return 0, false
	}

	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}

	return int(ws.Col), true
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(fdHolder)
	if !ok {
		return false
	}

	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)

	return err == nil
}

// columnize lays words out in as many columns as fit in width, filling
// down each column first.
func columnize(words []string, width int) []string {
	if len(words) == 0 {
		return nil
	}

	colWidth := 0
	for _, w := range words {
		colWidth = max(colWidth, len(w))
	}

	colWidth += 2

	cols := max(width/colWidth, 1)
	rows := (len(words) + cols - 1) / cols

	lines := make([]string, rows)

	for r := range rows {
		line := make([]byte, 0, width)

		for c := range cols {
			i := c*rows + r
			if i >= len(words) {
				break
			}

			line = append(line, words[i]...)

			if c < cols-1 && (c+1)*rows+r < len(words) {
				for range colWidth - len(words[i]) {
					line = append(line, ' ')
				}
			}
		}

		lines[r] = string(line)
	}

	return lines
}
