// Package runlog keeps the text log of one analysis run and the dated
// folder it is written to.
package runlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Path returns root/<date>/<time>: <note>.
func Path(
	root, note string,
	now time.Time,
) string {
	return filepath.Join(root, now.Format("2006-Jan-02"), now.Format("15:04:05")+": "+note)
}

// Log echoes lines to out and keeps them for log.txt.
type Log struct {
	Dir   string
	out   io.Writer
	lines []string
}

// New returns a Log that writes into dir and echoes to out.
func New(dir string, out io.Writer) *Log {
	return &Log{Dir: dir, out: out}
}

// Printf formats a line, echoes it and keeps it.
func (l *Log) Printf(format string, args ...any) {
	str := fmt.Sprintf(format, args...)
	if l.out != nil {
		fmt.Fprint(l.out, str)
	}
	l.lines = append(l.lines, str)
}

// Lines returns everything logged so far.
func (l *Log) Lines() []string { return l.lines }

// Write stores the log as Dir/log.txt, creating Dir if needed.
func (l *Log) Write() error {

	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return err
	}

	txt, err := os.Create(filepath.Join(l.Dir, "log.txt"))
	if err != nil {
		return err
	}
	defer txt.Close()

	w := bufio.NewWriter(txt)
	for _, line := range l.lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return w.Flush()
}
