package updateversion

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	changedColor = color.New(color.FgGreen)
	noticeColor  = color.New(color.FgYellow)
	promptColor  = color.New(color.FgMagenta, color.Bold)
)

// ConfirmPrompt is written before reading the operator's answer.
const ConfirmPrompt = "Is this correct? [y/N]"

// Report prints lines[r.First..r.Last] followed by a blank line.
// Nothing is printed for empty contents.
func Report(w io.Writer, lines []string, r EditRange) {
	if len(lines) == 0 {
		return
	}
	if !r.Changed {
		noticeColor.Fprintln(w, "(no matching lines)")
		fmt.Fprintln(w)
		return
	}
	last := min(r.Last, len(lines)-1)
	for i := r.First; i <= last; i++ {
		changedColor.Fprintln(w, lines[i])
	}
	fmt.Fprintln(w)
}

// Confirm asks the operator to approve the edits. Only a reply of exactly
// "y" or "Y" counts as approval; anything else, including no input at all,
// is a refusal.
func Confirm(in io.Reader, w io.Writer) (bool, error) {
	fmt.Fprintln(w)
	promptColor.Fprint(w, ConfirmPrompt)
	fmt.Fprint(w, " ")

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		return false, nil
	}
	reply := strings.TrimSpace(sc.Text())
	return reply == "y" || reply == "Y", nil
}
