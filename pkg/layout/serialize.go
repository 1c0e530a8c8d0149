package layout

import "strings"

// serialize renders composed lines to text. Interior soft spaces become
// ordinary spaces; a trailing run with nothing printable after it is
// dropped. Each line's newline flag decides whether "\n" follows it.
func serialize(lines []Line) string {
	var sb strings.Builder
	for _, ln := range lines {
		pending := 0
		for _, a := range ln.Atoms {
			switch a.Kind {
			case KindSoftSpace:
				pending++
			case KindText:
				if a.Text == "" {
					continue
				}
				if pending > 0 {
					sb.WriteString(strings.Repeat(" ", pending))
					pending = 0
				}
				sb.WriteString(a.Text)
			}
		}
		if ln.NeedsNewline {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
