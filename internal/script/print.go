package script

import (
	"strconv"
	"strings"
)

// Print renders the script back to text. The result is semantically equal to
// the parsed input: a parse/print/parse cycle yields an equal Script, though
// not necessarily byte-identical text (e.g. float formatting).
func (s *Script) Print() string {
	var sb strings.Builder
	for _, l := range s.Lines {
		sb.WriteString(PrintLine(l))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintLine renders a single line.
func PrintLine(l Line) string {
	if l.Bulk == nil {
		return l.Raw
	}
	b := l.Bulk

	fields := []string{
		b.AutoActions,
		printKeys(movementChars, [6]bool{
			b.MovementKeys.Forward,
			b.MovementKeys.Left,
			b.MovementKeys.Right,
			b.MovementKeys.Back,
			b.MovementKeys.Up,
			b.MovementKeys.Down,
		}),
		printKeys(actionChars, [6]bool{
			b.ActionKeys.Jump,
			b.ActionKeys.Duck,
			b.ActionKeys.Use,
			b.ActionKeys.Attack1,
			b.ActionKeys.Attack2,
			b.ActionKeys.Reload,
		}),
		b.FrameTime,
		printYawField(b),
		b.Pitch,
		strconv.FormatUint(uint64(b.FrameCount), 10),
	}
	line := strings.Join(fields, "|")
	if b.Command != "" {
		line += "|" + b.Command
	}
	return line
}

func printYawField(b *FrameBulk) string {
	switch {
	case b.LeftRightCount != nil:
		return strconv.FormatUint(uint64(*b.LeftRightCount), 10)
	case b.Yaw != nil:
		return strconv.FormatFloat(float64(*b.Yaw), 'g', -1, 32)
	default:
		return "-"
	}
}

func printKeys(chars string, flags [6]bool) string {
	out := make([]byte, len(chars))
	for i := range out {
		if flags[i] {
			out[i] = chars[i]
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}
