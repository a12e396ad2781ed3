package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame bulk lines have the shape
//
//	autoactions|movekeys|actionkeys|frametime|yawfield|pitch|framecount[|command]
//
// where autoactions is a fixed 10 character flags field, movekeys is the 6
// character flrbud field and actionkeys the 6 character jdu12r field. The
// yaw field holds a left-right count instead of a yaw when the auto-actions
// select left-right strafing (dir digit 6 or 7); "-" means absent.

const (
	autoActionsLen = 10
	movementChars  = "flrbud"
	actionChars    = "jdu12r"
	bulkFieldCount = 7
)

// Parse parses a whole script. Every line that does not have the frame bulk
// shape is preserved verbatim as an opaque line. A line that has the bulk
// shape but is malformed is an error.
func Parse(text string) (*Script, error) {
	s := &Script{}
	raw := strings.Split(text, "\n")
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}
	for i, r := range raw {
		line, err := ParseLine(strings.TrimSuffix(r, "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		s.Lines = append(s.Lines, line)
	}
	return s, nil
}

// ParseLine parses a single line of script text.
func ParseLine(text string) (Line, error) {
	fields := strings.Split(text, "|")
	if len(fields) < bulkFieldCount || len(fields[0]) != autoActionsLen {
		return Line{Raw: text}, nil
	}

	b := &FrameBulk{
		AutoActions: fields[0],
		FrameTime:   fields[3],
		Pitch:       fields[5],
	}
	if b.FrameTime == "" {
		return Line{}, fmt.Errorf("empty frame time in %q", text)
	}

	if err := parseKeys(fields[1], movementChars, func(i int, set bool) {
		switch i {
		case 0:
			b.MovementKeys.Forward = set
		case 1:
			b.MovementKeys.Left = set
		case 2:
			b.MovementKeys.Right = set
		case 3:
			b.MovementKeys.Back = set
		case 4:
			b.MovementKeys.Up = set
		case 5:
			b.MovementKeys.Down = set
		}
	}); err != nil {
		return Line{}, fmt.Errorf("movement keys in %q: %w", text, err)
	}
	if err := parseKeys(fields[2], actionChars, func(i int, set bool) {
		switch i {
		case 0:
			b.ActionKeys.Jump = set
		case 1:
			b.ActionKeys.Duck = set
		case 2:
			b.ActionKeys.Use = set
		case 3:
			b.ActionKeys.Attack1 = set
		case 4:
			b.ActionKeys.Attack2 = set
		case 5:
			b.ActionKeys.Reload = set
		}
	}); err != nil {
		return Line{}, fmt.Errorf("action keys in %q: %w", text, err)
	}

	if err := parseYawField(fields[4], b); err != nil {
		return Line{}, fmt.Errorf("yaw field in %q: %w", text, err)
	}

	count, err := strconv.ParseUint(fields[6], 10, 32)
	if err != nil || count == 0 {
		return Line{}, fmt.Errorf("invalid frame count %q in %q", fields[6], text)
	}
	b.FrameCount = uint32(count)

	if len(fields) > bulkFieldCount {
		// A command may itself contain pipes; everything after the frame
		// count belongs to it.
		b.Command = strings.Join(fields[bulkFieldCount:], "|")
	}

	return Line{Bulk: b}, nil
}

// leftRight reports whether the auto-actions field selects left-right
// strafing, in which case the yaw field carries a count.
func leftRight(autoActions string) bool {
	if len(autoActions) < 3 || autoActions[0] != 's' {
		return false
	}
	return autoActions[2] == '6' || autoActions[2] == '7'
}

func parseYawField(field string, b *FrameBulk) error {
	if leftRight(b.AutoActions) {
		count, err := strconv.ParseUint(field, 10, 32)
		if err != nil || count == 0 {
			return fmt.Errorf("left-right strafing needs a positive count, got %q", field)
		}
		c := uint32(count)
		b.LeftRightCount = &c
		return nil
	}
	if field == "-" {
		return nil
	}
	yaw, err := strconv.ParseFloat(field, 32)
	if err != nil {
		return fmt.Errorf("invalid yaw %q", field)
	}
	y := float32(yaw)
	b.Yaw = &y
	return nil
}

// parseKeys decodes a fixed-width key flags field: position i is either '-'
// or the designated character chars[i].
func parseKeys(field, chars string, set func(i int, set bool)) error {
	if len(field) != len(chars) {
		return fmt.Errorf("want %d characters, got %q", len(chars), field)
	}
	for i := 0; i < len(chars); i++ {
		switch field[i] {
		case '-':
			set(i, false)
		case chars[i]:
			set(i, true)
		default:
			return fmt.Errorf("unexpected character %q at position %d", field[i], i)
		}
	}
	return nil
}
