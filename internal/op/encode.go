package op

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Binary encoding of operations, v1.
//
// THIS FORMAT IS FROZEN. Encoded operations live in project databases; the
// tag values and field layouts below must never change. New variants may
// only be appended with the next free tag. A decoder that postdates an
// encoder must reproduce identical apply/undo behavior for old bytes.
//
// Layout: one tag byte followed by the variant's fields in declaration
// order. Scalars are little-endian: indices are uint64, counts uint32, yaw
// is the IEEE-754 bits of a float32 as uint32, bools are one byte (0 or 1),
// strings are a uint32 byte length followed by UTF-8 bytes.
const (
	tagSetFrameCount byte = iota
	tagSetYaw
	tagDelete
	tagSplit
	tagReplace
	tagToggleKey
	tagInsert
	tagSetLeftRightCount
)

// Encode serializes an operation to its durable binary form.
func Encode(o Operation) ([]byte, error) {
	var e encoder
	switch o := o.(type) {
	case SetFrameCount:
		e.tag(tagSetFrameCount)
		e.index(o.BulkIdx)
		e.u32(o.From)
		e.u32(o.To)
	case SetYaw:
		e.tag(tagSetYaw)
		e.index(o.BulkIdx)
		e.f32(o.From)
		e.f32(o.To)
	case Delete:
		e.tag(tagDelete)
		e.index(o.LineIdx)
		e.str(o.Line)
	case Split:
		e.tag(tagSplit)
		e.index(o.FrameIdx)
	case Replace:
		e.tag(tagReplace)
		e.index(o.LineIdx)
		e.str(o.From)
		e.str(o.To)
	case ToggleKey:
		e.tag(tagToggleKey)
		e.index(o.BulkIdx)
		e.byte(byte(o.Key))
		e.boolean(o.To)
	case Insert:
		e.tag(tagInsert)
		e.index(o.LineIdx)
		e.str(o.Line)
	case SetLeftRightCount:
		e.tag(tagSetLeftRightCount)
		e.index(o.BulkIdx)
		e.u32(o.From)
		e.u32(o.To)
	default:
		// Unreachable: Operation is sealed.
		return nil, fmt.Errorf("encode operation: unsupported type %T", o)
	}
	if e.err != nil {
		return nil, fmt.Errorf("encode operation: %w", e.err)
	}
	return e.buf, nil
}

type encoder struct {
	buf []byte
	err error
}

func (e *encoder) tag(t byte) {
	e.buf = append(e.buf, t)
}

func (e *encoder) byte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *encoder) index(i int) {
	if i < 0 {
		e.fail(fmt.Errorf("negative index %d", i))
		return
	}
	e.buf = binary.LittleEndian.AppendUint64(e.buf, uint64(i))
}

func (e *encoder) u32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) f32(v float32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(v))
}

func (e *encoder) boolean(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *encoder) str(s string) {
	if uint64(len(s)) > math.MaxUint32 {
		e.fail(fmt.Errorf("string of %d bytes exceeds format limit", len(s)))
		return
	}
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}
