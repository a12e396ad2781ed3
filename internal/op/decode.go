package op

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrUnknownVariant is returned by Decode for a tag this version does not
// know. Data written by a newer version stays intact: the caller sees the
// error instead of a misparse.
var ErrUnknownVariant = errors.New("unknown operation variant")

var errTruncated = errors.New("truncated data")

// Decode deserializes an operation from its durable binary form. It accepts
// bytes written by any version whose variant set is a subset of this one.
func Decode(data []byte) (Operation, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode operation: %w", errTruncated)
	}
	d := decoder{buf: data, off: 1}

	var o Operation
	switch tag := data[0]; tag {
	case tagSetFrameCount:
		o = SetFrameCount{BulkIdx: d.index(), From: d.u32(), To: d.u32()}
	case tagSetYaw:
		o = SetYaw{BulkIdx: d.index(), From: d.f32(), To: d.f32()}
	case tagDelete:
		o = Delete{LineIdx: d.index(), Line: d.str()}
	case tagSplit:
		o = Split{FrameIdx: d.index()}
	case tagReplace:
		o = Replace{LineIdx: d.index(), From: d.str(), To: d.str()}
	case tagToggleKey:
		tk := ToggleKey{BulkIdx: d.index(), Key: Key(d.byte()), To: d.boolean()}
		if d.err == nil && !tk.Key.Valid() {
			// Key codes are append-only too; a newer writer may know more.
			return nil, fmt.Errorf("decode operation: %w (key code %d)", ErrUnknownVariant, tk.Key)
		}
		o = tk
	case tagInsert:
		o = Insert{LineIdx: d.index(), Line: d.str()}
	case tagSetLeftRightCount:
		o = SetLeftRightCount{BulkIdx: d.index(), From: d.u32(), To: d.u32()}
	default:
		return nil, fmt.Errorf("decode operation: %w (tag %d)", ErrUnknownVariant, tag)
	}

	if d.err != nil {
		return nil, fmt.Errorf("decode operation (tag %d): %w", data[0], d.err)
	}
	if d.off != len(d.buf) {
		return nil, fmt.Errorf("decode operation (tag %d): %d trailing bytes", data[0], len(d.buf)-d.off)
	}
	return o, nil
}

type decoder struct {
	buf []byte
	off int
	err error
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.off+n > len(d.buf) {
		d.err = errTruncated
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) byte() byte {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *decoder) index() int {
	b := d.take(8)
	if b == nil {
		return 0
	}
	v := binary.LittleEndian.Uint64(b)
	if v > math.MaxInt {
		d.err = fmt.Errorf("index %d out of range", v)
		return 0
	}
	return int(v)
}

func (d *decoder) u32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *decoder) f32() float32 {
	return math.Float32frombits(d.u32())
}

func (d *decoder) boolean() bool {
	switch d.byte() {
	case 0:
		return false
	case 1:
		return true
	default:
		if d.err == nil {
			d.err = errors.New("invalid boolean byte")
		}
		return false
	}
}

func (d *decoder) str() string {
	n := d.u32()
	if d.err != nil {
		return ""
	}
	if uint64(n) > uint64(len(d.buf)-d.off) {
		d.err = errTruncated
		return ""
	}
	return string(d.take(int(n)))
}
