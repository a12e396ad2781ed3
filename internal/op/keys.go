package op

import "github.com/strafesuite/tasedit/internal/script"

// Key identifies one boolean key flag of a frame bulk.
//
// The numeric codes are part of the persisted encoding and are immutable
// forever; new keys may only be appended.
type Key uint8

const (
	KeyForward Key = iota
	KeyLeft
	KeyRight
	KeyBack
	KeyUp
	KeyDown

	KeyJump
	KeyDuck
	KeyUse
	KeyAttack1
	KeyAttack2
	KeyReload

	numKeys
)

// Value returns the flag's current value in the bulk.
func (k Key) Value(b *script.FrameBulk) bool {
	switch k {
	case KeyForward:
		return b.MovementKeys.Forward
	case KeyLeft:
		return b.MovementKeys.Left
	case KeyRight:
		return b.MovementKeys.Right
	case KeyBack:
		return b.MovementKeys.Back
	case KeyUp:
		return b.MovementKeys.Up
	case KeyDown:
		return b.MovementKeys.Down
	case KeyJump:
		return b.ActionKeys.Jump
	case KeyDuck:
		return b.ActionKeys.Duck
	case KeyUse:
		return b.ActionKeys.Use
	case KeyAttack1:
		return b.ActionKeys.Attack1
	case KeyAttack2:
		return b.ActionKeys.Attack2
	case KeyReload:
		return b.ActionKeys.Reload
	}
	panic("unknown key")
}

// SetValue sets the flag in the bulk.
func (k Key) SetValue(b *script.FrameBulk, v bool) {
	switch k {
	case KeyForward:
		b.MovementKeys.Forward = v
	case KeyLeft:
		b.MovementKeys.Left = v
	case KeyRight:
		b.MovementKeys.Right = v
	case KeyBack:
		b.MovementKeys.Back = v
	case KeyUp:
		b.MovementKeys.Up = v
	case KeyDown:
		b.MovementKeys.Down = v
	case KeyJump:
		b.ActionKeys.Jump = v
	case KeyDuck:
		b.ActionKeys.Duck = v
	case KeyUse:
		b.ActionKeys.Use = v
	case KeyAttack1:
		b.ActionKeys.Attack1 = v
	case KeyAttack2:
		b.ActionKeys.Attack2 = v
	case KeyReload:
		b.ActionKeys.Reload = v
	default:
		panic("unknown key")
	}
}

// Valid reports whether k is a defined key code.
func (k Key) Valid() bool {
	return k < numKeys
}

var keyNames = [numKeys]string{
	"forward", "left", "right", "back", "up", "down",
	"jump", "duck", "use", "attack1", "attack2", "reload",
}

// String implements fmt.Stringer.
func (k Key) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey converts a key name (as produced by String) back to a Key.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}
