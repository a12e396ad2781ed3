package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strafesuite/tasedit/internal/script"
)

// checkOp applies o to input, asserts the result equals output, undoes it
// and asserts the script is restored exactly. It returns both invalidations
// for the caller to assert on.
func checkOp(t *testing.T, input string, o Operation, output string) (applyInv, undoInv Invalidation) {
	t.Helper()

	in, err := script.Parse(input)
	require.NoError(t, err)
	out, err := script.Parse(output)
	require.NoError(t, err)

	s := in.Clone()
	applyInv, err = o.Apply(s)
	require.NoError(t, err, "apply failed")
	require.Equal(t, out, s, "apply produced wrong result")

	undoInv, err = o.Undo(s)
	require.NoError(t, err, "undo failed")
	require.Equal(t, in, s, "undo produced wrong result")
	return applyInv, undoInv
}

func TestSetYaw(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|6",
		SetYaw{BulkIdx: 0, From: 10, To: 15},
		"----------|------|------|0.004|15|-|6",
	)
	assert.Equal(t, InvalidateFrom(0), applyInv)
	assert.Equal(t, InvalidateFrom(0), undoInv)
}

func TestSetYaw_SecondBulk(t *testing.T) {
	applyInv, _ := checkOp(t,
		"----------|------|------|0.004|10|-|4\n"+
			"----------|------|------|0.004|10|-|6",
		SetYaw{BulkIdx: 1, From: 10, To: 15},
		"----------|------|------|0.004|10|-|4\n"+
			"----------|------|------|0.004|15|-|6",
	)
	assert.Equal(t, InvalidateFrom(4), applyInv)
}

func TestSetFrameCount(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|6",
		SetFrameCount{BulkIdx: 0, From: 6, To: 10},
		"----------|------|------|0.004|10|-|10",
	)
	// Frames before min(from, to) are identical in both timelines.
	assert.Equal(t, InvalidateFrom(6), applyInv)
	assert.Equal(t, InvalidateFrom(6), undoInv)
}

func TestSetFrameCount_Shrink(t *testing.T) {
	applyInv, _ := checkOp(t,
		"----------|------|------|0.004|10|-|10",
		SetFrameCount{BulkIdx: 0, From: 10, To: 6},
		"----------|------|------|0.004|10|-|6",
	)
	assert.Equal(t, InvalidateFrom(6), applyInv)
}

func TestSetFrameCount_NoChange(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|6",
		SetFrameCount{BulkIdx: 0, From: 6, To: 6},
		"----------|------|------|0.004|10|-|6",
	)
	assert.True(t, applyInv.IsNone())
	assert.True(t, undoInv.IsNone())
}

func TestSetLeftRightCount(t *testing.T) {
	for _, prefix := range []string{"s06", "s07"} {
		applyInv, _ := checkOp(t,
			prefix+"-------|------|------|0.004|10|-|6",
			SetLeftRightCount{BulkIdx: 0, From: 10, To: 20},
			prefix+"-------|------|------|0.004|20|-|6",
		)
		assert.Equal(t, InvalidateFrom(0), applyInv)
	}
}

func TestSplit(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|10",
		Split{FrameIdx: 4},
		"----------|------|------|0.004|10|-|4\n"+
			"----------|------|------|0.004|10|-|6",
	)
	// Splitting re-partitions an unchanged frame sequence.
	assert.True(t, applyInv.IsNone())
	assert.True(t, undoInv.IsNone())
}

func TestSplit_MidSecondBulk(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|4\n"+
			"s06-------|f-----|------|0.004|10|-|6|echo x",
		Split{FrameIdx: 6},
		"----------|------|------|0.004|10|-|4\n"+
			"s06-------|f-----|------|0.004|10|-|2|echo x\n"+
			"s06-------|f-----|------|0.004|10|-|4|echo x",
	)
	assert.True(t, applyInv.IsNone())
	assert.True(t, undoInv.IsNone())
}

func TestDelete(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|4\n"+
			"----------|------|------|0.004|10|-|2",
		Delete{LineIdx: 0, Line: "----------|------|------|0.004|10|-|4"},
		"----------|------|------|0.004|10|-|2",
	)
	assert.Equal(t, InvalidateFrom(0), applyInv)
	assert.Equal(t, InvalidateFrom(0), undoInv)
}

func TestDelete_OpaqueLine(t *testing.T) {
	applyInv, _ := checkOp(t,
		"----------|------|------|0.004|10|-|4\n"+
			"// marker\n"+
			"----------|------|------|0.004|10|-|2",
		Delete{LineIdx: 1, Line: "// marker"},
		"----------|------|------|0.004|10|-|4\n"+
			"----------|------|------|0.004|10|-|2",
	)
	assert.Equal(t, InvalidateFrom(4), applyInv)
}

func TestInsert(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|2",
		Insert{LineIdx: 0, Line: "----------|------|------|0.004|10|-|4"},
		"----------|------|------|0.004|10|-|4\n"+
			"----------|------|------|0.004|10|-|2",
	)
	assert.Equal(t, InvalidateFrom(0), applyInv)
	assert.Equal(t, InvalidateFrom(0), undoInv)
}

func TestInsert_AtEnd(t *testing.T) {
	applyInv, _ := checkOp(t,
		"----------|------|------|0.004|10|-|2",
		Insert{LineIdx: 1, Line: "----------|------|------|0.004|10|-|4"},
		"----------|------|------|0.004|10|-|2\n"+
			"----------|------|------|0.004|10|-|4",
	)
	assert.Equal(t, InvalidateFrom(2), applyInv)
}

func TestReplace(t *testing.T) {
	applyInv, undoInv := checkOp(t,
		"----------|------|------|0.004|10|-|4",
		Replace{
			LineIdx: 0,
			From:    "----------|------|------|0.004|10|-|4",
			To:      "s03lj-----|------|------|0.001|15|10|2",
		},
		"s03lj-----|------|------|0.001|15|10|2",
	)
	assert.Equal(t, InvalidateFrom(0), applyInv)
	assert.Equal(t, InvalidateFrom(0), undoInv)
}

func TestToggleKey(t *testing.T) {
	cases := []struct {
		key    Key
		result string
	}{
		{KeyForward, "f-----|------"},
		{KeyLeft, "-l----|------"},
		{KeyRight, "--r---|------"},
		{KeyBack, "---b--|------"},
		{KeyUp, "----u-|------"},
		{KeyDown, "-----d|------"},
		{KeyJump, "------|j-----"},
		{KeyDuck, "------|-d----"},
		{KeyUse, "------|--u---"},
		{KeyAttack1, "------|---1--"},
		{KeyAttack2, "------|----2-"},
		{KeyReload, "------|-----r"},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			applyInv, undoInv := checkOp(t,
				"----------|------|------|0.004|10|-|4",
				ToggleKey{BulkIdx: 0, Key: tc.key, To: true},
				"----------|"+tc.result+"|0.004|10|-|4",
			)
			assert.Equal(t, InvalidateFrom(0), applyInv)
			assert.Equal(t, InvalidateFrom(0), undoInv)
		})
	}
}
