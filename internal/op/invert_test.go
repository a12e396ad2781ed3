package op

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strafesuite/tasedit/internal/script"
)

// TestInvertibility_Randomized drives the global contract: for every
// operation whose apply succeeds, undo on the result restores the script
// exactly. Deterministic seed, so failures reproduce.
func TestInvertibility_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 200; round++ {
		s := randomScript(rng)
		initial := s.Clone()

		var applied []Operation
		for i := 0; i < 10; i++ {
			o, ok := randomValidOp(rng, s)
			if !ok {
				continue
			}
			_, err := o.Apply(s)
			require.NoError(t, err, "round %d: %s on\n%s", round, o, initial.Print())
			applied = append(applied, o)
		}

		for i := len(applied) - 1; i >= 0; i-- {
			_, err := applied[i].Undo(s)
			require.NoError(t, err, "round %d: undo %s", round, applied[i])
		}
		require.Equal(t, initial, s, "round %d: undoing %d operations did not restore the script", round, len(applied))
	}
}

func randomScript(rng *rand.Rand) *script.Script {
	var text string
	for i, n := 0, 1+rng.Intn(5); i < n; i++ {
		if rng.Intn(4) == 0 {
			text += fmt.Sprintf("// line %d\n", i)
		}
		text += randomBulkText(rng)
	}
	s, err := script.Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func randomBulkText(rng *rand.Rand) string {
	count := 1 + rng.Intn(10)
	switch rng.Intn(3) {
	case 0: // no yaw
		return fmt.Sprintf("----------|------|------|0.004|-|-|%d\n", count)
	case 1: // yaw
		return fmt.Sprintf("----------|------|------|0.004|%d|-|%d", rng.Intn(360), count) + "\n"
	default: // left-right
		return fmt.Sprintf("s06-------|------|------|0.004|%d|-|%d\n", 1+rng.Intn(30), count)
	}
}

// randomValidOp builds an operation whose preconditions hold on s. ok is
// false when the chosen variant has no valid target in s.
func randomValidOp(rng *rand.Rand, s *script.Script) (Operation, bool) {
	bulks := 0
	for range s.BulkFirstFrames() {
		bulks++
	}

	switch rng.Intn(8) {
	case 0:
		if bulks == 0 {
			return nil, false
		}
		idx := rng.Intn(bulks)
		bulk, _, _ := s.BulkAt(idx)
		return SetFrameCount{BulkIdx: idx, From: bulk.FrameCount, To: uint32(1 + rng.Intn(12))}, true
	case 1:
		for idx := 0; idx < bulks; idx++ {
			bulk, _, _ := s.BulkAt(idx)
			if bulk.Yaw != nil {
				return SetYaw{BulkIdx: idx, From: *bulk.Yaw, To: float32(rng.Intn(360))}, true
			}
		}
		return nil, false
	case 2:
		if len(s.Lines) < 2 {
			return nil, false
		}
		idx := rng.Intn(len(s.Lines))
		return Delete{LineIdx: idx, Line: script.PrintLine(s.Lines[idx])}, true
	case 3:
		for idx := 0; idx < bulks; idx++ {
			bulk, first, _ := s.BulkAt(idx)
			if bulk.FrameCount >= 2 {
				return Split{FrameIdx: first + 1 + rng.Intn(int(bulk.FrameCount)-1)}, true
			}
		}
		return nil, false
	case 4:
		idx := rng.Intn(len(s.Lines))
		text := randomBulkText(rng)
		return Replace{
			LineIdx: idx,
			From:    script.PrintLine(s.Lines[idx]),
			To:      text[:len(text)-1],
		}, true
	case 5:
		if bulks == 0 {
			return nil, false
		}
		idx := rng.Intn(bulks)
		bulk, _, _ := s.BulkAt(idx)
		key := Key(rng.Intn(int(numKeys)))
		return ToggleKey{BulkIdx: idx, Key: key, To: !key.Value(bulk)}, true
	case 6:
		text := randomBulkText(rng)
		return Insert{LineIdx: rng.Intn(len(s.Lines) + 1), Line: text[:len(text)-1]}, true
	default:
		for idx := 0; idx < bulks; idx++ {
			bulk, _, _ := s.BulkAt(idx)
			if bulk.LeftRightCount != nil {
				return SetLeftRightCount{BulkIdx: idx, From: *bulk.LeftRightCount, To: uint32(1 + rng.Intn(30))}, true
			}
		}
		return nil, false
	}
}
