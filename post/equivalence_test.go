package post

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepresentationsAgree evolves the packed and naive representations in
// lockstep from pseudo-random initial strings and requires identical content
// and halt behavior at every step.
func TestRepresentationsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 25; trial++ {
		compressed := make([]bool, rng.Intn(30))
		for i := range compressed {
			compressed[i] = rng.Intn(2) == 1
		}

		packed := NewBitString(compressed)
		naive := NewBoolList(compressed)
		require.Equal(t, naive.List(), packed.List(), "trial %d: construction differs", trial)

		for step := 0; step < 200; step++ {
			cp, cn := packed.Evolve(), naive.Evolve()
			require.Equal(t, cn, cp, "trial %d step %d: halt behavior differs", trial, step)
			if !cp {
				break
			}
			require.Equal(t, naive.Length(), packed.Length(), "trial %d step %d", trial, step)
			require.Equal(t, naive.List(), packed.List(), "trial %d step %d", trial, step)
		}
		assert.True(t, Equal(packed, naive), "trial %d: final states differ", trial)
	}
}

// TestBatchingTransparency checks that EvolveN on the packed representation
// is indistinguishable from repeated single steps, for step counts on both
// sides of the batching threshold.
func TestBatchingTransparency(t *testing.T) {
	compressed := make([]bool, 20)
	for i := range compressed {
		compressed[i] = i%3 != 1
	}

	for _, n := range []int{0, 1, 10, 11, 12, 32, 33, 34, 100, 1000} {
		batched := NewBitString(compressed)
		single := NewBitString(compressed)

		gotSteps, gotHalted := EvolveN(batched, n)

		steps, halted := 0, false
		for steps < n {
			if !single.Evolve() {
				halted = true
				break
			}
			steps++
		}

		require.Equal(t, steps, gotSteps, "n=%d: step count differs", n)
		require.Equal(t, halted, gotHalted, "n=%d: halt behavior differs", n)
		require.Equal(t, single.List(), batched.List(), "n=%d: content differs", n)
		assert.True(t, Equal(single, batched), "n=%d", n)
	}
}

// TestEvolveNHaltStep pins the exact halt step count. An initial string of k
// compressed zeros shrinks by one symbol per step and halts at length 2,
// after exactly 3k-2 steps, whichever mix of batched and single steps the
// driver chooses.
func TestEvolveNHaltStep(t *testing.T) {
	for k := 1; k <= 40; k++ {
		compressed := make([]bool, k)

		for _, impl := range implementations {
			s := impl.new(compressed)
			steps, halted := EvolveN(s, 1000)
			require.True(t, halted, "%s k=%d", impl.name, k)
			require.Equal(t, 3*k-2, steps, "%s k=%d: halt step differs", impl.name, k)
			require.Equal(t, 2, s.Length(), "%s k=%d", impl.name, k)
		}
	}
}

// TestEqualMatchesLists checks the equality contract against materialized
// lists across states produced by differing append/delete histories.
func TestEqualMatchesLists(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	states := make([]*BitString, 0, 40)
	for trial := 0; trial < 10; trial++ {
		compressed := make([]bool, 4+rng.Intn(12))
		for i := range compressed {
			compressed[i] = rng.Intn(2) == 1
		}
		s := NewBitString(compressed)
		for i := 0; i < 4; i++ {
			states = append(states, s.Clone().(*BitString))
			EvolveN(s, 1+rng.Intn(40))
		}
	}

	for i, x := range states {
		for j, y := range states {
			want := equalBools(x.List(), y.List())
			assert.Equal(t, want, x.Equal(y), "states %d and %d", i, j)
			assert.Equal(t, want, Equal(x, y), "states %d and %d (via Equal)", i, j)
		}
	}
}
