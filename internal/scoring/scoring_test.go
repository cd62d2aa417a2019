package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/abhisek/shiseikan/internal/trait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	fate      = trait.Pair{trait.Fatalism, trait.FreeWill}
	spirit    = trait.Pair{trait.Spiritualism, trait.Materialism}
	stance    = trait.Pair{trait.Acceptance, trait.Resistance}
	belonging = trait.Pair{trait.Individualism, trait.Communalism}
)

func TestDeriveType_Empty(t *testing.T) {
	assert.Equal(t, trait.TypeCode("DSAI"), DeriveType(nil))
	assert.Equal(t, trait.TypeCode("DSAI"), DeriveType([]Answer{}))
}

func TestDeriveType_SingleLowAnswer(t *testing.T) {
	answers := []Answer{{Score: 1, Pair: fate}}

	acc := Accumulate(answers)
	assert.Equal(t, 4.5, acc.Get(trait.Fatalism))
	assert.Zero(t, acc.Get(trait.FreeWill))

	code := DeriveType(answers)
	assert.Equal(t, trait.Fatalism, code.Traits()[0])
	assert.Equal(t, trait.TypeCode("DSAI"), code)
}

func TestDeriveType_AllHigh(t *testing.T) {
	answers := []Answer{
		{Score: 10, Pair: fate},
		{Score: 10, Pair: spirit},
		{Score: 10, Pair: stance},
		{Score: 10, Pair: belonging},
	}
	assert.Equal(t, trait.TypeCode("WMRC"), DeriveType(answers))
}

func TestDeriveType_MidpointContributesNothing(t *testing.T) {
	answers := []Answer{{Score: Midpoint, Pair: fate}}

	acc := Accumulate(answers)
	assert.Zero(t, acc.Get(trait.Fatalism))
	assert.Zero(t, acc.Get(trait.FreeWill))
	assert.Equal(t, trait.Fatalism, DeriveType(answers).Traits()[0])
}

func TestDeriveType_NeutralZone(t *testing.T) {
	// 5 and 6 are equally far from the midpoint, so they cancel out and the
	// tie goes to the first trait.
	answers := []Answer{
		{Score: 5, Pair: stance},
		{Score: 6, Pair: stance},
	}
	acc := Accumulate(answers)
	assert.Equal(t, 0.5, acc.Get(trait.Acceptance))
	assert.Equal(t, 0.5, acc.Get(trait.Resistance))
	assert.Equal(t, trait.Acceptance, DeriveType(answers).Traits()[2])
}

func TestDeriveType_ReversedPairCreditsGivenOrder(t *testing.T) {
	// The low end measures whichever trait the question lists first.
	answers := []Answer{{Score: 2, Pair: trait.Pair{trait.Communalism, trait.Individualism}}}
	acc := Accumulate(answers)
	assert.Equal(t, 3.5, acc.Get(trait.Communalism))
	assert.Equal(t, trait.TypeCode("DSAC"), DeriveType(answers))
}

func TestDeriveType_MixedScenario(t *testing.T) {
	answers := []Answer{
		{Score: 9, Pair: fate},
		{Score: 3, Pair: fate},
		{Score: 7, Pair: spirit},
		{Score: 4, Pair: stance},
		{Score: 8, Pair: belonging},
		{Score: 1, Pair: belonging},
	}
	acc := Accumulate(answers)
	assert.Equal(t, 2.5, acc.Get(trait.Fatalism))
	assert.Equal(t, 3.5, acc.Get(trait.FreeWill))
	assert.Equal(t, 1.5, acc.Get(trait.Materialism))
	assert.Equal(t, 1.5, acc.Get(trait.Acceptance))
	assert.Equal(t, 4.5, acc.Get(trait.Individualism))
	assert.Equal(t, 2.5, acc.Get(trait.Communalism))
	assert.Equal(t, trait.TypeCode("WMAI"), DeriveType(answers))
}

func TestContributionMagnitude(t *testing.T) {
	for s := 1; s <= 10; s++ {
		score := float64(s)
		acc := Accumulate([]Answer{{Score: score, Pair: spirit}})
		want := math.Abs(score - Midpoint)
		if score < Midpoint {
			assert.Equal(t, want, acc.Get(trait.Spiritualism), "score %d", s)
			assert.Zero(t, acc.Get(trait.Materialism), "score %d", s)
		} else {
			assert.Equal(t, want, acc.Get(trait.Materialism), "score %d", s)
			assert.Zero(t, acc.Get(trait.Spiritualism), "score %d", s)
		}
	}
}

func TestDecide_TieGoesToFirst(t *testing.T) {
	var acc Accumulator
	for _, tr := range trait.All {
		acc.add(tr, 3)
	}
	assert.Equal(t, trait.TypeCode("DSAI"), Decide(acc))
}

func TestDeriveType_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pairs := trait.Pairs()

	for run := 0; run < 200; run++ {
		n := rng.Intn(30)
		answers := make([]Answer, n)
		for i := range answers {
			answers[i] = Answer{
				Score: float64(rng.Intn(10) + 1),
				Pair:  pairs[rng.Intn(len(pairs))],
			}
		}

		code := DeriveType(answers)
		require.Len(t, code, 4)
		require.True(t, code.Valid(), "code %q", code)
		for i, tr := range code.Traits() {
			assert.True(t, tr == pairs[i].Low() || tr == pairs[i].High())
		}

		assert.Equal(t, code, DeriveType(answers), "must be idempotent")
	}
}

func TestAccumulate_DoesNotMutateInput(t *testing.T) {
	answers := []Answer{{Score: 3, Pair: fate}, {Score: 8, Pair: stance}}
	before := append([]Answer(nil), answers...)
	Accumulate(answers)
	assert.Equal(t, before, answers)
}

func TestAccumulator_GetUnknown(t *testing.T) {
	acc := Accumulate([]Answer{{Score: 1, Pair: trait.Pair{'X', 'Y'}}})
	assert.Zero(t, acc.Get('X'))
	assert.Equal(t, Accumulator{}, acc)
}
