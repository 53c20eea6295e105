package chips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDistributionsAddUpToStack(t *testing.T) {
	t.Parallel()

	for stack, d := range DefaultDistributions() {
		assert.Equal(t, stack, d.Value(), "stack %d", stack)
	}
}

func TestDistributionsFor(t *testing.T) {
	t.Parallel()

	ds := DefaultDistributions()
	assert.Equal(t, 20000, ds.For(20000).Stack)
	assert.Equal(t, 10000, ds.For(12345).Stack, "unknown stacks use the 10000 row")

	only := Distributions{5000: ds[5000]}
	assert.Equal(t, 5000, only.For(7000).Stack)
}

func TestNextStackCycles(t *testing.T) {
	t.Parallel()

	ds := DefaultDistributions()
	assert.Equal(t, []int{5000, 10000, 15000, 20000, 25000, 30000, 50000}, ds.Stacks())
	assert.Equal(t, 15000, ds.NextStack(10000))
	assert.Equal(t, 5000, ds.NextStack(50000))
	assert.Equal(t, 5000, ds.NextStack(12345))
}

func TestPlan(t *testing.T) {
	t.Parallel()

	ds := DefaultDistributions()

	t.Run("four players with 10k stacks fit", func(t *testing.T) {
		t.Parallel()
		p := NewPlan(DefaultSet(), ds.For(10000), 4, DefaultPerColor)
		require.Len(t, p.Rows, 5)

		assert.Equal(t, 25, p.Rows[0].Denomination.Value, "rows are smallest chip first")
		assert.Equal(t, 8, p.Rows[0].PerPlayer)
		assert.Equal(t, 200, p.Rows[0].PlayerValue)
		assert.Equal(t, 32, p.Rows[0].Needed)
		assert.Equal(t, 68, p.Rows[0].Remaining)
		assert.Equal(t, StatusOK, p.Rows[0].Status)

		assert.False(t, p.Short())
		assert.Equal(t, 10000, p.PlayerValue())
		assert.Equal(t, 40000, p.InPlay())
	})

	t.Run("eleven players run low", func(t *testing.T) {
		t.Parallel()
		p := NewPlan(DefaultSet(), ds.For(10000), 10, DefaultPerColor)
		assert.Equal(t, StatusOK, p.Rows[0].Status) // 80 of 100 white used
		assert.Equal(t, 20, p.Rows[0].Remaining)
		assert.False(t, p.Short())

		p = NewPlan(DefaultSet(), ds.For(10000), 11, DefaultPerColor)
		assert.Equal(t, StatusLow, p.Rows[0].Status)
		assert.Equal(t, 12, p.Rows[0].Remaining)
	})

	t.Run("too many players are short", func(t *testing.T) {
		t.Parallel()
		p := NewPlan(DefaultSet(), ds.For(30000), 8, DefaultPerColor)
		assert.Equal(t, StatusShort, p.Rows[3].Status) // 15 blue each
		assert.Equal(t, -20, p.Rows[3].Remaining)
		assert.True(t, p.Short())
	})
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	b, err := StatusShort.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "short", string(b))
	assert.Equal(t, "Status(9)", Status(9).String())
}
