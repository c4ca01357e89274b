package ngram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestInterpolator(t *testing.T, words []string, order int, weights Weights) *Interpolator {
	t.Helper()
	m, err := NewModel(words, order)
	require.NoError(t, err)
	ip, err := NewInterpolator(m, order, weights)
	require.NoError(t, err)
	return ip
}

func TestInterpolatorLogProb(t *testing.T) {
	weights := Weights{0: 0.01, 1: 0.01, 2: 0.98}

	t.Run("blends every seen order with the zerogram", func(t *testing.T) {
		ip := newTestInterpolator(t, catsCatBat, 2, weights)

		got, err := ip.LogProb('c', []rune{StartSentinel(1)})
		require.NoError(t, err)

		expected := 0.98*2.0/3.0 + 0.01*2.0/10.0 + 0.01/26.0
		require.InDelta(t, math.Log(expected), got, 1e-12)
	})

	t.Run("an unseen context hands its weight to the next order", func(t *testing.T) {
		ip := newTestInterpolator(t, catsCatBat, 2, weights)

		got, err := ip.LogProb('a', []rune{'q'})
		require.NoError(t, err)

		expected := (0.01+0.98)*3.0/10.0 + 0.01/26.0
		require.InDelta(t, math.Log(expected), got, 1e-12)
	})

	t.Run("a context shorter than the order needs counts as unseen", func(t *testing.T) {
		ip := newTestInterpolator(t, catsCatBat, 2, weights)

		short, err := ip.LogProb('a', nil)
		require.NoError(t, err)
		unseen, err := ip.LogProb('a', []rune{'q'})
		require.NoError(t, err)
		require.InDelta(t, unseen, short, 1e-12)
	})

	t.Run("an empty corpus falls back to the uniform zerogram", func(t *testing.T) {
		ip := newTestInterpolator(t, nil, 3, Weights{0: 0.1, 1: 0.2, 2: 0.3, 3: 0.4})

		got, err := ip.LogProb('e', []rune("ab"))
		require.NoError(t, err)
		require.InDelta(t, math.Log(1.0/26.0), got, 1e-12)
	})

	t.Run("a zero zerogram weight with no evidence is degenerate", func(t *testing.T) {
		ip := newTestInterpolator(t, catsCatBat, 2, Weights{0: 0, 1: 0.5, 2: 0.5})

		_, err := ip.LogProb('z', []rune{StartSentinel(1)})
		var degenerate *DegenerateModelError
		require.ErrorAs(t, err, &degenerate)
		require.Equal(t, 'z', degenerate.Letter)
	})

	t.Run("the configured weights are never mutated", func(t *testing.T) {
		caller := Weights{0: 0.05, 1: 0.15, 2: 0.3, 3: 0.5}
		original := caller.Clone()
		ip := newTestInterpolator(t, catsCatBat, 3, caller)

		for i := 0; i < 50; i++ {
			_, err := ip.LogProb('a', []rune("qq"))
			require.NoError(t, err)
		}

		require.Equal(t, original, caller)
		require.Equal(t, original, ip.Weights())

		exposed := ip.Weights()
		exposed[3] = 0
		require.Equal(t, original, ip.Weights(), "returned weights should be a copy")
	})
}

func TestInterpolatorExplain(t *testing.T) {
	t.Run("cascaded weight is conserved across all orders", func(t *testing.T) {
		weights := Weights{0: 0.01, 1: 0.04, 2: 0.1, 3: 0.2, 4: 0.25, 5: 0.4}
		ip := newTestInterpolator(t, []string{"banana", "bandana", "cabana"}, 5, weights)

		contexts := [][]rune{
			nil,
			{'x', 'y', 'z', 'q'},
			{StartSentinel(4), StartSentinel(3), StartSentinel(2), StartSentinel(1)},
			{'b', 'a', 'n', 'a'},
			{'a', 'n'},
		}
		for _, ctx := range contexts {
			b := ip.Explain('a', ctx)
			accounted := b.ZerogramWeight
			for _, term := range b.Orders {
				if term.Seen {
					accounted += term.Weight
				}
			}
			require.InDelta(t, weights.Sum(), accounted, 1e-12, "context %s", FormatContext(ctx))
			require.Len(t, b.Orders, 5)
			require.Equal(t, 5, b.Orders[0].Order)

			lp, err := ip.LogProb('a', ctx)
			require.NoError(t, err)
			require.InDelta(t, math.Log(b.Probability), lp, 1e-12)
		}
	})

	t.Run("an unseen order contributes nothing and passes its weight down", func(t *testing.T) {
		ip := newTestInterpolator(t, catsCatBat, 2, Weights{0: 0.01, 1: 0.01, 2: 0.98})

		b := ip.Explain('a', []rune{'q'})
		require.False(t, b.Orders[0].Seen)
		require.Zero(t, b.Orders[0].Contribution)
		require.True(t, b.Orders[1].Seen)
		require.InDelta(t, 0.99, b.Orders[1].Weight, 1e-12)
		require.InDelta(t, 0.01, b.ZerogramWeight, 1e-12)
	})
}

func TestWeightsValidate(t *testing.T) {
	testCases := []struct {
		desc    string
		weights Weights
		order   int
		valid   bool
	}{
		{"sums to one", Weights{0: 0.1, 1: 0.9}, 1, true},
		{"missing orders count as zero", Weights{0: 0.5, 3: 0.5}, 3, true},
		{"does not sum to one", Weights{0: 0.1, 1: 0.8}, 1, false},
		{"negative weight", Weights{0: -0.1, 1: 1.1}, 1, false},
		{"order above the model", Weights{0: 0.5, 3: 0.5}, 2, false},
	}

	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			err := tt.weights.Validate(tt.order)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidWeights)
			}
		})
	}
}

func TestNewInterpolator(t *testing.T) {
	m, err := NewModel(catsCatBat, 2)
	require.NoError(t, err)

	_, err = NewInterpolator(m, 3, Weights{0: 0.5, 3: 0.5})
	require.ErrorIs(t, err, ErrInvalidOrder, "order above the model's tables")

	_, err = NewInterpolator(m, 2, Weights{0: 0.5})
	require.ErrorIs(t, err, ErrInvalidWeights)
}
