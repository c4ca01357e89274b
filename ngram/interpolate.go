package ngram

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"hangman/game"
)

var ErrInvalidWeights = errors.New("invalid interpolation weights")

// weightTolerance bounds how far the weights may drift from summing to 1.
const weightTolerance = 1e-6

// Weights maps an order (0 for the uniform zerogram, 1..n) to its
// interpolation weight.
type Weights map[int]float64

func (w Weights) Clone() Weights {
	c := make(Weights, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}

func (w Weights) Sum() float64 {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	return sum
}

// Validate checks the weights against a model of the given order.
func (w Weights) Validate(order int) error {
	for k, v := range w {
		if k < 0 || k > order {
			return fmt.Errorf("%w: order %d outside 0..%d", ErrInvalidWeights, k, order)
		}
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: order %d has weight %v", ErrInvalidWeights, k, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidWeights, sum)
	}
	return nil
}

// DegenerateModelError reports a letter whose interpolated probability is
// zero. It happens only when the zerogram weight is zero and every higher
// order is unseen or has no count for the letter.
type DegenerateModelError struct {
	Letter  rune
	Context string
}

func (e *DegenerateModelError) Error() string {
	return fmt.Sprintf("zero probability for %q after context %s: zerogram weight must be positive", e.Letter, e.Context)
}

// Interpolator scores letters by blending orders n..1 of a Model with a
// uniform zerogram. It never mutates its configured weights, so one
// Interpolator may serve any number of goroutines.
type Interpolator struct {
	model   *Model
	order   int
	weights [MaxOrder + 1]float64
	vocab   int
}

func NewInterpolator(model *Model, order int, weights Weights) (*Interpolator, error) {
	if order < 1 || order > model.MaxOrder() {
		return nil, fmt.Errorf("%w: %d (model has orders 1..%d)", ErrInvalidOrder, order, model.MaxOrder())
	}
	if err := weights.Validate(order); err != nil {
		return nil, err
	}
	ip := &Interpolator{model: model, order: order, vocab: game.AlphabetSize}
	for k, v := range weights {
		ip.weights[k] = v
	}
	return ip, nil
}

func (ip *Interpolator) Order() int { return ip.order }

// Weights returns a copy of the configured weights.
func (ip *Interpolator) Weights() Weights {
	w := make(Weights, ip.order+1)
	for k := 0; k <= ip.order; k++ {
		w[k] = ip.weights[k]
	}
	return w
}

// OrderTerm describes how one order took part in a probability.
type OrderTerm struct {
	Order        int
	Context      []rune
	Weight       float64 // weight held when the order was scored, cascaded weight included
	Seen         bool
	Count        int
	Total        int
	Contribution float64
}

// Breakdown is the full interpolation of one letter. Orders run from the
// highest down to 1.
type Breakdown struct {
	Letter         rune
	Orders         []OrderTerm
	ZerogramWeight float64
	Zerogram       float64
	Probability    float64
}

// LogProb returns the natural log of the interpolated probability of letter
// following ctx.
func (ip *Interpolator) LogProb(letter rune, ctx []rune) (float64, error) {
	p := ip.interpolate(letter, ctx, nil)
	if p <= 0 {
		return 0, &DegenerateModelError{Letter: letter, Context: FormatContext(ctx)}
	}
	return math.Log(p), nil
}

// Explain performs the same computation as LogProb and reports each step.
func (ip *Interpolator) Explain(letter rune, ctx []rune) Breakdown {
	b := &Breakdown{Letter: letter, Orders: make([]OrderTerm, 0, ip.order)}
	b.Probability = ip.interpolate(letter, ctx, b)
	return *b
}

// interpolate scores orders from n down to 1 on a working copy of the
// weights. An order whose context was never observed contributes nothing and
// hands its weight to the next lower order. Whatever reaches order 0 is
// spread uniformly over the alphabet.
func (ip *Interpolator) interpolate(letter rune, ctx []rune, b *Breakdown) float64 {
	w := ip.weights
	p := 0.0
	for k := ip.order; k >= 1; k-- {
		var sub []rune
		seen := false
		count, total := 0, 0
		if len(ctx) >= k-1 {
			sub = ctx[len(ctx)-(k-1):]
			t := ip.model.Table(k)
			total = t.Total(sub)
			if total > 0 {
				seen = true
				count = t.Count(sub, letter)
			}
		}

		contribution := 0.0
		if seen {
			contribution = w[k] * float64(count) / float64(total)
			p += contribution
		}
		if b != nil {
			b.Orders = append(b.Orders, OrderTerm{
				Order:        k,
				Context:      slices.Clone(sub),
				Weight:       w[k],
				Seen:         seen,
				Count:        count,
				Total:        total,
				Contribution: contribution,
			})
		}
		if !seen {
			w[k-1] += w[k]
			w[k] = 0
		}
	}

	zerogram := w[0] / float64(ip.vocab)
	p += zerogram
	if b != nil {
		b.ZerogramWeight = w[0]
		b.Zerogram = zerogram
	}
	return p
}
