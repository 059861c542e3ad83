package evaluator

import "iter"

// SubsetSize is the number of cards in an evaluated poker hand.
const SubsetSize = 5

// Combinations walks every 5-element index subset of an n-element hand,
// each exactly once. It advances like an odometer over five ascending
// indices and cannot be rewound; create a new one to start over.
type Combinations struct {
	n       int
	idx     [SubsetSize]int
	started bool
	done    bool
}

// NewCombinations creates an enumerator over n items. It yields nothing
// when n < 5.
func NewCombinations(n int) *Combinations {
	return &Combinations{n: n, done: n < SubsetSize}
}

// Next returns the next subset, or false once all have been produced.
func (c *Combinations) Next() ([SubsetSize]int, bool) {
	if c.done {
		return [SubsetSize]int{}, false
	}
	if !c.started {
		c.started = true
		for i := range c.idx {
			c.idx[i] = i
		}
		return c.idx, true
	}

	// Find the rightmost index that can still move; idx[i] tops out at n-5+i.
	i := SubsetSize - 1
	for i >= 0 && c.idx[i] == c.n-SubsetSize+i {
		i--
	}
	if i < 0 {
		c.done = true
		return [SubsetSize]int{}, false
	}

	c.idx[i]++
	for j := i + 1; j < SubsetSize; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return c.idx, true
}

// Count returns C(n, 5), the number of subsets a fresh enumerator yields.
func (c *Combinations) Count() int {
	if c.n < SubsetSize {
		return 0
	}
	count := 1
	for i := 0; i < SubsetSize; i++ {
		count = count * (c.n - i) / (i + 1)
	}
	return count
}

// AllSubsets returns an iterator over every 5-element subset of n items.
func AllSubsets(n int) iter.Seq[[SubsetSize]int] {
	return func(yield func([SubsetSize]int) bool) {
		c := NewCombinations(n)
		for {
			subset, ok := c.Next()
			if !ok || !yield(subset) {
				return
			}
		}
	}
}
