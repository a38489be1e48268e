package topics

import (
	"math/rand/v2"
	"time"
)

// Spin animation timing for the topic picker.
const (
	SpinInterval = 50 * time.Millisecond
	SpinDuration = 1800 * time.Millisecond
	SpinFrames   = int(SpinDuration / SpinInterval)
)

// Spin is the outcome of one spin: the indexes flashed during the animation
// and the index it lands on.
type Spin struct {
	Frames []int
	Final  int
}

// Spinner picks topics at random.
type Spinner struct {
	topics []Topic
	rnd    *rand.Rand
}

// NewSpinner returns a Spinner over list. A nil src seeds from the runtime.
func NewSpinner(list []Topic, src rand.Source) *Spinner {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Spinner{topics: list, rnd: rand.New(src)}
}

// Len returns the number of topics on the wheel.
func (s *Spinner) Len() int {
	return len(s.topics)
}

// Topic returns the topic at index i.
func (s *Spinner) Topic(i int) Topic {
	return s.topics[i]
}

// Spin draws SpinFrames intermediate indexes and a final one.
func (s *Spinner) Spin() (Spin, error) {
	if len(s.topics) == 0 {
		return Spin{}, ErrNoTopics
	}
	frames := make([]int, SpinFrames)
	for i := range frames {
		frames[i] = s.rnd.IntN(len(s.topics))
	}
	return Spin{Frames: frames, Final: s.rnd.IntN(len(s.topics))}, nil
}

// Pick returns one random topic.
func (s *Spinner) Pick() (Topic, error) {
	if len(s.topics) == 0 {
		return Topic{}, ErrNoTopics
	}
	return s.topics[s.rnd.IntN(len(s.topics))], nil
}
