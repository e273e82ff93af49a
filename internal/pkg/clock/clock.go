package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a constant time; for tests.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time {
	return f.T
}
