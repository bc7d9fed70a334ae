package clock

import "time"

// Clock は現在時刻を提供する。テストでは固定時刻に差し替える
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem は time.Now を使うClockを返す
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed は常に同じ時刻を返すClockを返す
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
