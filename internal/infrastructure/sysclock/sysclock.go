package sysclock

import "time"

// Clock is the wall-clock implementation of domain.Clock.
type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now()
}
