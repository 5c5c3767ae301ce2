package tick

import "time"

// Task is a cooperative unit of work stepped between ticks.
// Step must not block; it returns true once the task is finished.
type Task interface {
	Step(now time.Time) (done bool)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(now time.Time) bool

// Step calls f(now).
func (f TaskFunc) Step(now time.Time) bool {
	return f(now)
}

// Delayed runs fn once, on the first step at or after at.
func Delayed(at time.Time, fn func(now time.Time)) Task {
	return TaskFunc(func(now time.Time) bool {
		if now.Before(at) {
			return false
		}
		fn(now)
		return true
	})
}
