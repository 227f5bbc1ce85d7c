// Package tween moves scalar parameters along eased curves as simulated time
// advances. The relaxation uses it to anneal the repulsion strength.
package tween

import (
	"slices"
	"time"

	"github.com/quasilyte/gmath"
)

type Tweens struct {
	tweens []Tween
}

func (t *Tweens) Add(tween Tween) {
	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, tween)
}

// Update advances every running tween by dt and drops the finished ones.
func (t *Tweens) Update(dt time.Duration) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})
}

func (t *Tweens) Running() bool {
	return len(t.tweens) > 0
}

// Target receives the eased progress in [0, 1].
type Target func(f float64)

type Tween interface {
	Update(dt time.Duration) (done bool)
}

// Simple runs Target from 0 to 1 over Duration.
type Simple struct {
	Duration time.Duration
	Target   Target
	Ease     func(t float64) float64

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		if t.Target != nil {
			t.Target(t.ease(1))
		}

		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Target != nil {
		t.Target(t.ease(f))
	}

	return t.elapsed >= t.Duration
}

func (t *Simple) ease(f float64) float64 {
	if t.Ease == nil {
		return f
	}

	return t.Ease(f)
}

func Sequence(tweens ...Tween) Tween {
	return &sequence{tweens: tweens}
}

type sequence struct {
	tweens []Tween
}

func (s *sequence) Update(dt time.Duration) bool {
	if len(s.tweens) > 0 {
		if done := s.tweens[0].Update(dt); done {
			s.tweens = s.tweens[1:]
		}
	}

	return len(s.tweens) == 0
}

// LerpValue writes the interpolation between from and to into target.
func LerpValue(target *float64, from, to float64) Target {
	return func(f float64) {
		*target = gmath.Lerp(from, to, f)
	}
}

// Delay holds still for delay before running next.
func Delay(delay time.Duration, next Tween) Tween {
	first := &Simple{Duration: delay}
	return Sequence(first, next)
}
