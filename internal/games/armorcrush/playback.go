package armorcrush

import (
	"time"

	"github.com/L0weN/ArmorCrush/internal/match3"
)

// playback releases board emissions one at a time, holding each for its
// pacing delay measured in simulation ticks.
type playback struct {
	pending []match3.Emission
	wait    int
}

func (p *playback) push(ems []match3.Emission) {
	p.pending = append(p.pending, ems...)
}

// busy returns true while events are queued or the last one is still showing.
func (p *playback) busy() bool {
	return len(p.pending) > 0 || p.wait > 0
}

// step advances one tick. Zero-delay events are released together with
// the next delayed one.
func (p *playback) step(tickRate int, apply func(match3.Emission)) {
	if p.wait > 0 {
		p.wait--
		if p.wait > 0 {
			return
		}
	}
	for len(p.pending) > 0 {
		em := p.pending[0]
		p.pending = p.pending[1:]
		apply(em)
		if p.wait = ticksFor(em.Delay, tickRate); p.wait > 0 {
			return
		}
	}
}

// flush applies everything immediately.
func (p *playback) flush(apply func(match3.Emission)) {
	for _, em := range p.pending {
		apply(em)
	}
	p.pending = nil
	p.wait = 0
}

func ticksFor(d time.Duration, tickRate int) int {
	if d <= 0 || tickRate <= 0 {
		return 0
	}
	per := time.Second / time.Duration(tickRate)
	return int((d + per - 1) / per)
}
