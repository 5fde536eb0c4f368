package system

import "time"

// tick decays the delay and sound timers based on the wall clock time
// elapsed since the last consumed tick. It is called once per
// instruction cycle. Only whole ticks are consumed, the fractional
// remainder stays accounted to the reference timestamp so that no decay
// is lost between cycles and zero elapsed time changes nothing.
func (s *System) tick() {
	interval := time.Second / time.Duration(s.tickRate)
	elapsed := s.now().Sub(s.lastTick)

	ticks := int64(elapsed / interval)
	if ticks <= 0 {
		return
	}

	s.delay = decrementTimer(s.delay, ticks)
	s.sound = decrementTimer(s.sound, ticks)
	s.lastTick = s.lastTick.Add(time.Duration(ticks) * interval)
}

// decrementTimer reduces a timer by the given number of ticks,
// clamping at zero instead of wrapping.
func decrementTimer(value uint8, ticks int64) uint8 {
	if ticks >= int64(value) {
		return 0
	}
	return value - uint8(ticks)
}
