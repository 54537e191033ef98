package flagcatch

// PowerUp tracks the temporary speed boost granted by special flags.
// Times are session-clock milliseconds.
type PowerUp struct {
	Active      bool
	ActivatedAt int64
	Duration    int64
}

// Activate starts (or restarts) the boost at now.
func (p *PowerUp) Activate(now int64) {
	p.Active = true
	p.ActivatedAt = now
}

// Expired reports whether an active boost has outlived its duration.
func (p *PowerUp) Expired(now int64) bool {
	return p.Active && now-p.ActivatedAt > p.Duration
}

// Remaining returns the milliseconds left, or 0 when inactive.
func (p *PowerUp) Remaining(now int64) int64 {
	if !p.Active {
		return 0
	}
	left := p.Duration - (now - p.ActivatedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Deactivate ends the boost.
func (p *PowerUp) Deactivate() {
	p.Active = false
}
