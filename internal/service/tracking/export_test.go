package tracking

import "time"

// SetClock overrides the time source.
func (p *Processor) SetClock(now func() time.Time) { p.now = now }

// SetTokenGenerator overrides tracking token generation.
func (p *Processor) SetTokenGenerator(newToken func() string) { p.newToken = newToken }
