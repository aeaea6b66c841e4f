package queue

import "time"

// SetBackoff overrides the pause after a failed receive.
func (p *Poller) SetBackoff(d time.Duration) { p.backoff = d }
