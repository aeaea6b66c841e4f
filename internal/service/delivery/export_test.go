package delivery

import "time"

// SetClock overrides the time source.
func (s *Service) SetClock(now func() time.Time) { s.now = now }
