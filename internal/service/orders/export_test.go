package orders

import "time"

// SetClock overrides the time source.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// SetIDGenerator overrides order id generation.
func (s *Service) SetIDGenerator(newID func() string) { s.newID = newID }
