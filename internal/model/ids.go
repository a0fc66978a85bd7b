package model

import "time"

// IDSource hands out todo IDs.
//
// IDs are wall-clock milliseconds, which keeps them compatible with slots
// written by earlier versions, but each one is strictly greater than the
// last: two adds in the same millisecond, or after the clock stepped back,
// still get distinct IDs.
type IDSource struct {
	now  func() time.Time
	last int64
}

// NewIDSource returns a source driven by now. A nil now uses time.Now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Observe raises the floor so future IDs are greater than id.
func (s *IDSource) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

// Next returns a fresh ID.
func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
