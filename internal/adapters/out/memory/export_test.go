package memory

// OutboxLen reports how many messages the committed state still holds.
func (s *Store) OutboxLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.outbox)
}
