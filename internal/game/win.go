package game

// checkCapture finishes the game for the tracker side when any active
// tracker shares the fugitive's node. Capture always discloses the
// fugitive's final position, reveal schedule notwithstanding.
func (s *State) checkCapture() bool {
	fugitive := s.Fugitive()
	for i := range s.Players {
		p := &s.Players[i]
		if p.Role == RoleTracker && !p.Inert && p.Node == fugitive.Node {
			s.Phase = PhaseFinished
			s.Winner = WinnerTrackers
			node := fugitive.Node
			s.LastDisclosed = &node
			return true
		}
	}
	return false
}

// evaluateEndgame settles the fugitive-side terminal conditions after turn
// advancement: every tracker inert, or the round counter past the limit.
func (s *State) evaluateEndgame() {
	if s.Phase != PhasePlaying {
		return
	}
	allInert := true
	for i := range s.Players {
		if s.Players[i].Role == RoleTracker && !s.Players[i].Inert {
			allInert = false
			break
		}
	}
	if allInert || s.Round > s.RoundLimit {
		s.Phase = PhaseFinished
		s.Winner = WinnerFugitive
	}
}
