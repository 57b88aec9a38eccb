// Package presence approximates who is online from join and leave log events.
//
// The result is only as good as the log window it is computed from: a player
// who joined before the window started is not counted.
package presence

import (
	"sort"

	"github.com/gamemon/gamemon/internal/logs"
	"github.com/samber/lo"
)

// DefaultWindow is the number of trailing log lines scanned for presence events.
const DefaultWindow = 50

type OnlineSet struct {
	players map[string]struct{}
}

func NewOnlineSet() *OnlineSet {
	return &OnlineSet{players: make(map[string]struct{})}
}

func (s *OnlineSet) Add(player string) {
	s.players[player] = struct{}{}
}

// Remove is a no-op for players that are not in the set.
func (s *OnlineSet) Remove(player string) {
	delete(s.players, player)
}

func (s *OnlineSet) Contains(player string) bool {
	_, ok := s.players[player]
	return ok
}

func (s *OnlineSet) Len() int {
	return len(s.players)
}

// Players returns the members in name order.
func (s *OnlineSet) Players() []string {
	players := lo.Keys(s.players)
	sort.Strings(players)
	return players
}

// Apply folds a single event into the set.
func (s *OnlineSet) Apply(event logs.Event) {
	switch event.Kind {
	case logs.Join:
		s.Add(event.Player)
	case logs.Leave:
		s.Remove(event.Player)
	}
}

// Compute folds events left to right into a fresh set.
func Compute(events []logs.Event) *OnlineSet {
	set := NewOnlineSet()
	for _, event := range events {
		set.Apply(event)
	}
	return set
}

// FromLines extracts events from a log window and computes the online set.
func FromLines(lines []string) *OnlineSet {
	return Compute(logs.ExtractEvents(lines))
}
