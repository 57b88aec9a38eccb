package logs

import (
	"regexp"
	"strconv"

	"github.com/samber/lo"
)

type EventKind string

const (
	Join       EventKind = "join"
	Leave      EventKind = "leave"
	Chat       EventKind = "chat"
	Ready      EventKind = "ready"
	PlayerList EventKind = "player_list"
)

// Event is something a game server announced in its log.
type Event struct {
	Kind    EventKind `json:"kind"`
	Player  string    `json:"player,omitempty"`
	Message string    `json:"message,omitempty"`
	Online  int       `json:"online,omitempty"`
	Max     int       `json:"max,omitempty"`
}

// Player names match any Unicode letter or digit, not just ASCII word characters.
var (
	joinPattern       = regexp.MustCompile(`([\p{L}\p{N}_]+)\s+joined the game`)
	leavePattern      = regexp.MustCompile(`([\p{L}\p{N}_]+)\s+left the game`)
	chatPattern       = regexp.MustCompile(`<([\p{L}\p{N}_]+)>\s+(.+)`)
	readyPattern      = regexp.MustCompile(`Done \([\d.]+s\)!`)
	playerListPattern = regexp.MustCompile(`There are (\d+) of a max of (\d+) players online`)
)

// ParseEvent matches a single line against the known event patterns.
// Join and leave take precedence; a line yields at most one event.
func ParseEvent(line string) (Event, bool) {
	if m := joinPattern.FindStringSubmatch(line); m != nil {
		return Event{Kind: Join, Player: m[1]}, true
	}
	if m := leavePattern.FindStringSubmatch(line); m != nil {
		return Event{Kind: Leave, Player: m[1]}, true
	}
	if m := playerListPattern.FindStringSubmatch(line); m != nil {
		online, err := strconv.Atoi(m[1])
		if err != nil {
			return Event{}, false
		}
		capacity, err := strconv.Atoi(m[2])
		if err != nil {
			return Event{}, false
		}
		return Event{Kind: PlayerList, Online: online, Max: capacity}, true
	}
	if readyPattern.MatchString(line) {
		return Event{Kind: Ready}, true
	}
	if m := chatPattern.FindStringSubmatch(line); m != nil {
		return Event{Kind: Chat, Player: m[1], Message: m[2]}, true
	}
	return Event{}, false
}

// ExtractEvents scans lines oldest to newest and returns their events in the same order.
func ExtractEvents(lines []string) []Event {
	return lo.FilterMap(lines, func(line string, _ int) (Event, bool) {
		return ParseEvent(line)
	})
}
