package logs

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// MaxRawLength is how much of an unstructured line is kept for display.
const MaxRawLength = 100

// Minecraft lines look like "[12:00:01] [Server thread/INFO]: message".
var metadataPrefix = regexp.MustCompile(`\[.*?\]\s*\[.*?\]:\s*(.+)`)

var noisePatterns = []string{
	"Can't keep up",
	"Running",
	"UUID of player",
	"Loading properties",
	"Preparing spawn area",
}

// NoisePatterns returns a copy of the substrings that mark a game log line as noise.
func NoisePatterns() []string {
	return append([]string(nil), noisePatterns...)
}

// Classify turns a raw log line into display text. The second return value
// is false when the line is suppressed.
func Classify(raw string, structured bool) (string, bool) {
	if !structured {
		return classifyRaw(raw)
	}
	return classifyGameLine(raw)
}

func classifyRaw(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return "", false
	}

	runes := []rune(line)
	if len(runes) > MaxRawLength {
		runes = runes[len(runes)-MaxRawLength:]
	}
	return string(runes), true
}

func classifyGameLine(raw string) (string, bool) {
	match := metadataPrefix.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}

	clean := match[1]
	if isNoise(clean) {
		return "", false
	}
	return clean, true
}

func isNoise(line string) bool {
	return lo.ContainsBy(noisePatterns, func(pattern string) bool {
		return strings.Contains(line, pattern)
	})
}
