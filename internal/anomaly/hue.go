package anomaly

import (
	"fmt"
	"strings"
)

// Hue is a coarse dominant-channel category used to filter candidates.
type Hue int

const (
	Yellow Hue = iota
	Red
	Green
	Blue
)

var hueNames = map[Hue]string{
	Yellow: "yellow",
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
}

// Hues lists every category in declaration order.
func Hues() []Hue {
	return []Hue{Yellow, Red, Green, Blue}
}

// ParseHue maps a case-insensitive name to its Hue.
func ParseHue(name string) (Hue, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for h, n := range hueNames {
		if n == key {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown hue %q: expected yellow, red, green or blue", name)
}

func (h Hue) String() string {
	if n, ok := hueNames[h]; ok {
		return n
	}
	return fmt.Sprintf("Hue(%d)", int(h))
}

// MarshalText lets a Hue travel as its name in JSON.
func (h Hue) MarshalText() ([]byte, error) {
	if _, ok := hueNames[h]; !ok {
		return nil, fmt.Errorf("invalid hue %d", int(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText parses a hue name.
func (h *Hue) UnmarshalText(text []byte) error {
	parsed, err := ParseHue(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Matches reports whether a pixel satisfies the hue's strict per-channel
// dominance rule. Equal channels never dominate, so r == g > b is neither
// red nor yellow.
func (h Hue) Matches(r, g, b uint8) bool {
	switch h {
	case Yellow:
		return r > g && g > b
	case Red:
		return r > g && r > b
	case Green:
		return g > r && g > b
	case Blue:
		return b > r && b > g
	}
	return false
}
