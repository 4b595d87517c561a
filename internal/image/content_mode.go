package image

import (
	"errors"
	"fmt"
	"strings"
)

type ContentMode int

const (
	ScaleToFill ContentMode = iota
	ScaleAspectFit
	ScaleAspectFill
	Center
)

var ErrUnknownContentMode = errors.New("image: unknown content mode")

var contentModeNames = map[ContentMode]string{
	ScaleToFill:     "scale_to_fill",
	ScaleAspectFit:  "scale_aspect_fit",
	ScaleAspectFill: "scale_aspect_fill",
	Center:          "center",
}

func (m ContentMode) String() string {
	if name, ok := contentModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("content_mode(%d)", int(m))
}

func (m ContentMode) Valid() bool {
	_, ok := contentModeNames[m]
	return ok
}

// ParseContentMode accepts the snake_case names returned by String,
// case-insensitively, with '-' allowed in place of '_'.
func ParseContentMode(s string) (ContentMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for mode, name := range contentModeNames {
		if name == key {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownContentMode, s)
}
