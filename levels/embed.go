// Package levels embeds the built-in level data. Levels are plain JSON,
// ordered by difficulty; the session layer parses them via obj.LoadLevel.
package levels

import (
	"embed"
	"fmt"
)

//go:embed *.json
var levelsFS embed.FS

// names is the play order.
var names = []string{
	"level1.json",
	"level2.json",
	"level3.json",
}

// Count returns how many built-in levels exist.
func Count() int {
	return len(names)
}

// Data returns the raw JSON for level index i (zero-based, in play order).
func Data(i int) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("levels: index %d out of range [0,%d)", i, len(names))
	}
	b, err := levelsFS.ReadFile(names[i])
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", names[i], err)
	}
	return b, nil
}
