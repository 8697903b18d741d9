package report

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RelativeLogPath returns target expressed relative to base, using forward
// slashes so the result is usable as an HTML link. Relative links keep the
// report working when the results directory is copied or moved.
//
// target must be a true descendant of base; anything else is an error rather
// than a silently truncated path.
func RelativeLogPath(base, target string) (string, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolve base dir %s: %w", base, err)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve target dir %s: %w", target, err)
	}

	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", fmt.Errorf("relativize %s against %s: %w", target, base, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside %s", target, base)
	}
	return filepath.ToSlash(rel), nil
}
