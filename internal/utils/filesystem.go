package utils

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPaths returns args with every glob pattern replaced by its sorted
// matches. Arguments naming an existing file are kept literally, even if
// they contain glob characters. A pattern matching nothing is an error.
func ExpandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if _, err := os.Stat(arg); err == nil || !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, arg)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// PathExists reports whether something already exists at path.
func PathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
