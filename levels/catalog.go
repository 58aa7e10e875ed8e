package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// Catalog resolves level indices to level files in a filesystem. Files are
// re-read on every Load so edits on disk show up on the next level start.
type Catalog struct {
	fsys fs.FS
	dir  string
}

// Embedded returns the catalog of levels compiled into the binary.
func Embedded() *Catalog {
	return &Catalog{fsys: LevelsFS}
}

// Dir returns a catalog reading level files from a directory on disk.
func Dir(path string) *Catalog {
	return &Catalog{fsys: os.DirFS(path), dir: path}
}

// Path is the directory backing the catalog, empty when embedded.
func (c *Catalog) Path() string {
	return c.dir
}

// Load reads and validates level index (1-based).
func (c *Catalog) Load(index int) (*Level, error) {
	if index < 1 {
		return nil, fmt.Errorf("levels: index %d out of range", index)
	}
	return LoadLevelFromFS(c.fsys, FileName(index))
}

// Check loads levels 1..count so broken data fails at startup instead of at
// a level transition.
func (c *Catalog) Check(count int) error {
	for i := 1; i <= count; i++ {
		if _, err := c.Load(i); err != nil {
			return err
		}
	}
	return nil
}

func FileName(index int) string {
	return fmt.Sprintf("level%d.yaml", index)
}

var levelFilePattern = regexp.MustCompile(`^level(\d+)\.ya?ml$`)

// IndexFromPath extracts the level index from a level file path.
func IndexFromPath(path string) (int, bool) {
	m := levelFilePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
