package batch

import (
	"archive/zip"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Archive packs the named outputs into a single zip blob. Entries are
// written in sorted name order so the archive bytes are reproducible.
func Archive(w io.Writer, files map[string][]byte) error {
	zw := zip.NewWriter(w)
	for _, name := range slices.Sorted(maps.Keys(files)) {
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("batch: archive %s: %w", name, err)
		}
		if _, err := fw.Write(files[name]); err != nil {
			return fmt.Errorf("batch: archive %s: %w", name, err)
		}
	}
	return zw.Close()
}
