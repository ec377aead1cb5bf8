package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteManifest writes a JSON summary of a batch run next to the outputs.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
