// Package scaffold creates an initial genfs project in a directory.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tarun-Mittal-cell/genfs/internal/ux"
)

var configTemplate = `name: my-site

# Bytes per read when streaming raw text. Zero uses the built-in default.
chunk-size: 0

# Completed sessions are written here, one file per entry plus manifest.json.
export-dir: generated

# quiet, error, info, debug
log-level: error

# Print highlighted file contents after a run completes.
preview: false

source:
  # Default backend endpoint for 'genfs run' with no input file.
  url: ""
  # text (raw bytes) or sse (event stream)
  format: text
`

var transcriptTemplate = "Here is a small example app.\n\n" +
	"```jsx\n" +
	"function App() {\n" +
	"  return <div className=\"app\">Hello from genfs</div>;\n" +
	"}\n" +
	"```\n\n" +
	"And its stylesheet:\n\n" +
	"```css\n" +
	".app { color: rebeccapurple; }\n" +
	"```\n"

// Init writes genfs.yaml and an example transcript into targetDir.
// Existing files are left alone.
func Init(targetDir string) error {
	wrote := false

	configPath := filepath.Join(targetDir, "genfs.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
			return fmt.Errorf("writing genfs.yaml: %w", err)
		}
		fmt.Printf("%s✓%s created genfs.yaml\n", ux.Green, ux.Reset)
		wrote = true
	}

	transcriptPath := filepath.Join(targetDir, "example-transcript.md")
	if _, err := os.Stat(transcriptPath); os.IsNotExist(err) {
		if err := os.WriteFile(transcriptPath, []byte(transcriptTemplate), 0644); err != nil {
			return fmt.Errorf("writing example transcript: %w", err)
		}
		fmt.Printf("%s✓%s created example-transcript.md\n", ux.Green, ux.Reset)
		wrote = true
	}

	if !wrote {
		fmt.Println("Nothing to do — genfs.yaml and example-transcript.md already exist.")
		return nil
	}

	fmt.Printf("\nTry:  %sgenfs run example-transcript.md --live%s\n", ux.Bold, ux.Reset)
	return nil
}
