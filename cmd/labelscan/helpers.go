package labelscan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wimf/labelscan/internal/app"
	"github.com/wimf/labelscan/internal/model"
)

// resolveLabelText prefers inline flag text and falls back to reading
// the given file; "-" reads stdin. Both empty is fine: the parser
// degrades gracefully.
func resolveLabelText(inline, path string, stdin io.Reader) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path == "" {
		return "", nil
	}
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read label text from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read label text %s: %w", path, err)
	}
	return string(data), nil
}

// loadPrefs reads the preferences file named by --prefs, or the default
// config-dir location. A missing default file means "no preferences",
// not an error; an explicit --prefs path must exist.
func loadPrefs() (*model.UserPrefs, error) {
	path := prefsPath
	explicit := path != ""
	if !explicit {
		defaultPath, err := app.DefaultPrefsPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("read prefs %s: %w", path, err)
	}

	var prefs model.UserPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("decode prefs %s: %w", path, err)
	}
	return &prefs, nil
}

func printJSON(w io.Writer, out interface{}) error {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}
