// Package manifest persists the sample index of a dataset, once as JSON
// and once as a script that binds it to a global for the web viewer.
package manifest

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/juruen/sketchset/log"
	"github.com/juruen/sketchset/model"
)

const scriptPrefix = "const samples = "

// Writer writes a manifest to DataPath and ScriptPath, replacing both files
type Writer struct {
	DataPath   string
	ScriptPath string
}

// Encode returns the manifest as a compact JSON array
func Encode(m model.Manifest) ([]byte, error) {
	if m == nil {
		m = model.Manifest{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, errors.Wrap(err, "can't encode manifest")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeScript returns `const samples = <json>;`
func EncodeScript(m model.Manifest) ([]byte, error) {
	data, err := Encode(m)
	if err != nil {
		return nil, err
	}
	script := make([]byte, 0, len(scriptPrefix)+len(data)+1)
	script = append(script, scriptPrefix...)
	script = append(script, data...)
	script = append(script, ';')
	return script, nil
}

func (w Writer) Write(m model.Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := writeFile(w.DataPath, data); err != nil {
		return err
	}

	script, err := EncodeScript(m)
	if err != nil {
		return err
	}
	if err := writeFile(w.ScriptPath, script); err != nil {
		return err
	}

	log.Trace.Printf("manifest: %d samples written to %s and %s", len(m), w.DataPath, w.ScriptPath)
	return nil
}

func writeFile(path string, data []byte) error {
	if path == "" {
		return errors.New("missing manifest path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "can't create directory for %s", path)
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "can't write %s", path)
	}
	return nil
}
