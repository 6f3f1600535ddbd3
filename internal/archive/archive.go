package archive

import (
    "archive/zip"
    "bytes"
    "fmt"

    "github.com/local/pdfsplit/internal/splitter"
)

// Build bundles all split outputs into one zip, entry order matching output
// order. The whole archive is assembled in memory; there is no partial archive
// on failure.
func Build(outputs []splitter.Output) ([]byte, error) {
    var buf bytes.Buffer
    zw := zip.NewWriter(&buf)
    for _, out := range outputs {
        w, err := zw.Create(out.Filename)
        if err != nil {
            return nil, fmt.Errorf("create zip entry %s: %w", out.Filename, err)
        }
        if _, err := w.Write(out.Data); err != nil {
            return nil, fmt.Errorf("write zip entry %s: %w", out.Filename, err)
        }
    }
    if err := zw.Close(); err != nil {
        return nil, fmt.Errorf("finalize zip: %w", err)
    }
    return buf.Bytes(), nil
}
