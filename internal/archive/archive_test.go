package archive

import (
    "archive/zip"
    "bytes"
    "io"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/local/pdfsplit/internal/pages"
    "github.com/local/pdfsplit/internal/splitter"
)

func TestBuildPreservesOrderAndContent(t *testing.T) {
    outputs := []splitter.Output{
        {Filename: "doc-pages-1-3.pdf", Data: []byte("first"), Group: pages.Group{1, 2, 3}},
        {Filename: "doc-page-5.pdf", Data: []byte("second"), Group: pages.Group{5}},
    }

    data, err := Build(outputs)
    require.NoError(t, err)

    zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
    require.NoError(t, err)
    require.Len(t, zr.File, 2)

    assert.Equal(t, "doc-pages-1-3.pdf", zr.File[0].Name)
    assert.Equal(t, "doc-page-5.pdf", zr.File[1].Name)

    for i, want := range []string{"first", "second"} {
        rc, err := zr.File[i].Open()
        require.NoError(t, err)
        got, err := io.ReadAll(rc)
        require.NoError(t, err)
        rc.Close()
        assert.Equal(t, want, string(got))
    }
}

func TestBuildEmpty(t *testing.T) {
    data, err := Build(nil)
    require.NoError(t, err)

    zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
    require.NoError(t, err)
    assert.Empty(t, zr.File)
}
