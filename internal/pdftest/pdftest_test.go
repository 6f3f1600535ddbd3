package pdftest

import (
    "bytes"
    "testing"

    "github.com/pdfcpu/pdfcpu/pkg/api"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestMinimalPDFParses(t *testing.T) {
    for _, n := range []int{1, 2, 12, 20} {
        data := MinimalPDF(n)
        require.NoError(t, api.Validate(bytes.NewReader(data), nil))
        got, err := api.PageCount(bytes.NewReader(data), nil)
        require.NoError(t, err)
        assert.Equal(t, n, got)
    }
}

func TestMinimalPDFFloorsAtOnePage(t *testing.T) {
    got, err := api.PageCount(bytes.NewReader(MinimalPDF(0)), nil)
    require.NoError(t, err)
    assert.Equal(t, 1, got)
}
