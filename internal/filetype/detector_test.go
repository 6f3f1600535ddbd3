package filetype

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/local/pdfsplit/internal/pdftest"
)

func TestDetectPDF(t *testing.T) {
    info := Detect(pdftest.MinimalPDF(1))
    assert.True(t, info.IsPDF)
    assert.Equal(t, "application/pdf", info.MIMEType)
}

func TestDetectRejectsRenamedText(t *testing.T) {
    // content decides, not the filename the client claims
    info := Detect([]byte("hello world"))
    assert.False(t, info.IsPDF)
}
