package pdftest

import (
    "bytes"
    "fmt"
)

// MinimalPDF renders a syntactically valid PDF with n empty US-Letter pages,
// suitable as a real parseable fixture for splitter and server tests. Object
// layout: 1 = catalog, 2 = page tree, 3..n+2 = pages.
func MinimalPDF(n int) []byte {
    if n < 1 { n = 1 }

    var buf bytes.Buffer
    offsets := make([]int, 0, n+2)

    buf.WriteString("%PDF-1.4\n")

    writeObj := func(body string) {
        offsets = append(offsets, buf.Len())
        buf.WriteString(body)
    }

    kids := ""
    for i := 0; i < n; i++ {
        if i > 0 { kids += " " }
        kids += fmt.Sprintf("%d 0 R", i+3)
    }

    writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
    writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", kids, n))
    for i := 0; i < n; i++ {
        writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n", i+3))
    }

    xrefPos := buf.Len()
    size := len(offsets) + 1
    buf.WriteString(fmt.Sprintf("xref\n0 %d\n", size))
    buf.WriteString("0000000000 65535 f \n")
    for _, off := range offsets {
        buf.WriteString(fmt.Sprintf("%010d %05d n \n", off, 0))
    }
    buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefPos))

    return buf.Bytes()
}
