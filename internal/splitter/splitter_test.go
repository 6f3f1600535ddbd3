package splitter

import (
    "bytes"
    "testing"

    "github.com/pdfcpu/pdfcpu/pkg/api"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/local/pdfsplit/internal/pages"
    "github.com/local/pdfsplit/internal/pdftest"
)

func pageCount(t *testing.T, data []byte) int {
    t.Helper()
    n, err := api.PageCount(bytes.NewReader(data), nil)
    require.NoError(t, err)
    return n
}

func TestSplitFilenamesAndOrder(t *testing.T) {
    src := pdftest.MinimalPDF(12)
    groups := []pages.Group{{1, 2, 3}, {5, 6, 7}, {10}}

    outs, err := Split(src, groups, "report.pdf")
    require.NoError(t, err)
    require.Len(t, outs, 3)

    assert.Equal(t, "report-pages-1-3.pdf", outs[0].Filename)
    assert.Equal(t, "report-pages-5-7.pdf", outs[1].Filename)
    assert.Equal(t, "report-page-10.pdf", outs[2].Filename)

    assert.Equal(t, 3, pageCount(t, outs[0].Data))
    assert.Equal(t, 3, pageCount(t, outs[1].Data))
    assert.Equal(t, 1, pageCount(t, outs[2].Data))

    for i, g := range groups {
        assert.Equal(t, g, outs[i].Group)
        assert.Equal(t, len(outs[i].Data), outs[i].Size())
    }
}

func TestSplitPageOutOfRange(t *testing.T) {
    src := pdftest.MinimalPDF(20)

    outs, err := Split(src, []pages.Group{{1, 2, 3}, {25}}, "report.pdf")
    require.Error(t, err)
    assert.Nil(t, outs, "no partial output on invalid input")
    assert.EqualError(t, err, "Page 25 does not exist. PDF has 20 pages.")

    var pre *PageRangeError
    require.ErrorAs(t, err, &pre)
    assert.Equal(t, 25, pre.Page)
    assert.Equal(t, 20, pre.TotalPages)
}

func TestSplitValidatesBeforeProducing(t *testing.T) {
    src := pdftest.MinimalPDF(4)

    // The out-of-range index sits in the last group; validation must still
    // reject the whole request up front.
    outs, err := Split(src, []pages.Group{{1}, {2, 3}, {5}}, "doc.pdf")
    require.Error(t, err)
    assert.Nil(t, outs)
    assert.EqualError(t, err, "Page 5 does not exist. PDF has 4 pages.")
}

func TestSplitBadDocument(t *testing.T) {
    outs, err := Split([]byte("definitely not a pdf"), []pages.Group{{1}}, "x.pdf")
    require.Error(t, err)
    assert.Nil(t, outs)

    var derr *DocumentError
    require.ErrorAs(t, err, &derr)
}

func TestSplitRoundTripCoversAllPages(t *testing.T) {
    const total = 6
    src := pdftest.MinimalPDF(total)
    groups := []pages.Group{{1, 2}, {3}, {4, 5, 6}}

    outs, err := Split(src, groups, "book.pdf")
    require.NoError(t, err)

    sum := 0
    for _, out := range outs {
        sum += pageCount(t, out.Data)
    }
    assert.Equal(t, total, sum)
}

func TestSplitIdempotentNames(t *testing.T) {
    src := pdftest.MinimalPDF(5)
    groups := []pages.Group{{1, 2}, {4}}

    first, err := Split(src, groups, "a.pdf")
    require.NoError(t, err)
    second, err := Split(src, groups, "a.pdf")
    require.NoError(t, err)

    require.Len(t, second, len(first))
    for i := range first {
        assert.Equal(t, first[i].Filename, second[i].Filename)
        assert.Equal(t, pageCount(t, first[i].Data), pageCount(t, second[i].Data))
    }
}

func TestNaming(t *testing.T) {
    assert.Equal(t, "report", Stem("report.pdf"))
    assert.Equal(t, "archive.tar", Stem("archive.tar.gz"))
    assert.Equal(t, "noext", Stem("noext"))

    assert.Equal(t, "r-page-7.pdf", OutputName("r", pages.Group{7}))
    assert.Equal(t, "r-pages-2-5.pdf", OutputName("r", pages.Group{2, 3, 4, 5}))
    assert.Equal(t, "r-split.zip", ArchiveName("r"))
}
