package splitter

import (
    "bytes"
    "fmt"
    "path/filepath"
    "strings"

    "github.com/pdfcpu/pdfcpu/pkg/api"
    "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
    "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
    "github.com/rs/zerolog/log"

    "github.com/local/pdfsplit/internal/pages"
)

// Output is one extracted sub-document: its filename, serialized bytes and the
// group it was derived from. Outputs preserve group order.
type Output struct {
    Filename string
    Data     []byte
    Group    pages.Group
}

// Size returns the serialized byte length.
func (o Output) Size() int { return len(o.Data) }

// Split partitions src into one output PDF per group. All page indices are
// validated against the real page count before any output is produced; a split
// either yields every output or none.
func Split(src []byte, groups []pages.Group, originalName string) ([]Output, error) {
    conf := model.NewDefaultConfiguration()
    // Default config attempts empty-password decryption, so encrypted-but-readable
    // sources still load.
    ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(src), conf)
    if err != nil {
        return nil, &DocumentError{Err: err}
    }

    total := ctx.PageCount
    for _, g := range groups {
        for _, p := range g {
            if p < 1 || p > total {
                return nil, &PageRangeError{Page: p, TotalPages: total}
            }
        }
    }

    stem := Stem(originalName)
    outs := make([]Output, 0, len(groups))
    for _, g := range groups {
        extracted, err := pdfcpu.ExtractPages(ctx, g, false)
        if err != nil {
            return nil, fmt.Errorf("extract pages %v: %w", []int(g), err)
        }
        var buf bytes.Buffer
        if err := api.WriteContext(extracted, &buf); err != nil {
            return nil, fmt.Errorf("write pages %v: %w", []int(g), err)
        }
        outs = append(outs, Output{
            Filename: OutputName(stem, g),
            Data:     buf.Bytes(),
            Group:    g,
        })
    }

    log.Debug().Str("file", originalName).Int("total_pages", total).Int("outputs", len(outs)).Msg("split complete")
    return outs, nil
}

// Stem strips the final extension from a filename: "report.pdf" -> "report".
func Stem(name string) string {
    return strings.TrimSuffix(name, filepath.Ext(name))
}

// OutputName derives the sub-document filename for one group:
// single page -> <stem>-page-<N>.pdf, range -> <stem>-pages-<first>-<last>.pdf.
func OutputName(stem string, g pages.Group) string {
    if len(g) == 1 {
        return fmt.Sprintf("%s-page-%d.pdf", stem, g[0])
    }
    return fmt.Sprintf("%s-pages-%d-%d.pdf", stem, g[0], g[len(g)-1])
}

// ArchiveName derives the bundle filename: <stem>-split.zip.
func ArchiveName(stem string) string {
    return fmt.Sprintf("%s-split.zip", stem)
}
