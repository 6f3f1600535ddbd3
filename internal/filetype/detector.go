package filetype

import (
    "github.com/gabriel-vasile/mimetype"
    "github.com/rs/zerolog/log"
)

// Info describes a detected upload content type.
type Info struct {
    MIMEType  string
    Extension string
    IsPDF     bool
}

// Detect classifies upload bytes by magic numbers. The client-supplied
// Content-Type header is ignored; only the payload decides.
func Detect(data []byte) Info {
    mtype := mimetype.Detect(data)
    info := Info{
        MIMEType:  mtype.String(),
        Extension: mtype.Extension(),
        IsPDF:     mtype.Is("application/pdf"),
    }
    log.Debug().Str("mime", info.MIMEType).Str("ext", info.Extension).Msg("detected upload type")
    return info
}
