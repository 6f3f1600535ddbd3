package server

import (
    "context"
    "encoding/json"
    "errors"
    "io"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/rs/zerolog/log"

    "github.com/local/pdfsplit/internal/archive"
    "github.com/local/pdfsplit/internal/filetype"
    "github.com/local/pdfsplit/internal/jobs"
    "github.com/local/pdfsplit/internal/limiter"
    "github.com/local/pdfsplit/internal/metrics"
    "github.com/local/pdfsplit/internal/pages"
    "github.com/local/pdfsplit/internal/splitter"
    "github.com/local/pdfsplit/internal/statuscheck"
)

// ArchiveStore persists finished archives out-of-band. Optional; upload
// failures are logged, never surfaced to the client.
type ArchiveStore interface {
    SaveArchive(ctx context.Context, jobID, name string, data []byte) (string, error)
}

// Dependencies wires the server's collaborators.
type Dependencies struct {
    Jobs     jobs.Store
    Archives ArchiveStore
    Limiter  *limiter.Limiter
    Checker  *statuscheck.Checker
}

type Server struct {
    deps      Dependencies
    maxUpload int64
}

func New(deps Dependencies, maxUploadMB int) *Server {
    if maxUploadMB <= 0 { maxUploadMB = 64 }
    if deps.Limiter == nil { deps.Limiter = limiter.New(0) }
    return &Server{deps: deps, maxUpload: int64(maxUploadMB) << 20}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
    mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK); _, _ = w.Write([]byte("ok")) })
    mux.HandleFunc("/api/split-pdf", s.handleSplit)
    mux.HandleFunc("/api/job/", s.handleJob)
    mux.HandleFunc("/api/status", s.handleStatus)
}

type errorResp struct {
    Message string   `json:"message"`
    Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
    writeJSON(w, status, errorResp{Message: message})
}

// handleSplit accepts a multipart upload (fields: pdf, instructions), splits
// the source into one PDF per page group and responds with a zip bundle.
// Validation failures respond before any job record exists; processing
// failures mark the job failed with the same message the client sees.
func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        w.WriteHeader(http.StatusMethodNotAllowed); return
    }

    release, ok := s.deps.Limiter.Allow()
    if !ok {
        metrics.IncRequest("rejected")
        writeError(w, http.StatusServiceUnavailable, "Server busy, try again later")
        return
    }
    defer release()

    r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
    if err := r.ParseMultipartForm(s.maxUpload); err != nil {
        metrics.IncRequest("validation_error")
        writeError(w, http.StatusBadRequest, "Invalid multipart form or file too large")
        return
    }

    file, hdr, err := r.FormFile("pdf")
    if err != nil {
        metrics.IncRequest("validation_error")
        writeError(w, http.StatusBadRequest, "PDF file is required")
        return
    }
    defer file.Close()

    instructions := strings.TrimSpace(r.FormValue("instructions"))
    if instructions == "" {
        metrics.IncRequest("validation_error")
        writeError(w, http.StatusBadRequest, "Instructions are required")
        return
    }

    src, err := io.ReadAll(file)
    if err != nil {
        metrics.IncRequest("error")
        writeError(w, http.StatusInternalServerError, "Failed to read upload")
        return
    }
    metrics.ObserveUploadSize(len(src))

    if info := filetype.Detect(src); !info.IsPDF {
        metrics.IncRequest("validation_error")
        writeError(w, http.StatusBadRequest, "Uploaded file must be a PDF")
        return
    }

    name := hdr.Filename
    if name == "" { name = "upload.pdf" }

    jobID := uuid.NewString()
    job := jobs.Job{
        ID:               jobID,
        OriginalFilename: name,
        Instructions:     instructions,
        Status:           jobs.StatusProcessing,
        CreatedAt:        time.Now(),
    }
    if err := s.deps.Jobs.Create(r.Context(), job); err != nil {
        metrics.IncRequest("error")
        writeError(w, http.StatusInternalServerError, "Failed to create job")
        return
    }
    log.Info().Str("job_id", jobID).Str("file", name).Str("instructions", instructions).Msg("job created")
    w.Header().Set("X-Job-Id", jobID)

    start := time.Now()
    groups, err := pages.Parse(instructions)
    if err != nil {
        s.failJob(r.Context(), w, jobID, err.Error(), http.StatusBadRequest, "parse_error", start)
        return
    }

    outs, err := splitter.Split(src, groups, name)
    if err != nil {
        var pre *splitter.PageRangeError
        var doc *splitter.DocumentError
        switch {
        case errors.As(err, &pre):
            s.failJob(r.Context(), w, jobID, pre.Error(), http.StatusBadRequest, "page_range_error", start)
        case errors.As(err, &doc):
            s.failJob(r.Context(), w, jobID, "Uploaded file is not a valid PDF document", http.StatusBadRequest, "document_error", start)
        default:
            s.failJob(r.Context(), w, jobID, err.Error(), http.StatusInternalServerError, "error", start)
        }
        return
    }

    zipData, err := archive.Build(outs)
    if err != nil {
        s.failJob(r.Context(), w, jobID, err.Error(), http.StatusInternalServerError, "error", start)
        return
    }

    names := make([]string, len(outs))
    pagesEmitted := 0
    for i, out := range outs {
        names[i] = out.Filename
        pagesEmitted += len(out.Group)
    }
    zipName := splitter.ArchiveName(splitter.Stem(name))

    var resultURL string
    if s.deps.Archives != nil {
        url, err := s.deps.Archives.SaveArchive(r.Context(), jobID, zipName, zipData)
        if err != nil {
            log.Warn().Err(err).Str("job_id", jobID).Msg("archive upload failed")
        } else {
            resultURL = url
        }
    }

    if err := s.deps.Jobs.Complete(r.Context(), jobID, names, resultURL); err != nil {
        log.Error().Err(err).Str("job_id", jobID).Msg("failed to mark job completed")
    }

    metrics.ObserveSplit("completed", time.Since(start))
    metrics.AddEmitted(len(outs), pagesEmitted)
    log.Info().Str("job_id", jobID).Int("outputs", len(outs)).Int("zip_bytes", len(zipData)).Msg("split completed")

    w.Header().Set("Content-Type", "application/zip")
    w.Header().Set("Content-Disposition", `attachment; filename="`+zipName+`"`)
    _, _ = w.Write(zipData)
}

// failJob records the failure on the job and mirrors the same message to the
// client. No partial output has been written at any of its call sites.
func (s *Server) failJob(ctx context.Context, w http.ResponseWriter, jobID, message string, status int, result string, start time.Time) {
    if err := s.deps.Jobs.Fail(ctx, jobID, message); err != nil {
        log.Error().Err(err).Str("job_id", jobID).Msg("failed to mark job failed")
    }
    metrics.ObserveSplit(result, time.Since(start))
    log.Warn().Str("job_id", jobID).Str("reason", message).Msg("split failed")
    writeError(w, status, message)
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodGet {
        w.WriteHeader(http.StatusMethodNotAllowed); return
    }
    id := strings.TrimPrefix(r.URL.Path, "/api/job/")
    if id == "" {
        writeError(w, http.StatusNotFound, "Job not found")
        return
    }
    job, ok, err := s.deps.Jobs.Get(r.Context(), id)
    if err != nil {
        writeError(w, http.StatusInternalServerError, "Failed to load job")
        return
    }
    if !ok {
        writeError(w, http.StatusNotFound, "Job not found")
        return
    }
    writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
    if s.deps.Checker == nil {
        writeJSON(w, http.StatusOK, statuscheck.Summary{})
        return
    }
    writeJSON(w, http.StatusOK, s.deps.Checker.Run(r.Context()))
}
