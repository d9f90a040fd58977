package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/service"
)

const maxSubmissionBytes = 12 << 20

type SubmissionHandler struct {
	intake *service.IntakeService
}

func NewSubmissionHandler(intake *service.IntakeService) *SubmissionHandler {
	return &SubmissionHandler{intake: intake}
}

// Submit handles POST /submit: the multipart intake form with up to three
// feature slots and their attachments.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	in, err := parseIngress(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed form data")
		return
	}

	if _, err := h.intake.Submit(r.Context(), in); err != nil {
		log.Printf("submit failed: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// List handles GET /submissions (JWT protected).
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.intake.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"submissions": recs,
		"total":       len(recs),
	})
}

// parseIngress decodes the multipart body into the plain field/file shape
// the service layer consumes.
func parseIngress(r *http.Request) (*models.Ingress, error) {
	if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
		return nil, err
	}

	in := &models.Ingress{
		Fields: map[string]string{},
		Files:  map[string]models.Upload{},
	}
	for name, vals := range r.MultipartForm.Value {
		if len(vals) > 0 {
			in.Fields[name] = vals[0]
		}
	}
	for name, headers := range r.MultipartForm.File {
		if len(headers) == 0 || headers[0].Filename == "" {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		in.Files[name] = models.Upload{Filename: headers[0].Filename, Data: data}
	}
	return in, nil
}
