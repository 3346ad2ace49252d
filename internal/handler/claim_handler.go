package handler

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"superclaims/internal/config"
	"superclaims/internal/domain"
	"superclaims/internal/pipeline"
)

// ClaimHandler handles the claim-processing endpoint.
type ClaimHandler struct {
	processor pipeline.Processor
	cfg       config.UploadConfig
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(processor pipeline.Processor, cfg config.UploadConfig) *ClaimHandler {
	return &ClaimHandler{processor: processor, cfg: cfg}
}

// ProcessClaim handles POST /api/v1/claims/process
// @Summary Process a claim document batch
// @Description Runs the staged claim pipeline over uploaded PDF documents and returns extracted data, validation findings and a decision
// @Tags claims
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Claim documents (PDF)"
// @Success 200 {object} APIResponse{data=domain.ClaimResult} "Claim processed"
// @Failure 400 {object} APIResponse "Empty batch, too many files or non-PDF upload"
// @Failure 413 {object} APIResponse "A file exceeds the size limit"
// @Router /claims/process [post]
func (h *ClaimHandler) ProcessClaim(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "expected multipart form with a files field")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		HandleError(c, domain.ErrEmptyBatch)
		return
	}
	if h.cfg.MaxFiles > 0 && len(headers) > h.cfg.MaxFiles {
		HandleError(c, domain.ErrTooManyFiles)
		return
	}

	maxBytes := h.cfg.MaxFileSizeMB * 1024 * 1024
	files := make([]domain.UploadedFile, 0, len(headers))
	for _, header := range headers {
		if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
			HandleError(c, domain.ErrUnsupportedFileType)
			return
		}
		if maxBytes > 0 && header.Size > maxBytes {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}

		f, err := header.Open()
		if err != nil {
			log.Printf("claimHandler.ProcessClaim: opening %s: %v", header.Filename, err)
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "uploaded file could not be read")
			return
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			log.Printf("claimHandler.ProcessClaim: reading %s: %v", header.Filename, err)
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "uploaded file could not be read")
			return
		}
		files = append(files, domain.UploadedFile{Name: header.Filename, Content: content})
	}

	log.Printf("claimHandler.ProcessClaim: received %d files", len(files))

	result, err := h.processor.Process(c.Request.Context(), files)
	if err != nil {
		// Only cancellation reaches here; document-level failures are data.
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
