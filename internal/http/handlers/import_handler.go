package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/wellvoice/clinic-ops/internal/importer"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// ImportHandler accepts patient spreadsheet uploads and runs them through
// the import pipeline.
type ImportHandler struct {
	importer *importer.Importer
	maxBytes int64
	logger   *logging.Logger
}

// NewImportHandler constructs the handler. maxBytes caps the upload size.
func NewImportHandler(imp *importer.Importer, maxBytes int64, logger *logging.Logger) *ImportHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportHandler{
		importer: imp,
		maxBytes: maxBytes,
		logger:   logger.WithComponent("import_handler"),
	}
}

// Import handles POST /api/patients/import. The workbook arrives either as
// a multipart form with a "file" field or as the raw request body.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	data, err := h.readUpload(r)
	if err != nil {
		h.logger.Warn("import upload rejected", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty file")
		return
	}

	result := h.importer.Import(r.Context(), data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode import result", "error", err)
	}
}

func (h *ImportHandler) readUpload(r *http.Request) ([]byte, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "multipart/form-data" {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("missing file field")
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".xlsx" && ext != ".xls" {
			return nil, errors.New("unsupported file type, expected .xlsx or .xls")
		}
		return io.ReadAll(file)
	}

	// Raw body uploads skip the extension check; the parser rejects
	// anything that is not a workbook.
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.New("failed to read request body")
	}
	return data, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
