package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adilg123/huffpack/internal/compression"
	"github.com/adilg123/huffpack/internal/compression/algorithms/huffman"
	"github.com/adilg123/huffpack/internal/config"
	"github.com/adilg123/huffpack/internal/logger"
)

// CodecRequest represents the compression and decompression request payload
type CodecRequest struct {
	Algorithm string `form:"algorithm"`
	Version   *int   `form:"version"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler serves the compression endpoints
type Handler struct {
	cfg *config.Config
	log logger.Logger
}

// NewHandler creates a Handler using the given configuration and logger
func NewHandler(cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{cfg: cfg, log: log}
}

// HandleCompress handles file compression requests
func (h *Handler) HandleCompress(c *gin.Context) {
	options, ok := h.bindOptions(c)
	if !ok {
		return
	}
	fileContent, header, ok := h.readUpload(c)
	if !ok {
		return
	}

	compressedData, stats, err := compression.Compress(fileContent, options)
	if err != nil {
		h.fail(c, "Compression failed", err)
		return
	}
	h.log.Infof("compressed %s: %d -> %d bytes", header.Filename, stats.OriginalSize, stats.ProcessedSize)

	filename := fmt.Sprintf("%s.bin", getBaseFilename(header.Filename))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("X-Original-Size", strconv.Itoa(stats.OriginalSize))
	c.Header("X-Processed-Size", strconv.Itoa(stats.ProcessedSize))
	c.Data(http.StatusOK, "application/octet-stream", compressedData)
}

// HandleDecompress handles file decompression requests
func (h *Handler) HandleDecompress(c *gin.Context) {
	options, ok := h.bindOptions(c)
	if !ok {
		return
	}
	fileContent, header, ok := h.readUpload(c)
	if !ok {
		return
	}

	decompressedData, stats, err := compression.Decompress(fileContent, options)
	if err != nil {
		h.fail(c, "Decompression failed", err)
		return
	}
	h.log.Infof("decompressed %s: %d -> %d bytes", header.Filename, stats.OriginalSize, stats.ProcessedSize)

	filename := fmt.Sprintf("%s_decompressed.txt", getBaseFilename(header.Filename))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("X-Original-Size", strconv.Itoa(stats.OriginalSize))
	c.Header("X-Processed-Size", strconv.Itoa(stats.ProcessedSize))
	c.Data(http.StatusOK, "application/octet-stream", decompressedData)
}

// HandleAnalyze reports the frequency table and Huffman codes of an upload
func (h *Handler) HandleAnalyze(c *gin.Context) {
	fileContent, _, ok := h.readUpload(c)
	if !ok {
		return
	}
	analysis, err := compression.Analyze(fileContent)
	if err != nil {
		h.fail(c, "Analysis failed", err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// HandleInfo provides information about supported algorithms
func (h *Handler) HandleInfo(c *gin.Context) {
	info := map[string]interface{}{
		"service": "huffpack",
		"version": "1.0.0",
		"algorithms": map[string]interface{}{
			"supported": compression.GetSupportedAlgorithms(),
			"descriptions": map[string]string{
				"huffman": "Huffman coding - lossless data compression using variable-length prefix codes",
			},
		},
		"format_versions": map[string]string{
			"1": "padding of 1 to 8 bits, a byte aligned stream gains a zero byte",
			"2": "padding of 0 to 7 bits (default)",
		},
		"limits": map[string]interface{}{
			"max_file_size": fmt.Sprintf("%d bytes (%.1f MB)", h.cfg.MaxFileSize, float64(h.cfg.MaxFileSize)/(1024*1024)),
		},
		"endpoints": map[string]interface{}{
			"compress":   "POST /api/v1/compress - Upload file for compression",
			"decompress": "POST /api/v1/decompress - Upload file for decompression",
			"analyze":    "POST /api/v1/analyze - Show symbol frequencies and codes",
			"info":       "GET /info - Get service information",
			"health":     "GET /health - Health check",
		},
	}

	c.JSON(http.StatusOK, info)
}

// HandleHealth provides a simple health check endpoint
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "huffpack",
	})
}

func (h *Handler) bindOptions(c *gin.Context) (compression.Options, bool) {
	var req CodecRequest
	if err := c.ShouldBind(&req); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request", err.Error())
		return compression.Options{}, false
	}

	options := compression.Options{Algorithm: req.Algorithm, Version: h.cfg.FormatVersion}
	if req.Version != nil {
		if *req.Version < 1 || *req.Version > 255 {
			abort(c, http.StatusBadRequest, "Invalid version", fmt.Sprintf("version %d out of range", *req.Version))
			return compression.Options{}, false
		}
		options.Version = byte(*req.Version)
	}
	if err := options.Validate(); err != nil {
		abort(c, http.StatusBadRequest, "Invalid options",
			fmt.Sprintf("%s. Supported algorithms: %v", err, compression.GetSupportedAlgorithms()))
		return compression.Options{}, false
	}
	return options, true
}

func (h *Handler) readUpload(c *gin.Context) ([]byte, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		abort(c, http.StatusBadRequest, "File upload error", "No file provided or file upload failed")
		return nil, nil, false
	}
	defer file.Close()

	if header.Size > h.cfg.MaxFileSize {
		abort(c, http.StatusRequestEntityTooLarge, "File too large",
			fmt.Sprintf("Maximum file size is %d bytes", h.cfg.MaxFileSize))
		return nil, nil, false
	}

	fileContent, err := io.ReadAll(file)
	if err != nil {
		h.log.Errorf("reading upload %s: %s", header.Filename, err)
		abort(c, http.StatusInternalServerError, "File read error", "Failed to read uploaded file")
		return nil, nil, false
	}
	return fileContent, header, true
}

func (h *Handler) fail(c *gin.Context, title string, err error) {
	switch {
	case compression.IsMalformed(err):
		abort(c, http.StatusUnprocessableEntity, title, err.Error())
	case errors.Is(err, huffman.ErrEmptyInput):
		abort(c, http.StatusBadRequest, title, err.Error())
	default:
		h.log.Errorf("%s: %s", title, err)
		abort(c, http.StatusInternalServerError, title, err.Error())
	}
}

func abort(c *gin.Context, code int, title, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   title,
		Code:    code,
		Message: message,
	})
}

// Helper functions
func getBaseFilename(filename string) string {
	if filename == "" {
		return "file"
	}
	return filename
}
