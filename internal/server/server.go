// Package server exposes the codec over a small JSON/XML HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/capability"
	"github.com/rezonia/einvoice/internal/config"
	"github.com/rezonia/einvoice/internal/dialect"
	"github.com/rezonia/einvoice/internal/logger"
	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/processor"
	"github.com/rezonia/einvoice/internal/signature"
)

const (
	requestIDHeader = "X-Request-ID"
	jobIDHeader     = "X-Job-ID"
	xmlContentType  = "application/xml; charset=utf-8"

	requestTimeout = 2 * time.Minute
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Indent       int

	// Defaults is the output triple used when a request names none
	Defaults config.CodecConfig
	Logger   zerolog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	pipeline *processor.Pipeline
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer creates a new API server
func NewServer(cfg *Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Defaults.Version == model.VersionUnknown {
		cfg.Defaults = config.CodecConfig{
			Version: model.Version23,
			Profile: model.ProfileComfort,
			Dialect: model.DialectCII,
		}
	}

	s := &Server{
		config: cfg,
		router: gin.New(),
		logger: logger.WithComponent(cfg.Logger, "http"),
	}

	opts := []processor.PipelineOption{processor.WithLogger(cfg.Logger)}
	if cfg.Indent > 0 {
		opts = append(opts, processor.WithIndent(cfg.Indent))
	}
	s.pipeline = processor.NewPipeline(opts...)

	s.router.Use(gin.Recovery(), s.requestID(), s.accessLog())
	s.setupRoutes()

	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/profiles", s.handleProfiles)
		v1.POST("/detect", s.handleDetect)
		v1.POST("/decode", s.handleDecode)
		v1.POST("/encode", s.handleEncode)
		v1.POST("/convert", s.handleConvert)
	}
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.config.Address).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a running server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := s.logger.Debug()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = s.logger.Error()
		}
		event.
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleProfiles(c *gin.Context) {
	combos := capability.Combinations()
	resp := ProfilesResponse{Combinations: make([]ProfileInfo, 0, len(combos))}
	for _, combo := range combos {
		id, _ := dialect.GuidelineID(combo.Version, combo.Profile)
		resp.Combinations = append(resp.Combinations, ProfileInfo{
			Version:     combo.Version,
			Profile:     combo.Profile,
			Dialect:     combo.Dialect,
			GuidelineID: id,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDetect(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	format := processor.DetectFormat(body)
	resp := DetectResponse{Format: format.String(), Size: len(body)}
	if format == processor.FormatXML {
		tag, err := signature.DetectVersion(body)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Tag = &tag
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDecode(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result := s.pipeline.ProcessBytes(ctx, body)
	if result.Error != nil {
		c.JSON(statusFor(result.Error), ErrorResponse{
			Error:    "decoding failed",
			Details:  result.Error.Error(),
			JobID:    result.JobID,
			Warnings: result.Warnings,
		})
		return
	}

	c.Header(jobIDHeader, result.JobID)
	c.JSON(http.StatusOK, DecodeResponse{
		JobID:      result.JobID,
		Source:     string(result.Source),
		Attachment: result.Attachment,
		Tag:        result.Tag,
		Invoice:    result.Invoice,
		Warnings:   result.Warnings,
	})
}

func (s *Server) handleEncode(c *gin.Context) {
	target, ok := s.target(c)
	if !ok {
		return
	}

	var inv model.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice JSON", Details: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	out, err := s.pipeline.Encode(ctx, &inv, target.Version, target.Profile, target.Dialect)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: "encoding failed", Details: err.Error()})
		return
	}
	c.Data(http.StatusOK, xmlContentType, out)
}

func (s *Server) handleConvert(c *gin.Context) {
	target, ok := s.target(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	out, result, err := s.pipeline.Convert(ctx, body, target.Version, target.Profile, target.Dialect)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{
			Error:    "conversion failed",
			Details:  err.Error(),
			JobID:    result.JobID,
			Warnings: result.Warnings,
		})
		return
	}

	c.Header(jobIDHeader, result.JobID)
	c.Header("X-Source-Profile", result.Tag.Profile.String())
	c.Data(http.StatusOK, xmlContentType, out)
}

// target resolves the version, profile and dialect query parameters
// against the configured defaults
func (s *Server) target(c *gin.Context) (config.CodecConfig, bool) {
	t := s.config.Defaults
	var err error

	if q := c.Query("version"); q != "" {
		if t.Version, err = model.ParseVersion(q); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid version", Details: err.Error()})
			return t, false
		}
	}
	if q := c.Query("profile"); q != "" {
		if t.Profile, err = model.ParseProfile(q); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile", Details: err.Error()})
			return t, false
		}
	}
	if q := c.Query("dialect"); q != "" {
		if t.Dialect, err = model.ParseDialect(q); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid dialect", Details: err.Error()})
			return t, false
		}
	}
	return t, true
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}
	return body, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}
	return http.StatusUnprocessableEntity
}
