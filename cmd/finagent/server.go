package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/marketwatch/finagent"
	"github.com/marketwatch/finagent/internal/config"
)

// processor is what the handlers need from the pipeline.
type processor interface {
	Process(ctx context.Context, query string) string
}

type server struct {
	pipe     processor
	warnings []string
	model    string
	timeout  time.Duration
	log      *logrus.Logger
}

func newServer(pipe processor, cfg config.Config, log *logrus.Logger) *echo.Echo {
	s := &server{
		pipe:     pipe,
		warnings: cfg.Warnings(),
		model:    cfg.LLM.Model,
		timeout:  time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
		log:      log,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/", s.index)
	e.POST("/analyze", s.analyze)
	e.GET("/healthz", s.health)
	return e
}

func (s *server) index(c echo.Context) error {
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, indexData{
		Warnings: s.warnings,
		Model:    s.model,
	})
	if err != nil {
		s.log.WithError(err).Error("failed to render index")
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

type analyzeResponse struct {
	Answer    string `json:"answer,omitempty"`
	Error     string `json:"error,omitempty"`
	Model     string `json:"model,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (s *server) analyze(c echo.Context) error {
	query := strings.TrimSpace(c.FormValue("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, analyzeResponse{Error: finagent.MsgEmptyQuery})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), s.timeout)
	defer cancel()

	answer := s.pipe.Process(ctx, query)
	return c.JSON(http.StatusOK, analyzeResponse{
		Answer:    answer,
		Model:     s.model,
		UpdatedAt: time.Now().Format("2006-01-02 15:04:05"),
	})
}

func (s *server) health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
