package http

import (
	"net/http"

	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/service"
	"github.com/MKhiriev/go-house-builder/internal/utils"
)

type Handler struct {
	services *service.Services
	models   http.Handler
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the gateway handler. Files under modelsDir are served
// at /models/.
func NewHandler(services *service.Services, modelsDir string, logger *logger.Logger) *Handler {
	logger.Info().Str("models_dir", modelsDir).Msg("http handler created")
	return &Handler{
		services: services,
		models:   http.StripPrefix("/models/", http.FileServer(http.Dir(modelsDir))),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
