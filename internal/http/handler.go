package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adiprasetyo/simpbb/internal/service"
)

type Handler struct {
	registrations *service.RegistrationService
	spops         *service.SpopService
	lspops        *service.LspopService
	sppts         *service.SpptService
	dashboards    *service.DashboardService
	refs          *service.RefService
	dropdowns     *service.DropdownService
	users         *service.UserService
	excel         ExcelGenerator
	pdf           PDFGenerator
	uploadDir     string
	log           zerolog.Logger
}

type Services struct {
	Registrations *service.RegistrationService
	Spops         *service.SpopService
	Lspops        *service.LspopService
	Sppts         *service.SpptService
	Dashboards    *service.DashboardService
	Refs          *service.RefService
	Dropdowns     *service.DropdownService
	Users         *service.UserService
}

func NewHandler(svcs Services, excel ExcelGenerator, pdf PDFGenerator, uploadDir string, log zerolog.Logger) *Handler {
	return &Handler{
		registrations: svcs.Registrations,
		spops:         svcs.Spops,
		lspops:        svcs.Lspops,
		sppts:         svcs.Sppts,
		dashboards:    svcs.Dashboards,
		refs:          svcs.Refs,
		dropdowns:     svcs.Dropdowns,
		users:         svcs.Users,
		excel:         excel,
		pdf:           pdf,
		uploadDir:     uploadDir,
		log:           log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	fail(c, status, message)
}

// handleLegacyError is handleError with the sppt group's envelope.
func (h *Handler) handleLegacyError(c *gin.Context, err error) {
	status, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	legacyFail(c, status, message)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, err.Error()
	default:
		return http.StatusInternalServerError, "terjadi kesalahan pada server"
	}
}
