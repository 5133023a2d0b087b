package integrity

import (
	"errors"

	"nft-reconciler/core/logger"
	"nft-reconciler/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.LedgerReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the ledger schema and report storage checks.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if ledgerReport, err := h.service.CheckLedger(); err != nil {
		report["ledger"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["ledger"] = ledgerReport
	}

	if storageReport, err := h.service.CheckStorage(c.Context()); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = storageReport
	}

	return c.JSON(report)
}

// HandleLedgerCheck checks the ledger table layout.
// @Summary Check Ledger Schema
// @Description Checks that the ledger table has the owner, contract and token columns in the order the reader expects.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.LedgerReport "Ledger Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/ledger [get]
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting ledger schema check")

	report, err := h.service.CheckLedger()
	if err != nil {
		l.Error("Ledger schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Ledger schema mismatch",
			zap.Strings("missing", report.MissingColumns),
			zap.Strings("positions", report.PositionMismatches))
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the report bucket.
// @Summary Check Report Storage
// @Description Checks that the report bucket exists and counts exported reports. Optionally creates the bucket.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		return h.storageError(c, l, err)
	}

	if !report.Exists {
		l.Warn("Report bucket missing", zap.String("bucket", report.Bucket))

		if fix {
			l.Info("Attempting to create report bucket")
			if err := h.service.FixStorage(c.Context()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to create bucket",
					"details": err.Error(),
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"bucket": report.Bucket,
			})
		}
	}

	return c.JSON(report)
}

func (h *Handler) storageError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Storage check failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
