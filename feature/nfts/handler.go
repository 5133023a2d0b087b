package nfts

import (
	"errors"
	"strconv"

	"nft-reconciler/core/alchemy"
	"nft-reconciler/core/logger"
	"nft-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// BatchRequest is the body of POST /reconcile.
type BatchRequest struct {
	Owners          []string `json:"owners"`
	ContinueOnError bool     `json:"continue_on_error"`
}

// BatchResponse is the result of POST /reconcile.
type BatchResponse struct {
	Results []reconcile.OwnerResult `json:"results"`
	Error   string                  `json:"error,omitempty"`
}

// Handler handles HTTP requests for NFT listings and reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the nfts and reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/nfts")
	group.Get("/:owner", h.HandleGetPage)
	group.Get("/:owner/all", h.HandleGetAll)
	group.Get("/:owner/collections", h.HandleGetCollections)

	rec := app.Group("/reconcile")
	rec.Post("/", h.HandleReconcileBatch)
	rec.Get("/:owner", h.HandleReconcile)
	rec.Get("/:owner/reports", h.HandleListReports)
	rec.Get("/:owner/reports/:name", h.HandleGetReport)
}

// ownerParam copies the owner path parameter. Fiber reuses the request buffer
// once the handler returns, and the owner outlives it in shared reports.
func ownerParam(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("owner"))
}

// HandleGetPage returns one page of an owner's NFTs.
// @Summary Get NFT page
// @Description Fetch one page of the NFTs held by an owner.
// @Tags nfts
// @Produce json
// @Param owner path string true "Owner address"
// @Param contract query string false "Only NFTs of this contract"
// @Param pageKey query string false "Page key returned by the previous page"
// @Success 200 {object} alchemy.AssetPage
// @Failure 502 {object} map[string]any "Upstream rejected the request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /nfts/{owner} [get]
func (h *Handler) HandleGetPage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	page, err := h.service.Page(c.Context(), ownerParam(c), c.Query("contract"), c.Query("pageKey"))
	if err != nil {
		return writeError(c, l, "NFT page fetch failed", err)
	}

	return c.JSON(page)
}

// HandleGetAll returns every NFT of an owner.
// @Summary Get all NFTs
// @Description Follow page keys until the listing is exhausted.
// @Tags nfts
// @Produce json
// @Param owner path string true "Owner address"
// @Param contract query string false "Only NFTs of this contract"
// @Success 200 {object} AllAssets
// @Failure 502 {object} map[string]any "Upstream rejected the request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /nfts/{owner}/all [get]
func (h *Handler) HandleGetAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	all, err := h.service.All(c.Context(), ownerParam(c), c.Query("contract"))
	if err != nil {
		return writeError(c, l, "NFT listing failed", err)
	}

	return c.JSON(all)
}

// HandleGetCollections returns an owner's NFTs grouped by contract.
// @Summary Get collections
// @Tags nfts
// @Produce json
// @Param owner path string true "Owner address"
// @Param max query int false "Maximum NFTs per contract"
// @Success 200 {array} alchemy.Collection
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]any "Upstream rejected the request"
// @Router /nfts/{owner}/collections [get]
func (h *Handler) HandleGetCollections(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	maxPerContract := 0
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "max must be a positive integer"})
		}
		maxPerContract = n
	}

	collections, err := h.service.Collections(c.Context(), ownerParam(c), maxPerContract)
	if err != nil {
		return writeError(c, l, "Collection fetch failed", err)
	}
	if collections == nil {
		collections = []alchemy.Collection{}
	}

	return c.JSON(collections)
}

// HandleReconcile reconciles one owner.
// @Summary Reconcile owner
// @Description Compare the API token list with the ledger rows of an owner.
// @Tags reconcile
// @Produce json
// @Param owner path string true "Owner address"
// @Param export query bool false "Upload the report to object storage"
// @Success 200 {object} ReconcileResponse
// @Failure 502 {object} map[string]any "Upstream rejected the request"
// @Failure 503 {object} map[string]string "Ledger or storage unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/{owner} [get]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	resp, err := h.service.Reconcile(c.Context(), ownerParam(c), c.QueryBool("export"))
	if err != nil {
		return writeError(c, l, "Reconciliation failed", err)
	}

	return c.JSON(resp)
}

// HandleReconcileBatch reconciles several owners.
// @Summary Reconcile owners
// @Description Reconcile a batch of owners. Without continue_on_error the first failure aborts the batch.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Owners to reconcile"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} BatchResponse "Batch aborted"
// @Router /reconcile [post]
func (h *Handler) HandleReconcileBatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(req.Owners) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owners must not be empty"})
	}

	results, err := h.service.ReconcileBatch(c.Context(), req.Owners, req.ContinueOnError)
	if errors.Is(err, ErrLedgerUnavailable) {
		return writeError(c, l, "Batch reconciliation failed", err)
	}
	if results == nil {
		results = []reconcile.OwnerResult{}
	}
	if err != nil {
		l.Error("Batch reconciliation aborted", zap.Error(err))
		return c.Status(statusFor(err)).JSON(BatchResponse{Results: results, Error: err.Error()})
	}

	return c.JSON(BatchResponse{Results: results})
}

// HandleListReports lists the exported reports of an owner.
// @Summary List exported reports
// @Tags reconcile
// @Produce json
// @Param owner path string true "Owner address"
// @Success 200 {array} string
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /reconcile/{owner}/reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.Reports(c.Context(), ownerParam(c))
	if err != nil {
		return writeError(c, l, "Report listing failed", err)
	}
	if names == nil {
		names = []string{}
	}

	return c.JSON(names)
}

// HandleGetReport returns one stored report of an owner.
// @Summary Get exported report
// @Tags reconcile
// @Produce json
// @Param owner path string true "Owner address"
// @Param name path string true "Report file name, e.g. 1700000000000000000.json"
// @Success 200 {object} reconcile.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /reconcile/{owner}/reports/{name} [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Report(c.Context(), ownerParam(c), c.Params("name"))
	if err != nil {
		return writeError(c, l, "Report load failed", err)
	}

	return c.JSON(report)
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	var apiErr *alchemy.APIError
	switch {
	case errors.Is(err, alchemy.ErrEmptyOwner),
		errors.Is(err, reconcile.ErrInvalidOwner),
		errors.Is(err, reconcile.ErrInvalidReportName):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrReportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrLedgerUnavailable), errors.Is(err, ErrExportUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.As(err, &apiErr) && apiErr.Class == alchemy.ErrorClassClient:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	l.Error(msg, zap.Error(err), zap.Int("status", status))

	body := fiber.Map{"error": err.Error()}
	var apiErr *alchemy.APIError
	if errors.As(err, &apiErr) {
		body["upstream_status"] = apiErr.StatusCode
	}

	return c.Status(status).JSON(body)
}
