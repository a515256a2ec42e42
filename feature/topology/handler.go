package topology

import (
	"bytes"
	"strconv"

	"topology-manager/core/logger"
	"topology-manager/core/reconcile"
	"topology-manager/feature/topology/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for topology ingestion.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = reconcile.Summary{}
	return &Handler{service: service}
}

// RegisterRoutes registers the topology routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/topology")
	group.Post("/events", h.HandleCreateEvent)
	group.Post("/snapshots", h.HandleSnapshot)
	group.Post("/ingest", h.HandleIngest)
	group.Post("/oui", h.HandleImportOUI)
}

type createEventRequest struct {
	Name string `json:"name"`
}

// HandleCreateEvent records a new poll event.
// @Summary Create Poll Event
// @Description Records a poll cycle. Its id is stamped onto every device and MAC reconciled under it.
// @Tags topology
// @Accept json
// @Produce json
// @Param body body createEventRequest false "Event name"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /topology/events [post]
func (h *Handler) HandleCreateEvent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req createEventRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
		}
	}

	ev, err := h.service.NewEvent(c.Context(), req.Name)
	if err != nil {
		l.Error("Event creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Created poll event", zap.Int64("event", ev.IdxEvent), zap.String("name", ev.Name))
	return c.Status(fiber.StatusCreated).JSON(ev)
}

// HandleSnapshot reconciles one device snapshot posted in the body.
// @Summary Reconcile Snapshot
// @Description Reconciles a device topology snapshot into the store. A new poll event is created unless one is given.
// @Tags topology
// @Accept json
// @Produce json
// @Param event query int false "Existing poll event id"
// @Success 200 {object} reconcile.Summary
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /topology/snapshots [post]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snap, err := models.ParseSnapshot(c.Body())
	if err != nil {
		l.Warn("Rejected snapshot", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	idxEvent, err := queryInt64(c, "event")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event"})
	}

	idxEvent, err = h.service.ResolveEvent(c.Context(), idxEvent, "api:"+snap.Host)
	if err != nil {
		l.Error("Event resolution failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.service.ProcessSnapshot(c.Context(), snap, idxEvent)
	if err != nil {
		l.Error("Snapshot reconciliation failed", zap.String("host", snap.Host), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// HandleIngest reconciles every snapshot under the bucket snapshot prefix.
// @Summary Ingest Bucket Snapshots
// @Description Reconciles all snapshot objects stored in the bucket on the worker pool. Optionally archives the ones that succeed.
// @Tags topology
// @Accept json
// @Produce json
// @Param event query int false "Existing poll event id"
// @Param archive query boolean false "Archive reconciled snapshots"
// @Success 200 {object} reconcile.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /topology/ingest [post]
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	archive := c.Query("archive") == "true"

	idxEvent, err := queryInt64(c, "event")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event"})
	}

	idxEvent, err = h.service.ResolveEvent(c.Context(), idxEvent, "")
	if err != nil {
		l.Error("Event resolution failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.Ingest(c.Context(), h.service.BucketSource(), idxEvent, archive)
	if err != nil {
		l.Error("Ingestion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleImportOUI imports a vendor prefix file posted in the body.
// @Summary Import Vendor Prefixes
// @Description Upserts the vendor prefixes of an OUI file (one "prefix organization" pair per line).
// @Tags topology
// @Accept plain
// @Produce json
// @Success 200 {object} map[string]int "Imported count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /topology/oui [post]
func (h *Handler) HandleImportOUI(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := h.service.ImportOUI(c.Context(), bytes.NewReader(c.Body()))
	if err != nil {
		l.Error("OUI import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"imported": n})
}

func queryInt64(c *fiber.Ctx, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
