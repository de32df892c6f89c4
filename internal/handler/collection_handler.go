package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-secadmin-ws/internal/listing"
	"go-secadmin-ws/internal/repository"
	"go-secadmin-ws/internal/session"
	"go-secadmin-ws/internal/ws"
	"go-secadmin-ws/pkg/validator"
)

// Record is what every stored collection entry can do; model.BaseModel
// provides it.
type Record interface {
	GetID() uuid.UUID
	SetID(uuid.UUID)
	Stamp(editor string)
}

// CollectionHandler serves one stored collection: a filtered/sorted/paged
// list plus get, create, update and delete. The per-entity handlers are just
// instances of this with their own listing config.
type CollectionHandler[T any, PT interface {
	*T
	Record
}] struct {
	name string // collection name used in change events
	repo repository.CollectionRepository[T]
	hub  *ws.Hub
	cfg  listing.Config[T]
}

func NewCollectionHandler[T any, PT interface {
	*T
	Record
}](name string, repo repository.CollectionRepository[T], hub *ws.Hub, cfg listing.Config[T]) *CollectionHandler[T, PT] {
	return &CollectionHandler[T, PT]{name: name, repo: repo, hub: hub, cfg: cfg}
}

// ParseQuery reads the shared list parameters plus any filter fields the
// config declares.
func ParseQuery[T any](c *fiber.Ctx, cfg listing.Config[T]) listing.Query {
	q := listing.Query{
		Search:    c.Query("search"),
		SortField: c.Query("sort", cfg.DefaultSort),
		Dir:       listing.Direction(c.Query("dir", string(listing.Ascending))),
		Page:      c.QueryInt("page", 1),
		PageSize:  c.QueryInt("page_size", listing.DefaultPageSize),
		Filters:   map[string]string{},
	}
	if q.Dir != listing.Descending {
		q.Dir = listing.Ascending
	}
	for name := range cfg.FilterFields {
		if value := c.Query(name); value != "" {
			q.Filters[name] = value
		}
	}
	return q
}

// List GET /<collection>
func (h *CollectionHandler[T, PT]) List(c *fiber.Ctx) error {
	records, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch " + h.name})
	}
	return c.JSON(listing.Apply(records, ParseQuery(c, h.cfg), h.cfg))
}

// Get GET /<collection>/:id
func (h *CollectionHandler[T, PT]) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}
	record, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	return c.JSON(record)
}

// Create POST /<collection>
func (h *CollectionHandler[T, PT]) Create(c *fiber.Ctx) error {
	var record T
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(record)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	PT(&record).Stamp(session.FromCtx(c).Email)
	if err := h.repo.Create(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	h.hub.NotifyChange(h.name, "created", PT(&record).GetID())
	return c.Status(201).JSON(fiber.Map{"message": "Record created", "data": record})
}

// Update PUT /<collection>/:id
//
// The body is parsed over the stored record, so omitted fields keep their
// current values and the result is written back as one row save.
func (h *CollectionHandler[T, PT]) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	record, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}

	if err := c.BodyParser(record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	// The body cannot move the record to another id.
	PT(record).SetID(id)
	if err := validator.FirstError(validator.ValidateStruct(*record)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	PT(record).Stamp(session.FromCtx(c).Email)
	if err := h.repo.Save(record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	h.hub.NotifyChange(h.name, "updated", id)
	return c.JSON(fiber.Map{"message": "Record updated", "data": record})
}

// Delete DELETE /<collection>/:id
func (h *CollectionHandler[T, PT]) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}
	if _, err := h.repo.FindByID(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	h.hub.NotifyChange(h.name, "deleted", id)
	return c.JSON(fiber.Map{"message": "Record deleted"})
}
