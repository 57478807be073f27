package crud

import (
	"edtechbackend/middleware"
	"edtechbackend/utils"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Schema is the validation contract a resource exposes to the generic
// controller. Implementations are pointer-field structs so a partial
// update can tell an absent field from a zero value.
type Schema[M any] interface {
	// Validate returns failed checks in field declaration order. In
	// full mode every required field must be present; in partial mode
	// only supplied fields are checked.
	Validate(partial bool) []FieldError
	// Fill copies the supplied fields onto the model, leaving absent
	// fields untouched.
	Fill(m *M)
}

// Controller serves create/update/delete/list/retrieve for one
// resource type. Every resource shares this code path so the
// validation and error-shaping policy is defined exactly once.
type Controller[M any] struct {
	Store  Store[M]
	Schema func() Schema[M]

	// Filters extracts optional list filters from the request.
	Filters func(c *fiber.Ctx) map[string]interface{}

	// AfterCreate runs after a successful create, outside the
	// request's failure path. Used for notifications.
	AfterCreate func(m *M)
}

// Create handles POST. Validation failures surface the first failing
// field's message with a 400.
func (ct *Controller[M]) Create(c *fiber.Ctx) error {
	schema := ct.Schema()
	if err := c.BodyParser(schema); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
	}
	if errs := schema.Validate(false); len(errs) > 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errs[0].Message)
	}

	m := new(M)
	schema.Fill(m)
	if err := ct.Store.Create(m); err != nil {
		return ct.fail(c, err)
	}

	if ct.AfterCreate != nil {
		ct.AfterCreate(m)
	}
	return middleware.SuccessResponse(c, fiber.StatusCreated, "Created Successfully", m)
}

// Update handles PUT: the full field set is validated.
func (ct *Controller[M]) Update(c *fiber.Ctx) error {
	return ct.handleUpdate(c, false)
}

// PartialUpdate handles PATCH: only supplied fields are validated and
// persisted; unspecified fields retain their prior values.
func (ct *Controller[M]) PartialUpdate(c *fiber.Ctx) error {
	return ct.handleUpdate(c, true)
}

func (ct *Controller[M]) handleUpdate(c *fiber.Ctx, partial bool) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID!")
	}

	m, err := ct.Store.Get(id)
	if err != nil {
		return ct.fail(c, err)
	}

	schema := ct.Schema()
	if err := c.BodyParser(schema); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
	}
	if errs := schema.Validate(partial); len(errs) > 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errs[0].Message)
	}

	schema.Fill(m)
	if err := ct.Store.Update(m); err != nil {
		return ct.fail(c, err)
	}
	return middleware.SuccessResponse(c, fiber.StatusOK, "Updated Successfully", m)
}

// Delete handles DELETE. A missing id is a 404; success is a 204 with
// empty data.
func (ct *Controller[M]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID!")
	}

	m, err := ct.Store.Get(id)
	if err != nil {
		return ct.fail(c, err)
	}
	if err := ct.Store.Delete(m); err != nil {
		return ct.fail(c, err)
	}
	return middleware.SuccessResponse(c, fiber.StatusNoContent, "Deleted successfully", "")
}

// List handles GET on the collection. Requesting ?page= returns a
// page-sized slice plus pagination metadata; omitting it returns the
// full filtered collection.
func (ct *Controller[M]) List(c *fiber.Ctx) error {
	filters := map[string]interface{}{}
	if ct.Filters != nil {
		filters = ct.Filters(c)
	}

	if strings.TrimSpace(c.Query("page")) == "" {
		items, err := ct.Store.List(ListQuery{Filters: filters})
		if err != nil {
			return ct.fail(c, err)
		}
		return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", items)
	}

	page, limit := utils.PageParams(c)
	total, err := ct.Store.Count(filters)
	if err != nil {
		return ct.fail(c, err)
	}
	items, err := ct.Store.List(ListQuery{
		Filters: filters,
		Offset:  (page - 1) * limit,
		Limit:   limit,
	})
	if err != nil {
		return ct.fail(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", fiber.Map{
		"results":    items,
		"pagination": utils.Pagination{Total: total, Page: page, Limit: limit},
	})
}

// Retrieve handles GET on a single id.
func (ct *Controller[M]) Retrieve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID!")
	}

	m, err := ct.Store.Get(id)
	if err != nil {
		return ct.fail(c, err)
	}
	return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", m)
}

// Register mounts the standard REST verbs on a router group. Extra
// handlers run before every mutating verb (e.g. a role check).
func (ct *Controller[M]) Register(g fiber.Router, mutate ...fiber.Handler) {
	g.Get("/", ct.List)
	g.Get("/:id", ct.Retrieve)
	g.Post("/", append(append([]fiber.Handler{}, mutate...), ct.Create)...)
	g.Put("/:id", append(append([]fiber.Handler{}, mutate...), ct.Update)...)
	g.Patch("/:id", append(append([]fiber.Handler{}, mutate...), ct.PartialUpdate)...)
	g.Delete("/:id", append(append([]fiber.Handler{}, mutate...), ct.Delete)...)
}

// fail maps store failures onto the envelope. Not-found is a 404;
// everything else is flattened to a generic 400 — never a 500, and no
// internal detail crosses the request boundary.
func (ct *Controller[M]) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "ID not found")
	default:
		log.Printf("crud: unexpected error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
