package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PEREIRAD01/backend-Pitstoppro/domain"
	"github.com/PEREIRAD01/backend-Pitstoppro/middleware"
	"github.com/PEREIRAD01/backend-Pitstoppro/models"
	"github.com/PEREIRAD01/backend-Pitstoppro/repositories"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	defaultSort  = "id:desc"
)

// sortColumns maps the accepted sort fields to their database columns.
// Anything outside this map is rejected before it can reach a query.
var sortColumns = map[string]string{
	"id":        "id",
	"plate":     "plate",
	"brand":     "brand",
	"model":     "model",
	"createdAt": "created_at",
}

// VehicleHandler handles the per-user vehicle CRUD. The owner id for every
// operation comes from the verified token, so one user's requests can never
// observe or touch another user's rows.
type VehicleHandler struct {
	Vehicles repositories.VehicleStore
}

func NewVehicleHandler(vehicles repositories.VehicleStore) *VehicleHandler {
	return &VehicleHandler{Vehicles: vehicles}
}

type CreateVehicleRequest struct {
	Plate    string `json:"plate" validate:"required"`
	Brand    string `json:"brand" validate:"required"`
	Model    string `json:"model" validate:"required"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,url"`
}

// UpdateVehicleRequest uses pointers so an absent field and an empty field
// can be told apart; absent fields are left untouched.
type UpdateVehicleRequest struct {
	Plate    *string `json:"plate"`
	Brand    *string `json:"brand"`
	Model    *string `json:"model"`
	PhotoURL *string `json:"photoUrl" validate:"omitempty,url"`
}

// List handles GET /vehicles.
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	query, appErr := parseListQuery(c)
	if appErr != nil {
		return appErr
	}

	vehicles, total, err := h.Vehicles.ListByOwner(middleware.UserID(c), query)
	if err != nil {
		return err
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	pages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
	return c.JSON(domain.Page[models.Vehicle]{
		Data:  vehicles,
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
		Pages: pages,
	})
}

// Create handles POST /vehicles.
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var req CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidPayload()
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	vehicle := models.Vehicle{
		UserID:   middleware.UserID(c),
		Plate:    req.Plate,
		Brand:    req.Brand,
		Model:    req.Model,
		PhotoURL: req.PhotoURL,
	}
	if err := h.Vehicles.Create(&vehicle); err != nil {
		if errors.Is(err, repositories.ErrPlateExists) {
			return domain.NewConflict("Plate already exists for this user")
		}
		return err
	}
	return c.Status(http.StatusCreated).JSON(vehicle)
}

// Update handles PATCH /vehicles/:id. The row is matched by id and owner in
// a single statement; a miss on either yields the same NotFound.
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, appErr := parseIDParam(c)
	if appErr != nil {
		return appErr
	}

	var req UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidPayload()
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	// omitempty skips explicit empty strings, so the non-empty rule for
	// plate, brand and model is enforced here.
	var details []domain.FieldError
	changes := make(map[string]interface{})
	setRequired := func(path, column string, value *string) {
		if value == nil {
			return
		}
		if *value == "" {
			details = append(details, domain.FieldError{Path: path, Message: "must not be empty"})
			return
		}
		changes[column] = *value
	}
	setRequired("plate", "plate", req.Plate)
	setRequired("brand", "brand", req.Brand)
	setRequired("model", "model", req.Model)
	if req.PhotoURL != nil {
		changes["photo_url"] = *req.PhotoURL
	}
	if len(details) > 0 {
		return domain.NewValidationError(details)
	}
	if len(changes) == 0 {
		return domain.NewValidationError([]domain.FieldError{
			{Path: "", Message: "at least one field must be provided"},
		})
	}

	vehicle, err := h.Vehicles.UpdateOwned(middleware.UserID(c), id, changes)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return domain.NewNotFound()
		case errors.Is(err, repositories.ErrPlateExists):
			return domain.NewConflict("Plate already exists for this user")
		}
		return err
	}
	return c.JSON(vehicle)
}

// Delete handles DELETE /vehicles/:id.
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, appErr := parseIDParam(c)
	if appErr != nil {
		return appErr
	}

	if err := h.Vehicles.DeleteOwned(middleware.UserID(c), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domain.NewNotFound()
		}
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseIDParam(c *fiber.Ctx) (uint, *domain.AppError) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError([]domain.FieldError{
			{Path: "id", Message: "must be a positive integer"},
		})
	}
	return uint(id), nil
}

func parseListQuery(c *fiber.Ctx) (repositories.ListQuery, *domain.AppError) {
	var details []domain.FieldError

	page := defaultPage
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			details = append(details, domain.FieldError{Path: "page", Message: "must be an integer >= 1"})
		} else {
			page = n
		}
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			details = append(details, domain.FieldError{Path: "limit", Message: "must be an integer between 1 and 100"})
		} else {
			limit = n
		}
	}

	column, desc, ok := parseSort(c.Query("sort", defaultSort))
	if !ok {
		details = append(details, domain.FieldError{Path: "sort", Message: "must be field:direction with field one of id, plate, brand, model, createdAt"})
	}

	if len(details) > 0 {
		return repositories.ListQuery{}, domain.NewValidationError(details)
	}
	return repositories.ListQuery{Page: page, Limit: limit, SortColumn: column, SortDesc: desc}, nil
}

func parseSort(raw string) (column string, desc bool, ok bool) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return "", false, false
	}
	column, ok = sortColumns[parts[0]]
	if !ok {
		return "", false, false
	}
	switch parts[1] {
	case "asc":
		return column, false, true
	case "desc":
		return column, true, true
	}
	return "", false, false
}
