package user

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Stable error codes carried in failure envelopes so clients can branch
// without parsing message text.
const (
	codeValidationFailed = "VALIDATION_FAILED"
	codeDuplicateEmail   = "DUPLICATE_EMAIL"
	codeNotFound         = "NOT_FOUND"
)

type Handler struct {
	service *Service
}

// envelope is the uniform response wrapper. Failure responses never carry
// data; success responses always carry the persisted state they describe.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
}

type createRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Age     *int    `json:"age,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type updateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/users", h.createUser)
	app.Get("/users", h.listUsers)
	app.Get("/users/:id", h.getUser)
	app.Put("/users/:id", h.updateUser)
	app.Delete("/users/:id", h.deleteUser)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return failWith(c, fiber.StatusBadRequest, "invalid request body", codeValidationFailed)
	}

	created, err := h.service.Create(c.Context(), User{
		Name:    payload.Name,
		Email:   payload.Email,
		Age:     payload.Age,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return respond(c, fiber.StatusCreated, "user created", created)
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}

	return respond(c, fiber.StatusOK, "users retrieved", users)
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return failWith(c, fiber.StatusBadRequest, "invalid user id", codeValidationFailed)
	}

	user, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return respond(c, fiber.StatusOK, "user retrieved", user)
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return failWith(c, fiber.StatusBadRequest, "invalid user id", codeValidationFailed)
	}

	payload := new(updateRequest)
	if err := c.BodyParser(payload); err != nil {
		return failWith(c, fiber.StatusBadRequest, "invalid request body", codeValidationFailed)
	}

	updated, err := h.service.Update(c.Context(), id, User{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return respond(c, fiber.StatusOK, "user updated", updated)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return failWith(c, fiber.StatusBadRequest, "invalid user id", codeValidationFailed)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err)
	}

	return respond(c, fiber.StatusOK, "user deleted", nil)
}

// fail maps a service or store error to a status code and failure envelope.
// Every handler funnels its errors through here so not-found, conflict, and
// validation outcomes map identically across operations. Unclassified store
// errors are logged server-side and surface as an opaque 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return failWith(c, fiber.StatusBadRequest, verr.Error(), codeValidationFailed)
	case errors.Is(err, ErrEmailExists):
		return failWith(c, fiber.StatusConflict, "email already exists", codeDuplicateEmail)
	case errors.Is(err, ErrNotFound):
		return failWith(c, fiber.StatusNotFound, "user not found", codeNotFound)
	default:
		log.Printf("store error on %s %s: %v", c.Method(), c.Path(), err)
		return failWith(c, fiber.StatusInternalServerError, "internal server error", "")
	}
}

func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func failWith(c *fiber.Ctx, status int, message, code string) error {
	return c.Status(status).JSON(envelope{
		Success: false,
		Message: message,
		Code:    code,
	})
}

func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, err
	}
	return id, nil
}
