package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/helpers"
	"github.com/mughalk/csc301-a2/interfaces"
	"github.com/mughalk/csc301-a2/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// UserHTTP exposes the user record service: POST /user command dispatch
// (create/update/delete) and GET /user/:id.
type UserHTTP struct {
	store  interfaces.UserStore
	logger log.Logger
}

// NewUserHTTP creates the user service handler set. Panics on nil store or logger.
//
// Called from cmd/userservice at startup.
func NewUserHTTP(store interfaces.UserStore, logger log.Logger) *UserHTTP {
	return &UserHTTP{
		store:  helpers.NilPanic(store, "handlers.user.go: store is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.user.go: logger is required"), "component", "UserHTTP"),
	}
}

// Register registers the user routes on e.
func (h *UserHTTP) Register(e *echo.Echo) {
	e.POST("/user", h.Command)
	e.GET("/user/:id", h.Get)
}

// Command dispatches a POST /user body on its command field: create, update or delete.
func (h *UserHTTP) Command(c echo.Context) error {
	obj, err := readObject(c)
	if err != nil {
		return err
	}
	command, ok := domain.String(obj, "command")
	if !ok || strings.TrimSpace(command) == "" {
		return service.NewBadParameterError("Field cannot be empty: command", nil)
	}
	id, ok := domain.IntStrict(obj, "id")
	if !ok || id <= 0 {
		return service.NewBadParameterError("Field must be > 0: id", nil)
	}

	switch strings.ToLower(strings.TrimSpace(command)) {
	case "create":
		return h.create(c, obj, id)
	case "update":
		return h.update(c, obj, id)
	case "delete":
		return h.delete(c, obj, id)
	default:
		return service.NewBadParameterError("Invalid command", nil)
	}
}

func (h *UserHTTP) create(c echo.Context, obj map[string]any, id int) error {
	username, _ := domain.String(obj, "username")
	email, _ := domain.String(obj, "email")
	password, _ := domain.String(obj, "password")
	for field, value := range map[string]string{"username": username, "email": email, "password": password} {
		if strings.TrimSpace(value) == "" {
			return service.NewBadParameterError("Field cannot be empty: "+field, nil)
		}
	}
	user := domain.User{ID: id, Username: username, Email: email, Password: password}
	if err := h.store.Create(c.Request().Context(), user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) update(c echo.Context, obj map[string]any, id int) error {
	var update domain.UserUpdate
	if username, ok := domain.String(obj, "username"); ok {
		if strings.TrimSpace(username) == "" {
			return service.NewBadParameterError("Field cannot be empty: username", nil)
		}
		update.Username = &username
	}
	if email, ok := domain.String(obj, "email"); ok {
		update.Email = &email
	}
	if password, ok := domain.String(obj, "password"); ok {
		update.Password = &password
	}
	if update.Empty() {
		return service.NewBadParameterError("No updatable fields provided", nil)
	}
	user, err := h.store.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) delete(c echo.Context, obj map[string]any, id int) error {
	username, _ := domain.String(obj, "username")
	email, _ := domain.String(obj, "email")
	password, _ := domain.String(obj, "password")
	for field, value := range map[string]string{"username": username, "email": email, "password": password} {
		if strings.TrimSpace(value) == "" {
			return service.NewBadParameterError("Field cannot be empty: "+field, nil)
		}
	}
	if err := h.store.Delete(c.Request().Context(), id, username, email, password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusReply{Status: "deleted"})
}

// Get returns the user by path id. The stored record is returned as-is, password
// included — the fleet's existing (and questionable) wire behavior.
func (h *UserHTTP) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return service.NewBadParameterError("Invalid user id", err)
	}
	user, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// readObject decodes the request body as a JSON object with strict numbers.
func readObject(c echo.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, service.NewBadParameterError("Invalid JSON", err)
	}
	obj, err := domain.DecodeObject(body)
	if err != nil {
		return nil, service.NewBadParameterError("Invalid JSON", err)
	}
	return obj, nil
}
