package handlers

import (
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

// ProductHTTP exposes the product catalog service: POST /product command
// dispatch (create/update/delete) and GET /product/:id.
type ProductHTTP struct {
	store  interfaces.ProductStore
	logger log.Logger
}

// NewProductHTTP creates the product service handler set. Panics on nil store or logger.
//
// Called from cmd/productservice at startup.
func NewProductHTTP(store interfaces.ProductStore, logger log.Logger) *ProductHTTP {
	return &ProductHTTP{
		store:  helpers.NilPanic(store, "handlers.product.go: store is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.product.go: logger is required"), "component", "ProductHTTP"),
	}
}

// Register registers the product routes on e.
func (h *ProductHTTP) Register(e *echo.Echo) {
	e.POST("/product", h.Command)
	e.GET("/product/:id", h.Get)
}

// Command dispatches a POST /product body on its command field.
func (h *ProductHTTP) Command(c echo.Context) error {
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

func (h *ProductHTTP) create(c echo.Context, obj map[string]any, id int) error {
	name, ok := domain.String(obj, "productname")
	if !ok {
		// The workload generator sends "name" on create lines.
		name, _ = domain.String(obj, "name")
	}
	if strings.TrimSpace(name) == "" {
		return service.NewBadParameterError("Field cannot be empty: productname", nil)
	}
	description, _ := domain.String(obj, "description")
	if strings.TrimSpace(description) == "" {
		return service.NewBadParameterError("Field cannot be empty: description", nil)
	}
	price, ok := domain.Float(obj, "price")
	if !ok || price < 0 {
		return service.NewBadParameterError("Field must be >= 0: price", nil)
	}
	quantity, ok := domain.IntStrict(obj, "quantity")
	if !ok || quantity < 0 {
		return service.NewBadParameterError("Field must be >= 0: quantity", nil)
	}
	product := domain.Product{ID: id, ProductName: name, Description: description, Price: price, Quantity: quantity}
	if err := h.store.Create(c.Request().Context(), product); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) update(c echo.Context, obj map[string]any, id int) error {
	var update domain.ProductUpdate
	if name, ok := domain.String(obj, "productname"); ok {
		if strings.TrimSpace(name) == "" {
			return service.NewBadParameterError("Field cannot be empty: productname", nil)
		}
		update.ProductName = &name
	}
	if description, ok := domain.String(obj, "description"); ok {
		update.Description = &description
	}
	if price, ok := domain.Float(obj, "price"); ok {
		if price < 0 {
			return service.NewBadParameterError("Field must be >= 0: price", nil)
		}
		update.Price = &price
	}
	if quantity, ok := domain.IntStrict(obj, "quantity"); ok {
		if quantity < 0 {
			return service.NewBadParameterError("Field must be >= 0: quantity", nil)
		}
		update.Quantity = &quantity
	} else if _, present := obj["quantity"]; present {
		return service.NewBadParameterError("Field must be >= 0: quantity", nil)
	}
	if update.Empty() {
		return service.NewBadParameterError("No updatable fields provided", nil)
	}
	product, err := h.store.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) delete(c echo.Context, obj map[string]any, id int) error {
	name, _ := domain.String(obj, "productname")
	if strings.TrimSpace(name) == "" {
		return service.NewBadParameterError("Field cannot be empty: productname", nil)
	}
	price, ok := domain.Float(obj, "price")
	if !ok {
		return service.NewBadParameterError("Field must be >= 0: price", nil)
	}
	quantity, ok := domain.IntStrict(obj, "quantity")
	if !ok {
		return service.NewBadParameterError("Field must be >= 0: quantity", nil)
	}
	if err := h.store.Delete(c.Request().Context(), id, name, price, quantity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusReply{Status: "deleted"})
}

// Get returns the product by path id.
func (h *ProductHTTP) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return service.NewBadParameterError("Invalid product id", err)
	}
	product, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
