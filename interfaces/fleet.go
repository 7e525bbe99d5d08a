package interfaces

import (
	"context"

	"github.com/mughalk/csc301-a2/domain"
)

// FleetClient is the order orchestrator's view of the rest of the fleet, reached only
// through the inter-service router — the orchestrator never holds a backend address
// itself.
//
// Implemented by adapters.RouterFleet. Called from service.OrderPlacer during the
// placement workflow and the purchases query.
//
//go:generate moq -stub -out mock/fleet.go -pkg mock . FleetClient
type FleetClient interface {
	// GetUser reads the user by id (GET <router>/user/<id>). Transport failures are
	// folded into a status-500 result, so the caller only inspects the status.
	GetUser(ctx context.Context, id int) domain.ProxyResult

	// GetProduct reads the product by id (GET <router>/product/<id>); the body carries
	// the current stock in its "quantity" field.
	GetProduct(ctx context.Context, id int) domain.ProxyResult

	// UpdateProductQuantity sets the product's absolute stock
	// (POST <router>/product with {"command":"update","id":id,"quantity":quantity}).
	UpdateProductQuantity(ctx context.Context, id, quantity int) domain.ProxyResult
}
