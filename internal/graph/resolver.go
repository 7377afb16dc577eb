package graph

import (
	"github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/miteshrathod09/sick-fits/internal/service"
)

// Resolver is the root resolver; it holds the services every operation
// delegates to.
type Resolver struct {
	auth   service.AuthService
	users  service.UserService
	items  service.ItemService
	carts  service.CartService
	orders service.OrderService
	logger zerolog.Logger
}

func NewResolver(
	auth service.AuthService,
	users service.UserService,
	items service.ItemService,
	carts service.CartService,
	orders service.OrderService,
	logger zerolog.Logger,
) *Resolver {
	return &Resolver{
		auth:   auth,
		users:  users,
		items:  items,
		carts:  carts,
		orders: orders,
		logger: logger,
	}
}

// ParseSchema binds the SDL to the resolver tree.
func ParseSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r, graphql.MaxDepth(12))
}
