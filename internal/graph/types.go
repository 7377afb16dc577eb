package graph

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go"

	"github.com/miteshrathod09/sick-fits/internal/model"
)

type userResolver struct {
	r *Resolver
	u *model.User
}

func (ur *userResolver) ID() graphql.ID {
	return graphql.ID(ur.u.ID)
}

func (ur *userResolver) Name() string {
	return ur.u.Name
}

func (ur *userResolver) Email() string {
	return ur.u.Email
}

func (ur *userResolver) Permissions() []string {
	if ur.u.Permissions == nil {
		return []string{}
	}
	return ur.u.Permissions
}

func (ur *userResolver) Cart(ctx context.Context) ([]*cartItemResolver, error) {
	cart, err := ur.r.carts.Cart(ctx, ur.u.ID)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*cartItemResolver, len(cart))
	for i, cartItem := range cart {
		resolvers[i] = &cartItemResolver{r: ur.r, c: cartItem}
	}
	return resolvers, nil
}

func (ur *userResolver) Orders(ctx context.Context) ([]*orderResolver, error) {
	orders, err := ur.r.orders.Orders(ctx, ur.u)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*orderResolver, len(orders))
	for i, order := range orders {
		resolvers[i] = &orderResolver{r: ur.r, o: order}
	}
	return resolvers, nil
}

type itemResolver struct {
	i *model.Item
}

func (ir *itemResolver) ID() graphql.ID {
	return graphql.ID(ir.i.ID)
}

func (ir *itemResolver) Title() string {
	return ir.i.Title
}

func (ir *itemResolver) Description() string {
	return ir.i.Description
}

func (ir *itemResolver) Price() int32 {
	return int32(ir.i.Price)
}

func (ir *itemResolver) Image() *string {
	return optionalString(ir.i.Image)
}

func (ir *itemResolver) LargeImage() *string {
	return optionalString(ir.i.LargeImage)
}

type cartItemResolver struct {
	r *Resolver
	c *model.CartItem
}

func (cr *cartItemResolver) ID() graphql.ID {
	return graphql.ID(cr.c.ID)
}

func (cr *cartItemResolver) Quantity() int32 {
	return cr.c.Quantity
}

// Item is nullable: the catalog entry behind a cart line may have been
// deleted since it was added.
func (cr *cartItemResolver) Item() *itemResolver {
	if cr.c.Item == nil {
		return nil
	}
	return &itemResolver{i: cr.c.Item}
}

func (cr *cartItemResolver) User(ctx context.Context) (*userResolver, error) {
	user, err := cr.r.users.ByID(ctx, cr.c.UserID)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: cr.r, u: user}, nil
}

type orderResolver struct {
	r *Resolver
	o *model.Order
}

func (or *orderResolver) ID() graphql.ID {
	return graphql.ID(or.o.ID)
}

func (or *orderResolver) Total() int32 {
	return int32(or.o.Total)
}

func (or *orderResolver) Charge() string {
	return or.o.Charge
}

func (or *orderResolver) Items() []*orderItemResolver {
	resolvers := make([]*orderItemResolver, len(or.o.Items))
	for i := range or.o.Items {
		resolvers[i] = &orderItemResolver{oi: &or.o.Items[i]}
	}
	return resolvers
}

func (or *orderResolver) User(ctx context.Context) (*userResolver, error) {
	user, err := or.r.users.ByID(ctx, or.o.UserID)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: or.r, u: user}, nil
}

func (or *orderResolver) CreatedAt() string {
	return or.o.CreatedAt.Format(time.RFC3339)
}

type orderItemResolver struct {
	oi *model.OrderItem
}

func (oir *orderItemResolver) ID() graphql.ID {
	return graphql.ID(oir.oi.ID)
}

func (oir *orderItemResolver) Title() string {
	return oir.oi.Title
}

func (oir *orderItemResolver) Description() string {
	return oir.oi.Description
}

func (oir *orderItemResolver) Price() int32 {
	return int32(oir.oi.Price)
}

func (oir *orderItemResolver) Image() *string {
	return optionalString(oir.oi.Image)
}

func (oir *orderItemResolver) LargeImage() *string {
	return optionalString(oir.oi.LargeImage)
}

func (oir *orderItemResolver) Quantity() int32 {
	return oir.oi.Quantity
}

type itemsConnectionResolver struct {
	count int32
}

func (icr *itemsConnectionResolver) Aggregate() *aggregateResolver {
	return &aggregateResolver{count: icr.count}
}

type aggregateResolver struct {
	count int32
}

func (ar *aggregateResolver) Count() int32 {
	return ar.count
}

type successMessageResolver struct {
	message string
}

func (sr *successMessageResolver) Message() string {
	return sr.message
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
