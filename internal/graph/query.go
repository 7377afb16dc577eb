package graph

import (
	"context"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/miteshrathod09/sick-fits/internal/repository"
	"github.com/miteshrathod09/sick-fits/internal/service"
)

func (r *Resolver) Items(ctx context.Context, args struct {
	Search *string
	Skip   *int32
	First  *int32
}) ([]*itemResolver, error) {
	items, err := r.items.Items(ctx, repository.ItemFilter{
		Search: args.Search,
		Skip:   args.Skip,
		First:  args.First,
	})
	if err != nil {
		return nil, err
	}

	resolvers := make([]*itemResolver, len(items))
	for i, item := range items {
		resolvers[i] = &itemResolver{i: item}
	}
	return resolvers, nil
}

func (r *Resolver) Item(ctx context.Context, args struct{ ID graphql.ID }) (*itemResolver, error) {
	item, err := r.items.Item(ctx, string(args.ID))
	if err != nil {
		// item is a nullable lookup; a miss is null, not an error
		if !errors.Is(err, service.ErrNotFound) {
			r.logger.Error().Err(err).Str("item_id", string(args.ID)).Msg("item lookup failed")
		}
		return nil, nil
	}

	return &itemResolver{i: item}, nil
}

func (r *Resolver) ItemsConnection(ctx context.Context, args struct{ Search *string }) (*itemsConnectionResolver, error) {
	count, err := r.items.Count(ctx, repository.ItemFilter{Search: args.Search})
	if err != nil {
		return nil, err
	}

	return &itemsConnectionResolver{count: int32(count)}, nil
}

// Me returns null, not an error, for anonymous requests; the frontend uses
// it to gate UI.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	user := UserFrom(ctx)
	if user == nil {
		return nil, nil
	}

	return &userResolver{r: r, u: user}, nil
}

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.Users(ctx, UserFrom(ctx))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*userResolver, len(users))
	for i, user := range users {
		resolvers[i] = &userResolver{r: r, u: user}
	}
	return resolvers, nil
}

func (r *Resolver) Order(ctx context.Context, args struct{ ID graphql.ID }) (*orderResolver, error) {
	order, err := r.orders.Order(ctx, UserFrom(ctx), string(args.ID))
	if err != nil {
		return nil, err
	}

	return &orderResolver{r: r, o: order}, nil
}

func (r *Resolver) Orders(ctx context.Context) ([]*orderResolver, error) {
	orders, err := r.orders.Orders(ctx, UserFrom(ctx))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*orderResolver, len(orders))
	for i, order := range orders {
		resolvers[i] = &orderResolver{r: r, o: order}
	}
	return resolvers, nil
}
