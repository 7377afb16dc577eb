package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/miteshrathod09/sick-fits/internal/service"
)

func (r *Resolver) CreateItem(ctx context.Context, args struct {
	Title       string
	Description string
	Price       int32
	Image       *string
	LargeImage  *string
}) (*itemResolver, error) {
	input := service.ItemInput{
		Title:       args.Title,
		Description: args.Description,
		Price:       int64(args.Price),
	}
	if args.Image != nil {
		input.Image = *args.Image
	}
	if args.LargeImage != nil {
		input.LargeImage = *args.LargeImage
	}

	item, err := r.items.Create(ctx, UserFrom(ctx), input)
	if err != nil {
		return nil, err
	}

	return &itemResolver{i: item}, nil
}

func (r *Resolver) UpdateItem(ctx context.Context, args struct {
	ID          graphql.ID
	Title       *string
	Description *string
	Price       *int32
}) (*itemResolver, error) {
	updates := service.ItemUpdates{
		Title:       args.Title,
		Description: args.Description,
	}
	if args.Price != nil {
		price := int64(*args.Price)
		updates.Price = &price
	}

	item, err := r.items.Update(ctx, UserFrom(ctx), string(args.ID), updates)
	if err != nil {
		return nil, err
	}

	return &itemResolver{i: item}, nil
}

func (r *Resolver) DeleteItem(ctx context.Context, args struct{ ID graphql.ID }) (*itemResolver, error) {
	item, err := r.items.Delete(ctx, UserFrom(ctx), string(args.ID))
	if err != nil {
		return nil, err
	}

	return &itemResolver{i: item}, nil
}

func (r *Resolver) Signup(ctx context.Context, args struct {
	Email    string
	Name     string
	Password string
}) (*userResolver, error) {
	user, token, err := r.auth.Signup(ctx, args.Name, args.Email, args.Password)
	if err != nil {
		return nil, err
	}

	if cw := cookieWriterFrom(ctx); cw != nil {
		cw.SetToken(token)
	}

	return &userResolver{r: r, u: user}, nil
}

func (r *Resolver) Signin(ctx context.Context, args struct {
	Email    string
	Password string
}) (*userResolver, error) {
	user, token, err := r.auth.Signin(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}

	if cw := cookieWriterFrom(ctx); cw != nil {
		cw.SetToken(token)
	}

	return &userResolver{r: r, u: user}, nil
}

func (r *Resolver) Signout(ctx context.Context) (*successMessageResolver, error) {
	if err := r.auth.Signout(ctx, SessionIDFrom(ctx)); err != nil {
		return nil, err
	}

	if cw := cookieWriterFrom(ctx); cw != nil {
		cw.Clear()
	}

	return &successMessageResolver{message: "Goodbye!"}, nil
}

func (r *Resolver) RequestReset(ctx context.Context, args struct{ Email string }) (*successMessageResolver, error) {
	if err := r.auth.RequestReset(ctx, args.Email); err != nil {
		return nil, err
	}

	return &successMessageResolver{message: "Success"}, nil
}

func (r *Resolver) ResetPassword(ctx context.Context, args struct {
	ResetToken      string
	Password        string
	ConfirmPassword string
}) (*userResolver, error) {
	user, token, err := r.auth.ResetPassword(ctx, args.ResetToken, args.Password, args.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	if cw := cookieWriterFrom(ctx); cw != nil {
		cw.SetToken(token)
	}

	return &userResolver{r: r, u: user}, nil
}

func (r *Resolver) UpdatePermissions(ctx context.Context, args struct {
	Permissions []string
	UserID      graphql.ID
}) (*userResolver, error) {
	user, err := r.users.UpdatePermissions(ctx, UserFrom(ctx), string(args.UserID), args.Permissions)
	if err != nil {
		return nil, err
	}

	return &userResolver{r: r, u: user}, nil
}

func (r *Resolver) AddToCart(ctx context.Context, args struct{ ID graphql.ID }) (*cartItemResolver, error) {
	cartItem, err := r.carts.AddToCart(ctx, UserFrom(ctx), string(args.ID))
	if err != nil {
		return nil, err
	}

	return &cartItemResolver{r: r, c: cartItem}, nil
}

func (r *Resolver) RemoveFromCart(ctx context.Context, args struct{ ID graphql.ID }) (*cartItemResolver, error) {
	cartItem, err := r.carts.RemoveFromCart(ctx, UserFrom(ctx), string(args.ID))
	if err != nil {
		return nil, err
	}

	return &cartItemResolver{r: r, c: cartItem}, nil
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Token string }) (*orderResolver, error) {
	order, err := r.orders.CreateOrder(ctx, UserFrom(ctx), args.Token)
	if err != nil {
		return nil, err
	}

	return &orderResolver{r: r, o: order}, nil
}
