// Package graph assembles the GraphQL schema over the user and item services.
//
// The schema is built explicitly at startup from typed resolver functions;
// there is no type registry and no generated code. Domain records cross the
// boundary through the payload mapping functions in payload.go, never directly.
package graph

import (
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql"

	"github.com/jmallet/plop/internal/service"
	"github.com/jmallet/plop/internal/storage"
)

// NewSchema constructs the query/mutation schema bound to the given services.
// The store is only used for the dbStatus health query.
func NewSchema(users *service.UserService, items *service.ItemService, store storage.Store) (graphql.Schema, error) {
	itemType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Item",
		Description: "An item owned by a user.",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "A registered user account.",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	// All items owned by this user, newest first, resolved lazily per request.
	// The owner was already resolved by the parent field, so no existence
	// check: a user deleted mid-request yields an empty list, not an error.
	userType.AddFieldConfig("items", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			owner, ok := p.Source.(userPayload)
			if !ok {
				return nil, errors.New("internal server error")
			}
			owned, err := items.ItemsOwnedBy(p.Context, int64(owner.ID))
			if err != nil {
				return nil, requestError("User.items", err)
			}
			return newItemPayloads(owned), nil
		},
	})

	// The owning user. Nullable: the owner can disappear between the item
	// lookup and this resolution.
	itemType.AddFieldConfig("user", &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			item, ok := p.Source.(itemPayload)
			if !ok {
				return nil, errors.New("internal server error")
			}
			owner, err := users.GetUserByID(p.Context, int64(item.UserID))
			if err != nil {
				return nil, requestError("Item.user", err)
			}
			if owner == nil {
				return nil, nil
			}
			return newUserPayload(owner), nil
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Plop GraphQL!", nil
				},
			},
			"dbStatus": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Reports whether the database connection is alive.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := store.Ping(p.Context); err != nil {
						return "Database connection fail: " + err.Error(), nil
					}
					return "Database connection is active.", nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					all, err := users.GetAllUsers(p.Context)
					if err != nil {
						return nil, requestError("users", err)
					}
					return newUserPayloads(all), nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := users.GetUserByID(p.Context, int64(p.Args["userId"].(int)))
					if err != nil {
						return nil, requestError("user", err)
					}
					if user == nil {
						return nil, nil
					}
					return newUserPayload(user), nil
				},
			},
			"items": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType))),
				Description: "Items owned by the given user, newest first.",
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					owned, err := items.GetUserItems(p.Context, int64(p.Args["userId"].(int)))
					if err != nil {
						return nil, requestError("items", err)
					}
					return newItemPayloads(owned), nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := users.CreateUser(p.Context,
						p.Args["email"].(string),
						p.Args["username"].(string),
					)
					if err != nil {
						return nil, requestError("createUser", err)
					}
					return newUserPayload(user), nil
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					deleted, err := users.DeleteUser(p.Context, int64(p.Args["userId"].(int)))
					if err != nil {
						return nil, requestError("deleteUser", err)
					}
					return deleted, nil
				},
			},
			"createItem": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					item, err := items.CreateItemForUser(p.Context,
						int64(p.Args["userId"].(int)),
						p.Args["name"].(string),
					)
					if err != nil {
						return nil, requestError("createItem", err)
					}
					return newItemPayload(item), nil
				},
			},
			"deleteItem": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"itemId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					deleted, err := items.DeleteItem(p.Context, int64(p.Args["itemId"].(int)))
					if err != nil {
						return nil, requestError("deleteItem", err)
					}
					return deleted, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// requestError converts a service error into one safe to return to clients.
// Validation and not-found errors keep their message; anything else is logged
// and replaced so driver and SQL detail never reaches the response.
func requestError(op string, err error) error {
	var verr *service.ValidationError
	var nferr *service.NotFoundError
	if errors.As(err, &verr) || errors.As(err, &nferr) {
		return err
	}
	slog.Error("Resolver failed", "operation", op, "error", err)
	return errors.New("internal server error")
}
