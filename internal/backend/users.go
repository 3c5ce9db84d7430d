package backend

import (
	"context"
	"fmt"
	"net/http"

	"promoadmin/internal/structs"
)

// CreateUser posts a new user record. Also used unauthenticated for
// self-registration.
func (c *client) CreateUser(ctx context.Context, token string, user structs.User) (structs.User, error) {
	var created structs.User

	err := c.doJSON(ctx, http.MethodPost, "/admins", token, user, &created)
	if err != nil {
		return structs.User{}, err
	}

	return created, nil
}

func (c *client) ListUsers(ctx context.Context, token string) ([]structs.User, error) {
	var users []structs.User

	err := c.doJSON(ctx, http.MethodGet, "/admins", token, nil, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (c *client) GetUser(ctx context.Context, token string, id int64) (structs.User, error) {
	var user structs.User

	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/admins/%d", id), token, nil, &user)
	if err != nil {
		return structs.User{}, err
	}

	return user, nil
}

func (c *client) UpdateUser(ctx context.Context, token string, id int64, user structs.User) (structs.User, error) {
	var updated structs.User

	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/admins/%d", id), token, user, &updated)
	if err != nil {
		return structs.User{}, err
	}

	return updated, nil
}

func (c *client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/admins/%d", id), token, nil, nil)
}
