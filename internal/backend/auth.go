package backend

import (
	"context"
	"net/http"

	"promoadmin/internal/structs"
)

// Login exchanges credentials for an access token and role.
func (c *client) Login(ctx context.Context, req structs.LoginDraft) (structs.LoginResponse, error) {
	var resp structs.LoginResponse

	err := c.doJSON(ctx, http.MethodPost, "/users/login", "", req, &resp)
	if err != nil {
		return structs.LoginResponse{}, err
	}

	return resp, nil
}
