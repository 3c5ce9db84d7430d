package responses

import (
	"net/http"

	"promoadmin/internal/structs"
)

const (
	UnauthorizedCode = http.StatusUnauthorized
	ForbiddenCode    = http.StatusForbidden
)

var (
	Success      = structs.Response{Status: 0, Description: "success"}
	BadRequest   = structs.Response{Status: 400, Description: "bad request"}
	Unauthorized = structs.Response{Status: 401, Description: "unauthorized"}
	Forbidden    = structs.Response{Status: 403, Description: "forbidden"}
	NotFound     = structs.Response{Status: 404, Description: "not found"}
	InternalErr  = structs.Response{Status: 500, Description: "internal error"}
)
