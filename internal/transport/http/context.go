package http

import (
	"net/http"

	"weekpi/internal/middleware"
)

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
