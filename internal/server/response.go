package server

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

// ErrorResponse is the body of every non-2xx JSON reply
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSONResponse(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		writeJSONError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeJSONError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(body)
}

func methodNotAllowed(ctx *fasthttp.RequestCtx) {
	writeJSONError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
}
