package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/graph"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const maxBodyBytes = 1 << 20

// GraphQLHandler serves the API. Operation level failures, auth included, are
// reported inside a 200 response; only requests that cannot be read get a 400.
// GET only runs queries, so credentials and writes never travel in a URL.
type GraphQLHandler struct {
	Schema *graph.Schema
}

func (h *GraphQLHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var req graph.Request

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		slogx.FromContext(r.Context()).Debug("malformed graphql body", "error", err)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		if errors.Is(err, io.EOF) {
			httpx.WriteError(w, http.StatusBadRequest, "empty request body")
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	h.execute(w, r, req)
}

func (h *GraphQLHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := graph.Request{
		Query:         q.Get("query"),
		OperationName: q.Get("operationName"),
	}

	switch graph.OperationKind(req.Query, req.OperationName) {
	case graph.OperationMutation, graph.OperationSubscription:
		slogx.FromContext(r.Context()).Info("rejected non-query operation over GET")
		w.Header().Set("Allow", http.MethodPost)
		httpx.WriteError(w, http.StatusMethodNotAllowed, "only queries may be sent with GET, use POST")
		return
	}

	if raw := q.Get("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "variables must be a JSON object")
			return
		}
	}

	h.execute(w, r, req)
}

func (h *GraphQLHandler) execute(w http.ResponseWriter, r *http.Request, req graph.Request) {
	if req.Query == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing query")
		return
	}

	res := h.Schema.Execute(r.Context(), req)
	httpx.WriteJSON(w, http.StatusOK, res)
}
