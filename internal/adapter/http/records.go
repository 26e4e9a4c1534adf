package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// resource names an entity kind in responses and logs.
type resource struct {
	singular string // "Project"
	plural   string // "projects"
}

var (
	projects      = resource{"Project", "projects"}
	assets        = resource{"Asset", "assets"}
	campaigns     = resource{"Campaign", "campaigns"}
	messages      = resource{"Message", "messages"}
	feedback      = resource{"Feedback item", "feedback items"}
	teamMembers   = resource{"Team member", "team members"}
	profitability = resource{"Project profitability", "project profitability"}
)

func (res resource) notFound() string { return res.singular + " not found" }

// handleList writes every record of a collection as a JSON array.
func handleList[T any](h *Handler, res resource, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			h.internalError(w, "list "+res.plural, err, "Failed to fetch "+res.plural)
			return
		}
		if items == nil {
			items = []T{}
		}
		h.writeJSON(w, http.StatusOK, items)
	}
}

// handleGet looks a record up by the {id} path parameter. Absence maps to
// HTTP 404.
func handleGet[T any](h *Handler, res resource, get func(context.Context, string) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.internalError(w, "get "+res.singular, err, "Failed to fetch "+res.singular)
			return
		}
		if item == nil {
			h.writeError(w, http.StatusNotFound, res.notFound())
			return
		}
		h.writeJSON(w, http.StatusOK, item)
	}
}

// handleCreate decodes and validates In, inserts it and replies 201 with
// the stored record.
func handleCreate[In, T any](h *Handler, res resource, create func(context.Context, In) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if !h.decode(w, r, &in) {
			return
		}
		item, err := create(r.Context(), in)
		if err != nil {
			h.internalError(w, "create "+res.singular, err, "Failed to create "+res.singular)
			return
		}
		h.logger.Debug("record created", slog.String("kind", res.plural))
		h.writeJSON(w, http.StatusCreated, item)
	}
}

// handleUpdate decodes a partial update and merges it into the record
// named by {id}.
func handleUpdate[P, T any](h *Handler, res resource, update func(context.Context, string, P) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch P
		if !h.decode(w, r, &patch) {
			return
		}
		item, err := update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			h.internalError(w, "update "+res.singular, err, "Failed to update "+res.singular)
			return
		}
		if item == nil {
			h.writeError(w, http.StatusNotFound, res.notFound())
			return
		}
		h.writeJSON(w, http.StatusOK, item)
	}
}

// handleDelete removes the record named by {id}; 204 on success, 404 when
// nothing was removed.
func handleDelete(h *Handler, res resource, del func(context.Context, string) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := del(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.internalError(w, "delete "+res.singular, err, "Failed to delete "+res.singular)
			return
		}
		if !removed {
			h.writeError(w, http.StatusNotFound, res.notFound())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
