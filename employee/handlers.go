package employee

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/asecurityteam/apierror"
	"github.com/go-chi/chi/v5"
)

// Handlers serves the directory over REST.
type Handlers struct {
	Service *Service
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx.
	URLParamFn apierror.URLParamFn
}

// Routes binds the REST endpoints. It matches the apierror.Mount signature.
func (h *Handlers) Routes(router chi.Router, errs *apierror.ErrorWriter) {
	router.Method(http.MethodGet, "/employees/{id}", errs.Handle(h.Get))
	router.Method(http.MethodPost, "/employees", errs.Handle(h.Create))
}

// Get responds with the employee named by the id URL parameter.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) error {
	urlParam := h.URLParamFn
	if urlParam == nil {
		urlParam = chi.URLParamFromCtx
	}
	raw := urlParam(r.Context(), "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return apierror.NewValidationError("Employee id is invalid", "id must be an integer but was "+strconv.Quote(raw))
	}
	e, err := h.Service.Get(r.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, e)
}

// Create stores the employee in the request body.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return apierror.NewValidationError("Unable to read request payload")
	}
	var in Employee
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	e, err := h.Service.Create(r.Context(), in)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, e)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
	return nil
}
