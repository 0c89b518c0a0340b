// Package passenger exposes the passenger queries over HTTP.
//
// Each exported function is a factory: it receives the query handler
// once at startup and returns the http.HandlerFunc the router calls on
// every request. The HTTP layer only translates. It builds the query
// from the request, runs the handler, and maps the result or error to
// JSON.
//
// Route table (see Register):
//
//	GET /api/passengers                  list, ?survived=true|false|null
//	GET /api/passengers/{id}             one passenger
//	GET /api/passengers/by-age           youngest first
//	GET /api/passengers/by-class         grouped by travel class
//	GET /api/passengers/survival-rates   survival rates by sex
package passenger

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/titanic-api/internal/queries"
	"github.com/aanand-mishra/titanic-api/internal/types"
	"github.com/aanand-mishra/titanic-api/internal/utils/response"
)

// Handlers bundles the query handlers the routes dispatch to.
type Handlers struct {
	List      queries.Handler[queries.GetPassengersQuery, []types.Passenger]
	ByID      queries.Handler[queries.GetPassengerByIDQuery, types.PassengerDto]
	ByAge     queries.Handler[queries.GetPassengersByAgeQuery, []types.Passenger]
	ByClass   queries.Handler[queries.GetByClassQuery, types.FinalClassBreakdown]
	Survivals queries.Handler[queries.GetSurvivalsQuery, types.SurvivalsResult]
}

// Register mounts every passenger route on router. The literal
// segments (by-age, by-class...) are more specific than {id}, so the
// ServeMux routes them first.
func Register(router *http.ServeMux, h Handlers) {
	router.HandleFunc("GET /api/passengers", GetList(h.List))
	router.HandleFunc("GET /api/passengers/{id}", GetByID(h.ByID))
	router.HandleFunc("GET /api/passengers/by-age", GetByAge(h.ByAge))
	router.HandleFunc("GET /api/passengers/by-class", GetByClass(h.ByClass))
	router.HandleFunc("GET /api/passengers/survival-rates", GetSurvivalRates(h.Survivals))
	router.HandleFunc("GET /health", Health())
}

// GetList handles GET /api/passengers.
//
// The survived query parameter is passed through as is; the query
// validator rejects anything other than true, false or null with 400.
// An empty result is [] with 200.
func GetList(h queries.Handler[queries.GetPassengersQuery, []types.Passenger]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queries.GetPassengersQuery{Survived: r.URL.Query().Get("survived")}

		passengers, err := h.Handle(r.Context(), q)
		if err != nil {
			writeError(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, passengers)
	}
}

// GetByID handles GET /api/passengers/{id}.
//
// 400 when id is not an integer (or fails validation), 404 when no
// passenger has it.
func GetByID(h queries.Handler[queries.GetPassengerByIDQuery, types.PassengerDto]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		dto, err := h.Handle(r.Context(), queries.GetPassengerByIDQuery{ID: intID})
		if err != nil {
			writeError(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, dto)
	}
}

// GetByAge handles GET /api/passengers/by-age.
func GetByAge(h queries.Handler[queries.GetPassengersByAgeQuery, []types.Passenger]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		passengers, err := h.Handle(r.Context(), queries.GetPassengersByAgeQuery{})
		if err != nil {
			writeError(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, passengers)
	}
}

// GetByClass handles GET /api/passengers/by-class.
func GetByClass(h queries.Handler[queries.GetByClassQuery, types.FinalClassBreakdown]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breakdown, err := h.Handle(r.Context(), queries.GetByClassQuery{})
		if err != nil {
			writeError(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, breakdown)
	}
}

// GetSurvivalRates handles GET /api/passengers/survival-rates.
func GetSurvivalRates(h queries.Handler[queries.GetSurvivalsQuery, types.SurvivalsResult]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := h.Handle(r.Context(), queries.GetSurvivalsQuery{})
		if err != nil {
			writeError(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, rates)
	}
}

// Health handles GET /health.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	}
}

// writeError maps the query error taxonomy onto status codes:
// validation 400, not found 404, anything else 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *queries.ValidationError
	switch {
	case errors.As(err, &verr):
		response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verr.Failures))
	case errors.Is(err, queries.ErrNotFound):
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
	default:
		slog.Error("query failed", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
	}
}
