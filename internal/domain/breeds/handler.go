package breeds

import (
	"errors"
	"net/http"

	"animal-shelter-api/internal/platform/httpx"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/platform/schema"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(logger.Fields{"module": "breeds"})

	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc, log))
		br.Post("/", createBreedHandler(svc, log))

		// El id puede venir en la ruta o como "_id" en el body.
		br.Put("/", updateBreedHandler(svc, log))
		br.Delete("/", deleteBreedHandler(svc, log))
		br.Put("/{breedID}", updateBreedHandler(svc, log))
		br.Delete("/{breedID}", deleteBreedHandler(svc, log))
	})
}

// breedRequest es el cuerpo para crear o renombrar una raza.
type breedRequest struct {
	Name string `json:"name"`
}

// breedResponse representa una raza del catálogo.
type breedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type breedUpdatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Name    string `json:"name"`
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Devuelve todas las razas en el orden del store.
// @Tags breeds
// @Produce json
// @Success 200 {array} breedResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /breeds [get]
func listBreedsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, log, "list", err)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, breedResponse{ID: b.ID, Name: b.Name})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createBreedHandler godoc
// @Summary Crear raza
// @Description Crea una raza. El nombre es obligatorio y único.
// @Tags breeds
// @Accept json
// @Produce json
// @Param payload body breedRequest true "Nombre de la raza"
// @Success 201 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "Breed already exists"
// @Router /breeds [post]
func createBreedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		b, err := svc.Create(r.Context(), payload)
		if err != nil {
			writeServiceError(w, log, "create", err)
			return
		}

		log.Info("breed added", logger.Fields{"id": b.ID, "name": b.Name})
		httpx.WriteJSON(w, http.StatusCreated, httpx.MessageResponse{Message: "Breed added", ID: b.ID})
	}
}

// updateBreedHandler godoc
// @Summary Renombrar raza
// @Description Cambia el nombre de una raza existente. El id puede ir en la ruta o como `_id` en el body.
// @Tags breeds
// @Accept json
// @Produce json
// @Param breedID path string true "ID de la raza"
// @Param payload body breedRequest true "Nombre nuevo"
// @Success 200 {object} breedUpdatedResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "Breed not found"
// @Router /breeds/{breedID} [put]
func updateBreedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		id := httpx.TargetID(chi.URLParam(r, "breedID"), payload)
		b, err := svc.Update(r.Context(), id, payload)
		if err != nil {
			writeServiceError(w, log, "update", err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, breedUpdatedResponse{
			Message: "Breed updated",
			ID:      b.ID,
			Name:    b.Name,
		})
	}
}

// deleteBreedHandler godoc
// @Summary Borrar raza
// @Description Borra la raza. Los perros que la referencian no se tocan.
// @Tags breeds
// @Produce json
// @Param breedID path string true "ID de la raza"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse "Breed ID is required"
// @Failure 404 {object} httpx.ErrorResponse "Breed not found"
// @Router /breeds/{breedID} [delete]
func deleteBreedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		id := httpx.TargetID(chi.URLParam(r, "breedID"), payload)
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, log, "delete", err)
			return
		}

		log.Info("breed deleted", logger.Fields{"id": id})
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Breed deleted"})
	}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteValidation(w, verr)
	case errors.Is(err, ErrIDRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Breed ID is required")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Breed not found")
	case errors.Is(err, ErrConflict):
		httpx.WriteError(w, http.StatusConflict, "Breed already exists")
	default:
		log.Error("breed store operation failed", logger.Fields{"op": op, "error": err})
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
