package rescuetypes

import (
	"errors"
	"net/http"

	"animal-shelter-api/internal/platform/httpx"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/platform/schema"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(logger.Fields{"module": "rescuetypes"})

	r.Route("/rescue-types", func(br chi.Router) {
		br.Get("/", listRescueTypesHandler(svc, log))
		br.Post("/", createRescueTypeHandler(svc, log))

		// El id puede venir en la ruta o como "_id" en el body.
		br.Put("/", updateRescueTypeHandler(svc, log))
		br.Delete("/", deleteRescueTypeHandler(svc, log))
		br.Put("/{rescueTypeID}", updateRescueTypeHandler(svc, log))
		br.Delete("/{rescueTypeID}", deleteRescueTypeHandler(svc, log))
	})
}

// rescueTypeRequest es el cuerpo para crear o renombrar un tipo de rescate.
type rescueTypeRequest struct {
	Name string `json:"name"`
}

// rescueTypeResponse representa un tipo de rescate del catálogo.
type rescueTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rescueTypeUpdatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Name    string `json:"name"`
}

// listRescueTypesHandler godoc
// @Summary Listar tipos de rescate
// @Description Devuelve todas los tipos de rescate en el orden del store.
// @Tags rescue-types
// @Produce json
// @Success 200 {array} rescueTypeResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /rescue-types [get]
func listRescueTypesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, log, "list", err)
			return
		}

		out := make([]rescueTypeResponse, 0, len(items))
		for _, rt := range items {
			out = append(out, rescueTypeResponse{ID: rt.ID, Name: rt.Name})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createRescueTypeHandler godoc
// @Summary Crear tipo de rescate
// @Description Crea un tipo de rescate. El nombre es obligatorio y único.
// @Tags rescue-types
// @Accept json
// @Produce json
// @Param payload body rescueTypeRequest true "Nombre de el tipo de rescate"
// @Success 201 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "Rescue type already exists"
// @Router /rescue-types [post]
func createRescueTypeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		rt, err := svc.Create(r.Context(), payload)
		if err != nil {
			writeServiceError(w, log, "create", err)
			return
		}

		log.Info("rescue type added", logger.Fields{"id": rt.ID, "name": rt.Name})
		httpx.WriteJSON(w, http.StatusCreated, httpx.MessageResponse{Message: "Rescue type added", ID: rt.ID})
	}
}

// updateRescueTypeHandler godoc
// @Summary Renombrar tipo de rescate
// @Description Cambia el nombre de un tipo de rescate existente. El id puede ir en la ruta o como `_id` en el body.
// @Tags rescue-types
// @Accept json
// @Produce json
// @Param rescueTypeID path string true "ID de el tipo de rescate"
// @Param payload body rescueTypeRequest true "Nombre nuevo"
// @Success 200 {object} rescueTypeUpdatedResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "Rescue type not found"
// @Router /rescue-types/{rescueTypeID} [put]
func updateRescueTypeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		id := httpx.TargetID(chi.URLParam(r, "rescueTypeID"), payload)
		rt, err := svc.Update(r.Context(), id, payload)
		if err != nil {
			writeServiceError(w, log, "update", err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, rescueTypeUpdatedResponse{
			Message: "Rescue type updated",
			ID:      rt.ID,
			Name:    rt.Name,
		})
	}
}

// deleteRescueTypeHandler godoc
// @Summary Borrar tipo de rescate
// @Description Borra el tipo de rescate. Los perros que lo referencian no se tocan.
// @Tags rescue-types
// @Produce json
// @Param rescueTypeID path string true "ID de el tipo de rescate"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse "Rescue type ID is required"
// @Failure 404 {object} httpx.ErrorResponse "Rescue type not found"
// @Router /rescue-types/{rescueTypeID} [delete]
func deleteRescueTypeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		id := httpx.TargetID(chi.URLParam(r, "rescueTypeID"), payload)
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, log, "delete", err)
			return
		}

		log.Info("rescue type deleted", logger.Fields{"id": id})
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Rescue type deleted"})
	}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteValidation(w, verr)
	case errors.Is(err, ErrIDRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Rescue type ID is required")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Rescue type not found")
	case errors.Is(err, ErrConflict):
		httpx.WriteError(w, http.StatusConflict, "Rescue type already exists")
	default:
		log.Error("rescue type store operation failed", logger.Fields{"op": op, "error": err})
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
