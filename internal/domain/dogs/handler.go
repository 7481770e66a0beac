package dogs

import (
	"errors"
	"net/http"

	"animal-shelter-api/internal/platform/httpx"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/platform/schema"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(logger.Fields{"module": "dogs"})

	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc, log))
		dr.Post("/", createDogHandler(svc, log))

		// Sin id en la ruta se toma "_id" del body.
		dr.Put("/", updateDogHandler(svc, log))
		dr.Delete("/", deleteDogHandler(svc, log))

		// {dogID} = animal_id o id del store
		dr.Get("/{dogID}", getDogHandler(svc, log))
		dr.Put("/{dogID}", updateDogHandler(svc, log))
		dr.Delete("/{dogID}", deleteDogHandler(svc, log))
	})
}

// dogRequest documenta los campos aceptados. El handler decodifica a un mapa
// suelto; los numéricos pueden venir como string ("30.5").
type dogRequest struct {
	AnimalID              string   `json:"animal_id"`
	Name                  string   `json:"name"`
	AnimalType            string   `json:"animal_type" example:"Dog"`
	Breed                 string   `json:"breed"`
	RescueType            string   `json:"rescue_type"`
	Color                 string   `json:"color"`
	SexUponOutcome        string   `json:"sex_upon_outcome"`
	DateOfBirth           string   `json:"date_of_birth"`
	DateTime              string   `json:"datetime"`
	MonthYear             string   `json:"monthyear"`
	AgeUponOutcome        string   `json:"age_upon_outcome" example:"2 years"`
	AgeUponOutcomeInWeeks *float64 `json:"age_upon_outcome_in_weeks"`
	Age                   *int     `json:"age"`
	Weight                *int     `json:"weight"`
	No                    *int     `json:"no"`
	OutcomeType           string   `json:"outcome_type" example:"Adoption"`
	OutcomeSubtype        string   `json:"outcome_subtype"`
	LocationLat           *float64 `json:"location_lat"`
	LocationLong          *float64 `json:"location_long"`
	Description           string   `json:"description"`
	Status                Status   `json:"status" enums:"available,adopted,pending"`
}

// dogResponse es el registro completo (breed/rescue_type como nombres).
type dogResponse struct {
	ID                    string   `json:"id"`
	AnimalID              string   `json:"animal_id"`
	No                    *int     `json:"no"`
	Name                  string   `json:"name"`
	AnimalType            string   `json:"animal_type"`
	Breed                 string   `json:"breed"`
	RescueType            string   `json:"rescue_type"`
	Color                 string   `json:"color"`
	SexUponOutcome        string   `json:"sex_upon_outcome"`
	DateOfBirth           string   `json:"date_of_birth"`
	DateTime              string   `json:"datetime"`
	MonthYear             string   `json:"monthyear"`
	AgeUponOutcome        string   `json:"age_upon_outcome"`
	AgeUponOutcomeInWeeks *float64 `json:"age_upon_outcome_in_weeks"`
	Age                   *int     `json:"age"`
	Weight                *int     `json:"weight"`
	OutcomeType           string   `json:"outcome_type"`
	OutcomeSubtype        string   `json:"outcome_subtype"`
	LocationLat           *float64 `json:"location_lat"`
	LocationLong          *float64 `json:"location_long"`
	Description           string   `json:"description"`
	Status                Status   `json:"status"`
}

type dogUpdatedResponse struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	AnimalID string `json:"animal_id"`
}

// listDogsHandler godoc
// @Summary Listar perros
// @Description Devuelve todos los perros con breed y rescue_type como nombres.
// @Tags dogs
// @Produce json
// @Success 200 {array} dogResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /dogs [get]
func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, log, "list", err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}

		log.Debug("dogs listed", logger.Fields{"count": len(out)})
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getDogHandler godoc
// @Summary Obtener perro
// @Description Busca por animal_id y, si no existe, por id del store.
// @Tags dogs
// @Produce json
// @Param dogID path string true "animal_id o id del perro"
// @Success 200 {object} dogResponse
// @Failure 400 {object} httpx.ErrorResponse "id mal formado"
// @Failure 404 {object} httpx.ErrorResponse "Dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Get(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeServiceError(w, log, "get", err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// createDogHandler godoc
// @Summary Crear perro
// @Description Crea un perro. Obligatorios: animal_id, name, breed y rescue_type (deben existir). El resto toma defaults.
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body dogRequest true "Datos del perro"
// @Success 201 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "Dog with this animal_id already exists."
// @Router /dogs [post]
func createDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Create(r.Context(), payload)
		if err != nil {
			writeServiceError(w, log, "create", err)
			return
		}

		log.Info("dog added", logger.Fields{"id": d.ID, "animal_id": d.AnimalID})
		httpx.WriteJSON(w, http.StatusCreated, httpx.MessageResponse{Message: "Dog added", ID: d.ID})
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro (parcial)
// @Description Solo se modifican los campos enviados. El id puede ir en la ruta o como `_id` en el body.
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "animal_id o id del perro"
// @Param payload body dogRequest true "Campos a modificar"
// @Success 200 {object} dogUpdatedResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "Dog not found"
// @Failure 409 {object} httpx.ErrorResponse
// @Router /dogs/{dogID} [put]
func updateDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		ref := httpx.TargetID(chi.URLParam(r, "dogID"), payload)
		d, err := svc.Update(r.Context(), ref, payload)
		if err != nil {
			writeServiceError(w, log, "update", err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, dogUpdatedResponse{
			Message:  "Dog updated",
			ID:       d.ID,
			AnimalID: d.AnimalID,
		})
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "animal_id o id del perro"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "Dog not found"
// @Router /dogs/{dogID} [delete]
func deleteDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := httpx.DecodePayload(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Delete(r.Context(), httpx.TargetID(chi.URLParam(r, "dogID"), payload))
		if err != nil {
			writeServiceError(w, log, "delete", err)
			return
		}

		log.Info("dog deleted", logger.Fields{"id": d.ID, "animal_id": d.AnimalID})
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Dog deleted"})
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:                    d.ID,
		AnimalID:              d.AnimalID,
		No:                    d.No,
		Name:                  d.Name,
		AnimalType:            d.AnimalType,
		Breed:                 d.Breed,
		RescueType:            d.RescueType,
		Color:                 d.Color,
		SexUponOutcome:        d.SexUponOutcome,
		DateOfBirth:           d.DateOfBirth,
		DateTime:              d.DateTime,
		MonthYear:             d.MonthYear,
		AgeUponOutcome:        d.AgeUponOutcome,
		AgeUponOutcomeInWeeks: d.AgeUponOutcomeInWeeks,
		Age:                   d.Age,
		Weight:                d.Weight,
		OutcomeType:           d.OutcomeType,
		OutcomeSubtype:        d.OutcomeSubtype,
		LocationLat:           d.LocationLat,
		LocationLong:          d.LocationLong,
		Description:           d.Description,
		Status:                d.Status,
	}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteValidation(w, verr)
	case errors.Is(err, ErrIDRequired):
		httpx.WriteError(w, http.StatusBadRequest, "_id is required")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Dog not found")
	case errors.Is(err, ErrConflict):
		httpx.WriteError(w, http.StatusConflict, "Dog with this animal_id already exists.")
	default:
		log.Error("dog store operation failed", logger.Fields{"op": op, "error": err})
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
