package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oseuis57/web-ecovision/internal/classify"
	"github.com/oseuis57/web-ecovision/util"
	"github.com/oseuis57/web-ecovision/util/values"
	"github.com/pkg/errors"
)

func (api *API) ClassificationRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.StartClassification))
	mux.Method(http.MethodGet, "/{token}", Handler(api.GetClassification))
	mux.Method(http.MethodDelete, "/{token}", Handler(api.CancelClassification))

	return mux
}

type startClassificationRequest struct {
	Image []byte `json:"image"`
	// PreviousToken is the flow's earlier capture, cancelled when a
	// new photo replaces it.
	PreviousToken string `json:"previous_token,omitempty"`
}

// StartClassification registers a captured image and returns a token
// the flow polls. The call never waits for the classifier.
func (api *API) StartClassification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req startClassificationRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if len(req.Image) == 0 {
		return respondWithError(errors.New("empty image"), "an image is required", values.Unprocessable, &tc)
	}

	token := api.Deps.Classifier.Start(req.Image, req.PreviousToken)

	return &ServerResponse{
		Message:    "Classification started",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       map[string]string{"token": token},
	}
}

// GetClassification reports the request's state: pending until the
// latency window elapses, then the classified pair.
func (api *API) GetClassification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	token := chi.URLParam(r, "token")
	result, err := api.Deps.Classifier.Result(token)
	if err != nil {
		return respondWithError(err, "Classification not found", values.NotFound, &tc)
	}

	return &ServerResponse{
		Message:    "Classification fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       result,
	}
}

// CancelClassification suppresses a pending classification, e.g. when
// the user removes the captured photo before analysis finishes.
func (api *API) CancelClassification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	token := chi.URLParam(r, "token")
	if err := api.Deps.Classifier.Cancel(token); err != nil {
		if errors.Is(err, classify.ErrRequestNotFound) {
			return respondWithError(err, "Classification not found", values.NotFound, &tc)
		}
		return respondWithError(err, "Failed to cancel classification", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Classification cancelled",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
