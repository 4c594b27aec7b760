package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oseuis57/web-ecovision/config"
	deps "github.com/oseuis57/web-ecovision/internal/debs"
	"github.com/oseuis57/web-ecovision/util/values"
)

const (
	defaultIdleTimeout  = time.Minute
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.SetupServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) SetupServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("EcoVision triage engine"))
		},
	)

	mux.Mount("/reports", api.ReportRoutes())
	mux.Mount("/classifications", api.ClassificationRoutes())
	mux.Mount("/viewports", api.ViewportRoutes())
	mux.Get("/ws", api.Deps.WebSocket.HandleConnections)

	return mux
}

func (a *API) Shutdown() error {
	err := a.Server.Shutdown(context.Background())
	if err != nil {
		return err
	}
	return nil
}
