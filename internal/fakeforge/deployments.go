package fakeforge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func registerDeployments(api huma.API, mux *http.ServeMux, store *Store) {
	toggle := func(enabled bool) func(context.Context, *siteParam) (*siteItemOutput, error) {
		return func(_ context.Context, in *siteParam) (*siteItemOutput, error) {
			store.mu.Lock()
			defer store.mu.Unlock()

			s, ok := store.sites[in.ServerID][in.SiteID]
			if !ok {
				return nil, huma.Error404NotFound(fmt.Sprintf("site %d not found", in.SiteID))
			}
			s.QuickDeploy = enabled
			return &siteItemOutput{Body: *s}, nil
		}
	}

	huma.Register(api, huma.Operation{
		OperationID: "enable-deployment",
		Method:      http.MethodPost,
		Path:        "/servers/{serverID}/sites/{siteID}/deployment",
	}, toggle(true))

	huma.Register(api, huma.Operation{
		OperationID: "disable-deployment",
		Method:      http.MethodDelete,
		Path:        "/servers/{serverID}/sites/{siteID}/deployment",
	}, toggle(false))

	huma.Register(api, huma.Operation{
		OperationID: "run-deployment",
		Method:      http.MethodPost,
		Path:        "/servers/{serverID}/sites/{siteID}/deployment/deploy",
	}, func(_ context.Context, in *siteParam) (*siteItemOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		s, ok := store.sites[in.ServerID][in.SiteID]
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("site %d not found", in.SiteID))
		}
		s.Status = "deploying"
		store.logs[in.SiteID] = fmt.Sprintf("deploying %s\n", s.Name)
		return &siteItemOutput{Body: *s}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reset-deployment",
		Method:      http.MethodPost,
		Path:        "/servers/{serverID}/sites/{siteID}/deployment/reset",
	}, func(_ context.Context, in *siteParam) (*struct{}, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		s, ok := store.sites[in.ServerID][in.SiteID]
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("site %d not found", in.SiteID))
		}
		s.Status = "installed"
		return nil, nil
	})

	// The log endpoint returns plain text, not JSON, so it bypasses huma.
	mux.HandleFunc("GET /servers/{serverID}/sites/{siteID}/deployment/log", func(w http.ResponseWriter, r *http.Request) {
		store.mu.Lock()
		defer store.mu.Unlock()

		var siteID int
		if _, err := fmt.Sscanf(r.PathValue("siteID"), "%d", &siteID); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(store.logs[siteID]))
	})
}
