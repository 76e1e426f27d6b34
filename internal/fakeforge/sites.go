package fakeforge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gabfr/forge-go/pkg/forge"
)

type siteParam struct {
	ServerID int `path:"serverID"`
	SiteID   int `path:"siteID"`
}

type createSiteInput struct {
	ServerID int `path:"serverID"`
	Body     struct {
		Domain      string `json:"domain"`
		ProjectType string `json:"project_type,omitempty"`
		Directory   string `json:"directory,omitempty"`
	}
}

type siteItemOutput struct {
	Body forge.Site
}

type siteListOutput struct {
	Body []*forge.Site
}

func registerSites(api huma.API, store *Store) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sites",
		Method:      http.MethodGet,
		Path:        "/servers/{serverID}/sites",
	}, func(_ context.Context, in *serverParam) (*siteListOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		out := make([]*forge.Site, 0, len(store.sites[in.ServerID]))
		for _, s := range store.sites[in.ServerID] {
			out = append(out, s)
		}
		return &siteListOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-site",
		Method:      http.MethodPost,
		Path:        "/servers/{serverID}/sites",
	}, func(_ context.Context, in *createSiteInput) (*siteItemOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		projectType := in.Body.ProjectType
		if projectType == "" {
			projectType = "php"
		}
		directory := in.Body.Directory
		if directory == "" {
			directory = "/public"
		}

		s := &forge.Site{
			ID:          store.id(),
			Name:        in.Body.Domain,
			Directory:   directory,
			ProjectType: projectType,
			Status:      "installing",
			CreatedAt:   "2016-12-15 15:04:05",
		}
		if store.sites[in.ServerID] == nil {
			store.sites[in.ServerID] = map[int]*forge.Site{}
		}
		store.sites[in.ServerID][s.ID] = s
		return &siteItemOutput{Body: *s}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-site",
		Method:      http.MethodGet,
		Path:        "/servers/{serverID}/sites/{siteID}",
	}, func(_ context.Context, in *siteParam) (*siteItemOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		s, ok := store.sites[in.ServerID][in.SiteID]
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("site %d not found", in.SiteID))
		}
		return &siteItemOutput{Body: *s}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-site",
		Method:      http.MethodDelete,
		Path:        "/servers/{serverID}/sites/{siteID}",
	}, func(_ context.Context, in *siteParam) (*struct{}, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		if _, ok := store.sites[in.ServerID][in.SiteID]; !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("site %d not found", in.SiteID))
		}
		delete(store.sites[in.ServerID], in.SiteID)
		return nil, nil
	})
}
