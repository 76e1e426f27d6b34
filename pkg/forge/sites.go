package forge

import (
	"context"
	"net/http"
)

// Site is a deployed application or static site on a server.
type Site struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Directory   string `json:"directory"`
	Repository  string `json:"repository,omitempty"`
	ProjectType string `json:"project_type"`
	QuickDeploy bool   `json:"quick_deploy"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// SiteCreateOpts holds the parameters for creating a site. ProjectType
// defaults to "php" and Directory to "/public" at the API.
type SiteCreateOpts struct {
	Domain      string
	ProjectType string
	Directory   string
}

var (
	siteList   = command{method: http.MethodGet, path: "sites"}
	siteGet    = command{method: http.MethodGet, path: "sites"}
	siteCreate = command{method: http.MethodPost, path: "sites"}
	siteDelete = command{method: http.MethodDelete, path: "sites"}
)

// SiteClient operates on a server's sites.
type SiteClient struct {
	client *Client
}

// List returns every site on the server.
func (sc *SiteClient) List(ctx context.Context, serverID int) ([]*Site, error) {
	return runList[Site](ctx, sc.client, siteList.method, siteList.collectionPath(serverID))
}

// Get returns one site.
func (sc *SiteClient) Get(ctx context.Context, serverID, siteID int) (*Site, error) {
	return runItem[Site](ctx, sc.client, siteGet.method, siteGet.itemPath(serverID, siteID), nil)
}

// Create adds a site to the server.
func (sc *SiteClient) Create(ctx context.Context, serverID int, opts SiteCreateOpts) (*Site, error) {
	body := Payload{"domain": opts.Domain}
	if opts.ProjectType != "" {
		body.Set("project_type", opts.ProjectType)
	}
	if opts.Directory != "" {
		body.Set("directory", opts.Directory)
	}
	return runItem[Site](ctx, sc.client, siteCreate.method, siteCreate.collectionPath(serverID), body)
}

// Delete removes the site from the server.
func (sc *SiteClient) Delete(ctx context.Context, serverID, siteID int) error {
	return runVoid(ctx, sc.client, siteDelete.method, siteDelete.itemPath(serverID, siteID))
}
