package forge

import (
	"context"
	"fmt"
	"net/http"
)

// siteDeployment builds the descriptor for a deployment operation on one
// site. Deployment is a nested child: its segment lives under the site,
// which itself lives under the server.
func siteDeployment(method string, siteID int, action string) command {
	path := fmt.Sprintf("sites/%d/deployment", siteID)
	if action != "" {
		path += "/" + action
	}
	return command{method: method, path: path}
}

// DeploymentClient operates on the deployment configuration of a site.
type DeploymentClient struct {
	client *Client
}

// Enable turns on quick deploy for the site.
func (dc *DeploymentClient) Enable(ctx context.Context, serverID, siteID int) (*Site, error) {
	cmd := siteDeployment(http.MethodPost, siteID, "")
	return runItem[Site](ctx, dc.client, cmd.method, cmd.collectionPath(serverID), nil)
}

// Disable turns off quick deploy for the site.
func (dc *DeploymentClient) Disable(ctx context.Context, serverID, siteID int) (*Site, error) {
	cmd := siteDeployment(http.MethodDelete, siteID, "")
	return runItem[Site](ctx, dc.client, cmd.method, cmd.collectionPath(serverID), nil)
}

// Deploy triggers a deployment now.
func (dc *DeploymentClient) Deploy(ctx context.Context, serverID, siteID int) (*Site, error) {
	cmd := siteDeployment(http.MethodPost, siteID, "deploy")
	return runItem[Site](ctx, dc.client, cmd.method, cmd.collectionPath(serverID), nil)
}

// Reset clears the site's deployment status.
func (dc *DeploymentClient) Reset(ctx context.Context, serverID, siteID int) error {
	cmd := siteDeployment(http.MethodPost, siteID, "reset")
	return runVoid(ctx, dc.client, cmd.method, cmd.collectionPath(serverID))
}

// Log returns the output of the latest deployment.
func (dc *DeploymentClient) Log(ctx context.Context, serverID, siteID int) (string, error) {
	cmd := siteDeployment(http.MethodGet, siteID, "log")
	raw, err := dc.client.do(ctx, cmd.method, cmd.collectionPath(serverID), nil)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
