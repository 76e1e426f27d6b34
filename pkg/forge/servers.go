package forge

import (
	"context"
	"fmt"
	"net/http"
)

// Server is a provisioned machine as reported by the API.
type Server struct {
	ID               int    `json:"id"`
	CredentialID     int    `json:"credential_id"`
	Name             string `json:"name"`
	Provider         string `json:"provider"`
	Size             string `json:"size"`
	Region           string `json:"region"`
	PHPVersion       string `json:"php_version"`
	IPAddress        string `json:"ip_address"`
	PrivateIPAddress string `json:"private_ip_address"`
	Network          []int  `json:"network"`
	IsReady          bool   `json:"is_ready"`
	Revoked          bool   `json:"revoked"`
	CreatedAt        string `json:"created_at"`
}

// ServerClient operates on servers themselves. New servers are created
// through Client.NewServer and the fluent builder.
type ServerClient struct {
	client *Client
}

// List returns every server on the account.
func (sc *ServerClient) List(ctx context.Context) ([]*Server, error) {
	return runList[Server](ctx, sc.client, http.MethodGet, "servers")
}

// Get returns one server.
func (sc *ServerClient) Get(ctx context.Context, serverID int) (*Server, error) {
	return runItem[Server](ctx, sc.client, http.MethodGet, fmt.Sprintf("servers/%d", serverID), nil)
}

// Delete destroys the server at the provider.
func (sc *ServerClient) Delete(ctx context.Context, serverID int) error {
	return runVoid(ctx, sc.client, http.MethodDelete, fmt.Sprintf("servers/%d", serverID))
}

// Reboot restarts the server.
func (sc *ServerClient) Reboot(ctx context.Context, serverID int) error {
	return runVoid(ctx, sc.client, http.MethodPost, fmt.Sprintf("servers/%d/reboot", serverID))
}
