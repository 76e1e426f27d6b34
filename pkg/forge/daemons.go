package forge

import (
	"context"
	"net/http"
)

// Daemon is a supervised background process on a server.
type Daemon struct {
	ID        int    `json:"id"`
	Command   string `json:"command"`
	User      string `json:"user"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// DaemonCreateOpts holds the parameters for installing a daemon.
type DaemonCreateOpts struct {
	Command string
	User    string
}

var (
	daemonList    = command{method: http.MethodGet, path: "daemons"}
	daemonGet     = command{method: http.MethodGet, path: "daemons"}
	daemonCreate  = command{method: http.MethodPost, path: "daemons"}
	daemonDelete  = command{method: http.MethodDelete, path: "daemons"}
	daemonRestart = command{method: http.MethodPost, path: "daemons", action: "restart"}
)

// DaemonClient operates on a server's daemons.
type DaemonClient struct {
	client *Client
}

// List returns every daemon on the server.
func (dc *DaemonClient) List(ctx context.Context, serverID int) ([]*Daemon, error) {
	return runList[Daemon](ctx, dc.client, daemonList.method, daemonList.collectionPath(serverID))
}

// Get returns one daemon.
func (dc *DaemonClient) Get(ctx context.Context, serverID, daemonID int) (*Daemon, error) {
	return runItem[Daemon](ctx, dc.client, daemonGet.method, daemonGet.itemPath(serverID, daemonID), nil)
}

// Create installs a new daemon on the server.
func (dc *DaemonClient) Create(ctx context.Context, serverID int, opts DaemonCreateOpts) (*Daemon, error) {
	body := Payload{"command": opts.Command, "user": opts.User}
	return runItem[Daemon](ctx, dc.client, daemonCreate.method, daemonCreate.collectionPath(serverID), body)
}

// Delete removes the daemon.
func (dc *DaemonClient) Delete(ctx context.Context, serverID, daemonID int) error {
	return runVoid(ctx, dc.client, daemonDelete.method, daemonDelete.itemPath(serverID, daemonID))
}

// Restart restarts the daemon process.
func (dc *DaemonClient) Restart(ctx context.Context, serverID, daemonID int) error {
	return runVoid(ctx, dc.client, daemonRestart.method, daemonRestart.itemPath(serverID, daemonID))
}
