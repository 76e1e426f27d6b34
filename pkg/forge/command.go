package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// command declares one CRUD-style operation against a server
// sub-resource: its HTTP verb, the path segment under the server, and an
// optional trailing action segment for item commands. Commands carry no
// state; one generic executor interprets them.
type command struct {
	method string
	path   string
	action string
}

// collectionPath is servers/{serverID}/{path}.
func (cmd command) collectionPath(serverID int) string {
	return fmt.Sprintf("servers/%d/%s", serverID, cmd.path)
}

// itemPath appends the item ID, and the action segment when declared.
func (cmd command) itemPath(serverID, itemID int) string {
	p := cmd.collectionPath(serverID) + "/" + strconv.Itoa(itemID)
	if cmd.action != "" {
		p += "/" + cmd.action
	}
	return p
}

// runItem executes one request and decodes the response into a single
// model. An empty body yields a nil result.
func runItem[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// runList executes one request and decodes the response into an ordered
// collection of models.
func runList[T any](ctx context.Context, c *Client, method, path string) ([]*T, error) {
	raw, err := c.do(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}
	var out []*T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// runVoid executes one request and discards the response body.
func runVoid(ctx context.Context, c *Client, method, path string) error {
	_, err := c.do(ctx, method, path, nil)
	return err
}
