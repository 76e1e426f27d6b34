// Package fakeforge is an in-process double of the provisioning API,
// used by the e2e tests. It keeps all state in memory and mirrors the
// wire shapes the real API produces.
package fakeforge

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/gabfr/forge-go/pkg/forge"
)

// Store holds the fake's state. Access is serialized, so concurrent test
// clients are fine.
type Store struct {
	mu      sync.Mutex
	nextID  int
	servers map[int]*forge.Server
	daemons map[int]map[int]*forge.Daemon
	sites   map[int]map[int]*forge.Site
	logs    map[int]string
}

// NewStore creates empty state.
func NewStore() *Store {
	return &Store{
		nextID:  1,
		servers: map[int]*forge.Server{},
		daemons: map[int]map[int]*forge.Daemon{},
		sites:   map[int]map[int]*forge.Site{},
		logs:    map[int]string{},
	}
}

func (s *Store) id() int {
	id := s.nextID
	s.nextID++
	return id
}

// Handler builds the HTTP surface. Every request must carry the given
// bearer token.
func Handler(token string, store *Store) http.Handler {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Fake Forge API", "1.0.0"))

	registerServers(api, store)
	registerDaemons(api, store)
	registerSites(api, store)
	registerDeployments(api, mux, store)

	return authMiddleware(token, mux)
}

func authMiddleware(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid token"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// createServerInput is the builder payload. Fields the fake ignores are
// still accepted so any valid payload round-trips.
type createServerInput struct {
	Body struct {
		Provider         string `json:"provider"`
		CredentialID     int    `json:"credential_id,omitempty"`
		Name             string `json:"name,omitempty"`
		Region           string `json:"region,omitempty"`
		Size             string `json:"size,omitempty"`
		PHPVersion       string `json:"php_version,omitempty"`
		Maria            int    `json:"maria,omitempty"`
		Database         string `json:"database,omitempty"`
		NodeBalancer     int    `json:"node_balancer,omitempty"`
		RecipeID         int    `json:"recipe_id,omitempty"`
		IPAddress        string `json:"ip_address,omitempty"`
		PrivateIPAddress string `json:"private_ip_address,omitempty"`
		Network          []int  `json:"network,omitempty"`
	}
}

type serverParam struct {
	ServerID int `path:"serverID"`
}

type serverItemOutput struct {
	Body forge.Server
}

type serverListOutput struct {
	Body []*forge.Server
}

func registerServers(api huma.API, store *Store) {
	huma.Register(api, huma.Operation{
		OperationID: "create-server",
		Method:      http.MethodPost,
		Path:        "/servers",
	}, func(_ context.Context, in *createServerInput) (*serverItemOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		srv := &forge.Server{
			ID:               store.id(),
			CredentialID:     in.Body.CredentialID,
			Name:             in.Body.Name,
			Provider:         in.Body.Provider,
			Size:             in.Body.Size,
			Region:           in.Body.Region,
			PHPVersion:       in.Body.PHPVersion,
			IPAddress:        in.Body.IPAddress,
			PrivateIPAddress: in.Body.PrivateIPAddress,
			Network:          in.Body.Network,
			IsReady:          false,
			CreatedAt:        "2016-12-15 15:04:05",
		}
		store.servers[srv.ID] = srv
		return &serverItemOutput{Body: *srv}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-servers",
		Method:      http.MethodGet,
		Path:        "/servers",
	}, func(_ context.Context, _ *struct{}) (*serverListOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		out := make([]*forge.Server, 0, len(store.servers))
		for _, srv := range store.servers {
			out = append(out, srv)
		}
		return &serverListOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-server",
		Method:      http.MethodGet,
		Path:        "/servers/{serverID}",
	}, func(_ context.Context, in *serverParam) (*serverItemOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		srv, ok := store.servers[in.ServerID]
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("server %d not found", in.ServerID))
		}
		return &serverItemOutput{Body: *srv}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-server",
		Method:      http.MethodDelete,
		Path:        "/servers/{serverID}",
	}, func(_ context.Context, in *serverParam) (*struct{}, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		if _, ok := store.servers[in.ServerID]; !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("server %d not found", in.ServerID))
		}
		delete(store.servers, in.ServerID)
		delete(store.daemons, in.ServerID)
		delete(store.sites, in.ServerID)
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reboot-server",
		Method:      http.MethodPost,
		Path:        "/servers/{serverID}/reboot",
	}, func(_ context.Context, in *serverParam) (*struct{}, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		if _, ok := store.servers[in.ServerID]; !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("server %d not found", in.ServerID))
		}
		return nil, nil
	})
}
