package fakeforge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gabfr/forge-go/pkg/forge"
)

type daemonParam struct {
	ServerID int `path:"serverID"`
	DaemonID int `path:"daemonID"`
}

type createDaemonInput struct {
	ServerID int `path:"serverID"`
	Body     struct {
		Command string `json:"command"`
		User    string `json:"user"`
	}
}

type daemonItemOutput struct {
	Body forge.Daemon
}

type daemonListOutput struct {
	Body []*forge.Daemon
}

func registerDaemons(api huma.API, store *Store) {
	huma.Register(api, huma.Operation{
		OperationID: "list-daemons",
		Method:      http.MethodGet,
		Path:        "/servers/{serverID}/daemons",
	}, func(_ context.Context, in *serverParam) (*daemonListOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		out := make([]*forge.Daemon, 0, len(store.daemons[in.ServerID]))
		for _, d := range store.daemons[in.ServerID] {
			out = append(out, d)
		}
		return &daemonListOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-daemon",
		Method:      http.MethodPost,
		Path:        "/servers/{serverID}/daemons",
	}, func(_ context.Context, in *createDaemonInput) (*daemonItemOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		d := &forge.Daemon{
			ID:        store.id(),
			Command:   in.Body.Command,
			User:      in.Body.User,
			Status:    "installing",
			CreatedAt: "2016-12-15 15:04:05",
		}
		if store.daemons[in.ServerID] == nil {
			store.daemons[in.ServerID] = map[int]*forge.Daemon{}
		}
		store.daemons[in.ServerID][d.ID] = d
		return &daemonItemOutput{Body: *d}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-daemon",
		Method:      http.MethodGet,
		Path:        "/servers/{serverID}/daemons/{daemonID}",
	}, func(_ context.Context, in *daemonParam) (*daemonItemOutput, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		d, ok := store.daemons[in.ServerID][in.DaemonID]
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("daemon %d not found", in.DaemonID))
		}
		return &daemonItemOutput{Body: *d}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-daemon",
		Method:      http.MethodDelete,
		Path:        "/servers/{serverID}/daemons/{daemonID}",
	}, func(_ context.Context, in *daemonParam) (*struct{}, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		if _, ok := store.daemons[in.ServerID][in.DaemonID]; !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("daemon %d not found", in.DaemonID))
		}
		delete(store.daemons[in.ServerID], in.DaemonID)
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "restart-daemon",
		Method:      http.MethodPost,
		Path:        "/servers/{serverID}/daemons/{daemonID}/restart",
	}, func(_ context.Context, in *daemonParam) (*struct{}, error) {
		store.mu.Lock()
		defer store.mu.Unlock()

		d, ok := store.daemons[in.ServerID][in.DaemonID]
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("daemon %d not found", in.DaemonID))
		}
		d.Status = "restarting"
		return nil, nil
	})
}
