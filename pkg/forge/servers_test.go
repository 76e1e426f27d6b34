package forge

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServers_List(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`[{"id":1,"name":"alpha","provider":"ocean2","is_ready":true},
		  {"id":2,"name":"beta","provider":"linode","is_ready":false}]`)
	c := NewClient("token", WithBaseURL(srv.URL))

	servers, err := c.Servers.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/servers", srv.path)
	require.Len(t, servers, 2)
	assert.Equal(t, "alpha", servers[0].Name)
	assert.False(t, servers[1].IsReady)
}

func TestServers_Get(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`{"id":1,"name":"alpha","region":"ams2","size":"1GB","php_version":"php71","network":[2,3]}`)
	c := NewClient("token", WithBaseURL(srv.URL))

	s, err := c.Servers.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "/servers/1", srv.path)
	assert.Equal(t, "php71", s.PHPVersion)
	assert.Equal(t, []int{2, 3}, s.Network)
}

func TestServers_DeleteAndReboot(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, ``)
	c := NewClient("token", WithBaseURL(srv.URL))

	require.NoError(t, c.Servers.Delete(context.Background(), 1))
	assert.Equal(t, http.MethodDelete, srv.method)
	assert.Equal(t, "/servers/1", srv.path)

	require.NoError(t, c.Servers.Reboot(context.Background(), 1))
	assert.Equal(t, http.MethodPost, srv.method)
	assert.Equal(t, "/servers/1/reboot", srv.path)
}
