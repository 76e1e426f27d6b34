package forge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider has a one-entry catalog and no required fields beyond the
// base defaults.
type fakeProvider struct {
	BaseProvider
}

func (fakeProvider) Name() string { return "fake" }

func (fakeProvider) Regions() map[string]string {
	return map[string]string{"validRegion": "Valid Region"}
}

func (fakeProvider) Sizes() map[string]string {
	return map[string]string{"validSize": "Valid Size"}
}

func newTestBuilder(p Provider) *ServerBuilder {
	return NewClient("test-token").NewServer(p)
}

func TestNewServer_SeedsProviderName(t *testing.T) {
	b := newTestBuilder(DigitalOcean())
	assert.Equal(t, "ocean2", b.Payload()["provider"])
}

func TestAt_KnownRegion(t *testing.T) {
	b := newTestBuilder(DigitalOcean())
	for region := range DigitalOcean().Regions() {
		assert.True(t, b.RegionAvailable(region), "region %s should be available", region)
	}
	b.At("ams2")
	require.NoError(t, b.Err())
	assert.Equal(t, "ams2", b.Payload()["region"])
}

func TestAt_UnknownRegionLeavesPayloadUnchanged(t *testing.T) {
	b := newTestBuilder(DigitalOcean())
	b.At("atlantis")

	var argErr *ArgumentError
	require.ErrorAs(t, b.Err(), &argErr)
	assert.ErrorIs(t, b.Err(), ErrInvalidArgument)
	_, present := b.Payload()["region"]
	assert.False(t, present, "failed At must not touch the payload")
}

func TestWithMemoryOf(t *testing.T) {
	b := newTestBuilder(Linode())
	b.WithMemoryOf("4GB")
	require.NoError(t, b.Err())
	assert.Equal(t, "4GB", b.Payload()["size"])

	b = newTestBuilder(Linode())
	b.WithMemoryOf("3GB")
	assert.ErrorIs(t, b.Err(), ErrInvalidArgument)
	_, present := b.Payload()["size"]
	assert.False(t, present)
}

func TestRunningPHP_Normalization(t *testing.T) {
	for _, input := range []string{"7.1", "php7.1", "71", "PHP7.1"} {
		b := newTestBuilder(fakeProvider{})
		b.RunningPHP(input)
		require.NoError(t, b.Err(), "input %q", input)
		assert.Equal(t, "php71", b.Payload()["php_version"], "input %q", input)
	}
}

func TestRunningPHP_Unsupported(t *testing.T) {
	b := newTestBuilder(fakeProvider{})
	b.RunningPHP("9.9")
	assert.ErrorIs(t, b.Err(), ErrInvalidArgument)
	_, present := b.Payload()["php_version"]
	assert.False(t, present)
}

func TestAsNodeBalancer_Toggle(t *testing.T) {
	b := newTestBuilder(fakeProvider{})
	b.AsNodeBalancer(true)
	assert.Equal(t, 1, b.Payload()["node_balancer"])

	b.AsNodeBalancer(false)
	_, present := b.Payload()["node_balancer"]
	assert.False(t, present, "disabling must remove the key entirely")

	b.AsNodeBalancer(false) // idempotent
	_, present = b.Payload()["node_balancer"]
	assert.False(t, present)
}

func TestAsLoadBalancer_AliasesNodeBalancer(t *testing.T) {
	b := newTestBuilder(fakeProvider{})
	b.AsLoadBalancer(true)
	assert.Equal(t, 1, b.Payload()["node_balancer"])
}

func TestDatabaseSelection_LastCallWins(t *testing.T) {
	b := newTestBuilder(fakeProvider{})
	b.WithMariaDB("mydb")
	assert.Equal(t, 1, b.Payload()["maria"])
	assert.Equal(t, "mydb", b.Payload()["database"])

	b.WithMySQL("")
	assert.Equal(t, 0, b.Payload()["maria"])
	assert.Equal(t, "forge", b.Payload()["database"])
}

func TestHasPayload_FalsyValues(t *testing.T) {
	b := newTestBuilder(fakeProvider{})
	b.Payload().Set("maria", 0)
	b.Payload().Set("database", "")
	b.Payload().Set("network", []int{})
	b.IdentifiedAs("box1")

	assert.False(t, b.HasPayload("maria"))
	assert.False(t, b.HasPayload("database"))
	assert.False(t, b.HasPayload("network"))
	assert.True(t, b.HasPayload("name"))
}

func TestValidate_ReportsMissingFields(t *testing.T) {
	b := newTestBuilder(DigitalOcean())
	b.IdentifiedAs("box1")
	missing := b.Validate()
	assert.Equal(t, []string{"credential_id", "region", "size"}, missing)
}

func TestSave_MissingFieldsFailsBeforeIO(t *testing.T) {
	// Any request reaching the transport fails the test.
	hc := &http.Client{Transport: failingTransport{t}}
	c := NewClient("token", WithHTTPClient(hc))

	_, err := c.NewServer(DigitalOcean()).IdentifiedAs("box1").Save(context.Background())

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Contains(t, err.Error(), "credential_id, region, size")
}

func TestSave_StickyErrorFailsBeforeIO(t *testing.T) {
	hc := &http.Client{Transport: failingTransport{t}}
	c := NewClient("token", WithHTTPClient(hc))

	_, err := c.NewServer(fakeProvider{}).At("atlantis").IdentifiedAs("box1").Save(context.Background())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

type failingTransport struct{ t *testing.T }

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.t.Fatal("validation failure must not reach the transport")
	return nil, nil
}

func TestSave_SendsSortedBodyAndDecodesServer(t *testing.T) {
	var gotBody []byte
	var gotPath, gotMethod, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Server{ID: 42, Name: "box1", Provider: "fake"})
	}))
	defer srv.Close()

	c := NewClient("secret", WithBaseURL(srv.URL))
	server, err := c.NewServer(fakeProvider{}).
		At("validRegion").
		WithMemoryOf("validSize").
		IdentifiedAs("box1").
		Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/servers", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t,
		`{"name":"box1","provider":"fake","region":"validRegion","size":"validSize"}`,
		string(gotBody),
	)
	assert.Equal(t, 42, server.ID)
	assert.Equal(t, "box1", server.Name)
}

func TestSave_TransportErrorPropagatesUnwrapped(t *testing.T) {
	expected := errors.New("connection refused")
	hc := &http.Client{Transport: errorTransport{err: expected}}
	c := NewClient("token", WithHTTPClient(hc))

	_, err := c.NewServer(fakeProvider{}).IdentifiedAs("box1").Save(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, expected)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
}

type errorTransport struct{ err error }

func (e errorTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, e.err
}
