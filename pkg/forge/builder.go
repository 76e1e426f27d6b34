package forge

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// ServerBuilder accumulates the payload for one server-creation request
// through chained calls, then submits it with Save. A builder belongs to
// one goroutine; it holds no locks and is logically spent after Save.
//
// Methods that validate their input (At, WithMemoryOf, RunningPHP) record
// the first failure and leave the payload untouched; every later call
// still chains, and Save returns the recorded error before any request is
// made. Err exposes it early.
type ServerBuilder struct {
	client   *Client
	provider Provider
	payload  Payload
	err      error
}

// NewServer starts a server-creation request against the given provider.
func (c *Client) NewServer(p Provider) *ServerBuilder {
	b := &ServerBuilder{client: c, provider: p, payload: Payload{}}
	b.payload.Set("provider", p.Name())
	return b
}

// Err returns the first validation failure recorded by a chained call.
func (b *ServerBuilder) Err() error {
	return b.err
}

// Payload returns the accumulated payload. The builder still owns it;
// mutating it bypasses validation.
func (b *ServerBuilder) Payload() Payload {
	return b.payload
}

// UsingCredential selects the provider API credential to create with.
func (b *ServerBuilder) UsingCredential(id int) *ServerBuilder {
	b.payload.Set("credential_id", id)
	return b
}

// IdentifiedAs names the server.
func (b *ServerBuilder) IdentifiedAs(name string) *ServerBuilder {
	b.payload.Set("name", name)
	return b
}

// ConnectedTo joins the new server to the private networks of the given
// servers.
func (b *ServerBuilder) ConnectedTo(serverIDs []int) *ServerBuilder {
	b.payload.Set("network", serverIDs)
	return b
}

// UsingPublicIP sets the public address of an existing machine.
func (b *ServerBuilder) UsingPublicIP(ip string) *ServerBuilder {
	b.payload.Set("ip_address", ip)
	return b
}

// UsingPrivateIP sets the private address of an existing machine.
func (b *ServerBuilder) UsingPrivateIP(ip string) *ServerBuilder {
	b.payload.Set("private_ip_address", ip)
	return b
}

// RunRecipe runs the given recipe once provisioning finishes.
func (b *ServerBuilder) RunRecipe(id int) *ServerBuilder {
	b.payload.Set("recipe_id", id)
	return b
}

// WithMemoryOf picks a size from the provider's catalog.
func (b *ServerBuilder) WithMemoryOf(size string) *ServerBuilder {
	if !b.MemoryAvailable(size) {
		b.fail("size %q is not available on provider %q", size, b.provider.Name())
		return b
	}
	b.payload.Set("size", size)
	return b
}

// At picks a region from the provider's catalog.
func (b *ServerBuilder) At(region string) *ServerBuilder {
	if !b.RegionAvailable(region) {
		b.fail("region %q is not available on provider %q", region, b.provider.Name())
		return b
	}
	b.payload.Set("region", region)
	return b
}

// RunningPHP selects the PHP version to install. "php7.1", "7.1", and
// "71" are all accepted and stored as "php71".
func (b *ServerBuilder) RunningPHP(version string) *ServerBuilder {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "php")
	normalized = strings.ReplaceAll(normalized, ".", "")
	n, err := strconv.Atoi(normalized)
	if err != nil || !slices.Contains(b.provider.PHPVersions(), n) {
		b.fail("PHP version %q is not supported by provider %q", version, b.provider.Name())
		return b
	}
	b.payload.Set("php_version", "php"+strconv.Itoa(n))
	return b
}

// WithMariaDB installs MariaDB with the given database name ("forge" when
// empty). A later WithMySQL call overwrites it; last call wins.
func (b *ServerBuilder) WithMariaDB(dbName string) *ServerBuilder {
	return b.withDatabase(1, dbName)
}

// WithMySQL installs MySQL with the given database name ("forge" when
// empty). A later WithMariaDB call overwrites it; last call wins.
func (b *ServerBuilder) WithMySQL(dbName string) *ServerBuilder {
	return b.withDatabase(0, dbName)
}

func (b *ServerBuilder) withDatabase(maria int, dbName string) *ServerBuilder {
	if dbName == "" {
		dbName = "forge"
	}
	b.payload.Set("maria", maria)
	b.payload.Set("database", dbName)
	return b
}

// AsNodeBalancer marks the server as a load balancer. Disabling removes
// the key entirely; both directions are idempotent.
func (b *ServerBuilder) AsNodeBalancer(enable bool) *ServerBuilder {
	if enable {
		b.payload.Set("node_balancer", 1)
		return b
	}
	b.payload.Unset("node_balancer")
	return b
}

// AsLoadBalancer marks the server as a load balancer.
//
// Deprecated: use AsNodeBalancer.
func (b *ServerBuilder) AsLoadBalancer(enable bool) *ServerBuilder {
	return b.AsNodeBalancer(enable)
}

// HasPayload reports whether key is present with a truthy value. See
// Payload.Has for the falsy-means-absent behavior.
func (b *ServerBuilder) HasPayload(key string) bool {
	return b.payload.Has(key)
}

// RegionAvailable reports whether the provider's catalog has the region.
func (b *ServerBuilder) RegionAvailable(region string) bool {
	_, ok := b.provider.Regions()[region]
	return ok
}

// MemoryAvailable reports whether the provider's catalog has the size.
func (b *ServerBuilder) MemoryAvailable(size string) bool {
	_, ok := b.provider.Sizes()[size]
	return ok
}

// Validate returns the required fields still missing from the payload,
// or nil when it is ready to save.
func (b *ServerBuilder) Validate() []string {
	return b.provider.Validate(b.payload)
}

// Save validates the payload and submits it as POST servers. Validation
// failures come back as *ArgumentError before any I/O; transport errors
// propagate unmodified.
func (b *ServerBuilder) Save(ctx context.Context) (*Server, error) {
	if b.err != nil {
		return nil, b.err
	}
	if missing := b.Validate(); len(missing) > 0 {
		return nil, newArgumentError("missing required fields: %s", strings.Join(missing, ", "))
	}
	return runItem[Server](ctx, b.client, http.MethodPost, "servers", b.payload)
}

func (b *ServerBuilder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = newArgumentError(format, args...)
	}
}
