package forge

import (
	"testing"
)

func TestBaseProviderDefaults(t *testing.T) {
	var base BaseProvider

	if len(base.Regions()) != 0 {
		t.Fatal("base provider should have no regions")
	}
	if len(base.Sizes()) != 0 {
		t.Fatal("base provider should have no sizes")
	}

	versions := base.PHPVersions()
	want := []int{56, 70, 71}
	if len(versions) != len(want) {
		t.Fatalf("expected %v, got %v", want, versions)
	}
	for i := range want {
		if versions[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, versions)
		}
	}

	if missing := base.Validate(Payload{}); missing != nil {
		t.Fatalf("base validate should pass on an empty payload, got %v", missing)
	}
}

func TestProviderNames(t *testing.T) {
	cases := map[string]Provider{
		"ocean2": DigitalOcean(),
		"linode": Linode(),
		"aws":    AWS(),
		"custom": Custom(),
	}
	for name, p := range cases {
		if p.Name() != name {
			t.Errorf("expected provider name %q, got %q", name, p.Name())
		}
	}
}

func TestCloudProvidersHaveCatalogs(t *testing.T) {
	for _, p := range []Provider{DigitalOcean(), Linode(), AWS()} {
		if len(p.Regions()) == 0 {
			t.Errorf("%s: empty region catalog", p.Name())
		}
		if len(p.Sizes()) == 0 {
			t.Errorf("%s: empty size catalog", p.Name())
		}
	}
}

func TestCloudProvidersRequireCredentialNameRegionSize(t *testing.T) {
	for _, p := range []Provider{DigitalOcean(), Linode(), AWS()} {
		missing := p.Validate(Payload{"provider": p.Name()})
		if len(missing) != 4 {
			t.Errorf("%s: expected 4 missing fields, got %v", p.Name(), missing)
		}

		complete := Payload{
			"credential_id": 1,
			"name":          "box1",
			"region":        "anything", // Validate checks presence, not catalogs
			"size":          "1GB",
		}
		if missing := p.Validate(complete); missing != nil {
			t.Errorf("%s: complete payload reported missing %v", p.Name(), missing)
		}
	}
}

func TestCustomProviderRequiresAddresses(t *testing.T) {
	missing := Custom().Validate(Payload{"name": "box1"})
	want := []string{"ip_address", "private_ip_address"}
	if len(missing) != len(want) {
		t.Fatalf("expected %v, got %v", want, missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	}
}
