package forge

import (
	"encoding/json"
	"testing"
)

func TestPayload_SortedKeys(t *testing.T) {
	p := Payload{}
	p.Set("size", "1GB")
	p.Set("credential_id", 7)
	p.Set("region", "ams2")
	p.Set("name", "box1")

	got := p.SortedKeys()
	want := []string{"credential_id", "name", "region", "size"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestPayload_MarshalJSONOrderIndependentOfInsertion(t *testing.T) {
	a := Payload{"region": "ams2", "name": "box1", "provider": "ocean2"}
	b := Payload{"provider": "ocean2", "region": "ams2", "name": "box1"}

	ab, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal a: %v", err)
	}
	bb, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal b: %v", err)
	}

	want := `{"name":"box1","provider":"ocean2","region":"ams2"}`
	if string(ab) != want {
		t.Fatalf("expected %s, got %s", want, ab)
	}
	if string(ab) != string(bb) {
		t.Fatalf("same payload marshaled differently: %s vs %s", ab, bb)
	}
}

func TestPayload_HasTreatsFalsyAsAbsent(t *testing.T) {
	p := Payload{
		"zero":       0,
		"empty":      "",
		"off":        false,
		"none":       []int{},
		"name":       "box1",
		"credential": 1,
		"network":    []int{42},
	}

	for _, key := range []string{"zero", "empty", "off", "none", "missing"} {
		if p.Has(key) {
			t.Errorf("Has(%q) should be false", key)
		}
	}
	for _, key := range []string{"name", "credential", "network"} {
		if !p.Has(key) {
			t.Errorf("Has(%q) should be true", key)
		}
	}
}

func TestPayload_Unset(t *testing.T) {
	p := Payload{"node_balancer": 1}
	p.Unset("node_balancer")
	if _, ok := p["node_balancer"]; ok {
		t.Fatal("key should be gone after Unset")
	}
	p.Unset("node_balancer") // idempotent
}
