package forge

// Provider describes one cloud backend: the name sent in the payload, the
// regions and sizes it accepts, the PHP versions it can install, and its
// required-field rules. Implementations are stateless value types
// selected explicitly by the caller.
type Provider interface {
	// Name is the value stored under the payload's "provider" key.
	Name() string
	// Regions maps region identifiers to display names.
	Regions() map[string]string
	// Sizes maps memory-tier identifiers to display names.
	Sizes() map[string]string
	// PHPVersions lists supported versions as two-digit integers (71 = 7.1).
	PHPVersions() []int
	// Validate returns the names of required fields missing from p, or nil
	// when the payload is complete.
	Validate(p Payload) []string
}

// BaseProvider supplies the defaults shared by every provider: no
// regions, no sizes, PHP 5.6/7.0/7.1, and no required fields. Concrete
// providers embed it and override what differs.
type BaseProvider struct{}

func (BaseProvider) Regions() map[string]string { return nil }

func (BaseProvider) Sizes() map[string]string { return nil }

func (BaseProvider) PHPVersions() []int { return []int{56, 70, 71} }

func (BaseProvider) Validate(Payload) []string { return nil }

// missingFields returns the subset of fields not present (per Payload.Has)
// in p, preserving order.
func missingFields(p Payload, fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if !p.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}
