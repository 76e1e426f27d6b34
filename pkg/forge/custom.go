package forge

// custom is the bring-your-own-server backend: no region or size catalog,
// the machine already exists and is identified by its IP addresses.
type custom struct {
	BaseProvider
}

// Custom returns the custom-VPS provider.
func Custom() Provider { return custom{} }

func (custom) Name() string { return "custom" }

func (custom) Validate(p Payload) []string {
	return missingFields(p, "name", "ip_address", "private_ip_address")
}
