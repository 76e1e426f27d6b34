package forge

// digitalOcean is the DigitalOcean backend. Forge knows it as "ocean2".
type digitalOcean struct {
	BaseProvider
}

// DigitalOcean returns the DigitalOcean provider.
func DigitalOcean() Provider { return digitalOcean{} }

func (digitalOcean) Name() string { return "ocean2" }

func (digitalOcean) Regions() map[string]string {
	return map[string]string{
		"ams2": "Amsterdam 2",
		"ams3": "Amsterdam 3",
		"blr1": "Bangalore",
		"fra1": "Frankfurt",
		"lon1": "London",
		"nyc1": "New York 1",
		"nyc2": "New York 2",
		"nyc3": "New York 3",
		"sfo1": "San Francisco 1",
		"sfo2": "San Francisco 2",
		"sgp1": "Singapore",
		"tor1": "Toronto",
	}
}

func (digitalOcean) Sizes() map[string]string {
	return map[string]string{
		"512MB": "512MB RAM - 1 CPU Core - 20GB SSD",
		"1GB":   "1GB RAM - 1 CPU Core - 30GB SSD",
		"2GB":   "2GB RAM - 2 CPU Cores - 40GB SSD",
		"4GB":   "4GB RAM - 2 CPU Cores - 60GB SSD",
		"8GB":   "8GB RAM - 4 CPU Cores - 80GB SSD",
		"16GB":  "16GB RAM - 8 CPU Cores - 160GB SSD",
		"32GB":  "32GB RAM - 12 CPU Cores - 320GB SSD",
		"64GB":  "64GB RAM - 20 CPU Cores - 640GB SSD",
	}
}

func (digitalOcean) Validate(p Payload) []string {
	return missingFields(p, "credential_id", "name", "region", "size")
}
