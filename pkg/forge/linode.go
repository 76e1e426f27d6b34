package forge

type linode struct {
	BaseProvider
}

// Linode returns the Linode provider.
func Linode() Provider { return linode{} }

func (linode) Name() string { return "linode" }

func (linode) Regions() map[string]string {
	return map[string]string{
		"atlanta":   "Atlanta",
		"dallas":    "Dallas",
		"frankfurt": "Frankfurt",
		"fremont":   "Fremont",
		"london":    "London",
		"newark":    "Newark",
		"singapore": "Singapore",
		"tokyo":     "Tokyo",
	}
}

func (linode) Sizes() map[string]string {
	return map[string]string{
		"1GB":  "Linode 1GB - 1 CPU Core - 20GB SSD",
		"2GB":  "Linode 2GB - 1 CPU Core - 30GB SSD",
		"4GB":  "Linode 4GB - 2 CPU Cores - 48GB SSD",
		"8GB":  "Linode 8GB - 4 CPU Cores - 96GB SSD",
		"12GB": "Linode 12GB - 6 CPU Cores - 192GB SSD",
		"24GB": "Linode 24GB - 8 CPU Cores - 384GB SSD",
		"48GB": "Linode 48GB - 12 CPU Cores - 768GB SSD",
		"64GB": "Linode 64GB - 16 CPU Cores - 1152GB SSD",
	}
}

func (linode) Validate(p Payload) []string {
	return missingFields(p, "credential_id", "name", "region", "size")
}
