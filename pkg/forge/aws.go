package forge

type aws struct {
	BaseProvider
}

// AWS returns the Amazon EC2 provider.
func AWS() Provider { return aws{} }

func (aws) Name() string { return "aws" }

func (aws) Regions() map[string]string {
	return map[string]string{
		"us-east-1":      "Virginia",
		"us-west-1":      "California",
		"us-west-2":      "Oregon",
		"eu-west-1":      "Ireland",
		"eu-central-1":   "Frankfurt",
		"ap-northeast-1": "Tokyo",
		"ap-southeast-1": "Singapore",
		"ap-southeast-2": "Sydney",
		"sa-east-1":      "Sao Paulo",
	}
}

func (aws) Sizes() map[string]string {
	return map[string]string{
		"512MB": "t2.nano",
		"1GB":   "t2.micro",
		"2GB":   "t2.small",
		"4GB":   "t2.medium",
		"8GB":   "m4.large",
		"16GB":  "m4.xlarge",
		"32GB":  "m4.2xlarge",
		"64GB":  "m4.4xlarge",
	}
}

func (aws) Validate(p Payload) []string {
	return missingFields(p, "credential_id", "name", "region", "size")
}
