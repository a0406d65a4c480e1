package client

// DistributionCenter is a partition of the client base.
type DistributionCenter struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultCenter is preselected by the map page.
const DefaultCenter = "AV46"

var DistributionCenters = []DistributionCenter{
	{Code: "AV28", Name: "Popayán"},
	{Code: "AV57", Name: "Tuluá"},
	{Code: "AV46", Name: "Cali"},
}
