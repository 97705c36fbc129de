package domain

// Campaign é a campanha retornada por campaigns/find e campaigns/<id>.
// CountriesOrRegions decide o país carimbado nos registros: vazio -> "",
// um país -> o próprio código, mais de um -> sentinela MULTI.
type Campaign struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	CountriesOrRegions []string `json:"countriesOrRegions"`
}

type FindCampaignsResponse struct {
	Data []Campaign `json:"data"`
}

type CampaignResponse struct {
	Data Campaign `json:"data"`
}
