package domain

// AdAccount é a resposta do endpoint act_<id> usada só para a moeda da conta.
type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
}

// AdsetInsight é uma linha do relatório de insights no nível de adset com
// breakdown por país. Spend chega como string na Graph API.
type AdsetInsight struct {
	Spend        string `json:"spend"`
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`
	Country      string `json:"country"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"adset_name"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
}

type InsightsResponse struct {
	Data   []AdsetInsight `json:"data"`
	Paging Paging         `json:"paging"`
}

// Paging carrega o cursor opaco de paginação. Next é uma URL completa
// controlada pelo provedor e deve ser seguida como recebida.
type Paging struct {
	Next string `json:"next"`
}
