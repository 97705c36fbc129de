package domain

// Provider identifica o canal de mídia de origem dos gastos.
type Provider string

const (
	ProviderTikTok Provider = "tiktok"
	ProviderMeta   Provider = "meta"
	ProviderASA    Provider = "asa"
)

// AllProviders define a ordem fixa de processamento dos canais.
var AllProviders = []Provider{ProviderTikTok, ProviderMeta, ProviderASA}

func (p Provider) Valid() bool {
	switch p {
	case ProviderTikTok, ProviderMeta, ProviderASA:
		return true
	}
	return false
}

// MultiCountry é o valor sentinela usado quando uma campanha segmenta mais de um país.
const MultiCountry = "MULTI"

// DailySpendRecord é o registro normalizado de gasto diário por país e adgroup.
// Imutável após a construção; os campos de nome ficam vazios quando o
// provedor não retorna os metadados correspondentes.
type DailySpendRecord struct {
	Date         string
	CountryCode  string
	Spend        float64
	Currency     string
	AdgroupID    string
	AdgroupName  string
	CampaignID   string
	CampaignName string
}

// SpendRow é a linha enviada aos sinks (CSV ou warehouse), já carimbada com o
// rótulo da conta de anúncio.
type SpendRow struct {
	Date         string
	AdAccount    string
	Country      string
	Spend        float64
	Currency     string
	CampaignID   string
	CampaignName string
	AdgroupID    string
	AdgroupName  string
}

// NewSpendRow converte um registro normalizado em linha de saída.
func NewSpendRow(appLabel string, r DailySpendRecord) SpendRow {
	return SpendRow{
		Date:         r.Date,
		AdAccount:    appLabel,
		Country:      r.CountryCode,
		Spend:        r.Spend,
		Currency:     r.Currency,
		CampaignID:   r.CampaignID,
		CampaignName: r.CampaignName,
		AdgroupID:    r.AdgroupID,
		AdgroupName:  r.AdgroupName,
	}
}
