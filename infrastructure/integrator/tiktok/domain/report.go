package domain

// PageInfo carrega a paginação reportada pela API. Os campos chegam sem tipo
// garantido; Ints valida antes de continuar o loop de páginas.
type PageInfo struct {
	Page      any `json:"page"`
	TotalPage any `json:"total_page"`
}

// Ints retorna página atual e total quando ambos são inteiros válidos.
func (p PageInfo) Ints() (page, total int, ok bool) {
	page, okPage := asInt(p.Page)
	total, okTotal := asInt(p.TotalPage)
	return page, total, okPage && okTotal
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

// ReportResponse é a resposta do endpoint report/integrated/get.
// Code diferente de zero indica erro da API mesmo com HTTP 200.
type ReportResponse struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    ReportData `json:"data"`
}

type ReportData struct {
	List     []ReportRow `json:"list"`
	PageInfo PageInfo    `json:"page_info"`
}

type ReportRow struct {
	Dimensions ReportDimensions `json:"dimensions"`
	Metrics    ReportMetrics    `json:"metrics"`
}

type ReportDimensions struct {
	StatTimeDay string `json:"stat_time_day"`
	CountryCode string `json:"country_code"`
	AdgroupID   string `json:"adgroup_id"`
}

type ReportMetrics struct {
	Spend    string `json:"spend"`
	Currency string `json:"currency"`
}

// AdGroupResponse é a resposta do endpoint adgroup/get usado para resolver
// nome do adgroup e campanha dona.
type AdGroupResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    AdGroupData `json:"data"`
}

type AdGroupData struct {
	List     []AdGroup `json:"list"`
	PageInfo PageInfo  `json:"page_info"`
}

type AdGroup struct {
	AdgroupID    string `json:"adgroup_id"`
	AdgroupName  string `json:"adgroup_name"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
}
