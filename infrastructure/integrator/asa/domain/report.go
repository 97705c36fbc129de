package domain

// ReportResponse embrulha o relatório diário de adgroups de uma campanha.
type ReportResponse struct {
	Data ReportData `json:"data"`
}

type ReportData struct {
	ReportingDataResponse ReportingDataResponse `json:"reportingDataResponse"`
}

type ReportingDataResponse struct {
	Rows []ReportRow `json:"row"`
}

// ReportRow tem os metadados do adgroup e uma entrada por dia em Granularity.
type ReportRow struct {
	Metadata    RowMetadata    `json:"metadata"`
	Granularity []DailyMetrics `json:"granularity"`
}

type RowMetadata struct {
	AdGroupID   int64  `json:"adGroupId"`
	AdGroupName string `json:"adGroupName"`
}

type DailyMetrics struct {
	Date       string `json:"date"`
	LocalSpend Money  `json:"localSpend"`
}

// Money é o par valor/moeda usado pelo Search Ads; Amount chega como string.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}
