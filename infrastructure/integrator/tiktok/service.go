package tiktok

import (
	"fmt"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-spend-sync/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"github.com/vfg2006/ad-spend-sync/pkg/utils"
)

const metadataBatchSize = 50

type TikTokIntegrator struct {
	cfg    *config.Config
	Client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

type rawRow struct {
	date      string
	country   string
	adgroupID string
	spend     float64
	currency  string
}

// FetchDailySpend busca o gasto diário por país e adgroup de cada advertiser.
// A busca tem dois estágios: o relatório paginado e depois a resolução dos
// metadados dos adgroups observados, em lotes. Um code diferente de zero no
// relatório aborta o fetch inteiro; lotes de metadados com erro são apenas
// pulados e deixam os nomes vazios.
func (s *TikTokIntegrator) FetchDailySpend(advertiserIDs []string, window domain.DateWindow) ([]domain.DailySpendRecord, error) {
	records := make([]domain.DailySpendRecord, 0)

	for _, advertiserID := range advertiserIDs {
		if advertiserID == "" {
			continue
		}

		rows, adgroupIDs, err := s.fetchReportRows(advertiserID, window)
		if err != nil {
			return nil, err
		}

		details := s.resolveAdGroups(advertiserID, adgroupIDs)

		for _, row := range rows {
			detail := details[row.adgroupID]
			records = append(records, domain.DailySpendRecord{
				Date:         row.date,
				CountryCode:  row.country,
				Spend:        row.spend,
				Currency:     row.currency,
				AdgroupID:    row.adgroupID,
				AdgroupName:  detail.AdgroupName,
				CampaignID:   detail.CampaignID,
				CampaignName: detail.CampaignName,
			})
		}
	}

	return records, nil
}

func (s *TikTokIntegrator) fetchReportRows(advertiserID string, window domain.DateWindow) ([]rawRow, []string, error) {
	rows := make([]rawRow, 0)
	seen := make(map[string]struct{})
	adgroupIDs := make([]string, 0)

	page := 1
	for {
		resp, err := s.Client.GetIntegratedReport(advertiserID, window, page)
		if err != nil {
			return nil, nil, err
		}

		if resp.Code != 0 {
			return nil, nil, fmt.Errorf("TikTok API retornou erro: %s", resp.Message)
		}

		for _, item := range resp.Data.List {
			row := rawRow{
				date:      utils.NormalizeDate(item.Dimensions.StatTimeDay),
				country:   item.Dimensions.CountryCode,
				adgroupID: item.Dimensions.AdgroupID,
				spend:     utils.ParseFloatOrZero(item.Metrics.Spend),
				currency:  item.Metrics.Currency,
			}
			rows = append(rows, row)

			if row.adgroupID != "" {
				if _, ok := seen[row.adgroupID]; !ok {
					seen[row.adgroupID] = struct{}{}
					adgroupIDs = append(adgroupIDs, row.adgroupID)
				}
			}
		}

		// Sem page_info válido assumimos fim das páginas (risco documentado
		// de truncamento silencioso, preferível a loop infinito).
		current, total, ok := resp.Data.PageInfo.Ints()
		if !ok || current >= total {
			break
		}
		page = current + 1
	}

	return rows, adgroupIDs, nil
}

// resolveAdGroups busca nome e campanha dos adgroups em lotes. Falhas são
// toleradas: o lote é pulado e os adgroups ficam sem metadados.
func (s *TikTokIntegrator) resolveAdGroups(advertiserID string, adgroupIDs []string) map[string]tiktokdomain.AdGroup {
	details := make(map[string]tiktokdomain.AdGroup)

	for start := 0; start < len(adgroupIDs); start += metadataBatchSize {
		end := start + metadataBatchSize
		if end > len(adgroupIDs) {
			end = len(adgroupIDs)
		}
		batch := adgroupIDs[start:end]

		page := 1
		for {
			resp, err := s.Client.GetAdGroups(advertiserID, batch, page)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"advertiser_id": advertiserID,
					"batch_size":    len(batch),
					"error":         err.Error(),
				}).Warn("tiktok: failed to resolve adgroup metadata batch")
				break
			}
			if resp.Code != 0 {
				logrus.WithFields(logrus.Fields{
					"advertiser_id": advertiserID,
					"code":          resp.Code,
					"message":       resp.Message,
				}).Warn("tiktok: adgroup metadata batch returned non-zero code, skipping")
				break
			}

			for _, adgroup := range resp.Data.List {
				if adgroup.AdgroupID == "" {
					continue
				}
				details[adgroup.AdgroupID] = adgroup
			}

			current, total, ok := resp.Data.PageInfo.Ints()
			if !ok || current >= total {
				break
			}
			page = current + 1
		}
	}

	return details
}
