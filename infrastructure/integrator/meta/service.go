package meta

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"github.com/vfg2006/ad-spend-sync/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchDailySpend busca o gasto diário por país no nível de adset de cada
// conta. A moeda vem de uma consulta separada à conta e é melhor esforço:
// falha ali só deixa o campo vazio. A paginação segue o cursor paging.next
// até ele não vir mais.
func (s *MetaIntegrator) FetchDailySpend(accountIDs []string, window domain.DateWindow) ([]domain.DailySpendRecord, error) {
	records := make([]domain.DailySpendRecord, 0)

	for _, accountID := range accountIDs {
		if accountID == "" {
			continue
		}

		currency := s.accountCurrency(accountID)

		page, err := s.Client.GetAdsetInsights(accountID, window)
		if err != nil {
			return nil, err
		}

		for {
			for _, row := range page.Data {
				records = append(records, domain.DailySpendRecord{
					Date:         utils.NormalizeDate(row.DateStart),
					CountryCode:  row.Country,
					Spend:        utils.ParseFloatOrZero(row.Spend),
					Currency:     currency,
					AdgroupID:    row.AdsetID,
					AdgroupName:  row.AdsetName,
					CampaignID:   row.CampaignID,
					CampaignName: row.CampaignName,
				})
			}

			if page.Paging.Next == "" {
				break
			}

			page, err = s.Client.GetInsightsPage(page.Paging.Next)
			if err != nil {
				return nil, err
			}
		}
	}

	return records, nil
}

// accountCurrency resolve a moeda de reporting da conta. Melhor esforço.
func (s *MetaIntegrator) accountCurrency(accountID string) string {
	account, err := s.Client.GetAdAccountByID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("meta: failed to resolve account currency, leaving it empty")
		return ""
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"currency":   account.Currency,
	}).Debug("meta: resolved account currency")

	return account.Currency
}
