package asaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	asadomain "github.com/vfg2006/ad-spend-sync/infrastructure/integrator/asa/domain"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/credential"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

const campaignPageLimit = 1000

type Client interface {
	FindCampaigns(orgID string) ([]asadomain.Campaign, error)
	GetCampaign(orgID string, campaignID int64) (*asadomain.Campaign, error)
	GetAdGroupReport(orgID string, campaignID int64, window domain.DateWindow) ([]asadomain.ReportRow, error)
}

type ASAClient struct {
	cfg        *config.Config
	httpClient *http.Client
	tokens     credential.TokenProvider
}

func NewClient(cfg *config.Config, tokens credential.TokenProvider) Client {
	return &ASAClient{
		cfg:        cfg,
		httpClient: &http.Client{},
		tokens:     tokens,
	}
}

// FindCampaigns lista as campanhas da organização, mais recentes primeiro,
// em uma única chamada com limite de 1000.
func (c *ASAClient) FindCampaigns(orgID string) ([]asadomain.Campaign, error) {
	payload := map[string]any{
		"conditions": []any{},
		"orderBy": []map[string]string{
			{"field": "modificationTime", "sortOrder": "DESCENDING"},
		},
		"pagination": map[string]int{"offset": 0, "limit": campaignPageLimit},
	}

	response := &asadomain.FindCampaignsResponse{}
	err := c.do(http.MethodPost, "/campaigns/find", orgID, payload, response, 60*time.Second)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas do Search Ads")
	}

	return response.Data, nil
}

// GetCampaign busca os detalhes de uma campanha (countriesOrRegions).
func (c *ASAClient) GetCampaign(orgID string, campaignID int64) (*asadomain.Campaign, error) {
	response := &asadomain.CampaignResponse{}
	path := fmt.Sprintf("/campaigns/%d", campaignID)
	if err := c.do(http.MethodGet, path, orgID, nil, response, 30*time.Second); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar detalhes da campanha do Search Ads")
	}

	return &response.Data, nil
}

// GetAdGroupReport busca o relatório diário de adgroups da campanha, ordenado
// por gasto decrescente.
func (c *ASAClient) GetAdGroupReport(orgID string, campaignID int64, window domain.DateWindow) ([]asadomain.ReportRow, error) {
	payload := map[string]any{
		"startTime":                  window.StartDate,
		"endTime":                    window.EndDate,
		"timeZone":                   "UTC",
		"granularity":                "DAILY",
		"returnGrandTotals":          false,
		"returnRowTotals":            false,
		"returnRecordsWithNoMetrics": false,
		"selector": map[string]any{
			"conditions": []any{},
			"orderBy": []map[string]string{
				{"field": "localSpend", "sortOrder": "DESCENDING"},
			},
			"pagination": map[string]int{"offset": 0, "limit": campaignPageLimit},
		},
	}

	response := &asadomain.ReportResponse{}
	path := fmt.Sprintf("/reports/campaigns/%d/adgroups", campaignID)
	if err := c.do(http.MethodPost, path, orgID, payload, response, 60*time.Second); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar relatório de adgroups do Search Ads")
	}

	return response.Data.ReportingDataResponse.Rows, nil
}

func (c *ASAClient) do(method, path, orgID string, payload any, out any, timeout time.Duration) error {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar o payload: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.ASA.URL+path, body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-AP-Context", "orgId="+orgID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
