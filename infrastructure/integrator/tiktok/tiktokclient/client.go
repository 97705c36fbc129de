package tiktokclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	tiktokdomain "github.com/vfg2006/ad-spend-sync/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/credential"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

const (
	reportPageSize  = 1000
	adGroupPageSize = 1000
)

type Client interface {
	GetIntegratedReport(advertiserID string, window domain.DateWindow, page int) (*tiktokdomain.ReportResponse, error)
	GetAdGroups(advertiserID string, adgroupIDs []string, page int) (*tiktokdomain.AdGroupResponse, error)
}

type TikTokClient struct {
	cfg        *config.Config
	httpClient *http.Client
	tokens     credential.TokenProvider
}

func NewClient(cfg *config.Config, tokens credential.TokenProvider) Client {
	return &TikTokClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// GetIntegratedReport busca uma página do relatório diário por país e adgroup.
func (c *TikTokClient) GetIntegratedReport(advertiserID string, window domain.DateWindow, page int) (*tiktokdomain.ReportResponse, error) {
	payload := map[string]any{
		"advertiser_id": advertiserID,
		"start_date":    window.StartDate,
		"end_date":      window.EndDate,
		"metrics":       []string{"spend", "currency"},
		"report_type":   "BASIC",
		"data_level":    "AUCTION_ADGROUP",
		"dimensions":    []string{"stat_time_day", "country_code", "adgroup_id"},
		"page":          page,
		"page_size":     reportPageSize,
	}

	response := &tiktokdomain.ReportResponse{}
	if err := c.do("/report/integrated/get/", payload, response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar relatório integrado do TikTok")
	}

	return response, nil
}

// GetAdGroups resolve metadados (nome, campanha) de um lote de adgroup ids.
func (c *TikTokClient) GetAdGroups(advertiserID string, adgroupIDs []string, page int) (*tiktokdomain.AdGroupResponse, error) {
	payload := map[string]any{
		"advertiser_id": advertiserID,
		"filtering":     map[string]any{"adgroup_ids": adgroupIDs},
		"fields": []string{
			"adgroup_id",
			"adgroup_name",
			"campaign_id",
			"campaign_name",
		},
		"page":      page,
		"page_size": adGroupPageSize,
	}

	response := &tiktokdomain.AdGroupResponse{}
	if err := c.do("/adgroup/get/", payload, response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar adgroups do TikTok")
	}

	return response, nil
}

// do executa a requisição no padrão da Business API: GET com corpo JSON e o
// token estático no header Access-Token.
func (c *TikTokClient) do(path string, payload map[string]any, out any) error {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar o payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodGet, c.cfg.TikTok.URL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Access-Token", token)

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
