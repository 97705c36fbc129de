package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ad-spend-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/credential"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

const insightsPageSize = 500

type Client interface {
	GetAdAccountByID(accountID string) (*metadomain.AdAccount, error)
	GetAdsetInsights(accountID string, window domain.DateWindow) (*metadomain.InsightsResponse, error)
	GetInsightsPage(nextURL string) (*metadomain.InsightsResponse, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
	tokens     credential.TokenProvider
}

func NewClient(cfg *config.Config, tokens credential.TokenProvider) Client {
	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// GetAdAccountByID busca os dados da conta de anúncio, usados para resolver a
// moeda de reporting.
func (c *MetaClient) GetAdAccountByID(accountID string) (*metadomain.AdAccount, error) {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("access_token", token)
	params.Add("fields", "id,account_id,name,currency")

	endpoint := fmt.Sprintf("%s/act_%s?%s", c.cfg.Meta.URL, accountID, params.Encode())

	account := &metadomain.AdAccount{}
	if err := c.get(endpoint, account); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a conta de anúncio do Meta")
	}

	return account, nil
}

// GetAdsetInsights busca a primeira página do relatório de insights no nível
// de adset, com breakdown por país e granularidade diária.
func (c *MetaClient) GetAdsetInsights(accountID string, window domain.DateWindow) (*metadomain.InsightsResponse, error) {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return nil, err
	}

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", window.StartDate, window.EndDate)

	params := url.Values{}
	params.Add("access_token", token)
	params.Add("fields", "spend,date_start,date_stop,adset_id,adset_name,campaign_id,campaign_name")
	params.Add("breakdowns", "country")
	params.Add("time_increment", "1")
	params.Add("level", "adset")
	params.Add("time_range", timeRange)
	params.Add("limit", strconv.Itoa(insightsPageSize))

	endpoint := fmt.Sprintf("%s/act_%s/insights?%s", c.cfg.Meta.URL, accountID, params.Encode())

	return c.insightsPage(endpoint)
}

// GetInsightsPage segue o cursor opaco paging.next exatamente como recebido.
func (c *MetaClient) GetInsightsPage(nextURL string) (*metadomain.InsightsResponse, error) {
	return c.insightsPage(nextURL)
}

func (c *MetaClient) insightsPage(endpoint string) (*metadomain.InsightsResponse, error) {
	response := &metadomain.InsightsResponse{}
	if err := c.get(endpoint, response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar insights do Meta")
	}
	return response, nil
}

func (c *MetaClient) get(endpoint string, out any) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

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
