package meta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ad-spend-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

var testWindow = domain.DateWindow{StartDate: "2024-06-01", EndDate: "2024-06-30"}

func TestMetaIntegrator_FetchDailySpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetAdAccountByID("123").
		Return(&metadomain.AdAccount{Currency: "BRL"}, nil)

	mockClient.EXPECT().
		GetAdsetInsights("123", testWindow).
		Return(&metadomain.InsightsResponse{
			Data: []metadomain.AdsetInsight{
				{
					Spend:        "10.5",
					DateStart:    "2024-06-01",
					Country:      "BR",
					AdsetID:      "as1",
					AdsetName:    "Adset 1",
					CampaignID:   "c1",
					CampaignName: "Campanha 1",
				},
			},
			Paging: metadomain.Paging{Next: "https://graph.facebook.com/next?after=abc"},
		}, nil)

	// O cursor opaco é seguido exatamente como recebido.
	mockClient.EXPECT().
		GetInsightsPage("https://graph.facebook.com/next?after=abc").
		Return(&metadomain.InsightsResponse{
			Data: []metadomain.AdsetInsight{
				{Spend: "2.0", DateStart: "2024-06-02", Country: "US", AdsetID: "as2"},
			},
		}, nil)

	records, err := service.FetchDailySpend([]string{"123"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.DailySpendRecord{
		Date:         "2024-06-01",
		CountryCode:  "BR",
		Spend:        10.5,
		Currency:     "BRL",
		AdgroupID:    "as1",
		AdgroupName:  "Adset 1",
		CampaignID:   "c1",
		CampaignName: "Campanha 1",
	}, records[0])

	// A moeda da conta vale para todas as páginas.
	assert.Equal(t, "BRL", records[1].Currency)
	assert.Equal(t, "2024-06-02", records[1].Date)
}

func TestMetaIntegrator_FetchDailySpend_MoedaMelhorEsforco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	// Falha ao resolver a moeda não aborta: o campo fica vazio.
	mockClient.EXPECT().
		GetAdAccountByID("123").
		Return(nil, errors.New("permissão negada"))

	mockClient.EXPECT().
		GetAdsetInsights("123", testWindow).
		Return(&metadomain.InsightsResponse{
			Data: []metadomain.AdsetInsight{
				{Spend: "1.0", DateStart: "2024-06-01", Country: "BR", AdsetID: "as1"},
			},
		}, nil)

	records, err := service.FetchDailySpend([]string{"123"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Currency)
}

func TestMetaIntegrator_FetchDailySpend_ErroDeInsightsAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetAdAccountByID("123").
		Return(&metadomain.AdAccount{Currency: "BRL"}, nil)

	mockClient.EXPECT().
		GetAdsetInsights("123", testWindow).
		Return(nil, errors.New("rate limit"))

	records, err := service.FetchDailySpend([]string{"123"}, testWindow)
	assert.Error(t, err)
	assert.Nil(t, records)
}

func TestMetaIntegrator_FetchDailySpend_ErroNaPaginaSeguinteAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetAdAccountByID("123").
		Return(&metadomain.AdAccount{Currency: "BRL"}, nil)

	mockClient.EXPECT().
		GetAdsetInsights("123", testWindow).
		Return(&metadomain.InsightsResponse{
			Data:   []metadomain.AdsetInsight{{Spend: "1.0", DateStart: "2024-06-01"}},
			Paging: metadomain.Paging{Next: "https://graph.facebook.com/next"},
		}, nil)

	mockClient.EXPECT().
		GetInsightsPage("https://graph.facebook.com/next").
		Return(nil, errors.New("rate limit"))

	_, err := service.FetchDailySpend([]string{"123"}, testWindow)
	assert.Error(t, err)
}

func TestMetaIntegrator_FetchDailySpend_ContaVaziaIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	records, err := service.FetchDailySpend([]string{""}, testWindow)
	require.NoError(t, err)
	assert.Empty(t, records)
}
