package asa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/asa/asaclient/mocks"
	asadomain "github.com/vfg2006/ad-spend-sync/infrastructure/integrator/asa/domain"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

var testWindow = domain.DateWindow{StartDate: "2024-06-01", EndDate: "2024-06-30"}

func dailyRow(adgroupID int64, adgroupName, date, amount, currency string) asadomain.ReportRow {
	return asadomain.ReportRow{
		Metadata: asadomain.RowMetadata{AdGroupID: adgroupID, AdGroupName: adgroupName},
		Granularity: []asadomain.DailyMetrics{
			{Date: date, LocalSpend: asadomain.Money{Amount: amount, Currency: currency}},
		},
	}
}

func TestASAIntegrator_FetchDailySpend_PaisDaCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	campaigns := []asadomain.Campaign{
		{ID: 1, Name: "Um País"},
		{ID: 2, Name: "Vários Países"},
		{ID: 3, Name: "Sem País"},
	}

	mockClient.EXPECT().FindCampaigns("org1").Return(campaigns, nil)

	mockClient.EXPECT().GetCampaign("org1", int64(1)).
		Return(&asadomain.Campaign{ID: 1, CountriesOrRegions: []string{"US"}}, nil)
	mockClient.EXPECT().GetCampaign("org1", int64(2)).
		Return(&asadomain.Campaign{ID: 2, CountriesOrRegions: []string{"US", "BR"}}, nil)
	mockClient.EXPECT().GetCampaign("org1", int64(3)).
		Return(&asadomain.Campaign{ID: 3}, nil)

	mockClient.EXPECT().GetAdGroupReport("org1", int64(1), testWindow).
		Return([]asadomain.ReportRow{dailyRow(10, "Grupo A", "2024-06-01", "5.5", "USD")}, nil)
	mockClient.EXPECT().GetAdGroupReport("org1", int64(2), testWindow).
		Return([]asadomain.ReportRow{dailyRow(20, "Grupo B", "2024-06-01", "2.0", "USD")}, nil)
	mockClient.EXPECT().GetAdGroupReport("org1", int64(3), testWindow).
		Return([]asadomain.ReportRow{dailyRow(30, "Grupo C", "2024-06-01", "1.0", "USD")}, nil)

	records, err := service.FetchDailySpend([]string{"org1"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Um país -> o código; mais de um -> MULTI; nenhum -> vazio.
	assert.Equal(t, "US", records[0].CountryCode)
	assert.Equal(t, domain.MultiCountry, records[1].CountryCode)
	assert.Empty(t, records[2].CountryCode)

	assert.Equal(t, domain.DailySpendRecord{
		Date:         "2024-06-01",
		CountryCode:  "US",
		Spend:        5.5,
		Currency:     "USD",
		AdgroupID:    "10",
		AdgroupName:  "Grupo A",
		CampaignID:   "1",
		CampaignName: "Um País",
	}, records[0])
}

func TestASAIntegrator_FetchDailySpend_ErroNosDetalhesDegradaPais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().FindCampaigns("org1").
		Return([]asadomain.Campaign{{ID: 1, Name: "Campanha"}}, nil)
	mockClient.EXPECT().GetCampaign("org1", int64(1)).
		Return(nil, errors.New("timeout"))
	mockClient.EXPECT().GetAdGroupReport("org1", int64(1), testWindow).
		Return([]asadomain.ReportRow{dailyRow(10, "Grupo", "2024-06-01", "1.0", "USD")}, nil)

	records, err := service.FetchDailySpend([]string{"org1"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].CountryCode)
}

func TestASAIntegrator_FetchDailySpend_ErroNoRelatorioPulaCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().FindCampaigns("org1").
		Return([]asadomain.Campaign{
			{ID: 1, Name: "Quebrada"},
			{ID: 2, Name: "Saudável"},
		}, nil)
	mockClient.EXPECT().GetCampaign("org1", int64(1)).
		Return(&asadomain.Campaign{ID: 1, CountriesOrRegions: []string{"US"}}, nil)
	mockClient.EXPECT().GetCampaign("org1", int64(2)).
		Return(&asadomain.Campaign{ID: 2, CountriesOrRegions: []string{"BR"}}, nil)

	mockClient.EXPECT().GetAdGroupReport("org1", int64(1), testWindow).
		Return(nil, errors.New("erro interno"))
	mockClient.EXPECT().GetAdGroupReport("org1", int64(2), testWindow).
		Return([]asadomain.ReportRow{dailyRow(20, "Grupo", "2024-06-01", "3.0", "BRL")}, nil)

	records, err := service.FetchDailySpend([]string{"org1"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].CampaignID)
}

func TestASAIntegrator_FetchDailySpend_ErroAoListarCampanhasAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().FindCampaigns("org1").
		Return(nil, errors.New("não autorizado"))

	records, err := service.FetchDailySpend([]string{"org1"}, testWindow)
	assert.Error(t, err)
	assert.Nil(t, records)
}

func TestASAIntegrator_FetchDailySpend_AdGroupIDZeroFicaVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().FindCampaigns("org1").
		Return([]asadomain.Campaign{{ID: 1, Name: "Campanha"}}, nil)
	mockClient.EXPECT().GetCampaign("org1", int64(1)).
		Return(&asadomain.Campaign{ID: 1, CountriesOrRegions: []string{"US"}}, nil)
	mockClient.EXPECT().GetAdGroupReport("org1", int64(1), testWindow).
		Return([]asadomain.ReportRow{dailyRow(0, "", "2024-06-01", "1.0", "USD")}, nil)

	records, err := service.FetchDailySpend([]string{"org1"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].AdgroupID)
}
