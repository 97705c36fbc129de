package tiktok

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tiktokdomain "github.com/vfg2006/ad-spend-sync/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/tiktok/tiktokclient/mocks"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

var testWindow = domain.DateWindow{StartDate: "2024-06-01", EndDate: "2024-06-30"}

func reportRow(date, country, adgroupID, spend string) tiktokdomain.ReportRow {
	return tiktokdomain.ReportRow{
		Dimensions: tiktokdomain.ReportDimensions{
			StatTimeDay: date,
			CountryCode: country,
			AdgroupID:   adgroupID,
		},
		Metrics: tiktokdomain.ReportMetrics{Spend: spend, Currency: "USD"},
	}
}

func TestTikTokIntegrator_FetchDailySpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	// Relatório de uma página com dois adgroups distintos.
	mockClient.EXPECT().
		GetIntegratedReport("adv1", testWindow, 1).
		Return(&tiktokdomain.ReportResponse{
			Code: 0,
			Data: tiktokdomain.ReportData{
				List: []tiktokdomain.ReportRow{
					reportRow("2024-06-01 00:00:00", "US", "ag1", "10.5"),
					reportRow("2024-06-02 00:00:00", "BR", "ag2", "não-numérico"),
				},
				PageInfo: tiktokdomain.PageInfo{Page: 1, TotalPage: 1},
			},
		}, nil)

	// Metadados resolvidos para ag1; ag2 fica sem correspondência.
	mockClient.EXPECT().
		GetAdGroups("adv1", []string{"ag1", "ag2"}, 1).
		Return(&tiktokdomain.AdGroupResponse{
			Code: 0,
			Data: tiktokdomain.AdGroupData{
				List: []tiktokdomain.AdGroup{
					{AdgroupID: "ag1", AdgroupName: "Grupo 1", CampaignID: "c1", CampaignName: "Campanha 1"},
				},
				PageInfo: tiktokdomain.PageInfo{Page: 1, TotalPage: 1},
			},
		}, nil)

	records, err := service.FetchDailySpend([]string{"adv1"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Data truncada, gasto convertido e metadados juntados.
	assert.Equal(t, domain.DailySpendRecord{
		Date:         "2024-06-01",
		CountryCode:  "US",
		Spend:        10.5,
		Currency:     "USD",
		AdgroupID:    "ag1",
		AdgroupName:  "Grupo 1",
		CampaignID:   "c1",
		CampaignName: "Campanha 1",
	}, records[0])

	// Gasto não numérico vira zero; adgroup sem metadados fica com nomes vazios.
	assert.Equal(t, domain.DailySpendRecord{
		Date:        "2024-06-02",
		CountryCode: "BR",
		Spend:       0,
		Currency:    "USD",
		AdgroupID:   "ag2",
	}, records[1])
}

func TestTikTokIntegrator_FetchDailySpend_Paginacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetIntegratedReport("adv1", testWindow, 1).
		Return(&tiktokdomain.ReportResponse{
			Data: tiktokdomain.ReportData{
				List:     []tiktokdomain.ReportRow{reportRow("2024-06-01", "US", "ag1", "1.0")},
				PageInfo: tiktokdomain.PageInfo{Page: 1, TotalPage: 2},
			},
		}, nil)

	mockClient.EXPECT().
		GetIntegratedReport("adv1", testWindow, 2).
		Return(&tiktokdomain.ReportResponse{
			Data: tiktokdomain.ReportData{
				List:     []tiktokdomain.ReportRow{reportRow("2024-06-01", "BR", "ag1", "2.0")},
				PageInfo: tiktokdomain.PageInfo{Page: 2, TotalPage: 2},
			},
		}, nil)

	mockClient.EXPECT().
		GetAdGroups("adv1", []string{"ag1"}, 1).
		Return(&tiktokdomain.AdGroupResponse{
			Data: tiktokdomain.AdGroupData{PageInfo: tiktokdomain.PageInfo{Page: 1, TotalPage: 1}},
		}, nil)

	records, err := service.FetchDailySpend([]string{"adv1"}, testWindow)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestTikTokIntegrator_FetchDailySpend_PageInfoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	// page_info com tipos inesperados encerra a paginação após a primeira
	// página, em vez de entrar em loop.
	mockClient.EXPECT().
		GetIntegratedReport("adv1", testWindow, 1).
		Return(&tiktokdomain.ReportResponse{
			Data: tiktokdomain.ReportData{
				List:     []tiktokdomain.ReportRow{reportRow("2024-06-01", "US", "ag1", "1.0")},
				PageInfo: tiktokdomain.PageInfo{Page: "1", TotalPage: "muitas"},
			},
		}, nil).
		Times(1)

	mockClient.EXPECT().
		GetAdGroups("adv1", []string{"ag1"}, 1).
		Return(&tiktokdomain.AdGroupResponse{
			Data: tiktokdomain.AdGroupData{PageInfo: tiktokdomain.PageInfo{Page: 1, TotalPage: 1}},
		}, nil)

	records, err := service.FetchDailySpend([]string{"adv1"}, testWindow)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTikTokIntegrator_FetchDailySpend_CodeDiferenteDeZeroAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetIntegratedReport("adv1", testWindow, 1).
		Return(&tiktokdomain.ReportResponse{Code: 40001, Message: "token expirado"}, nil)

	records, err := service.FetchDailySpend([]string{"adv1"}, testWindow)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token expirado")
	assert.Nil(t, records)
}

func TestTikTokIntegrator_FetchDailySpend_ErroDeMetadadosNaoAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetIntegratedReport("adv1", testWindow, 1).
		Return(&tiktokdomain.ReportResponse{
			Data: tiktokdomain.ReportData{
				List:     []tiktokdomain.ReportRow{reportRow("2024-06-01", "US", "ag1", "5.0")},
				PageInfo: tiktokdomain.PageInfo{Page: 1, TotalPage: 1},
			},
		}, nil)

	mockClient.EXPECT().
		GetAdGroups("adv1", []string{"ag1"}, 1).
		Return(nil, errors.New("timeout"))

	records, err := service.FetchDailySpend([]string{"adv1"}, testWindow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].AdgroupName)
	assert.Empty(t, records[0].CampaignID)
	assert.Equal(t, 5.0, records[0].Spend)
}

func TestTikTokIntegrator_FetchDailySpend_AdvertiserVazioIgnorado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	records, err := service.FetchDailySpend([]string{""}, testWindow)
	require.NoError(t, err)
	assert.Empty(t, records)
}
