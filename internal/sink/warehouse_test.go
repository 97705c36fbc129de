package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-spend-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func makeRows(n int) []domain.SpendRow {
	rows := make([]domain.SpendRow, n)
	for i := range rows {
		rows[i] = domain.SpendRow{Date: "2024-06-01", AdAccount: "app", Spend: float64(i)}
	}
	return rows
}

func TestWarehouseSink_EnsureTableAntesDoPrimeiroInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpendRepository(ctrl)
	sink := NewWarehouseSink(context.Background(), mockRepo, 10)

	// EnsureTable roda uma única vez, mesmo com várias escritas.
	mockRepo.EXPECT().EnsureTable(gomock.Any()).Return(nil).Times(1)
	mockRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Len(4)).Return(nil)

	require.NoError(t, sink.Write(makeRows(2)))
	require.NoError(t, sink.Write(makeRows(2)))
	require.NoError(t, sink.Close())
}

func TestWarehouseSink_LotesNoTamanhoConfigurado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpendRepository(ctrl)
	sink := NewWarehouseSink(context.Background(), mockRepo, 3)

	mockRepo.EXPECT().EnsureTable(gomock.Any()).Return(nil)
	// 7 linhas com lote de 3: dois lotes cheios e o resto no Close.
	mockRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Len(3)).Return(nil).Times(2)
	mockRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Len(1)).Return(nil)

	require.NoError(t, sink.Write(makeRows(7)))
	require.NoError(t, sink.Close())
}

func TestWarehouseSink_ErroDeInsertInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpendRepository(ctrl)
	sink := NewWarehouseSink(context.Background(), mockRepo, 2)

	mockRepo.EXPECT().EnsureTable(gomock.Any()).Return(nil)
	mockRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))

	err := sink.Write(makeRows(2))
	assert.Error(t, err)
}

func TestWarehouseSink_ErroNoEnsureTableInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpendRepository(ctrl)
	sink := NewWarehouseSink(context.Background(), mockRepo, 2)

	mockRepo.EXPECT().EnsureTable(gomock.Any()).Return(errors.New("permissão negada"))

	assert.Error(t, sink.Write(makeRows(1)))
}

func TestWarehouseSink_CloseSemLinhasNaoInsere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpendRepository(ctrl)
	sink := NewWarehouseSink(context.Background(), mockRepo, 2)

	require.NoError(t, sink.Close())
}
