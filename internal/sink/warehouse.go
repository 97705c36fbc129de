package sink

import (
	"context"

	"github.com/vfg2006/ad-spend-sync/infrastructure/repository"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

const DefaultBatchSize = 500

// WarehouseSink acumula linhas e as envia ao warehouse em lotes. A tabela é
// criada/alargada de forma idempotente antes do primeiro insert. O primeiro
// erro de insert interrompe a execução.
type WarehouseSink struct {
	ctx       context.Context
	repo      repository.SpendRepository
	batchSize int
	buffer    []domain.SpendRow
	ensured   bool
}

func NewWarehouseSink(ctx context.Context, repo repository.SpendRepository, batchSize int) *WarehouseSink {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &WarehouseSink{
		ctx:       ctx,
		repo:      repo,
		batchSize: batchSize,
		buffer:    make([]domain.SpendRow, 0, batchSize),
	}
}

func (s *WarehouseSink) Write(rows []domain.SpendRow) error {
	if !s.ensured {
		if err := s.repo.EnsureTable(s.ctx); err != nil {
			return err
		}
		s.ensured = true
	}

	for _, row := range rows {
		s.buffer = append(s.buffer, row)
		if len(s.buffer) >= s.batchSize {
			if err := s.flush(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *WarehouseSink) Close() error {
	return s.flush()
}

func (s *WarehouseSink) flush() error {
	if len(s.buffer) == 0 {
		return nil
	}

	if err := s.repo.InsertBatch(s.ctx, s.buffer); err != nil {
		return err
	}

	s.buffer = s.buffer[:0]
	return nil
}
