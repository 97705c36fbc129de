package sink

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

// csvHeader são as nove colunas de saída, em minúsculas e sem pontos.
var csvHeader = []string{
	"date",
	"app",
	"country",
	"spend",
	"currency",
	"campaign_id",
	"campaign_name",
	"adgroup_id",
	"adgroup_name",
}

// CSVSink escreve as linhas como CSV, com o gasto formatado com seis casas
// decimais. O header sai uma única vez, antes da primeira linha.
type CSVSink struct {
	writer      *csv.Writer
	wroteHeader bool
}

func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{writer: csv.NewWriter(w)}
}

func (s *CSVSink) Write(rows []domain.SpendRow) error {
	if !s.wroteHeader {
		if err := s.writer.Write(csvHeader); err != nil {
			return err
		}
		s.wroteHeader = true
	}

	for _, row := range rows {
		record := []string{
			row.Date,
			row.AdAccount,
			row.Country,
			strconv.FormatFloat(row.Spend, 'f', 6, 64),
			row.Currency,
			row.CampaignID,
			row.CampaignName,
			row.AdgroupID,
			row.AdgroupName,
		}
		if err := s.writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (s *CSVSink) Close() error {
	// O header precisa sair mesmo quando nenhuma linha foi emitida.
	if !s.wroteHeader {
		if err := s.writer.Write(csvHeader); err != nil {
			return err
		}
		s.wroteHeader = true
	}

	s.writer.Flush()
	return s.writer.Error()
}
