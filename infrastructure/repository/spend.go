package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-spend-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

// spendColumns são as colunas da tabela de gasto diário, na ordem de insert.
var spendColumns = []string{
	"date",
	"ad_account",
	"country",
	"spend",
	"currency",
	"campaign_id",
	"campaign_name",
	"adgroup_id",
	"adgroup_name",
}

var spendColumnTypes = map[string]string{
	"date":          "DATE NOT NULL",
	"ad_account":    "TEXT NOT NULL",
	"country":       "TEXT",
	"spend":         "DOUBLE PRECISION NOT NULL DEFAULT 0",
	"currency":      "TEXT",
	"campaign_id":   "TEXT",
	"campaign_name": "TEXT",
	"adgroup_id":    "TEXT",
	"adgroup_name":  "TEXT",
}

// SpendRepository é o contrato de escrita do warehouse: cria/alarga a tabela
// de forma idempotente e insere lotes, devolvendo o primeiro erro com a
// resposta do provedor.
type SpendRepository interface {
	EnsureTable(ctx context.Context) error
	InsertBatch(ctx context.Context, rows []domain.SpendRow) error
}

type spendRepository struct {
	conn  postgres.Queryer
	table string
}

func NewSpendRepository(conn postgres.Queryer, table string) SpendRepository {
	return &spendRepository{
		conn:  conn,
		table: table,
	}
}

// EnsureTable cria a tabela quando não existe e adiciona colunas que faltam
// em tabelas antigas. Idempotente; roda antes do primeiro insert.
func (r *spendRepository) EnsureTable(ctx context.Context) error {
	create := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			date DATE NOT NULL,
			ad_account TEXT NOT NULL,
			country TEXT,
			spend DOUBLE PRECISION NOT NULL DEFAULT 0,
			currency TEXT,
			campaign_id TEXT,
			campaign_name TEXT,
			adgroup_id TEXT,
			adgroup_name TEXT
		)`, r.table)

	if _, err := r.conn.Exec(ctx, create); err != nil {
		return errors.Wrap(err, "erro ao criar a tabela de gastos")
	}

	existing, err := r.existingColumns(ctx)
	if err != nil {
		return err
	}

	for _, column := range spendColumns {
		if _, ok := existing[column]; ok {
			continue
		}
		alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s", r.table, column, spendColumnTypes[column])
		if _, err := r.conn.Exec(ctx, alter); err != nil {
			return errors.Wrapf(err, "erro ao adicionar a coluna %s", column)
		}
	}

	return nil
}

func (r *spendRepository) existingColumns(ctx context.Context) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("column_name").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_name": r.table}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar as colunas existentes")
	}
	defer rows.Close()

	existing := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("erro ao escanear coluna: %w", err)
		}
		existing[name] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return existing, nil
}

// InsertBatch insere um lote de linhas em um único statement.
func (r *spendRepository) InsertBatch(ctx context.Context, batch []domain.SpendRow) error {
	if len(batch) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(r.table).
		Columns(spendColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range batch {
		builder = builder.Values(
			row.Date,
			row.AdAccount,
			nullable(row.Country),
			row.Spend,
			nullable(row.Currency),
			nullable(row.CampaignID),
			nullable(row.CampaignName),
			nullable(row.AdgroupID),
			nullable(row.AdgroupName),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "insert no warehouse falhou (%d linhas)", len(batch))
	}

	return nil
}

// nullable converte string vazia em NULL, como o writer original fazia.
func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
