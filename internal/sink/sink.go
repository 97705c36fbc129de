package sink

import "github.com/vfg2006/ad-spend-sync/internal/domain"

// Sink consome as linhas normalizadas produzidas pelo dispatcher. Write pode
// ser chamado várias vezes (uma por conta processada); Close libera buffers
// pendentes e deve ser chamado ao fim da execução.
type Sink interface {
	Write(rows []domain.SpendRow) error
	Close() error
}
