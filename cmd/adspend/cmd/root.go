// Package cmd define os comandos de linha de comando do ad-spend-sync.
package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ad-spend-sync/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "adspend",
	Short: "Sincroniza gastos diários de anúncios do TikTok, Meta e Apple Search Ads",
	Long: `adspend busca os gastos diários de anúncios nas APIs do TikTok Ads,
Meta Marketing e Apple Search Ads, normaliza tudo em um formato único por
dia/país/grupo de anúncio e envia para CSV ou para o warehouse.

Exemplos:
  adspend fetch
  adspend fetch 2024-06-01 2024-06-30
  adspend fetch --month 2024-06 --to-warehouse
  adspend serve`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogger()
	},
}

// Execute executa o comando raiz
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadConfig carrega a configuração e aplica o nível de log configurado.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return cfg, nil
}
