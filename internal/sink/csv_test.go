package sink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

func TestCSVSink_Write(t *testing.T) {
	var buf bytes.Buffer
	sink := NewCSVSink(&buf)

	rows := []domain.SpendRow{
		{
			Date:         "2024-06-01",
			AdAccount:    "meuapp",
			Country:      "US",
			Spend:        10.5,
			Currency:     "USD",
			CampaignID:   "c1",
			CampaignName: "Campanha 1",
			AdgroupID:    "ag1",
			AdgroupName:  "Grupo 1",
		},
		{
			Date:      "2024-06-02",
			AdAccount: "meuapp",
			Country:   "FR",
			Spend:     0,
		},
	}

	require.NoError(t, sink.Write(rows))
	require.NoError(t, sink.Close())

	expected := "date,app,country,spend,currency,campaign_id,campaign_name,adgroup_id,adgroup_name\n" +
		"2024-06-01,meuapp,US,10.500000,USD,c1,Campanha 1,ag1,Grupo 1\n" +
		"2024-06-02,meuapp,FR,0.000000,,,,,\n"
	assert.Equal(t, expected, buf.String())
}

func TestCSVSink_HeaderUnicoEntreEscritas(t *testing.T) {
	var buf bytes.Buffer
	sink := NewCSVSink(&buf)

	row := []domain.SpendRow{{Date: "2024-06-01", AdAccount: "app", Spend: 1}}
	require.NoError(t, sink.Write(row))
	require.NoError(t, sink.Write(row))
	require.NoError(t, sink.Close())

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("date,app,")))
}

func TestCSVSink_SemLinhasEmiteSoOHeader(t *testing.T) {
	var buf bytes.Buffer
	sink := NewCSVSink(&buf)

	require.NoError(t, sink.Close())

	assert.Equal(t, "date,app,country,spend,currency,campaign_id,campaign_name,adgroup_id,adgroup_name\n", buf.String())
}
