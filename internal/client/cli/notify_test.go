package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mygaadi/mygaadi/internal/client/alerts"
)

func TestPrintSink(t *testing.T) {
	var out bytes.Buffer
	sink := PrintSink{Out: &out}

	sink.Notify(context.Background(), alerts.Alert{
		Kind:        alerts.KindService,
		VehicleName: "Alto",
		Description: "Oil change",
		Due:         time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
	}, alerts.UrgencyUrgent)

	assert.Equal(t, "[!!] Alto: Oil change (due 2025-04-20)\n", out.String())
}

func TestPrintSink_InsuranceUsesProvider(t *testing.T) {
	var out bytes.Buffer
	sink := PrintSink{Out: &out}

	sink.Notify(context.Background(), alerts.Alert{
		Kind:        alerts.KindInsurance,
		VehicleName: "Alto",
		Provider:    "Go Digit",
		Due:         time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
	}, alerts.UrgencySoon)

	assert.Equal(t, "[!] Alto: insurance with Go Digit (due 2025-04-20)\n", out.String())
}
