package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mygaadi/mygaadi/internal/client/alerts"
)

// PrintSink renders alerts to the terminal. It is the delivery channel the
// notifier pushes into.
type PrintSink struct {
	Out io.Writer
}

func (p PrintSink) Notify(_ context.Context, a alerts.Alert, u alerts.Urgency) {
	marker := map[alerts.Urgency]string{
		alerts.UrgencyUrgent: "!!",
		alerts.UrgencySoon:   "!",
		alerts.UrgencyNormal: " ",
	}[u]
	desc := a.Description
	if a.Kind == alerts.KindInsurance {
		desc = "insurance with " + a.Provider
	}
	fmt.Fprintf(p.Out, "[%s] %s: %s (due %s)\n", marker, a.VehicleName, desc, a.Due.Format("2006-01-02"))
}
