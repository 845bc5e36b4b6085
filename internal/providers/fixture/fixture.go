// Package fixture serves a static schedule for local boot and tests, so the
// service works without Sheets credentials.
package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/schedule"
)

// spanishMonth holds the month names the sheet uses, in calendar order.
var spanishMonth = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Provider returns a static set of matches useful for local testing and
// bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return "fixture" }

// FetchMatches returns a deterministic set of example matches phrased the
// way sheet rows are: one upcoming, one past, one with an undetermined time.
func (p *Provider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx

	now := p.now()
	rows := [][]string{
		{"League of Legends", sheetDate(now.AddDate(0, 0, 1)), "18:00", "KOI vs G2 Esports", "Quarterfinal", "LEC Season Finals", "twitch/koi_official/caedrel"},
		{"VALORANT", sheetDate(now.AddDate(0, 0, -1)), "20:30", "KOI vs Team Heretics", "Group Stage", "VCT EMEA", "koi_official"},
		{"Rocket League", sheetDate(now.AddDate(0, 0, 3)), "TBD", "KOI vs Karmine Corp", "Playoffs", "RLCS Major", "youtube/koi"},
	}

	return schedule.NormalizeRows(rows), nil
}

// sheetDate renders a time the way the sheet writes dates: "<day> <month>".
func sheetDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), spanishMonth[t.Month()-1])
}
