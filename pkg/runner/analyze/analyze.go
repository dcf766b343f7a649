package analyze

import (
	"context"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/dailyctx"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

// Day submits one day's context for a per-category breakdown, display only.
type Day struct {
	Date string

	Session *session.Session
}

func (d *Day) Do(ctx context.Context) error {
	dctx := dailyctx.Collect(d.Session.Data(), d.Date)
	analysis, err := d.Session.Assistant().AnalyzeDay(ctx, dctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.DayAnalysis(analysis)
	return nil
}
