package shop

import (
	"context"
	"time"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// ShowReportsMenu рисует выбор периода отчёта
func (s *Service) ShowReportsMenu(ctx context.Context, chatID int64, messageID int64) error {
	return s.render(ctx, chatID, messageID, texts.ReportsTitle, s.reportsKeyboard())
}

// ShowReport строит и рисует отчёт за период
func (s *Service) ShowReport(ctx context.Context, chatID int64, messageID int64, period domain.ReportPeriod) error {
	filter := domain.OrderFilter{DateFrom: period.DateFrom(time.Now())}

	count, err := s.OrderRepo.Count(ctx, filter)
	if err != nil {
		s.Log.Error("failed to count orders for report",
			"error", err,
			"period", period,
		)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.reportsKeyboard())
	}

	stats, err := s.OrderRepo.Stats(ctx, filter)
	if err != nil {
		s.Log.Error("failed to get order stats for report",
			"error", err,
			"period", period,
		)
		return s.render(ctx, chatID, messageID, texts.OrderProcessingError, s.reportsKeyboard())
	}

	var total float64
	for _, st := range stats {
		total += st.Total
	}

	keyboard := inlineKeyboard(backRow(domain.Callback{Action: domain.ActionAdminReports}))
	return s.render(ctx, chatID, messageID, texts.FormatReport(period, count, total, stats), keyboard)
}
