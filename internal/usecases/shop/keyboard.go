package shop

import (
	"fmt"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
)

// Кнопки inline-клавиатур. Формат reply_markup описан в Bot API:
// https://core.telegram.org/bots/api#inlinekeyboardmarkup

func button(text string, cb domain.Callback) map[string]interface{} {
	return map[string]interface{}{
		"text":          text,
		"callback_data": cb.Token(),
	}
}

func webAppButton(text string, url string) map[string]interface{} {
	return map[string]interface{}{
		"text":    text,
		"web_app": map[string]interface{}{"url": url},
	}
}

func inlineKeyboard(rows ...[]map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"inline_keyboard": rows,
	}
}

func backRow(cb domain.Callback) []map[string]interface{} {
	return []map[string]interface{}{button("🔙 Назад", cb)}
}

// mainMenuKeyboard клавиатура главного меню, у админов плюс кнопка панели
func (s *Service) mainMenuKeyboard(userID int64) map[string]interface{} {
	rows := [][]map[string]interface{}{
		{
			button("🛍️ Магазин", domain.Callback{Action: domain.ActionShop}),
			button("📞 Контакты", domain.Callback{Action: domain.ActionContacts}),
		},
	}
	if s.MiniAppURL != "" {
		rows = append(rows, []map[string]interface{}{webAppButton("📱 Mini App", s.MiniAppURL)})
	}
	if s.IsAdmin(userID) {
		rows = append(rows, []map[string]interface{}{button("👨‍💼 Админ", domain.Callback{Action: domain.ActionAdminPanel})})
	}
	return inlineKeyboard(rows...)
}

// shopKeyboard каталог: кнопка на каждый товар плюс Mini App и возврат в меню
func (s *Service) shopKeyboard(products []domain.Product) map[string]interface{} {
	rows := make([][]map[string]interface{}, 0, len(products)+2)
	for i := range products {
		p := &products[i]
		rows = append(rows, []map[string]interface{}{
			button(texts.FormatProductButton(p), domain.Callback{Action: domain.ActionProduct, ProductID: p.ID}),
		})
	}
	if s.MiniAppURL != "" {
		rows = append(rows, []map[string]interface{}{webAppButton("📱 Открыть Mini App", s.MiniAppURL)})
	}
	rows = append(rows, backRow(domain.Callback{Action: domain.ActionMainMenu}))
	return inlineKeyboard(rows...)
}

// productKeyboard карточка товара
func (s *Service) productKeyboard(productID int64) map[string]interface{} {
	rows := [][]map[string]interface{}{
		{button("💰 Купить", domain.Callback{Action: domain.ActionBuy, ProductID: productID})},
	}
	if s.MiniAppURL != "" {
		url := fmt.Sprintf("%s?product=%d", s.MiniAppURL, productID)
		rows = append(rows, []map[string]interface{}{webAppButton("📱 Открыть в Mini App", url)})
	}
	rows = append(rows, backRow(domain.Callback{Action: domain.ActionShop}))
	return inlineKeyboard(rows...)
}

// paymentMethodsKeyboard выбор способа оплаты для товара
func (s *Service) paymentMethodsKeyboard(methods []domain.PaymentMethod, productID int64) map[string]interface{} {
	rows := make([][]map[string]interface{}, 0, len(methods)+1)
	for i := range methods {
		m := &methods[i]
		rows = append(rows, []map[string]interface{}{
			button("💳 "+m.Name, domain.Callback{Action: domain.ActionPay, PaymentMethodID: m.ID, ProductID: productID}),
		})
	}
	rows = append(rows, backRow(domain.Callback{Action: domain.ActionProduct, ProductID: productID}))
	return inlineKeyboard(rows...)
}

// adminPanelKeyboard разделы панели администратора
func (s *Service) adminPanelKeyboard() map[string]interface{} {
	return inlineKeyboard(
		[]map[string]interface{}{
			button("📦 Товары", domain.Callback{Action: domain.ActionAdminProducts}),
			button("📋 Заказы", domain.Callback{Action: domain.ActionAdminOrders}),
		},
		[]map[string]interface{}{
			button("📊 Отчеты", domain.Callback{Action: domain.ActionAdminReports}),
			button("💳 Способы оплаты", domain.Callback{Action: domain.ActionAdminPayments}),
		},
		backRow(domain.Callback{Action: domain.ActionMainMenu}),
	)
}

// adminProductsKeyboard управление товарами: кнопка-удаление на каждый товар
func (s *Service) adminProductsKeyboard(products []domain.Product) map[string]interface{} {
	rows := make([][]map[string]interface{}, 0, len(products)+2)
	for i := range products {
		p := &products[i]
		rows = append(rows, []map[string]interface{}{
			button(texts.FormatAdminProductButton(p), domain.Callback{Action: domain.ActionDeleteProduct, ProductID: p.ID}),
		})
	}
	rows = append(rows,
		[]map[string]interface{}{button("➕ Добавить товар", domain.Callback{Action: domain.ActionAddProduct})},
		backRow(domain.Callback{Action: domain.ActionAdminPanel}),
	)
	return inlineKeyboard(rows...)
}

// reportsKeyboard выбор периода отчёта
func (s *Service) reportsKeyboard() map[string]interface{} {
	return inlineKeyboard(
		[]map[string]interface{}{
			button("📅 За сегодня", domain.Callback{Action: domain.ActionReport, Period: domain.ReportPeriodToday}),
			button("📅 За неделю", domain.Callback{Action: domain.ActionReport, Period: domain.ReportPeriodWeek}),
		},
		[]map[string]interface{}{
			button("📅 За месяц", domain.Callback{Action: domain.ActionReport, Period: domain.ReportPeriodMonth}),
			button("📅 За все время", domain.Callback{Action: domain.ActionReport, Period: domain.ReportPeriodAll}),
		},
		backRow(domain.Callback{Action: domain.ActionAdminPanel}),
	)
}

// cancelAddKeyboard отмена пошагового добавления товара
func (s *Service) cancelAddKeyboard() map[string]interface{} {
	return inlineKeyboard(
		[]map[string]interface{}{button("❌ Отмена", domain.Callback{Action: domain.ActionCancelAdd})},
	)
}
