package texts

import (
	"fmt"
	"strings"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
)

// FormatPrice форматирует сумму в рублях с разделителями тысяч: 10,000₽
func FormatPrice(amount float64) string {
	return formatThousands(amount) + "₽"
}

// formatThousands вставляет запятые между группами разрядов
// Копейки показываются только когда они есть
func formatThousands(amount float64) string {
	whole := int64(amount)
	frac := amount - float64(whole)

	s := fmt.Sprintf("%d", whole)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	if frac > 0.004 {
		out += strings.TrimPrefix(fmt.Sprintf("%.2f", frac), "0")
	}
	return out
}

// FormatWelcome форматирует приветствие при /start
func FormatWelcome(firstName string) string {
	return fmt.Sprintf(
		"👋 Добро пожаловать, %s!\n\n"+
			"🛍️ **Магазин услуг**\n"+
			"💳 **6 способов оплаты**\n"+
			"📊 **Полная отчетность**\n\n"+
			"Выберите действие:",
		firstName,
	)
}

// FormatProductButton подпись кнопки товара в каталоге
func FormatProductButton(p *domain.Product) string {
	return fmt.Sprintf("🎁 %s - %s", p.Name, FormatPrice(p.Price))
}

// FormatProductCard карточка товара
func FormatProductCard(p *domain.Product) string {
	return fmt.Sprintf("🎁 **%s**\n\n📝 %s\n\n💵 **Цена: %s**", p.Name, p.Description, FormatPrice(p.Price))
}

// FormatPaymentMethodPrompt экран выбора способа оплаты
func FormatPaymentMethodPrompt(p *domain.Product) string {
	return fmt.Sprintf(
		"🎁 **Товар:** %s\n"+
			"💵 **Сумма:** %s\n\n"+
			"💳 **Выберите способ оплаты:**",
		p.Name, FormatPrice(p.Price),
	)
}

// FormatWebAppPaymentPrompt экран выбора способа оплаты для заказа из Mini App
func FormatWebAppPaymentPrompt(p *domain.Product) string {
	return fmt.Sprintf(
		"🎁 **Товар из Mini App:** %s\n"+
			"💵 **Сумма:** %s\n\n"+
			"💳 **Выберите способ оплаты:**",
		p.Name, FormatPrice(p.Price),
	)
}

// FormatOrderConfirmation подтверждение оформленного заказа с реквизитами
func FormatOrderConfirmation(order *domain.Order) string {
	return fmt.Sprintf(
		"✅ **Заказ оформлен!**\n\n"+
			"📋 **Детали заказа:**\n"+
			"• Номер: #%d\n"+
			"• Товар: %s\n"+
			"• Сумма: %s\n"+
			"• Дата: %s\n"+
			"• Время: %s\n"+
			"• Способ оплаты: %s\n\n"+
			"🏦 **Реквизиты для оплаты:**\n%s\n\n"+
			"📞 **После оплаты свяжитесь с администратором:** @%s\n"+
			"🔢 **Укажите номер заказа:** #%d",
		order.ID,
		order.ProductName,
		FormatPrice(order.Amount),
		order.OrderDate,
		order.OrderTime,
		order.PaymentMethod,
		order.PaymentDetails,
		order.AdminContact,
		order.ID,
	)
}

// FormatContacts экран контактов
func FormatContacts(adminContact, supportContact string) string {
	return fmt.Sprintf(
		"📞 **Контакты**\n\n"+
			"👤 **Администратор:** @%s\n"+
			"💼 **Техподдержка:** @%s\n\n"+
			"⏰ **Время работы:** 10:00 - 22:00\n"+
			"📧 **По всем вопросам:**\n"+
			"• Покупки услуг\n• Техническая поддержка\n• Сотрудничество",
		adminContact, supportContact,
	)
}

// FormatAdminPanel панель администратора со сводкой заказов
func FormatAdminPanel(totalOrders, todayOrders int64) string {
	return fmt.Sprintf(
		"👨‍💼 **Панель администратора**\n\n"+
			"📊 **Статистика:**\n"+
			"• Всего заказов: %d\n"+
			"• Заказов сегодня: %d\n\n"+
			"⚙️ **Управление:**",
		totalOrders, todayOrders,
	)
}

// FormatAdminProducts экран управления товарами
func FormatAdminProducts(count int) string {
	return fmt.Sprintf(
		"📦 **Управление товарами**\n\n"+
			"📋 **Список товаров (%d):**\n\n"+
			"Нажмите на товар чтобы удалить:",
		count,
	)
}

// FormatAdminProductButton подпись кнопки удаления товара
func FormatAdminProductButton(p *domain.Product) string {
	return fmt.Sprintf("🗑️ %s - %s", p.Name, FormatPrice(p.Price))
}

// FormatAdminOrders список последних заказов
func FormatAdminOrders(orders []domain.Order) string {
	var b strings.Builder
	b.WriteString("📋 **Последние заказы:**\n\n")
	if len(orders) == 0 {
		b.WriteString("Заказов пока нет")
		return b.String()
	}
	for i := range orders {
		o := &orders[i]
		b.WriteString(fmt.Sprintf("• #%d %s - %s (%s)\n", o.ID, o.ProductName, FormatPrice(o.Amount), o.PaymentMethod))
	}
	return b.String()
}

// FormatReport отчёт по заказам за период
func FormatReport(period domain.ReportPeriod, ordersCount int64, totalAmount float64, stats []domain.PaymentMethodStat) string {
	var title string
	switch period {
	case domain.ReportPeriodToday:
		title = "сегодня"
	case domain.ReportPeriodWeek:
		title = "за неделю"
	case domain.ReportPeriodMonth:
		title = "за месяц"
	default:
		title = "за все время"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 **Отчет %s**\n\n", title))
	b.WriteString("📈 **Общая статистика:**\n")
	b.WriteString(fmt.Sprintf("• Количество заказов: %d\n", ordersCount))
	b.WriteString(fmt.Sprintf("• Общая сумма: %s\n\n", FormatPrice(totalAmount)))
	b.WriteString("💳 **По способам оплаты:**\n")
	if len(stats) == 0 {
		b.WriteString("• Нет данных\n")
	}
	for _, s := range stats {
		b.WriteString(fmt.Sprintf("• %s: %d зак. на %s\n", s.PaymentMethod, s.Count, FormatPrice(s.Total)))
	}
	return b.String()
}

// FormatAdminPayments список способов оплаты
func FormatAdminPayments(methods []domain.PaymentMethod) string {
	var b strings.Builder
	b.WriteString("💳 **Способы оплаты:**\n\n")
	for i := range methods {
		b.WriteString(fmt.Sprintf("• %s (%s)\n", methods[i].Name, methods[i].Type))
	}
	return b.String()
}

// FormatProductAdded итог пошагового добавления товара
func FormatProductAdded(p *domain.Product) string {
	return fmt.Sprintf("✅ Товар добавлен\n\n🎁 %s - %s", p.Name, FormatPrice(p.Price))
}
