package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CallbackAction действие, закодированное в callback-токене кнопки
type CallbackAction string

const (
	ActionMainMenu      CallbackAction = "menu_main"
	ActionShop          CallbackAction = "menu_shop"
	ActionContacts      CallbackAction = "menu_contacts"
	ActionAdminPanel    CallbackAction = "menu_admin"
	ActionProduct       CallbackAction = "product"
	ActionBuy           CallbackAction = "buy"
	ActionPay           CallbackAction = "pay"
	ActionAdminProducts CallbackAction = "admin_products"
	ActionAdminOrders   CallbackAction = "admin_orders"
	ActionAdminReports  CallbackAction = "admin_reports"
	ActionAdminPayments CallbackAction = "admin_payments"
	ActionAddProduct    CallbackAction = "add_product"
	ActionCancelAdd     CallbackAction = "cancel_add_product"
	ActionDeleteProduct CallbackAction = "delete_product"
	ActionReport        CallbackAction = "report"
)

// Callback разобранный callback-токен: действие плюс типизированные id
// Экраны не держат состояние на сервере - весь контекст (товар, способ оплаты)
// переносится в самом токене
type Callback struct {
	Action          CallbackAction
	ProductID       int64
	PaymentMethodID int64
	Period          ReportPeriod
}

// Token кодирует callback в проводной формат (сегменты через подчёркивание)
func (c Callback) Token() string {
	switch c.Action {
	case ActionProduct, ActionBuy:
		return fmt.Sprintf("%s_%d", c.Action, c.ProductID)
	case ActionPay:
		return fmt.Sprintf("pay_%d_%d", c.PaymentMethodID, c.ProductID)
	case ActionDeleteProduct:
		return fmt.Sprintf("delete_product_%d", c.ProductID)
	case ActionReport:
		return fmt.Sprintf("report_%s", c.Period)
	default:
		return string(c.Action)
	}
}

// ParseCallback разбирает callback-токен в типизированную структуру
// Неизвестные или битые токены возвращают ошибку - дальше по коду строки не режутся
func ParseCallback(data string) (Callback, error) {
	switch CallbackAction(data) {
	case ActionMainMenu, ActionShop, ActionContacts, ActionAdminPanel,
		ActionAdminProducts, ActionAdminOrders, ActionAdminReports, ActionAdminPayments,
		ActionAddProduct, ActionCancelAdd:
		return Callback{Action: CallbackAction(data)}, nil
	}

	switch {
	case strings.HasPrefix(data, "product_"):
		id, err := parseID(strings.TrimPrefix(data, "product_"))
		if err != nil {
			return Callback{}, fmt.Errorf("invalid product token %q: %w", data, err)
		}
		return Callback{Action: ActionProduct, ProductID: id}, nil

	case strings.HasPrefix(data, "buy_"):
		id, err := parseID(strings.TrimPrefix(data, "buy_"))
		if err != nil {
			return Callback{}, fmt.Errorf("invalid buy token %q: %w", data, err)
		}
		return Callback{Action: ActionBuy, ProductID: id}, nil

	case strings.HasPrefix(data, "pay_"):
		parts := strings.Split(strings.TrimPrefix(data, "pay_"), "_")
		if len(parts) != 2 {
			return Callback{}, fmt.Errorf("invalid pay token %q: expected pay_<method>_<product>", data)
		}
		methodID, err := parseID(parts[0])
		if err != nil {
			return Callback{}, fmt.Errorf("invalid pay token %q: %w", data, err)
		}
		productID, err := parseID(parts[1])
		if err != nil {
			return Callback{}, fmt.Errorf("invalid pay token %q: %w", data, err)
		}
		return Callback{Action: ActionPay, PaymentMethodID: methodID, ProductID: productID}, nil

	case strings.HasPrefix(data, "delete_product_"):
		id, err := parseID(strings.TrimPrefix(data, "delete_product_"))
		if err != nil {
			return Callback{}, fmt.Errorf("invalid delete_product token %q: %w", data, err)
		}
		return Callback{Action: ActionDeleteProduct, ProductID: id}, nil

	case strings.HasPrefix(data, "report_"):
		period := ReportPeriod(strings.TrimPrefix(data, "report_"))
		if !period.IsValid() {
			return Callback{}, fmt.Errorf("invalid report token %q: unknown period", data)
		}
		return Callback{Action: ActionReport, Period: period}, nil
	}

	return Callback{}, fmt.Errorf("unknown callback token: %q", data)
}

// IsAdminAction токен относится к админской части меню
// Каждый админский экран проверяет доступ независимо, а не только вход в панель
func (c Callback) IsAdminAction() bool {
	switch c.Action {
	case ActionAdminPanel, ActionAdminProducts, ActionAdminOrders,
		ActionAdminReports, ActionAdminPayments,
		ActionAddProduct, ActionCancelAdd, ActionDeleteProduct, ActionReport:
		return true
	default:
		return false
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a numeric id: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}
