package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback_SimpleActions(t *testing.T) {
	for _, data := range []string{
		"menu_main", "menu_shop", "menu_contacts", "menu_admin",
		"admin_products", "admin_orders", "admin_reports", "admin_payments",
		"add_product", "cancel_add_product",
	} {
		cb, err := ParseCallback(data)
		require.NoError(t, err, data)
		assert.Equal(t, CallbackAction(data), cb.Action)
		assert.Equal(t, data, cb.Token())
	}
}

func TestParseCallback_ProductTokens(t *testing.T) {
	cb, err := ParseCallback("product_42")
	require.NoError(t, err)
	assert.Equal(t, ActionProduct, cb.Action)
	assert.Equal(t, int64(42), cb.ProductID)

	cb, err = ParseCallback("buy_7")
	require.NoError(t, err)
	assert.Equal(t, ActionBuy, cb.Action)
	assert.Equal(t, int64(7), cb.ProductID)

	cb, err = ParseCallback("delete_product_13")
	require.NoError(t, err)
	assert.Equal(t, ActionDeleteProduct, cb.Action)
	assert.Equal(t, int64(13), cb.ProductID)
}

func TestParseCallback_PayToken(t *testing.T) {
	// формат pay_<способ>_<товар>
	cb, err := ParseCallback("pay_3_15")
	require.NoError(t, err)
	assert.Equal(t, ActionPay, cb.Action)
	assert.Equal(t, int64(3), cb.PaymentMethodID)
	assert.Equal(t, int64(15), cb.ProductID)
}

func TestParseCallback_ReportTokens(t *testing.T) {
	for _, period := range []ReportPeriod{ReportPeriodToday, ReportPeriodWeek, ReportPeriodMonth, ReportPeriodAll} {
		cb, err := ParseCallback("report_" + string(period))
		require.NoError(t, err)
		assert.Equal(t, ActionReport, cb.Action)
		assert.Equal(t, period, cb.Period)
	}

	_, err := ParseCallback("report_year")
	assert.Error(t, err)
}

func TestParseCallback_Invalid(t *testing.T) {
	for _, data := range []string{
		"",
		"unknown",
		"product_",
		"product_abc",
		"product_-5",
		"product_0",
		"buy_",
		"pay_3",
		"pay_3_15_7",
		"pay_x_15",
		"delete_product_x",
	} {
		_, err := ParseCallback(data)
		assert.Error(t, err, "token %q must be rejected", data)
	}
}

func TestCallback_TokenRoundTrip(t *testing.T) {
	cases := []Callback{
		{Action: ActionProduct, ProductID: 5},
		{Action: ActionBuy, ProductID: 99},
		{Action: ActionPay, PaymentMethodID: 2, ProductID: 8},
		{Action: ActionDeleteProduct, ProductID: 1},
		{Action: ActionReport, Period: ReportPeriodWeek},
		{Action: ActionAdminPanel},
	}

	for _, want := range cases {
		got, err := ParseCallback(want.Token())
		require.NoError(t, err, want.Token())
		assert.Equal(t, want, got)
	}
}

func TestCallback_IsAdminAction(t *testing.T) {
	admin := []Callback{
		{Action: ActionAdminPanel},
		{Action: ActionAdminProducts},
		{Action: ActionAdminOrders},
		{Action: ActionAdminReports},
		{Action: ActionAdminPayments},
		{Action: ActionAddProduct},
		{Action: ActionCancelAdd},
		{Action: ActionDeleteProduct, ProductID: 1},
		{Action: ActionReport, Period: ReportPeriodAll},
	}
	for _, cb := range admin {
		assert.True(t, cb.IsAdminAction(), cb.Action)
	}

	public := []Callback{
		{Action: ActionMainMenu},
		{Action: ActionShop},
		{Action: ActionContacts},
		{Action: ActionProduct, ProductID: 1},
		{Action: ActionBuy, ProductID: 1},
		{Action: ActionPay, PaymentMethodID: 1, ProductID: 1},
	}
	for _, cb := range public {
		assert.False(t, cb.IsAdminAction(), cb.Action)
	}
}
