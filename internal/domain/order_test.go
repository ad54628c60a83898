package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPeriod_IsValid(t *testing.T) {
	assert.True(t, ReportPeriodToday.IsValid())
	assert.True(t, ReportPeriodWeek.IsValid())
	assert.True(t, ReportPeriodMonth.IsValid())
	assert.True(t, ReportPeriodAll.IsValid())
	assert.False(t, ReportPeriod("year").IsValid())
	assert.False(t, ReportPeriod("").IsValid())
}

func TestReportPeriod_DateFrom(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 45, 30, 0, time.UTC)

	from := ReportPeriodToday.DateFrom(now)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *from)

	from = ReportPeriodWeek.DateFrom(now)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), *from)

	from = ReportPeriodMonth.DateFrom(now)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC), *from)

	assert.Nil(t, ReportPeriodAll.DateFrom(now))
}

func TestTelegramUser_DisplayName(t *testing.T) {
	username := "buyer"
	u := &TelegramUser{ID: 1, FirstName: "Иван", Username: &username}
	assert.Equal(t, "buyer", u.DisplayName())

	empty := ""
	u = &TelegramUser{ID: 1, FirstName: "Иван", Username: &empty}
	assert.Equal(t, "Иван", u.DisplayName())

	u = &TelegramUser{ID: 1, FirstName: "Иван"}
	assert.Equal(t, "Иван", u.DisplayName())
}

func TestParseWebAppEvent(t *testing.T) {
	event, err := ParseWebAppEvent(`{"action":"create_order","product_id":5}`)
	require.NoError(t, err)
	assert.Equal(t, WebAppActionCreateOrder, event.Action)
	assert.Equal(t, int64(5), event.ProductID)

	_, err = ParseWebAppEvent("not json")
	assert.Error(t, err)
}
