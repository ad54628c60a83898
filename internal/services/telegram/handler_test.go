package telegram

import (
	"context"
	"errors"
	"testing"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	kind string
	arg  string
}

type fakeBotService struct {
	calls       []recordedCall
	callbackErr error
}

func (f *fakeBotService) HandleCommand(ctx context.Context, user *domain.TelegramUser, chatID int64, command string) error {
	f.calls = append(f.calls, recordedCall{kind: "command", arg: command})
	return nil
}

func (f *fakeBotService) HandleText(ctx context.Context, user *domain.TelegramUser, chatID int64, text string) error {
	f.calls = append(f.calls, recordedCall{kind: "text", arg: text})
	return nil
}

func (f *fakeBotService) HandlePhoto(ctx context.Context, user *domain.TelegramUser, chatID int64, photos []domain.PhotoSize) error {
	f.calls = append(f.calls, recordedCall{kind: "photo"})
	return nil
}

func (f *fakeBotService) HandleWebAppData(ctx context.Context, user *domain.TelegramUser, chatID int64, raw string) error {
	f.calls = append(f.calls, recordedCall{kind: "webapp", arg: raw})
	return nil
}

func (f *fakeBotService) HandleCallback(ctx context.Context, callback *domain.CallbackQuery) error {
	f.calls = append(f.calls, recordedCall{kind: "callback"})
	return f.callbackErr
}

func newTestRouter() (*Service, *fakeBotService) {
	bot := &fakeBotService{}
	return New(bot, slog.Default()), bot
}

func privateMessage(text string) *domain.Message {
	return &domain.Message{
		MessageID: 1,
		From:      &domain.TelegramUser{ID: 10, FirstName: "Иван"},
		Chat:      &domain.Chat{ID: 10, Type: "private"},
		Text:      &text,
	}
}

func TestHandleUpdate_RoutesCommand(t *testing.T) {
	svc, bot := newTestRouter()

	err := svc.HandleUpdate(context.Background(), &domain.Update{
		UpdateID: 1,
		Message:  privateMessage("/start"),
	})
	require.NoError(t, err)
	require.Len(t, bot.calls, 1)
	assert.Equal(t, recordedCall{kind: "command", arg: "start"}, bot.calls[0])
}

func TestHandleUpdate_RoutesText(t *testing.T) {
	svc, bot := newTestRouter()

	err := svc.HandleUpdate(context.Background(), &domain.Update{
		UpdateID: 1,
		Message:  privateMessage("Аудит сайта"),
	})
	require.NoError(t, err)
	require.Len(t, bot.calls, 1)
	assert.Equal(t, recordedCall{kind: "text", arg: "Аудит сайта"}, bot.calls[0])
}

func TestHandleUpdate_RoutesPhotoAndWebApp(t *testing.T) {
	svc, bot := newTestRouter()

	msg := privateMessage("")
	msg.Text = nil
	msg.Photo = []domain.PhotoSize{{FileID: "f1"}}

	require.NoError(t, svc.HandleUpdate(context.Background(), &domain.Update{UpdateID: 1, Message: msg}))

	webAppMsg := privateMessage("")
	webAppMsg.Text = nil
	webAppMsg.WebAppData = &domain.WebAppData{Data: `{"action":"create_order","product_id":1}`}

	require.NoError(t, svc.HandleUpdate(context.Background(), &domain.Update{UpdateID: 2, Message: webAppMsg}))

	require.Len(t, bot.calls, 2)
	assert.Equal(t, "photo", bot.calls[0].kind)
	assert.Equal(t, "webapp", bot.calls[1].kind)
}

func TestHandleUpdate_RoutesCallback(t *testing.T) {
	svc, bot := newTestRouter()

	data := "menu_shop"
	err := svc.HandleUpdate(context.Background(), &domain.Update{
		UpdateID: 1,
		CallbackQuery: &domain.CallbackQuery{
			ID:   "cb",
			From: &domain.TelegramUser{ID: 10},
			Data: &data,
		},
	})
	require.NoError(t, err)
	require.Len(t, bot.calls, 1)
	assert.Equal(t, "callback", bot.calls[0].kind)
}

func TestHandleUpdate_CallbackBusinessError(t *testing.T) {
	svc, bot := newTestRouter()

	data := "menu_admin"
	update := &domain.Update{
		UpdateID: 1,
		CallbackQuery: &domain.CallbackQuery{
			ID:   "cb",
			From: &domain.TelegramUser{ID: 10},
			Data: &data,
		},
	}

	// отказ в доступе уже обработан usecase-слоем, поллер не должен его видеть
	bot.callbackErr = domain.WrapBusinessError(domain.ErrAccessDenied)
	assert.NoError(t, svc.HandleUpdate(context.Background(), update))

	bot.callbackErr = errors.New("telegram is down")
	assert.Error(t, svc.HandleUpdate(context.Background(), update))
}

func TestHandleUpdate_IgnoresBotsAndGroups(t *testing.T) {
	svc, bot := newTestRouter()

	fromBot := privateMessage("/start")
	fromBot.From.IsBot = true
	require.NoError(t, svc.HandleUpdate(context.Background(), &domain.Update{UpdateID: 1, Message: fromBot}))

	group := privateMessage("/start")
	group.Chat.Type = "group"
	require.NoError(t, svc.HandleUpdate(context.Background(), &domain.Update{UpdateID: 2, Message: group}))

	assert.Empty(t, bot.calls)
}

func TestHandleUpdate_Nil(t *testing.T) {
	svc, _ := newTestRouter()
	assert.Error(t, svc.HandleUpdate(context.Background(), nil))

	// пустое обновление без сообщения и callback - не ошибка
	assert.NoError(t, svc.HandleUpdate(context.Background(), &domain.Update{UpdateID: 3}))
}

func TestParseCommand(t *testing.T) {
	assert.Equal(t, "start", ParseCommand("/start"))
	assert.Equal(t, "start", ParseCommand("/start@shop_bot"))
	assert.Equal(t, "start", ParseCommand("/start arg"))
	assert.True(t, IsCommand("/start"))
	assert.False(t, IsCommand("start"))
	assert.False(t, IsCommand(""))
}
