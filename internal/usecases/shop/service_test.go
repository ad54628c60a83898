package shop

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/adapters/secondary/storage/memory"
	"github.com/admin/tg-bots/shop-bot/internal/domain"
	"github.com/admin/tg-bots/shop-bot/internal/ports/persistence"
	"github.com/admin/tg-bots/shop-bot/internal/usecases/shop/texts"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminID = int64(100)
	buyerID = int64(200)
)

// --- фейки репозиториев ---

type fakeTx struct{}

func (t *fakeTx) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}
func (t *fakeTx) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}
func (t *fakeTx) Exec(ctx context.Context, query string, args ...interface{}) error { return nil }
func (t *fakeTx) ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error) {
	return 0, nil
}
func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return nil
}
func (t *fakeTx) Commit() error   { return nil }
func (t *fakeTx) Rollback() error { return nil }

type fakeProductRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[int64]domain.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, p *domain.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *p
	stored.ID = r.nextID
	r.items[stored.ID] = stored
	return stored.ID, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Product, 0)
	for _, p := range r.items {
		if p.Status == domain.ProductStatusActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) Retire(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok || p.Status != domain.ProductStatusActive {
		return domain.ErrProductNotFound
	}
	p.Status = domain.ProductStatusRetired
	r.items[id] = p
	return nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *fakeProductRepo) GetByIDTx(ctx context.Context, tx persistence.Transaction, id int64) (*domain.Product, error) {
	return r.GetByID(ctx, id)
}

type fakePaymentMethodRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.PaymentMethod
}

func newFakePaymentMethodRepo() *fakePaymentMethodRepo {
	return &fakePaymentMethodRepo{items: make(map[int64]domain.PaymentMethod)}
}

func (r *fakePaymentMethodRepo) Create(ctx context.Context, m *domain.PaymentMethod) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *m
	stored.ID = r.nextID
	r.items[stored.ID] = stored
	return stored.ID, nil
}

func (r *fakePaymentMethodRepo) GetByID(ctx context.Context, id int64) (*domain.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, domain.ErrPaymentMethodNotFound
	}
	return &m, nil
}

func (r *fakePaymentMethodRepo) ListActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.PaymentMethod, 0)
	for _, m := range r.items {
		if m.Status == domain.PaymentMethodStatusActive {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePaymentMethodRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *fakePaymentMethodRepo) GetByIDTx(ctx context.Context, tx persistence.Transaction, id int64) (*domain.PaymentMethod, error) {
	return r.GetByID(ctx, id)
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders []domain.Order
}

func (r *fakeOrderRepo) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) Count(ctx context.Context, filter domain.OrderFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) Stats(ctx context.Context, filter domain.OrderFilter) ([]domain.PaymentMethodStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byMethod := make(map[string]*domain.PaymentMethodStat)
	for _, o := range r.orders {
		st, ok := byMethod[o.PaymentMethod]
		if !ok {
			st = &domain.PaymentMethodStat{PaymentMethod: o.PaymentMethod}
			byMethod[o.PaymentMethod] = st
		}
		st.Count++
		st.Total += o.Amount
	}
	out := make([]domain.PaymentMethodStat, 0, len(byMethod))
	for _, st := range byMethod {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out, nil
}

func (r *fakeOrderRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return fn(ctx, &fakeTx{})
}

func (r *fakeOrderRepo) CreateTx(ctx context.Context, tx persistence.Transaction, order *domain.Order) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *order
	stored.ID = r.nextID
	r.orders = append(r.orders, stored)
	return stored.ID, nil
}

// --- фейк Telegram-клиента ---

type sentMessage struct {
	chatID   int64
	text     string
	keyboard map[string]interface{}
}

type sentPhoto struct {
	chatID  int64
	fileID  string
	caption string
}

type fakeTelegram struct {
	mu       sync.Mutex
	messages []sentMessage
	edits    []sentMessage
	photos   []sentPhoto
	deleted  []int64
	answered []string
	files    map[string][]byte
}

func newFakeTelegram() *fakeTelegram {
	return &fakeTelegram{files: make(map[string][]byte)}
}

func (f *fakeTelegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeTelegram) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sentMessage{chatID: chatID, text: text, keyboard: keyboard})
	return nil
}

func (f *fakeTelegram) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, keyboard map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, sentMessage{chatID: chatID, text: text, keyboard: keyboard})
	return nil
}

func (f *fakeTelegram) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeTelegram) SendPhotoByFileID(ctx context.Context, chatID int64, fileID string, caption string, keyboard map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.photos = append(f.photos, sentPhoto{chatID: chatID, fileID: fileID, caption: caption})
	return nil
}

func (f *fakeTelegram) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answered = append(f.answered, callbackID)
	return nil
}

func (f *fakeTelegram) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[fileID], nil
}

func (f *fakeTelegram) lastMessage(t *testing.T) sentMessage {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.messages)
	return f.messages[len(f.messages)-1]
}

type recordedEvents struct {
	orders []domain.Order
}

func (e *recordedEvents) OrderCreated(ctx context.Context, order *domain.Order) error {
	e.orders = append(e.orders, *order)
	return nil
}

func (e *recordedEvents) Close() error { return nil }

// --- сборка сервиса для тестов ---

type testEnv struct {
	svc      *Service
	products *fakeProductRepo
	methods  *fakePaymentMethodRepo
	orders   *fakeOrderRepo
	tg       *fakeTelegram
	events   *recordedEvents
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		products: newFakeProductRepo(),
		methods:  newFakePaymentMethodRepo(),
		orders:   &fakeOrderRepo{},
		tg:       newFakeTelegram(),
		events:   &recordedEvents{},
	}

	env.svc = New(Deps{
		ProductRepo:       env.products,
		PaymentMethodRepo: env.methods,
		OrderRepo:         env.orders,
		TelegramClient:    env.tg,
		Sessions:          memory.New(),
		OrderEvents:       env.events,
		AdminIDs:          []int64{adminID},
		AdminContact:      "the_boss_manger",
		SupportContact:    "Paymentprosu",
		MiniAppURL:        "https://example.com/app",
		Log:               slog.Default(),
	})

	return env
}

func (env *testEnv) seedProduct(t *testing.T, name string, price float64) int64 {
	t.Helper()
	id, err := env.products.Create(context.Background(), &domain.Product{
		Name: name, Description: "desc", Price: price, Status: domain.ProductStatusActive,
	})
	require.NoError(t, err)
	return id
}

func (env *testEnv) seedMethod(t *testing.T, name string, status domain.PaymentMethodStatus) int64 {
	t.Helper()
	id, err := env.methods.Create(context.Background(), &domain.PaymentMethod{
		Name: name, Type: domain.PaymentMethodTypeCard, Details: "card 1234", Status: status,
	})
	require.NoError(t, err)
	return id
}

func buyer() *domain.TelegramUser {
	username := "buyer"
	return &domain.TelegramUser{ID: buyerID, FirstName: "Иван", Username: &username}
}

// --- тесты ---

func TestPlaceOrder_SnapshotsProductAndDetails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	productID := env.seedProduct(t, "Консультация", 3000)
	methodID := env.seedMethod(t, "Сбербанк", domain.PaymentMethodStatusActive)

	err := env.svc.PlaceOrder(ctx, buyer(), buyerID, methodID, productID)
	require.NoError(t, err)

	require.Len(t, env.orders.orders, 1)
	order := env.orders.orders[0]
	assert.Equal(t, buyerID, order.UserID)
	assert.Equal(t, "buyer", order.Username)
	assert.Equal(t, "Консультация", order.ProductName)
	assert.Equal(t, float64(3000), order.Amount)
	assert.Equal(t, "Сбербанк", order.PaymentMethod)
	assert.Equal(t, "card 1234", order.PaymentDetails)
	assert.Equal(t, "the_boss_manger", order.AdminContact)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderDate)
	assert.NotEmpty(t, order.OrderTime)

	// подтверждение с реквизитами ушло покупателю
	msg := env.tg.lastMessage(t)
	assert.Contains(t, msg.text, "Заказ оформлен")
	assert.Contains(t, msg.text, "card 1234")

	// событие опубликовано
	require.Len(t, env.events.orders, 1)
	assert.Equal(t, order.ID, env.events.orders[0].ID)
}

func TestPlaceOrder_RejectsRetiredPaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	productID := env.seedProduct(t, "Консультация", 3000)
	methodID := env.seedMethod(t, "Старый банк", domain.PaymentMethodStatusRetired)

	err := env.svc.PlaceOrder(ctx, buyer(), buyerID, methodID, productID)
	require.NoError(t, err)

	assert.Empty(t, env.orders.orders, "заказ не должен создаваться")
	assert.Empty(t, env.events.orders)
	assert.Equal(t, texts.PaymentMethodUnavailable, env.tg.lastMessage(t).text)
}

func TestPlaceOrder_RejectsMissingPaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	productID := env.seedProduct(t, "Консультация", 3000)

	err := env.svc.PlaceOrder(ctx, buyer(), buyerID, 999, productID)
	require.NoError(t, err)

	assert.Empty(t, env.orders.orders)
	assert.Equal(t, texts.PaymentMethodUnavailable, env.tg.lastMessage(t).text)
}

func TestPlaceOrder_RejectsRetiredProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	productID := env.seedProduct(t, "Консультация", 3000)
	methodID := env.seedMethod(t, "Сбербанк", domain.PaymentMethodStatusActive)
	require.NoError(t, env.products.Retire(ctx, productID))

	err := env.svc.PlaceOrder(ctx, buyer(), buyerID, methodID, productID)
	require.NoError(t, err)

	assert.Empty(t, env.orders.orders)
	assert.Equal(t, texts.ProductUnavailable, env.tg.lastMessage(t).text)
}

func callbackFrom(userID int64, data string) *domain.CallbackQuery {
	return &domain.CallbackQuery{
		ID:   "cb-1",
		From: &domain.TelegramUser{ID: userID, FirstName: "Иван"},
		Message: &domain.Message{
			MessageID: 42,
			Chat:      &domain.Chat{ID: userID, Type: "private"},
		},
		Data: &data,
	}
}

func TestHandleCallback_AdminScreensDenied(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, data := range []string{"menu_admin", "admin_products", "admin_orders", "admin_reports", "admin_payments", "delete_product_1", "report_today", "add_product"} {
		err := env.svc.HandleCallback(ctx, callbackFrom(buyerID, data))
		require.ErrorIs(t, err, domain.ErrAccessDenied, data)
		assert.True(t, domain.IsBusinessError(err), data)
		assert.Equal(t, texts.AccessDenied, env.tg.lastMessage(t).text, data)
	}

	assert.Empty(t, env.tg.edits, "ни один админский экран не должен рисоваться")
}

func TestHandleCallback_AdminPanelForAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.svc.HandleCallback(ctx, callbackFrom(adminID, "menu_admin"))
	require.NoError(t, err)

	require.NotEmpty(t, env.tg.edits)
	assert.Contains(t, env.tg.edits[len(env.tg.edits)-1].text, "Панель администратора")
	assert.Equal(t, []string{"cb-1"}, env.tg.answered)
}

func TestHandleCallback_UnknownToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.svc.HandleCallback(ctx, callbackFrom(buyerID, "bogus_token"))
	require.NoError(t, err)
	assert.Equal(t, texts.UnknownAction, env.tg.lastMessage(t).text)
}

func TestDeleteProduct_RetiresAndKeepsOrders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	productID := env.seedProduct(t, "Консультация", 3000)
	methodID := env.seedMethod(t, "Сбербанк", domain.PaymentMethodStatusActive)
	require.NoError(t, env.svc.PlaceOrder(ctx, buyer(), buyerID, methodID, productID))

	err := env.svc.HandleCallback(ctx, callbackFrom(adminID, "delete_product_1"))
	require.NoError(t, err)

	// товар снят с витрины
	p, err := env.products.GetByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusRetired, p.Status)

	// история заказов не тронута
	orders, err := env.orders.List(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Консультация", orders[0].ProductName)
}

func TestAddProductFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := &domain.TelegramUser{ID: adminID, FirstName: "Босс"}

	require.NoError(t, env.svc.StartAddProduct(ctx, adminID))
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "Аудит сайта"))
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "Полный технический аудит"))

	// невалидная цена не двигает диалог
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "дорого"))
	assert.Equal(t, texts.AddProductPriceError, env.tg.lastMessage(t).text)

	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "7000"))
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "пропустить"))

	products, err := env.products.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Аудит сайта", products[0].Name)
	assert.Equal(t, "Полный технический аудит", products[0].Description)
	assert.Equal(t, float64(7000), products[0].Price)
	assert.Empty(t, products[0].PhotoFileID)

	// сессия закрыта, следующий текст вне диалога
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "ещё текст"))
	assert.Equal(t, texts.AddProductNotExpected, env.tg.lastMessage(t).text)
}

func TestAddProductFlow_WithPhoto(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := &domain.TelegramUser{ID: adminID, FirstName: "Босс"}

	require.NoError(t, env.svc.StartAddProduct(ctx, adminID))
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "Логотип"))
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "Дизайн логотипа"))
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "5000"))

	photos := []domain.PhotoSize{
		{FileID: "small", Width: 90, Height: 90},
		{FileID: "big", Width: 800, Height: 800},
	}
	require.NoError(t, env.svc.HandlePhoto(ctx, admin, adminID, photos))

	products, err := env.products.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "big", products[0].PhotoFileID, "берётся самый крупный размер")
}

func TestAddProductFlow_Cancel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := &domain.TelegramUser{ID: adminID, FirstName: "Босс"}

	require.NoError(t, env.svc.StartAddProduct(ctx, adminID))
	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "Черновик"))
	require.NoError(t, env.svc.CancelAddProduct(ctx, adminID))

	products, err := env.products.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	require.NoError(t, env.svc.HandleText(ctx, admin, adminID, "Черновик 2"))
	assert.Equal(t, texts.AddProductNotExpected, env.tg.lastMessage(t).text)
}

func TestEnsureDefaults_SeedsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.svc.EnsureDefaults(ctx))

	methods, err := env.methods.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 6)

	products, err := env.products.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	// повторный запуск ничего не добавляет
	require.NoError(t, env.svc.EnsureDefaults(ctx))

	methods, _ = env.methods.ListActive(ctx)
	assert.Len(t, methods, 6)
	products, _ = env.products.ListActive(ctx)
	assert.Len(t, products, 3)
}

func TestHandleWebAppData_ShowsPaymentMethods(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProduct(t, "Консультация", 3000)
	env.seedMethod(t, "Сбербанк", domain.PaymentMethodStatusActive)

	err := env.svc.HandleWebAppData(ctx, buyer(), buyerID, `{"action":"create_order","product_id":1}`)
	require.NoError(t, err)

	msg := env.tg.lastMessage(t)
	assert.Contains(t, msg.text, "Товар из Mini App")
	require.NotNil(t, msg.keyboard)
	assert.Contains(t, msg.keyboard, "inline_keyboard")
}

func TestHandleWebAppData_BadPayload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.svc.HandleWebAppData(ctx, buyer(), buyerID, "not json")
	require.NoError(t, err)
	assert.Equal(t, texts.OrderProcessingError, env.tg.lastMessage(t).text)
}

func TestHandleWebAppData_UnknownActionIsSilent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.svc.HandleWebAppData(ctx, buyer(), buyerID, `{"action":"refund","product_id":1}`)
	require.NoError(t, err)
	assert.Empty(t, env.tg.messages, "незнакомое действие не должно порождать ответ в чат")
}

func TestHandleStart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.svc.HandleStart(ctx, buyer(), buyerID))

	msg := env.tg.lastMessage(t)
	assert.True(t, strings.Contains(msg.text, "Добро пожаловать"))
	require.NotNil(t, msg.keyboard)

	rows, ok := msg.keyboard["inline_keyboard"].([][]map[string]interface{})
	require.True(t, ok)
	// магазин+контакты и Mini App, без кнопки админа
	assert.Len(t, rows, 2)

	admin := &domain.TelegramUser{ID: adminID, FirstName: "Босс"}
	require.NoError(t, env.svc.HandleStart(ctx, admin, adminID))
	rows, ok = env.tg.lastMessage(t).keyboard["inline_keyboard"].([][]map[string]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 3)
}

func TestShowProduct_PhotoCardDeletesMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.products.Create(ctx, &domain.Product{
		Name: "Логотип", Description: "Дизайн", Price: 5000,
		PhotoFileID: "photo-1", Status: domain.ProductStatusActive,
	})
	require.NoError(t, err)

	err = env.svc.ShowProduct(ctx, buyerID, 42, id)
	require.NoError(t, err)

	assert.Equal(t, []int64{42}, env.tg.deleted)
	require.Len(t, env.tg.photos, 1)
	assert.Equal(t, "photo-1", env.tg.photos[0].fileID)
	assert.Contains(t, env.tg.photos[0].caption, "Логотип")
}
