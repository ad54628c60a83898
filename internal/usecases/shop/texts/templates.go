package texts

// Тексты экранов бота. Все сообщения отправляются с parse_mode=Markdown
const (
	MainMenu = "Главное меню. Выберите действие:"

	ShopTitle = "🛍️ **Магазин услуг**\n\nВыберите товар или откройте Mini App для удобного заказа:"

	ShopEmpty = "🛍️ **Магазин услуг**\n\nВитрина пока пуста, загляните позже."

	ReportsTitle = "📊 **Генерация отчетов**\n\nВыберите период для отчета:"

	OrderProcessingError = "❌ Ошибка обработки заказа"

	PaymentMethodUnavailable = "❌ Этот способ оплаты больше недоступен, выберите другой"

	ProductUnavailable = "❌ Товар не найден или снят с продажи"

	AccessDenied = "⛔ Доступ запрещен"

	ProductDeleted = "✅ Товар удален"

	UnknownAction = "🤷 Неизвестное действие, начните с /start"

	// Пошаговое добавление товара
	AddProductName        = "➕ **Добавление товара**\n\nШаг 1 из 4. Введите название товара:"
	AddProductDescription = "Шаг 2 из 4. Введите описание товара:"
	AddProductPrice       = "Шаг 3 из 4. Введите цену в рублях (целое число):"
	AddProductPhoto       = "Шаг 4 из 4. Пришлите фото товара или напишите «пропустить»:"
	AddProductPriceError  = "❌ Цена должна быть положительным числом, попробуйте ещё раз:"
	AddProductCancelled   = "Добавление товара отменено"
	AddProductNotExpected = "Сейчас я не жду от вас сообщений. Откройте меню: /start"

	PhotoSkipWord = "пропустить"
)
