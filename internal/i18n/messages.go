package i18n

var messages = map[Key]map[string]string{
	Welcome: {
		Uzbek:   "👋 Xush kelibsiz, %s!\n\n🌐 Tilni tanlang:",
		Russian: "👋 Добро пожаловать, %s!\n\n🌐 Выберите язык:",
	},
	ChooseLanguage: {
		Uzbek:   "🌐 Tilni tanlang / Выберите язык:",
		Russian: "🌐 Tilni tanlang / Выберите язык:",
	},
	LanguageChanged: {
		Uzbek:   "✅ Til o‘zbekchaga o‘zgartirildi!",
		Russian: "✅ Язык изменён на русский!",
	},
	AskPhone: {
		Uzbek:   "📞 Telefon raqamingizni kiriting (masalan, +998901234567):",
		Russian: "📞 Введите номер телефона (например, +998901234567):",
	},
	PhoneSaved: {
		Uzbek:   "✅ Telefon raqami saqlandi.",
		Russian: "✅ Номер телефона сохранён.",
	},
	MainMenu: {
		Uzbek:   "🏠 Asosiy menyu. Do‘konimizdan foydalaning!",
		Russian: "🏠 Главное меню. Пользуйтесь нашим магазином!",
	},
	Profile: {
		Uzbek:   "👤 <b>%s</b>\n📞 %s\n🌐 %s",
		Russian: "👤 <b>%s</b>\n📞 %s\n🌐 %s",
	},
	NotSpecified: {
		Uzbek:   "Kiritilmagan",
		Russian: "Не указано",
	},
	MoneyAmount: {
		Uzbek:   "%s so‘m",
		Russian: "%s сум",
	},

	BtnCategories: {Uzbek: "📂 Kategoriyalar", Russian: "📂 Категории"},
	BtnCart:       {Uzbek: "🛒 Savatcha", Russian: "🛒 Корзина"},
	BtnProfile:    {Uzbek: "👤 Profil", Russian: "👤 Профиль"},
	BtnHistory:    {Uzbek: "📜 Buyurtmalar tarixi", Russian: "📜 История заказов"},
	BtnLanguage:   {Uzbek: "🌐 Tilni o‘zgartirish", Russian: "🌐 Сменить язык"},

	CategoriesTitle: {Uzbek: "📂 Kategoriyalar:", Russian: "📂 Категории:"},
	NoCategories:    {Uzbek: "Hozircha kategoriyalar yo‘q.", Russian: "Категорий пока нет."},
	ProductsTitle:   {Uzbek: "📦 Mahsulotlar:", Russian: "📦 Товары:"},
	NoProducts:      {Uzbek: "Bu kategoriyada mahsulot yo‘q.", Russian: "В этой категории нет товаров."},
	ProductCaption: {
		Uzbek:   "<b>%s</b>\n%s\n💰 %s\n📦 Omborda: %d dona",
		Russian: "<b>%s</b>\n%s\n💰 %s\n📦 В наличии: %d шт.",
	},
	BtnAddToCart: {Uzbek: "➕ Savatchaga qo‘shish", Russian: "➕ Добавить в корзину"},
	BtnFeedback:  {Uzbek: "⭐ Feedback qoldirish", Russian: "⭐ Оставить отзыв"},
	AddedToCart:  {Uzbek: "✅ Mahsulot savatchaga qo‘shildi.", Russian: "✅ Товар добавлен в корзину."},

	CartEmpty:     {Uzbek: "🛒 Savatchangiz bo‘sh.", Russian: "🛒 Ваша корзина пуста."},
	CartTitle:     {Uzbek: "🛒 Savatchangiz:", Russian: "🛒 Ваша корзина:"},
	CartLine:      {Uzbek: "• %s — %d dona × %s = %s", Russian: "• %s — %d шт. × %s = %s"},
	CartTotal:     {Uzbek: "💰 Jami: %s", Russian: "💰 Итого: %s"},
	BtnPlaceOrder: {Uzbek: "✅ Buyurtma berish", Russian: "✅ Оформить заказ"},
	BtnClearCart:  {Uzbek: "🗑 Savatchani tozalash", Russian: "🗑 Очистить корзину"},
	CartCleared:   {Uzbek: "🗑 Savatcha tozalandi.", Russian: "🗑 Корзина очищена."},

	OrderCreated: {
		Uzbek:   "🧾 Buyurtma #%s yaratildi. Jami: %s",
		Russian: "🧾 Заказ #%s создан. Итого: %s",
	},
	AskLocation: {
		Uzbek:   "📍 Yetkazib berish manzilini yuboring:",
		Russian: "📍 Отправьте адрес доставки:",
	},
	BtnShareLocation: {Uzbek: "📍 Manzilni yuborish", Russian: "📍 Отправить адрес"},
	AskAddressDetails: {
		Uzbek:   "🏠 Manzil tafsilotlarini kiriting (uy, xonadon, mo‘ljal):",
		Russian: "🏠 Уточните адрес (дом, квартира, ориентир):",
	},
	ChoosePayment: {
		Uzbek:   "💳 Buyurtma #%s uchun to‘lov turini tanlang. Jami: %s",
		Russian: "💳 Выберите способ оплаты заказа #%s. Итого: %s",
	},
	BtnPayClick: {Uzbek: "💵 Click orqali to‘lash", Russian: "💵 Оплатить через Click"},
	BtnPayPayme: {Uzbek: "💵 Payme orqali to‘lash", Russian: "💵 Оплатить через Payme"},
	AlreadyPaid: {
		Uzbek:   "ℹ️ Buyurtma #%s allaqachon tasdiqlangan.",
		Russian: "ℹ️ Заказ #%s уже подтверждён.",
	},
	OrderCancelled: {
		Uzbek:   "❌ Buyurtma #%s bekor qilindi.",
		Russian: "❌ Заказ #%s отменён.",
	},

	SummaryTitle:    {Uzbek: "✅ <b>Buyurtma #%s to‘landi</b>", Russian: "✅ <b>Заказ #%s оплачен</b>"},
	SummaryCustomer: {Uzbek: "👤 Mijoz: %s (%s)", Russian: "👤 Клиент: %s (%s)"},
	SummaryItem:     {Uzbek: "• %s — %d dona × %s", Russian: "• %s — %d шт. × %s"},
	SummaryTotal:    {Uzbek: "💰 Jami: %s", Russian: "💰 Итого: %s"},
	SummaryPayment:  {Uzbek: "💳 To‘lov turi: %s", Russian: "💳 Способ оплаты: %s"},
	SummaryAddress:  {Uzbek: "🏠 Manzil: %s", Russian: "🏠 Адрес: %s"},
	SummaryLocation: {Uzbek: "📍 Joylashuv: %.6f, %.6f", Russian: "📍 Координаты: %.6f, %.6f"},

	HistoryTitle:   {Uzbek: "📜 Buyurtmalar tarixi (%d/%d):", Russian: "📜 История заказов (%d/%d):"},
	HistoryEntry:   {Uzbek: "#%s — %s — %s — %s", Russian: "#%s — %s — %s — %s"},
	HistoryEmpty:   {Uzbek: "📜 Sizda hali buyurtmalar yo‘q.", Russian: "📜 У вас пока нет заказов."},
	BtnNext:        {Uzbek: "➡️ Keyingi sahifa", Russian: "➡️ Следующая страница"},
	BtnPrev:        {Uzbek: "⬅️ Oldingi sahifa", Russian: "⬅️ Предыдущая страница"},
	BtnCancelOrder: {Uzbek: "❌ #%s ni bekor qilish", Russian: "❌ Отменить #%s"},
	BtnResumeOrder: {Uzbek: "▶️ #%s ni davom ettirish", Russian: "▶️ Продолжить #%s"},

	StatusCreated:         {Uzbek: "yaratildi", Russian: "создан"},
	StatusAwaitingPayment: {Uzbek: "to‘lov kutilmoqda", Russian: "ожидает оплаты"},
	StatusPaid:            {Uzbek: "to‘landi", Russian: "оплачен"},
	StatusCancelled:       {Uzbek: "bekor qilindi", Russian: "отменён"},

	DeliveryPending:   {Uzbek: "kutilmoqda", Russian: "ожидает"},
	DeliveryInTransit: {Uzbek: "yo‘lda", Russian: "в пути"},
	DeliveryDelivered: {Uzbek: "yetkazildi", Russian: "доставлен"},
	DeliveryCancelled: {Uzbek: "bekor qilindi", Russian: "отменён"},

	ChooseRating:   {Uzbek: "⭐ Reytingni tanlang:", Russian: "⭐ Выберите рейтинг:"},
	AskComment:     {Uzbek: "💬 Izoh yozing:", Russian: "💬 Напишите комментарий:"},
	FeedbackThanks: {Uzbek: "✅ Feedback qabul qilindi!", Russian: "✅ Отзыв принят!"},

	PromocodeUsage: {Uzbek: "ℹ️ Foydalanish: /promocode KOD", Russian: "ℹ️ Использование: /promocode КОД"},
	PromocodeApplied: {
		Uzbek:   "🎉 Promo-kod %s qabul qilindi: %d%% chegirma.",
		Russian: "🎉 Промокод %s принят: скидка %d%%.",
	},

	PromptDiscarded: {
		Uzbek:   "⚠️ Oldingi tugallanmagan so‘rov bekor qilindi.",
		Russian: "⚠️ Предыдущий незавершённый запрос отменён.",
	},
	PromptCancelled: {Uzbek: "❎ So‘rov bekor qilindi.", Russian: "❎ Запрос отменён."},
	NothingToCancel: {Uzbek: "ℹ️ Bekor qilinadigan so‘rov yo‘q.", Russian: "ℹ️ Нет активного запроса."},
	InvalidInput:    {Uzbek: "❌ %s", Russian: "❌ %s"},

	AskCategoryName:          {Uzbek: "📋 Kategoriya nomini kiriting (o‘zbekcha):", Russian: "📋 Введите название категории (на узбекском):"},
	AskCategoryNameRu:        {Uzbek: "📋 Kategoriya nomini kiriting (ruscha):", Russian: "📋 Введите название категории (на русском):"},
	AskCategoryDescription:   {Uzbek: "📝 Kategoriya tavsifini kiriting (o‘zbekcha):", Russian: "📝 Введите описание категории (на узбекском):"},
	AskCategoryDescriptionRu: {Uzbek: "📝 Kategoriya tavsifini kiriting (ruscha, ixtiyoriy, o‘tkazish uchun \"-\"):", Russian: "📝 Введите описание категории (на русском, необязательно, \"-\" чтобы пропустить):"},
	AskProductName:           {Uzbek: "📋 Mahsulot nomini kiriting (o‘zbekcha):", Russian: "📋 Введите название товара (на узбекском):"},
	AskProductNameRu:         {Uzbek: "📋 Mahsulot nomini kiriting (ruscha):", Russian: "📋 Введите название товара (на русском):"},
	AskProductPrice:          {Uzbek: "💰 Narxini kiriting (masalan, 12500.50):", Russian: "💰 Введите цену (например, 12500.50):"},
	AskProductDescription:    {Uzbek: "📝 Mahsulot tavsifini kiriting (o‘zbekcha):", Russian: "📝 Введите описание товара (на узбекском):"},
	AskProductDescriptionRu:  {Uzbek: "📝 Mahsulot tavsifini kiriting (ruscha, ixtiyoriy, o‘tkazish uchun \"-\"):", Russian: "📝 Введите описание товара (на русском, необязательно, \"-\" чтобы пропустить):"},
	AskProductImage:          {Uzbek: "🖼 Rasm havolasini kiriting (https://...):", Russian: "🖼 Введите ссылку на изображение (https://...):"},
	AskProductCategory:       {Uzbek: "📂 Kategoriya ID raqamini kiriting:", Russian: "📂 Введите ID категории:"},
	AskProductStock:          {Uzbek: "📦 Ombordagi sonini kiriting:", Russian: "📦 Введите количество на складе:"},
	AskUserFullName:          {Uzbek: "👤 To‘liq ismni kiriting:", Russian: "👤 Введите полное имя:"},
	AskUserPhone:             {Uzbek: "📞 Telefon raqamini kiriting:", Russian: "📞 Введите номер телефона:"},
	AskDeliveryStatus:        {Uzbek: "🚚 Yangi statusni kiriting (pending, in_transit, delivered, cancelled):", Russian: "🚚 Введите новый статус (pending, in_transit, delivered, cancelled):"},
	AskCourierName:           {Uzbek: "🧑 Kuryer ismi (ixtiyoriy, \"-\"):", Russian: "🧑 Имя курьера (необязательно, \"-\"):"},
	AskCourierPhone:          {Uzbek: "📞 Kuryer telefoni (ixtiyoriy, \"-\"):", Russian: "📞 Телефон курьера (необязательно, \"-\"):"},
	AskDeliveryDate:          {Uzbek: "📅 Yetkazish sanasi YYYY-MM-DD (ixtiyoriy, \"-\"):", Russian: "📅 Дата доставки YYYY-MM-DD (необязательно, \"-\"):"},
	AskPromoCode:             {Uzbek: "🏷 Promo-kodni kiriting:", Russian: "🏷 Введите промокод:"},
	AskPromoPercent:          {Uzbek: "💯 Chegirma foizini kiriting (1-100):", Russian: "💯 Введите процент скидки (1-100):"},
	AskPromoValidTill:        {Uzbek: "📅 Amal qilish muddatini kiriting (YYYY-MM-DD):", Russian: "📅 Введите срок действия (YYYY-MM-DD):"},

	ParseRequired:    {Uzbek: "Qiymat bo‘sh bo‘lmasligi kerak.", Russian: "Значение не может быть пустым."},
	ParseNumber:      {Uzbek: "Butun musbat son kiriting.", Russian: "Введите целое положительное число."},
	ParsePrice:       {Uzbek: "Narx musbat son bo‘lishi kerak.", Russian: "Цена должна быть положительным числом."},
	ParseDate:        {Uzbek: "Sana YYYY-MM-DD formatida bo‘lishi kerak.", Russian: "Дата должна быть в формате YYYY-MM-DD."},
	ParsePhone:       {Uzbek: "Telefon raqami noto‘g‘ri.", Russian: "Неверный номер телефона."},
	ParseURL:         {Uzbek: "Havola noto‘g‘ri.", Russian: "Неверная ссылка."},
	ParsePercent:     {Uzbek: "Foiz 1 dan 100 gacha bo‘lishi kerak.", Russian: "Процент должен быть от 1 до 100."},
	ParseStatus:      {Uzbek: "Noma’lum status.", Russian: "Неизвестный статус."},
	ParseTooLong:     {Uzbek: "Matn juda uzun.", Russian: "Текст слишком длинный."},
	ParseNeedLoc:     {Uzbek: "Iltimos, joylashuvni tugma orqali yuboring.", Russian: "Пожалуйста, отправьте местоположение кнопкой."},
	ParseAlphanum:    {Uzbek: "Faqat harf va raqamlar.", Russian: "Только буквы и цифры."},
	ParseNonNegative: {Uzbek: "Son manfiy bo‘lmasligi kerak.", Russian: "Число не может быть отрицательным."},

	AdminPanel:        {Uzbek: "🛠 Admin panel:", Russian: "🛠 Панель администратора:"},
	BtnAddCategory:    {Uzbek: "➕ Kategoriya qo‘shish", Russian: "➕ Добавить категорию"},
	BtnViewCategories: {Uzbek: "📂 Kategoriyalar", Russian: "📂 Категории"},
	BtnEditCategory:   {Uzbek: "✏️ Kategoriyani tahrirlash", Russian: "✏️ Изменить категорию"},
	BtnDeleteCategory: {Uzbek: "🗑 Kategoriyani o‘chirish", Russian: "🗑 Удалить категорию"},
	BtnAddProduct:     {Uzbek: "➕ Mahsulot qo‘shish", Russian: "➕ Добавить товар"},
	BtnViewProducts:   {Uzbek: "📦 Mahsulotlar", Russian: "📦 Товары"},
	BtnEditProduct:    {Uzbek: "✏️ Mahsulotni tahrirlash", Russian: "✏️ Изменить товар"},
	BtnDeleteProduct:  {Uzbek: "🗑 Mahsulotni o‘chirish", Russian: "🗑 Удалить товар"},
	BtnViewUsers:      {Uzbek: "👥 Foydalanuvchilar", Russian: "👥 Пользователи"},
	BtnEditUser:       {Uzbek: "✏️ Foydalanuvchini tahrirlash", Russian: "✏️ Изменить пользователя"},
	BtnDeleteUser:     {Uzbek: "🗑 Foydalanuvchini o‘chirish", Russian: "🗑 Удалить пользователя"},
	BtnViewOrders:     {Uzbek: "🧾 Buyurtmalar", Russian: "🧾 Заказы"},
	BtnViewDeliveries: {Uzbek: "🚚 Yetkazib berishlar", Russian: "🚚 Доставки"},
	BtnEditDelivery:   {Uzbek: "✏️ Yetkazib berishni tahrirlash", Russian: "✏️ Изменить доставку"},
	BtnViewFeedback:   {Uzbek: "⭐ Feedbacklar", Russian: "⭐ Отзывы"},
	BtnDeleteFeedback: {Uzbek: "🗑 Feedbackni o‘chirish", Russian: "🗑 Удалить отзыв"},
	BtnAddPromocode:   {Uzbek: "🏷 Promo-kod qo‘shish", Russian: "🏷 Добавить промокод"},
	BtnViewStats:      {Uzbek: "📊 Statistika", Russian: "📊 Статистика"},
	BtnOrderStats:     {Uzbek: "📊 Buyurtmalar statistikasi", Russian: "📊 Статистика заказов"},

	CategoryCreated:  {Uzbek: "✅ Kategoriya qo‘shildi!", Russian: "✅ Категория добавлена!"},
	CategoryUpdated:  {Uzbek: "✅ Kategoriya yangilandi!", Russian: "✅ Категория обновлена!"},
	CategoryDeleted:  {Uzbek: "✅ Kategoriya o‘chirildi.", Russian: "✅ Категория удалена."},
	ProductCreated:   {Uzbek: "✅ Mahsulot qo‘shildi.", Russian: "✅ Товар добавлен."},
	ProductUpdated:   {Uzbek: "✅ Mahsulot yangilandi.", Russian: "✅ Товар обновлен."},
	ProductDeleted:   {Uzbek: "✅ Mahsulot o‘chirildi.", Russian: "✅ Товар удален."},
	UserUpdated:      {Uzbek: "✅ Foydalanuvchi ma’lumotlari yangilandi.", Russian: "✅ Данные пользователя обновлены."},
	UserDeleted:      {Uzbek: "✅ Foydalanuvchi o‘chirildi.", Russian: "✅ Пользователь удален."},
	DeliveryUpdated:  {Uzbek: "✅ Yetkazib berish statusi yangilandi.", Russian: "✅ Статус доставки обновлен."},
	FeedbackDeleted:  {Uzbek: "✅ Feedback o‘chirildi.", Russian: "✅ Отзыв удален."},
	PromocodeCreated: {Uzbek: "✅ Promo-kod qo‘shildi.", Russian: "✅ Промокод добавлен."},

	PickCategoryEdit:   {Uzbek: "✏️ Tahrir qilinadigan kategoriyani tanlang:", Russian: "✏️ Выберите категорию для редактирования:"},
	PickCategoryDelete: {Uzbek: "🗑 O‘chiriladigan kategoriyani tanlang:", Russian: "🗑 Выберите категорию для удаления:"},
	PickProductEdit:    {Uzbek: "✏️ Tahrir qilinadigan mahsulotni tanlang:", Russian: "✏️ Выберите товар для редактирования:"},
	PickProductDelete:  {Uzbek: "🗑 O‘chiriladigan mahsulotni tanlang:", Russian: "🗑 Выберите товар для удаления:"},
	PickUserEdit:       {Uzbek: "✏️ Tahrir qilinadigan foydalanuvchini tanlang:", Russian: "✏️ Выберите пользователя для редактирования:"},
	PickUserDelete:     {Uzbek: "🗑 O‘chiriladigan foydalanuvchini tanlang:", Russian: "🗑 Выберите пользователя для удаления:"},
	PickDeliveryEdit:   {Uzbek: "✏️ Tahrir qilinadigan yetkazib berishni tanlang:", Russian: "✏️ Выберите доставку для редактирования:"},
	PickFeedbackDelete: {Uzbek: "🗑 O‘chiriladigan feedbackni tanlang:", Russian: "🗑 Выберите отзыв для удаления:"},

	ListEmpty:        {Uzbek: "Hech narsa topilmadi.", Russian: "Ничего не найдено."},
	ListPage:         {Uzbek: "Sahifa %d/%d", Russian: "Страница %d/%d"},
	ListCategoryLine: {Uzbek: "%d. %s / %s", Russian: "%d. %s / %s"},
	ListProductLine:  {Uzbek: "%d. %s — %s — %d dona", Russian: "%d. %s — %s — %d шт."},
	ListUserLine:     {Uzbek: "%d. %s — %s — %s", Russian: "%d. %s — %s — %s"},
	ListOrderLine:    {Uzbek: "#%s — %s — %s — %s", Russian: "#%s — %s — %s — %s"},
	ListDeliveryLine: {Uzbek: "%d. Buyurtma %d — %s — %s", Russian: "%d. Заказ %d — %s — %s"},
	ListFeedbackLine: {Uzbek: "%d. Reyting %d — %s (mahsulot %d)", Russian: "%d. Рейтинг %d — %s (товар %d)"},
	StatsSummary: {
		Uzbek:   "📊 Buyurtmalar soni: %d\n💰 Umumiy summa: %s",
		Russian: "📊 Количество заказов: %d\n💰 Общая сумма: %s",
	},
	StatsByStatus: {Uzbek: "• %s: %d", Russian: "• %s: %d"},

	ErrorKey("unexpected"): {
		Uzbek:   "❌ Xatolik yuz berdi, iltimos keyinroq urinib ko‘ring.",
		Russian: "❌ Произошла ошибка, попробуйте позже.",
	},
	ErrorKey("validation"):          {Uzbek: "❌ Noto‘g‘ri so‘rov.", Russian: "❌ Неверный запрос."},
	ErrorKey("not_found"):           {Uzbek: "❌ Ma’lumot topilmadi.", Russian: "❌ Данные не найдены."},
	ErrorKey("conflict"):            {Uzbek: "❌ Amalni bajarib bo‘lmadi.", Russian: "❌ Не удалось выполнить действие."},
	ErrorKey("permission_denied"):   {Uzbek: "⛔ Sizda bu amal uchun ruxsat yo‘q.", Russian: "⛔ У вас нет прав для этого действия."},
	ErrorKey("order_not_found"):     {Uzbek: "❌ Buyurtma topilmadi.", Russian: "❌ Заказ не найден."},
	ErrorKey("delivery_not_found"):  {Uzbek: "❌ Yetkazib berish ma’lumotlari topilmadi.", Russian: "❌ Данные доставки не найдены."},
	ErrorKey("product_not_found"):   {Uzbek: "❌ Mahsulot topilmadi.", Russian: "❌ Товар не найден."},
	ErrorKey("category_not_found"):  {Uzbek: "❌ Kategoriya topilmadi.", Russian: "❌ Категория не найдена."},
	ErrorKey("user_not_found"):      {Uzbek: "❌ Foydalanuvchi topilmadi.", Russian: "❌ Пользователь не найден."},
	ErrorKey("feedback_not_found"):  {Uzbek: "❌ Feedback topilmadi.", Russian: "❌ Отзыв не найден."},
	ErrorKey("promocode_not_found"): {Uzbek: "❌ Promo-kod topilmadi.", Russian: "❌ Промокод не найден."},
	ErrorKey("promocode_expired"):   {Uzbek: "⌛ Promo-kod muddati tugagan.", Russian: "⌛ Срок действия промокода истёк."},
	ErrorKey("promocode_exists"):    {Uzbek: "❌ Bunday promo-kod allaqachon mavjud.", Russian: "❌ Такой промокод уже существует."},
	ErrorKey("empty_cart"):          {Uzbek: "🛒 Savatchangiz bo‘sh, avval mahsulot qo‘shing.", Russian: "🛒 Корзина пуста, сначала добавьте товары."},
	ErrorKey("insufficient_stock"): {
		Uzbek:   "❌ \"%s\" omborda yetarli emas (mavjud: %d, so‘ralgan: %d).",
		Russian: "❌ Недостаточно товара \"%s\" (в наличии: %d, запрошено: %d).",
	},
	ErrorKey("illegal_transition"):   {Uzbek: "❌ Buyurtma holatini o‘zgartirib bo‘lmaydi.", Russian: "❌ Нельзя изменить статус заказа."},
	ErrorKey("prompt_pending"):       {Uzbek: "⚠️ Avval joriy so‘rovni yakunlang yoki /cancel yuboring.", Russian: "⚠️ Сначала завершите текущий запрос или отправьте /cancel."},
	ErrorKey("unknown_payment_type"): {Uzbek: "❌ Noto‘g‘ri to‘lov turi.", Russian: "❌ Неверный тип оплаты."},
	ErrorKey("optimistic_lock"):      {Uzbek: "⚠️ Ma’lumot boshqa admin tomonidan o‘zgartirildi, qayta urinib ko‘ring.", Russian: "⚠️ Данные изменены другим администратором, попробуйте снова."},
	ErrorKey("delivery_exists"):      {Uzbek: "ℹ️ Bu buyurtma uchun manzil allaqachon kiritilgan.", Russian: "ℹ️ Адрес для этого заказа уже указан."},
	ErrorKey("already_paid"):         {Uzbek: "ℹ️ Buyurtma allaqachon to‘langan.", Russian: "ℹ️ Заказ уже оплачен."},
	ErrorKey("no_pending_prompt"):    {Uzbek: "ℹ️ Faol so‘rov yo‘q.", Russian: "ℹ️ Нет активного запроса."},
	ErrorKey("unknown_opcode"):       {Uzbek: "❌ Noma’lum buyruq.", Russian: "❌ Неизвестная команда."},
	ErrorKey("invalid_id"):           {Uzbek: "❌ Noto‘g‘ri ID.", Russian: "❌ Неверный ID."},
	ErrorKey("unknown_language"):     {Uzbek: "❌ Bu til qo‘llab-quvvatlanmaydi.", Russian: "❌ Этот язык не поддерживается."},
	ErrorKey("invalid_rating"):       {Uzbek: "❌ Reyting 1 dan 5 gacha bo‘lishi kerak.", Russian: "❌ Рейтинг должен быть от 1 до 5."},
	ErrorKey("transport_failed"):     {Uzbek: "❌ Xabar yuborilmadi.", Russian: "❌ Сообщение не отправлено."},
}
