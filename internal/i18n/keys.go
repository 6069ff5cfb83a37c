package i18n

type Key string

// Has reports whether key exists in the catalog.
func Has(key Key) bool {
	_, ok := messages[key]
	return ok
}

// ErrorKey is the catalog key for an apperrors code.
func ErrorKey(code string) Key {
	return Key("err." + code)
}

const (
	Welcome         Key = "welcome"
	ChooseLanguage  Key = "choose_language"
	LanguageChanged Key = "language_changed"
	AskPhone        Key = "ask_phone"
	PhoneSaved      Key = "phone_saved"
	MainMenu        Key = "main_menu"
	Profile         Key = "profile"
	NotSpecified    Key = "not_specified"
	MoneyAmount     Key = "money"

	BtnCategories Key = "btn.categories"
	BtnCart       Key = "btn.cart"
	BtnProfile    Key = "btn.profile"
	BtnHistory    Key = "btn.history"
	BtnLanguage   Key = "btn.language"

	CategoriesTitle Key = "categories_title"
	NoCategories    Key = "no_categories"
	ProductsTitle   Key = "products_title"
	NoProducts      Key = "no_products"
	ProductCaption  Key = "product_caption"
	BtnAddToCart    Key = "btn.add_to_cart"
	BtnFeedback     Key = "btn.feedback"
	AddedToCart     Key = "added_to_cart"

	CartEmpty     Key = "cart_empty"
	CartTitle     Key = "cart_title"
	CartLine      Key = "cart_line"
	CartTotal     Key = "cart_total"
	BtnPlaceOrder Key = "btn.place_order"
	BtnClearCart  Key = "btn.clear_cart"
	CartCleared   Key = "cart_cleared"

	OrderCreated      Key = "order_created"
	AskLocation       Key = "ask_location"
	BtnShareLocation  Key = "btn.share_location"
	AskAddressDetails Key = "ask_address_details"
	ChoosePayment     Key = "choose_payment"
	BtnPayClick       Key = "btn.pay_click"
	BtnPayPayme       Key = "btn.pay_payme"
	AlreadyPaid       Key = "already_paid"
	OrderCancelled    Key = "order_cancelled"

	SummaryTitle    Key = "summary.title"
	SummaryCustomer Key = "summary.customer"
	SummaryItem     Key = "summary.item"
	SummaryTotal    Key = "summary.total"
	SummaryPayment  Key = "summary.payment"
	SummaryAddress  Key = "summary.address"
	SummaryLocation Key = "summary.location"

	HistoryTitle   Key = "history_title"
	HistoryEntry   Key = "history_entry"
	HistoryEmpty   Key = "history_empty"
	BtnNext        Key = "btn.next"
	BtnPrev        Key = "btn.prev"
	BtnCancelOrder Key = "btn.cancel_order"
	BtnResumeOrder Key = "btn.resume_order"

	StatusCreated         Key = "status.created"
	StatusAwaitingPayment Key = "status.awaiting_payment"
	StatusPaid            Key = "status.paid"
	StatusCancelled       Key = "status.cancelled"

	DeliveryPending   Key = "delivery.pending"
	DeliveryInTransit Key = "delivery.in_transit"
	DeliveryDelivered Key = "delivery.delivered"
	DeliveryCancelled Key = "delivery.cancelled"

	ChooseRating   Key = "choose_rating"
	AskComment     Key = "ask_comment"
	FeedbackThanks Key = "feedback_thanks"

	PromocodeUsage   Key = "promocode_usage"
	PromocodeApplied Key = "promocode_applied"

	PromptDiscarded Key = "prompt_discarded"
	PromptCancelled Key = "prompt_cancelled"
	NothingToCancel Key = "nothing_to_cancel"
	InvalidInput    Key = "invalid_input"

	AskCategoryName          Key = "ask.category_name"
	AskCategoryNameRu        Key = "ask.category_name_ru"
	AskCategoryDescription   Key = "ask.category_description"
	AskCategoryDescriptionRu Key = "ask.category_description_ru"
	AskProductName           Key = "ask.product_name"
	AskProductNameRu         Key = "ask.product_name_ru"
	AskProductPrice          Key = "ask.product_price"
	AskProductDescription    Key = "ask.product_description"
	AskProductDescriptionRu  Key = "ask.product_description_ru"
	AskProductImage          Key = "ask.product_image"
	AskProductCategory       Key = "ask.product_category"
	AskProductStock          Key = "ask.product_stock"
	AskUserFullName          Key = "ask.user_full_name"
	AskUserPhone             Key = "ask.user_phone"
	AskDeliveryStatus        Key = "ask.delivery_status"
	AskCourierName           Key = "ask.courier_name"
	AskCourierPhone          Key = "ask.courier_phone"
	AskDeliveryDate          Key = "ask.delivery_date"
	AskPromoCode             Key = "ask.promo_code"
	AskPromoPercent          Key = "ask.promo_percent"
	AskPromoValidTill        Key = "ask.promo_valid_till"

	ParseRequired    Key = "parse.required"
	ParseNumber      Key = "parse.number"
	ParsePrice       Key = "parse.price"
	ParseDate        Key = "parse.date"
	ParsePhone       Key = "parse.phone"
	ParseURL         Key = "parse.url"
	ParsePercent     Key = "parse.percent"
	ParseStatus      Key = "parse.status"
	ParseTooLong     Key = "parse.too_long"
	ParseNeedLoc     Key = "parse.need_location"
	ParseAlphanum    Key = "parse.alphanum"
	ParseNonNegative Key = "parse.non_negative"

	AdminPanel        Key = "admin_panel"
	BtnAddCategory    Key = "btn.add_category"
	BtnViewCategories Key = "btn.view_categories"
	BtnEditCategory   Key = "btn.edit_category"
	BtnDeleteCategory Key = "btn.delete_category"
	BtnAddProduct     Key = "btn.add_product"
	BtnViewProducts   Key = "btn.view_products"
	BtnEditProduct    Key = "btn.edit_product"
	BtnDeleteProduct  Key = "btn.delete_product"
	BtnViewUsers      Key = "btn.view_users"
	BtnEditUser       Key = "btn.edit_user"
	BtnDeleteUser     Key = "btn.delete_user"
	BtnViewOrders     Key = "btn.view_orders"
	BtnViewDeliveries Key = "btn.view_deliveries"
	BtnEditDelivery   Key = "btn.edit_delivery"
	BtnViewFeedback   Key = "btn.view_feedback"
	BtnDeleteFeedback Key = "btn.delete_feedback"
	BtnAddPromocode   Key = "btn.add_promocode"
	BtnViewStats      Key = "btn.view_stats"
	BtnOrderStats     Key = "btn.order_stats"

	CategoryCreated  Key = "category_created"
	CategoryUpdated  Key = "category_updated"
	CategoryDeleted  Key = "category_deleted"
	ProductCreated   Key = "product_created"
	ProductUpdated   Key = "product_updated"
	ProductDeleted   Key = "product_deleted"
	UserUpdated      Key = "user_updated"
	UserDeleted      Key = "user_deleted"
	DeliveryUpdated  Key = "delivery_updated"
	FeedbackDeleted  Key = "feedback_deleted"
	PromocodeCreated Key = "promocode_created"

	PickCategoryEdit   Key = "pick.category_edit"
	PickCategoryDelete Key = "pick.category_delete"
	PickProductEdit    Key = "pick.product_edit"
	PickProductDelete  Key = "pick.product_delete"
	PickUserEdit       Key = "pick.user_edit"
	PickUserDelete     Key = "pick.user_delete"
	PickDeliveryEdit   Key = "pick.delivery_edit"
	PickFeedbackDelete Key = "pick.feedback_delete"

	ListEmpty        Key = "list.empty"
	ListPage         Key = "list.page"
	ListCategoryLine Key = "list.category"
	ListProductLine  Key = "list.product"
	ListUserLine     Key = "list.user"
	ListOrderLine    Key = "list.order"
	ListDeliveryLine Key = "list.delivery"
	ListFeedbackLine Key = "list.feedback"
	StatsSummary     Key = "stats.summary"
	StatsByStatus    Key = "stats.by_status"
)

// StatusKey is the catalog key for an order status label.
func StatusKey(status string) Key {
	return Key("status." + status)
}

// DeliveryStatusKey is the catalog key for a delivery status label.
func DeliveryStatusKey(status string) Key {
	return Key("delivery." + status)
}
