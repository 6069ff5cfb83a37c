package prompt

import "github.com/safar/go-chat-store/internal/i18n"

// Chain names double as the persisted PendingPrompt.Chain value.
const (
	ChainCategory  = "category"
	ChainProduct   = "product"
	ChainUser      = "user"
	ChainDelivery  = "delivery"
	ChainPromocode = "promocode"
	ChainFeedback  = "feedback"
	ChainCheckout  = "checkout_address"
	ChainPhone     = "phone"
)

// Chain is an ordered list of fields collected into one submission.
type Chain struct {
	Name   string
	Fields []FieldSpec
}

var CategoryChain = Chain{
	Name: ChainCategory,
	Fields: []FieldSpec{
		{Name: "name", Prompt: i18n.AskCategoryName, Parse: Text(128)},
		{Name: "name_ru", Prompt: i18n.AskCategoryNameRu, Parse: Text(128)},
		{Name: "description", Prompt: i18n.AskCategoryDescription, Parse: Text(1024)},
		{Name: "description_ru", Prompt: i18n.AskCategoryDescriptionRu, Optional: true, Parse: Text(1024)},
	},
}

var ProductChain = Chain{
	Name: ChainProduct,
	Fields: []FieldSpec{
		{Name: "name", Prompt: i18n.AskProductName, Parse: Text(128)},
		{Name: "name_ru", Prompt: i18n.AskProductNameRu, Parse: Text(128)},
		{Name: "price", Prompt: i18n.AskProductPrice, Parse: Price},
		{Name: "description", Prompt: i18n.AskProductDescription, Parse: Text(1024)},
		{Name: "description_ru", Prompt: i18n.AskProductDescriptionRu, Optional: true, Parse: Text(1024)},
		{Name: "image_url", Prompt: i18n.AskProductImage, Parse: URL},
		{Name: "category_id", Prompt: i18n.AskProductCategory, Parse: PositiveInt},
		{Name: "stock", Prompt: i18n.AskProductStock, Parse: NonNegativeInt},
	},
}

var UserChain = Chain{
	Name: ChainUser,
	Fields: []FieldSpec{
		{Name: "full_name", Prompt: i18n.AskUserFullName, Parse: Text(128)},
		{Name: "phone", Prompt: i18n.AskUserPhone, Parse: Phone},
	},
}

var DeliveryChain = Chain{
	Name: ChainDelivery,
	Fields: []FieldSpec{
		{Name: "status", Prompt: i18n.AskDeliveryStatus, Parse: DeliveryStatus},
		{Name: "courier_name", Prompt: i18n.AskCourierName, Optional: true, Parse: Text(128)},
		{Name: "courier_phone", Prompt: i18n.AskCourierPhone, Optional: true, Parse: Phone},
		{Name: "delivery_date", Prompt: i18n.AskDeliveryDate, Optional: true, Parse: Date},
	},
}

var PromocodeChain = Chain{
	Name: ChainPromocode,
	Fields: []FieldSpec{
		{Name: "code", Prompt: i18n.AskPromoCode, Parse: Code},
		{Name: "discount_percent", Prompt: i18n.AskPromoPercent, Parse: Percent},
		{Name: "valid_till", Prompt: i18n.AskPromoValidTill, Parse: Date},
	},
}

var FeedbackChain = Chain{
	Name: ChainFeedback,
	Fields: []FieldSpec{
		{Name: "comment", Prompt: i18n.AskComment, Parse: Text(1024)},
	},
}

var CheckoutChain = Chain{
	Name: ChainCheckout,
	Fields: []FieldSpec{
		{Name: "location", Prompt: i18n.AskLocation, Input: InputLocation},
		{Name: "address_details", Prompt: i18n.AskAddressDetails, Parse: Text(512)},
	},
}

var PhoneChain = Chain{
	Name: ChainPhone,
	Fields: []FieldSpec{
		{Name: "phone", Prompt: i18n.AskPhone, Parse: Phone},
	},
}
