// Package opcode decodes button callback data into a closed set of typed
// commands. Handlers switch on the concrete type and never parse strings.
package opcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/models"
)

// Opcode is implemented only by the types in this package.
type Opcode interface {
	// Data renders the opcode as button callback data; Decode(op.Data()) == op.
	Data() string
	isOpcode()
}

// Privileged opcodes require the admin role.
type Privileged interface {
	Opcode
	privileged()
}

func RequiresAdmin(op Opcode) bool {
	_, ok := op.(Privileged)
	return ok
}

var adminVerbs = []string{"add_", "view_", "edit_", "delete_", "stats_"}

// IsAdminData reports whether data belongs to the admin opcode family,
// whether or not it decodes.
func IsAdminData(data string) bool {
	for _, verb := range adminVerbs {
		if strings.HasPrefix(data, verb) {
			return true
		}
	}
	return false
}

// Customer opcodes.
type (
	SetLanguage     struct{ Language string }
	ShowCategory    struct{ CategoryID int64 }
	ShowProduct     struct{ ProductID int64 }
	AddToCart       struct{ ProductID int64 }
	ClearCart       struct{}
	RequestFeedback struct{ ProductID int64 }
	RateProduct     struct {
		ProductID int64
		Rating    int
	}
	// PlaceOrder with OrderID 0 starts checkout from the cart; otherwise it
	// resumes checkout of an existing order.
	PlaceOrder     struct{ OrderID int64 }
	ConfirmPayment struct {
		OrderID     int64
		PaymentType models.PaymentType
	}
	OrderHistory struct{ Page int }
	CancelOrder  struct{ OrderID int64 }
)

type Entity string

const (
	EntityCategory  Entity = "category"
	EntityProduct   Entity = "product"
	EntityUser      Entity = "user"
	EntityOrder     Entity = "order"
	EntityDelivery  Entity = "delivery"
	EntityFeedback  Entity = "feedback"
	EntityPromocode Entity = "promocode"
)

type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Admin opcodes.
type (
	Add  struct{ Entity Entity }
	List struct {
		Entity Entity
		Page   int
	}
	// Pick asks the admin which entity the action applies to.
	Pick struct {
		Entity Entity
		Action Action
	}
	Edit struct {
		Entity Entity
		ID     int64
	}
	Delete struct {
		Entity Entity
		ID     int64
	}
	Stats struct{ Orders bool }
)

func (SetLanguage) isOpcode()     {}
func (ShowCategory) isOpcode()    {}
func (ShowProduct) isOpcode()     {}
func (AddToCart) isOpcode()       {}
func (ClearCart) isOpcode()       {}
func (RequestFeedback) isOpcode() {}
func (RateProduct) isOpcode()     {}
func (PlaceOrder) isOpcode()      {}
func (ConfirmPayment) isOpcode()  {}
func (OrderHistory) isOpcode()    {}
func (CancelOrder) isOpcode()     {}
func (Add) isOpcode()             {}
func (List) isOpcode()            {}
func (Pick) isOpcode()            {}
func (Edit) isOpcode()            {}
func (Delete) isOpcode()          {}
func (Stats) isOpcode()           {}

func (Add) privileged()    {}
func (List) privileged()   {}
func (Pick) privileged()   {}
func (Edit) privileged()   {}
func (Delete) privileged() {}
func (Stats) privileged()  {}

func (o SetLanguage) Data() string     { return "lang_" + o.Language }
func (o ShowCategory) Data() string    { return fmt.Sprintf("category_%d", o.CategoryID) }
func (o ShowProduct) Data() string     { return fmt.Sprintf("product_%d", o.ProductID) }
func (o AddToCart) Data() string       { return fmt.Sprintf("addtocart_%d", o.ProductID) }
func (ClearCart) Data() string         { return "clear_cart" }
func (o RequestFeedback) Data() string { return fmt.Sprintf("feedback_%d", o.ProductID) }
func (o RateProduct) Data() string     { return fmt.Sprintf("rate_%d_%d", o.ProductID, o.Rating) }
func (o OrderHistory) Data() string    { return fmt.Sprintf("history_%d", o.Page) }
func (o CancelOrder) Data() string     { return fmt.Sprintf("cancel_order_%d", o.OrderID) }

func (o PlaceOrder) Data() string {
	if o.OrderID == 0 {
		return "place_order"
	}
	return fmt.Sprintf("place_order_%d", o.OrderID)
}

func (o ConfirmPayment) Data() string {
	return fmt.Sprintf("confirm_payment_%d_%s", o.OrderID, o.PaymentType)
}

func (o Add) Data() string { return "add_" + string(o.Entity) }

func (o List) Data() string {
	name := pluralOf[o.Entity]
	if o.Page > 1 {
		return fmt.Sprintf("view_%s_%d", name, o.Page)
	}
	return "view_" + name
}

func (o Pick) Data() string { return string(o.Action) + "_" + string(o.Entity) }

func (o Edit) Data() string   { return fmt.Sprintf("edit_%s_%d", shortOf[o.Entity], o.ID) }
func (o Delete) Data() string { return fmt.Sprintf("delete_%s_%d", shortOf[o.Entity], o.ID) }

func (o Stats) Data() string {
	if o.Orders {
		return "stats_orders"
	}
	return "view_stats"
}

var (
	pluralOf = map[Entity]string{
		EntityCategory: "categories",
		EntityProduct:  "products",
		EntityUser:     "users",
		EntityOrder:    "orders",
		EntityDelivery: "deliveries",
		EntityFeedback: "feedback",
	}
	shortOf = map[Entity]string{
		EntityCategory: "cat",
		EntityProduct:  "prod",
		EntityUser:     "user",
		EntityDelivery: "delivery",
		EntityFeedback: "fb",
	}
	addable   = []Entity{EntityCategory, EntityProduct, EntityPromocode}
	editable  = []Entity{EntityCategory, EntityProduct, EntityUser, EntityDelivery}
	deletable = []Entity{EntityCategory, EntityProduct, EntityUser, EntityFeedback}
)

func errUnknown(data string) error {
	return apperrors.Validation("unknown_opcode", "unknown opcode %q", data)
}

func parseID(data, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("invalid_id", "opcode %q: invalid id %q", data, raw)
	}
	return id, nil
}

func parsePage(data, raw string) (int, error) {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, apperrors.Validation("invalid_id", "opcode %q: invalid page %q", data, raw)
	}
	return page, nil
}

// Decode parses callback data. Unknown shapes and malformed numeric segments
// are validation errors.
func Decode(data string) (Opcode, error) {
	switch data {
	case "clear_cart":
		return ClearCart{}, nil
	case "place_order":
		return PlaceOrder{}, nil
	case "view_stats":
		return Stats{}, nil
	case "stats_orders":
		return Stats{Orders: true}, nil
	}

	if rest, ok := strings.CutPrefix(data, "lang_"); ok {
		if rest != "uz" && rest != "ru" {
			return nil, apperrors.Validation("unknown_language", "unsupported language %q", rest)
		}
		return SetLanguage{Language: rest}, nil
	}

	if rest, ok := strings.CutPrefix(data, "confirm_payment_"); ok {
		rawID, rawType, found := strings.Cut(rest, "_")
		if !found {
			return nil, errUnknown(data)
		}
		id, err := parseID(data, rawID)
		if err != nil {
			return nil, err
		}
		pt, ok := models.ParsePaymentType(rawType)
		if !ok {
			return nil, apperrors.Validation("unknown_payment_type", "unknown payment type %q", rawType)
		}
		return ConfirmPayment{OrderID: id, PaymentType: pt}, nil
	}

	if rest, ok := strings.CutPrefix(data, "rate_"); ok {
		rawID, rawRating, found := strings.Cut(rest, "_")
		if !found {
			return nil, errUnknown(data)
		}
		id, err := parseID(data, rawID)
		if err != nil {
			return nil, err
		}
		rating, err := strconv.Atoi(rawRating)
		if err != nil || rating < 1 || rating > 5 {
			return nil, apperrors.Validation("invalid_rating", "opcode %q: invalid rating %q", data, rawRating)
		}
		return RateProduct{ProductID: id, Rating: rating}, nil
	}

	idPrefixes := []struct {
		prefix string
		build  func(id int64) Opcode
	}{
		{"place_order_", func(id int64) Opcode { return PlaceOrder{OrderID: id} }},
		{"cancel_order_", func(id int64) Opcode { return CancelOrder{OrderID: id} }},
		{"category_", func(id int64) Opcode { return ShowCategory{CategoryID: id} }},
		{"product_", func(id int64) Opcode { return ShowProduct{ProductID: id} }},
		{"addtocart_", func(id int64) Opcode { return AddToCart{ProductID: id} }},
		{"feedback_", func(id int64) Opcode { return RequestFeedback{ProductID: id} }},
	}
	for _, p := range idPrefixes {
		if rest, ok := strings.CutPrefix(data, p.prefix); ok {
			id, err := parseID(data, rest)
			if err != nil {
				return nil, err
			}
			return p.build(id), nil
		}
	}

	if rest, ok := strings.CutPrefix(data, "history_"); ok {
		page, err := parsePage(data, rest)
		if err != nil {
			return nil, err
		}
		return OrderHistory{Page: page}, nil
	}

	return decodeAdmin(data)
}

func decodeAdmin(data string) (Opcode, error) {
	verb, rest, found := strings.Cut(data, "_")
	if !found {
		return nil, errUnknown(data)
	}

	switch verb {
	case "add":
		for _, e := range addable {
			if rest == string(e) {
				return Add{Entity: e}, nil
			}
		}
	case "view":
		for entity, plural := range pluralOf {
			if rest == plural {
				return List{Entity: entity, Page: 1}, nil
			}
			if rawPage, ok := strings.CutPrefix(rest, plural+"_"); ok {
				page, err := parsePage(data, rawPage)
				if err != nil {
					return nil, err
				}
				return List{Entity: entity, Page: page}, nil
			}
		}
	case "edit", "delete":
		action := Action(verb)
		entities := editable
		if action == ActionDelete {
			entities = deletable
		}
		for _, e := range entities {
			if rest == string(e) {
				return Pick{Entity: e, Action: action}, nil
			}
			if rawID, ok := strings.CutPrefix(rest, shortOf[e]+"_"); ok {
				id, err := parseID(data, rawID)
				if err != nil {
					return nil, err
				}
				if action == ActionEdit {
					return Edit{Entity: e, ID: id}, nil
				}
				return Delete{Entity: e, ID: id}, nil
			}
		}
	}

	return nil, errUnknown(data)
}
