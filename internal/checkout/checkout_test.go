package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/messaging"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/notify"
	"github.com/safar/go-chat-store/internal/order"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/shop"
	"github.com/safar/go-chat-store/internal/store/memstore"
	"github.com/safar/go-chat-store/internal/transport"
	"github.com/safar/go-chat-store/internal/transport/transporttest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminChat    int64 = 1
	customerChat int64 = 500
)

type fixture struct {
	store    *memstore.Store
	shop     *shop.Service
	orders   *order.Service
	sessions *session.Registry
	prompts  *prompt.Executor
	rec      *transporttest.Recorder
	tr       *i18n.Translator
	co       *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	tr, err := i18n.New(i18n.Uzbek)
	require.NoError(t, err)

	store := memstore.New()
	rec := transporttest.NewRecorder()
	sessions := session.NewRegistry(session.NewMemoryStore(), session.Options{}, logger)
	prompts := prompt.NewExecutor(sessions, rec, tr, logger)
	cfg := config.BotConfig{DefaultLanguage: i18n.Uzbek, AdminChatIDs: []int64{adminChat}, PageSize: 2}

	f := &fixture{
		store:    store,
		shop:     shop.NewService(store, logger),
		orders:   order.NewService(store, messaging.NoopPublisher{}, logger),
		sessions: sessions,
		prompts:  prompts,
		rec:      rec,
		tr:       tr,
	}
	notifier := notify.New(rec, tr, notify.NewMemoryGuard(time.Hour), logger)
	f.co = New(f.shop, f.orders, prompts, sessions, notifier, rec, tr, cfg, logger)
	return f
}

func (f *fixture) register(t *testing.T, chatID int64, phone string) *models.User {
	t.Helper()
	ctx := context.Background()
	user, err := f.co.Start(ctx, chatID, transport.Sender{ID: chatID, FullName: fmt.Sprintf("User %d", chatID)}, i18n.Uzbek)
	require.NoError(t, err)
	require.NoError(t, f.shop.SetLanguage(ctx, chatID, i18n.Uzbek))
	if phone != "" {
		require.NoError(t, f.shop.SetPhone(ctx, chatID, phone))
	}
	return user
}

func (f *fixture) product(t *testing.T, name string, price int64, stock int) *models.Product {
	t.Helper()
	ctx := context.Background()
	c := &models.Category{Name: "Shirinliklar", NameRu: "Сладости"}
	require.NoError(t, f.shop.CreateCategory(ctx, c))
	p := &models.Product{
		CategoryID: c.ID,
		Name:       name,
		NameRu:     name,
		Price:      decimal.NewFromInt(price),
		ImageURL:   "https://cdn.example.com/" + strings.ToLower(name) + ".jpg",
		Stock:      stock,
	}
	require.NoError(t, f.shop.CreateProduct(ctx, p))
	return p
}

func (f *fixture) answer(t *testing.T, chatID int64, in session.Answer) {
	t.Helper()
	require.NoError(t, f.prompts.Answer(context.Background(), chatID, i18n.Uzbek, in))
}

func buttonData(m transporttest.Message) []string {
	var data []string
	if m.Options == nil {
		return nil
	}
	for _, row := range m.Options.Inline {
		for _, b := range row {
			data = append(data, b.Data)
		}
	}
	return data
}

func countContaining(msgs []transporttest.Message, substr string) int {
	n := 0
	for _, m := range msgs {
		if strings.Contains(m.Text, substr) {
			n++
		}
	}
	return n
}

func TestStartSeedsAdminRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.register(t, adminChat, "")
	customer := f.register(t, customerChat, "")

	assert.True(t, admin.IsAdmin)
	assert.False(t, customer.IsAdmin)

	sess, err := f.sessions.GetOrCreate(ctx, adminChat)
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, sess.Role)

	welcome, ok := f.rec.Last(customerChat)
	require.True(t, ok)
	assert.Contains(t, welcome.Text, "Xush kelibsiz, User 500")
	assert.Equal(t, []string{"lang_uz", "lang_ru"}, buttonData(welcome))
}

func TestSetLanguageAsksForMissingPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, customerChat, "")

	require.NoError(t, f.co.SetLanguage(ctx, customerChat, i18n.Russian))

	sess, err := f.sessions.GetOrCreate(ctx, customerChat)
	require.NoError(t, err)
	assert.Equal(t, i18n.Russian, sess.Language)
	require.NotNil(t, sess.Pending)
	assert.Equal(t, prompt.ChainPhone, sess.Pending.Chain)

	require.NoError(t, f.prompts.Answer(ctx, customerChat, i18n.Russian, session.TextAnswer("+998901234567")))

	user, err := f.shop.UserByTelegramID(ctx, customerChat)
	require.NoError(t, err)
	assert.Equal(t, "+998901234567", user.Phone)
	assert.Equal(t, i18n.Russian, user.Language)

	menu, _ := f.rec.Last(customerChat)
	assert.Equal(t, f.tr.T(i18n.Russian, i18n.MainMenu), menu.Text)
	require.Len(t, menu.Options.Reply, len(MenuKeys))
}

func TestCheckoutEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, adminChat, "+998900000001")
	customer := f.register(t, customerChat, "+998901234567")
	halva := f.product(t, "Halva", 25000, 5)

	require.NoError(t, f.co.AddToCart(ctx, customerChat, i18n.Uzbek, halva.ID))
	require.NoError(t, f.co.AddToCart(ctx, customerChat, i18n.Uzbek, halva.ID))
	require.NoError(t, f.co.ShowCart(ctx, customerChat, i18n.Uzbek))
	cart, _ := f.rec.Last(customerChat)
	assert.Contains(t, cart.Text, "Halva — 2 dona × 25000.00 so‘m = 50000.00 so‘m")
	assert.Equal(t, []string{"place_order", "clear_cart"}, buttonData(cart))

	require.NoError(t, f.co.PlaceOrder(ctx, customerChat, i18n.Uzbek, 0))

	orders, err := f.orders.History(ctx, customer.ID, repository.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, orders.Items, 1)
	ord := orders.Items[0]
	assert.Equal(t, models.OrderStatusCreated, ord.Status)

	stocked, err := f.shop.Product(ctx, halva.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stocked.Stock)

	ask, _ := f.rec.Last(customerChat)
	assert.Equal(t, f.tr.T(i18n.Uzbek, i18n.AskLocation), ask.Text)
	require.NotEmpty(t, ask.Options.Reply)
	assert.True(t, ask.Options.Reply[0][0].RequestLocation)

	f.answer(t, customerChat, session.Answer{Location: &session.Location{Latitude: 41.311081, Longitude: 69.240562}})
	f.answer(t, customerChat, session.TextAnswer("Chilonzor 5, 12-xonadon"))

	payment, _ := f.rec.Last(customerChat)
	assert.Equal(t, []string{
		fmt.Sprintf("confirm_payment_%d_click", ord.ID),
		fmt.Sprintf("confirm_payment_%d_payme", ord.ID),
		fmt.Sprintf("cancel_order_%d", ord.ID),
	}, buttonData(payment))

	awaiting, err := f.orders.Get(ctx, ord.ID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAwaitingPayment, awaiting.Status)

	f.rec.Reset()
	require.NoError(t, f.co.ConfirmPayment(ctx, customerChat, i18n.Uzbek, ord.ID, models.PaymentTypePayme))
	require.NoError(t, f.co.ConfirmPayment(ctx, customerChat, i18n.Uzbek, ord.ID, models.PaymentTypePayme))

	title := "Buyurtma #" + ord.OrderNumber + " to‘landi"
	assert.Equal(t, 1, countContaining(f.rec.To(customerChat), title))
	assert.Equal(t, 1, countContaining(f.rec.To(adminChat), title))
	assert.Equal(t, 1, countContaining(f.rec.To(customerChat), "allaqachon tasdiqlangan"))

	summary, _ := f.rec.Last(adminChat)
	assert.Contains(t, summary.Text, "Chilonzor 5, 12-xonadon")
	assert.Contains(t, summary.Text, "Payme")
	assert.Contains(t, summary.Text, "+998901234567")

	paid, err := f.orders.Get(ctx, ord.ID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, paid.Status)

	after, err := f.shop.Product(ctx, halva.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, after.Stock)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.register(t, customerChat, "+998901234567")

	err := f.co.PlaceOrder(ctx, customerChat, i18n.Uzbek, 0)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)

	orders, err := f.orders.History(ctx, customer.ID, repository.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Zero(t, orders.Total)

	sess, err := f.sessions.GetOrCreate(ctx, customerChat)
	require.NoError(t, err)
	assert.Nil(t, sess.Pending)
}

func TestPlaceOrderReportsShortItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.register(t, customerChat, "+998901234567")
	halva := f.product(t, "Halva", 25000, 2)
	require.NoError(t, f.co.AddToCart(ctx, customerChat, i18n.Uzbek, halva.ID))
	require.NoError(t, f.co.AddToCart(ctx, customerChat, i18n.Uzbek, halva.ID))

	_, err := f.shop.UpdateProduct(ctx, halva.ID, func(p *models.Product) { p.Stock = 1 })
	require.NoError(t, err)

	err = f.co.PlaceOrder(ctx, customerChat, i18n.Uzbek, 0)
	var stockErr *order.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Halva", stockErr.ProductName)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 2, stockErr.Requested)

	items, _, err := f.shop.Cart(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func placeAndAddress(t *testing.T, f *fixture, p *models.Product) int64 {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.co.AddToCart(ctx, customerChat, i18n.Uzbek, p.ID))
	require.NoError(t, f.co.PlaceOrder(ctx, customerChat, i18n.Uzbek, 0))
	f.answer(t, customerChat, session.Answer{Location: &session.Location{Latitude: 41.3, Longitude: 69.2}})
	f.answer(t, customerChat, session.TextAnswer("Yunusobod"))

	user, err := f.shop.UserByTelegramID(ctx, customerChat)
	require.NoError(t, err)
	page, err := f.orders.History(ctx, user.ID, repository.NewPageRequest(1, 1))
	require.NoError(t, err)
	return page.Items[0].ID
}

func TestResumeAwaitingPaymentOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, customerChat, "+998901234567")
	orderID := placeAndAddress(t, f, f.product(t, "Halva", 25000, 5))

	f.rec.Reset()
	require.NoError(t, f.co.PlaceOrder(ctx, customerChat, i18n.Uzbek, orderID))

	msg, _ := f.rec.Last(customerChat)
	assert.Contains(t, buttonData(msg), fmt.Sprintf("confirm_payment_%d_click", orderID))
}

func TestConfirmPaymentWithoutDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.register(t, customerChat, "+998901234567")
	halva := f.product(t, "Halva", 25000, 5)
	require.NoError(t, f.co.AddToCart(ctx, customerChat, i18n.Uzbek, halva.ID))

	ord, err := f.orders.CreateFromCart(ctx, customer.ID)
	require.NoError(t, err)

	err = f.co.ConfirmPayment(ctx, customerChat, i18n.Uzbek, ord.ID, models.PaymentTypeClick)
	assert.Equal(t, "delivery_not_found", apperrors.CodeOf(err))

	unchanged, err := f.orders.Get(ctx, ord.ID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCreated, unchanged.Status)

	require.NoError(t, f.co.PlaceOrder(ctx, customerChat, i18n.Uzbek, ord.ID))
	sess, err := f.sessions.GetOrCreate(ctx, customerChat)
	require.NoError(t, err)
	require.NotNil(t, sess.Pending)
	assert.Equal(t, prompt.ChainCheckout, sess.Pending.Chain)
}

func TestCancelOrderRestocks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, customerChat, "+998901234567")
	halva := f.product(t, "Halva", 25000, 5)
	orderID := placeAndAddress(t, f, halva)

	require.NoError(t, f.co.CancelOrder(ctx, customerChat, i18n.Uzbek, orderID))

	p, err := f.shop.Product(ctx, halva.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)

	err = f.co.ConfirmPayment(ctx, customerChat, i18n.Uzbek, orderID, models.PaymentTypeClick)
	assert.ErrorIs(t, err, apperrors.ErrIllegalStatus)

	err = f.co.PlaceOrder(ctx, customerChat, i18n.Uzbek, orderID)
	assert.ErrorIs(t, err, apperrors.ErrIllegalStatus)
}

func TestHistoryPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.register(t, customerChat, "+998901234567")
	halva := f.product(t, "Halva", 25000, 10)
	for i := 0; i < 3; i++ {
		_, err := f.shop.AddToCart(ctx, customer.ID, halva.ID, 1)
		require.NoError(t, err)
		_, err = f.orders.CreateFromCart(ctx, customer.ID)
		require.NoError(t, err)
	}

	require.NoError(t, f.co.History(ctx, customerChat, i18n.Uzbek, 1))
	first, _ := f.rec.Last(customerChat)
	assert.Contains(t, first.Text, "(1/2)")
	assert.Contains(t, buttonData(first), "history_2")
	assert.NotContains(t, buttonData(first), "history_0")

	require.NoError(t, f.co.History(ctx, customerChat, i18n.Uzbek, 2))
	second, _ := f.rec.Last(customerChat)
	assert.Contains(t, second.Text, "(2/2)")
	assert.Contains(t, buttonData(second), "history_1")
	assert.Equal(t, 1, strings.Count(second.Text, "yaratildi"))
}

func TestHistoryEmpty(t *testing.T) {
	f := newFixture(t)
	f.register(t, customerChat, "")

	require.NoError(t, f.co.History(context.Background(), customerChat, i18n.Uzbek, 1))
	msg, _ := f.rec.Last(customerChat)
	assert.Equal(t, f.tr.T(i18n.Uzbek, i18n.HistoryEmpty), msg.Text)
}

func TestFeedbackChain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, customerChat, "")
	halva := f.product(t, "Halva", 25000, 5)

	require.NoError(t, f.co.RequestFeedback(ctx, customerChat, i18n.Uzbek, halva.ID))
	stars, _ := f.rec.Last(customerChat)
	assert.Len(t, buttonData(stars), 5)
	assert.Contains(t, buttonData(stars), fmt.Sprintf("rate_%d_4", halva.ID))

	require.NoError(t, f.co.RateProduct(ctx, customerChat, i18n.Uzbek, halva.ID, 4))
	f.answer(t, customerChat, session.TextAnswer("Juda mazali"))

	page, err := f.shop.ListFeedback(ctx, repository.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 4, page.Items[0].Rating)
	assert.Equal(t, "Juda mazali", page.Items[0].Comment)
}

func TestApplyPromocode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.shop.CreatePromocode(ctx, &models.Promocode{Code: "BAHOR", DiscountPercent: 15, ValidTill: time.Now().Add(time.Hour)}))
	require.NoError(t, f.shop.CreatePromocode(ctx, &models.Promocode{Code: "SAVE10", DiscountPercent: 10, ValidTill: time.Now().Add(-time.Hour)}))

	require.NoError(t, f.co.ApplyPromocode(ctx, customerChat, i18n.Russian, ""))
	usage, _ := f.rec.Last(customerChat)
	assert.Equal(t, f.tr.T(i18n.Russian, i18n.PromocodeUsage), usage.Text)

	require.NoError(t, f.co.ApplyPromocode(ctx, customerChat, i18n.Russian, "bahor"))
	applied, _ := f.rec.Last(customerChat)
	assert.Equal(t, "🎉 Промокод BAHOR принят: скидка 15%.", applied.Text)

	err := f.co.ApplyPromocode(ctx, customerChat, i18n.Russian, "SAVE10")
	assert.ErrorIs(t, err, apperrors.ErrPromocodeExpired)
}

func TestBrowseCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	halva := f.product(t, "Halva", 25000, 5)

	require.NoError(t, f.co.Categories(ctx, customerChat, i18n.Russian))
	cats, _ := f.rec.Last(customerChat)
	assert.Equal(t, []string{fmt.Sprintf("category_%d", halva.CategoryID)}, buttonData(cats))
	assert.Equal(t, "Сладости", cats.Options.Inline[0][0].Text)

	require.NoError(t, f.co.ShowCategory(ctx, customerChat, i18n.Russian, halva.CategoryID))
	products, _ := f.rec.Last(customerChat)
	assert.Equal(t, []string{fmt.Sprintf("product_%d", halva.ID)}, buttonData(products))

	require.NoError(t, f.co.ShowProduct(ctx, customerChat, i18n.Russian, halva.ID))
	photo, _ := f.rec.Last(customerChat)
	assert.Equal(t, halva.ImageURL, photo.PhotoURL)
	assert.Contains(t, photo.Text, "В наличии: 5 шт.")
	assert.Equal(t, []string{fmt.Sprintf("addtocart_%d", halva.ID), fmt.Sprintf("feedback_%d", halva.ID)}, buttonData(photo))

	err := f.co.ShowCategory(ctx, customerChat, i18n.Russian, 9999)
	assert.Equal(t, "category_not_found", apperrors.CodeOf(err))
}

func TestHTMLMessagesEscapeFreeText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.co.Start(ctx, customerChat, transport.Sender{ID: customerChat, FullName: "Tom & <Jerry>"}, i18n.Uzbek)
	require.NoError(t, err)
	require.NoError(t, f.co.Profile(ctx, customerChat, i18n.Uzbek))
	profile, _ := f.rec.Last(customerChat)
	assert.True(t, profile.Options.HTML)
	assert.Contains(t, profile.Text, "<b>Tom &amp; &lt;Jerry&gt;</b>")

	c := &models.Category{Name: "Shirinliklar", NameRu: "Сладости"}
	require.NoError(t, f.shop.CreateCategory(ctx, c))
	p := &models.Product{
		CategoryID:  c.ID,
		Name:        "Halva <premium>",
		NameRu:      "Халва <премиум>",
		Description: "Sesame & honey",
		Price:       decimal.NewFromInt(25000),
		ImageURL:    "https://cdn.example.com/halva.jpg",
		Stock:       3,
	}
	require.NoError(t, f.shop.CreateProduct(ctx, p))

	require.NoError(t, f.co.ShowProduct(ctx, customerChat, i18n.Uzbek, p.ID))
	photo, _ := f.rec.Last(customerChat)
	assert.True(t, photo.Options.HTML)
	assert.Contains(t, photo.Text, "<b>Halva &lt;premium&gt;</b>\nSesame &amp; honey")
}
