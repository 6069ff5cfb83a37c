package admin

import (
	"context"
	"fmt"
	"testing"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/messaging"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/order"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/shop"
	"github.com/safar/go-chat-store/internal/store/memstore"
	"github.com/safar/go-chat-store/internal/transport/transporttest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminChat int64 = 1

type fixture struct {
	store    *memstore.Store
	shop     *shop.Service
	orders   *order.Service
	sessions *session.Registry
	prompts  *prompt.Executor
	rec      *transporttest.Recorder
	tr       *i18n.Translator
	router   *Router

	customers int64
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

	f := &fixture{
		store:    store,
		shop:     shop.NewService(store, logger),
		orders:   order.NewService(store, messaging.NoopPublisher{}, logger),
		sessions: sessions,
		prompts:  prompts,
		rec:      rec,
		tr:       tr,
	}
	f.router = New(f.shop, f.orders, prompts, rec, tr, config.BotConfig{PageSize: 2}, logger)
	return f
}

func (f *fixture) answers(t *testing.T, texts ...string) {
	t.Helper()
	for _, text := range texts {
		require.NoError(t, f.prompts.Answer(context.Background(), adminChat, i18n.Uzbek, session.TextAnswer(text)))
	}
}

func (f *fixture) handle(t *testing.T, op opcode.Opcode) error {
	t.Helper()
	return f.router.Handle(context.Background(), adminChat, i18n.Uzbek, op)
}

func (f *fixture) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, NameRu: name + " ru"}
	require.NoError(t, f.shop.CreateCategory(context.Background(), c))
	return c
}

func lastButtons(t *testing.T, rec *transporttest.Recorder) []string {
	t.Helper()
	msg, ok := rec.Last(adminChat)
	require.True(t, ok)
	var data []string
	if msg.Options != nil {
		for _, row := range msg.Options.Inline {
			for _, b := range row {
				data = append(data, b.Data)
			}
		}
	}
	return data
}

func TestPanelButtonsArePrivileged(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.router.Panel(context.Background(), adminChat, i18n.Uzbek))

	buttons := lastButtons(t, f.rec)
	require.NotEmpty(t, buttons)
	for _, data := range buttons {
		op, err := opcode.Decode(data)
		require.NoError(t, err, data)
		assert.True(t, opcode.RequiresAdmin(op), data)
	}
}

func TestEditCategoryChain(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Oziq-ovqat")

	require.NoError(t, f.handle(t, opcode.Edit{Entity: opcode.EntityCategory, ID: c.ID}))
	f.answers(t, "Groceries", "Продукты", "Fresh food", "")

	got, err := f.shop.Category(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name)
	assert.Equal(t, "Продукты", got.NameRu)
	assert.Equal(t, "Fresh food", got.Description)
	assert.Nil(t, got.DescriptionRu)

	msg, _ := f.rec.Last(adminChat)
	assert.Equal(t, f.tr.T(i18n.Uzbek, i18n.CategoryUpdated), msg.Text)
}

func TestEditMissingCategory(t *testing.T) {
	f := newFixture(t)

	err := f.handle(t, opcode.Edit{Entity: opcode.EntityCategory, ID: 404})
	assert.Equal(t, "category_not_found", apperrors.CodeOf(err))

	sess, err := f.sessions.GetOrCreate(context.Background(), adminChat)
	require.NoError(t, err)
	assert.Nil(t, sess.Pending)
}

func TestAddProductRepromptsInvalidPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Ichimliklar")

	require.NoError(t, f.handle(t, opcode.Add{Entity: opcode.EntityProduct}))
	f.answers(t, "Choy", "Чай", "bepul")

	msgs := f.rec.To(adminChat)
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, f.tr.T(i18n.Uzbek, i18n.AskProductPrice), msgs[len(msgs)-1].Text)
	assert.Contains(t, msgs[len(msgs)-2].Text, "❌")

	f.answers(t, "12000", "Ko‘k choy", "-", "https://cdn.example.com/choy.jpg", fmt.Sprint(c.ID), "40")

	products, err := f.shop.ProductsInCategory(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Choy", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(12000)))
	assert.Equal(t, 40, products[0].Stock)
	assert.Nil(t, products[0].DescriptionRu)
}

func TestAddProductUnknownCategory(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.handle(t, opcode.Add{Entity: opcode.EntityProduct}))
	f.answers(t, "Choy", "Чай", "12000", "Ko‘k choy", "-", "https://cdn.example.com/choy.jpg", "77")

	err := f.prompts.Answer(context.Background(), adminChat, i18n.Uzbek, session.TextAnswer("40"))
	assert.Equal(t, "category_not_found", apperrors.CodeOf(err))
}

func TestListProductsPaginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Ichimliklar")
	for i := 1; i <= 3; i++ {
		require.NoError(t, f.shop.CreateProduct(ctx, &models.Product{
			CategoryID: c.ID,
			Name:       fmt.Sprintf("Mahsulot %d", i),
			NameRu:     fmt.Sprintf("Товар %d", i),
			Price:      decimal.NewFromInt(1000),
			ImageURL:   "https://cdn.example.com/p.jpg",
			Stock:      i,
		}))
	}

	require.NoError(t, f.handle(t, opcode.List{Entity: opcode.EntityProduct, Page: 1}))
	assert.Equal(t, []string{"view_products_2"}, lastButtons(t, f.rec))
	msg, _ := f.rec.Last(adminChat)
	assert.Contains(t, msg.Text, "Sahifa 1/2")

	require.NoError(t, f.handle(t, opcode.List{Entity: opcode.EntityProduct, Page: 2}))
	assert.Equal(t, []string{"view_products"}, lastButtons(t, f.rec))
}

func TestListEmpty(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.handle(t, opcode.List{Entity: opcode.EntityOrder, Page: 1}))
	msg, _ := f.rec.Last(adminChat)
	assert.Equal(t, f.tr.T(i18n.Uzbek, i18n.ListEmpty), msg.Text)
}

func TestPickThenDeleteCategory(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Eski")

	require.NoError(t, f.handle(t, opcode.Pick{Entity: opcode.EntityCategory, Action: opcode.ActionDelete}))
	assert.Equal(t, []string{fmt.Sprintf("delete_cat_%d", c.ID)}, lastButtons(t, f.rec))

	require.NoError(t, f.handle(t, opcode.Delete{Entity: opcode.EntityCategory, ID: c.ID}))
	_, err := f.shop.Category(context.Background(), c.ID)
	assert.Equal(t, "category_not_found", apperrors.CodeOf(err))

	err = f.handle(t, opcode.Delete{Entity: opcode.EntityCategory, ID: c.ID})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func seedOrder(t *testing.T, f *fixture, status models.OrderStatus, total int64) *models.Order {
	t.Helper()
	ctx := context.Background()
	f.customers++
	u := &models.User{TelegramID: 1000 + f.customers, FullName: "Mijoz"}
	require.NoError(t, f.store.Users().Upsert(ctx, u))
	o := &models.Order{UserID: u.ID, OrderNumber: fmt.Sprintf("ORD-%d", u.ID), Status: status, TotalAmount: decimal.NewFromInt(total)}
	require.NoError(t, f.store.Orders().Create(ctx, o))
	return o
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	seedOrder(t, f, models.OrderStatusPaid, 100000)
	seedOrder(t, f, models.OrderStatusAwaitingPayment, 50000)
	seedOrder(t, f, models.OrderStatusCancelled, 70000)

	require.NoError(t, f.handle(t, opcode.Stats{}))
	summary, _ := f.rec.Last(adminChat)
	assert.Contains(t, summary.Text, "Buyurtmalar soni: 2")
	assert.Contains(t, summary.Text, "150000.00 so‘m")
	assert.Equal(t, []string{"stats_orders"}, lastButtons(t, f.rec))

	require.NoError(t, f.handle(t, opcode.Stats{Orders: true}))
	breakdown, _ := f.rec.Last(adminChat)
	assert.Contains(t, breakdown.Text, "• to‘landi: 1")
	assert.Contains(t, breakdown.Text, "• bekor qilindi: 1")
	assert.Contains(t, breakdown.Text, "• yaratildi: 0")
}

func TestEditDeliveryChain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := seedOrder(t, f, models.OrderStatusPaid, 1000)
	d := &models.Delivery{OrderID: o.ID, Latitude: 41.3, Longitude: 69.2, AddressDetails: "Sergeli"}
	require.NoError(t, f.store.Deliveries().Create(ctx, d))

	require.NoError(t, f.handle(t, opcode.Edit{Entity: opcode.EntityDelivery, ID: d.ID}))
	f.answers(t, "teleported")
	f.answers(t, "in_transit", "Sardor", "-", "2026-10-20")

	got, err := f.shop.Delivery(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusInTransit, got.Status)
	require.NotNil(t, got.CourierName)
	assert.Equal(t, "Sardor", *got.CourierName)
	assert.Nil(t, got.CourierPhone)
	require.NotNil(t, got.DeliveryDate)
	assert.Equal(t, "2026-10-20", got.DeliveryDate.Format("2006-01-02"))
	assert.Equal(t, "Sergeli", got.AddressDetails)
}

func TestAddPromocodeValidThroughDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.handle(t, opcode.Add{Entity: opcode.EntityPromocode}))
	f.answers(t, "kuz20", "20", "2099-12-31")

	promo, err := f.store.Promocodes().GetByCode(ctx, "KUZ20")
	require.NoError(t, err)
	assert.Equal(t, 20, promo.DiscountPercent)
	assert.Equal(t, "2099-12-31 23:59:59", promo.ValidTill.Format("2006-01-02 15:04:05"))
}

func TestEditUserChain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.shop.Register(ctx, 700, "Old Name", false)
	require.NoError(t, err)

	require.NoError(t, f.handle(t, opcode.Pick{Entity: opcode.EntityUser, Action: opcode.ActionEdit}))
	assert.Equal(t, []string{fmt.Sprintf("edit_user_%d", u.ID)}, lastButtons(t, f.rec))

	require.NoError(t, f.handle(t, opcode.Edit{Entity: opcode.EntityUser, ID: u.ID}))
	f.answers(t, "New Name", "+998935551122")

	got, err := f.shop.User(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.FullName)
	assert.Equal(t, "+998935551122", got.Phone)

	page, err := f.shop.ListUsers(ctx, repository.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}
