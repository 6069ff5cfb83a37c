package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/transport/transporttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	exec     *Executor
	registry *session.Registry
	rec      *transporttest.Recorder
	tr       *i18n.Translator
}

func newHarness(t *testing.T, policy session.ReplacePolicy) *harness {
	t.Helper()
	tr, err := i18n.New(i18n.Uzbek)
	require.NoError(t, err)

	registry := session.NewRegistry(session.NewMemoryStore(), session.Options{Policy: policy}, zap.NewNop())
	rec := transporttest.NewRecorder()
	return &harness{
		exec:     NewExecutor(registry, rec, tr, zap.NewNop()),
		registry: registry,
		rec:      rec,
		tr:       tr,
	}
}

func (h *harness) answer(t *testing.T, chatID int64, text string) error {
	t.Helper()
	return h.exec.Answer(context.Background(), chatID, i18n.Uzbek, session.TextAnswer(text))
}

func TestEditCategoryChain(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	ctx := context.Background()

	var got *Submission
	h.exec.Register(CategoryChain, func(_ context.Context, sub Submission) error {
		got = &sub
		return nil
	})

	require.NoError(t, h.exec.Start(ctx, 42, i18n.Uzbek, ChainCategory, map[string]string{"category_id": "7"}))
	last, _ := h.rec.Last(42)
	assert.Equal(t, h.tr.T(i18n.Uzbek, i18n.AskCategoryName), last.Text)

	for _, answer := range []string{"Groceries", "Продукты", "Fresh food", ""} {
		require.NoError(t, h.answer(t, 42, answer))
	}

	require.NotNil(t, got)
	assert.Equal(t, "Groceries", got.String("name"))
	assert.Equal(t, "Продукты", got.String("name_ru"))
	assert.Equal(t, "Fresh food", got.String("description"))
	assert.Nil(t, got.Optional("description_ru"))
	id, err := got.ContextInt64("category_id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	sess, err := h.registry.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, sess.Pending)
}

func TestInvalidAnswerRepeatsFieldWithoutLimit(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	ctx := context.Background()

	completed := 0
	h.exec.Register(PromocodeChain, func(context.Context, Submission) error {
		completed++
		return nil
	})

	require.NoError(t, h.exec.Start(ctx, 1, i18n.Uzbek, ChainPromocode, nil))
	require.NoError(t, h.answer(t, 1, "SAVE10"))

	for i := 0; i < 50; i++ {
		h.rec.Reset()
		require.NoError(t, h.answer(t, 1, "lots"))

		msgs := h.rec.To(1)
		require.Len(t, msgs, 2)
		assert.Contains(t, msgs[0].Text, h.tr.T(i18n.Uzbek, i18n.ParsePercent))
		assert.Equal(t, h.tr.T(i18n.Uzbek, i18n.AskPromoPercent), msgs[1].Text)

		sess, err := h.registry.GetOrCreate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, sess.Pending.Step)
	}

	require.NoError(t, h.answer(t, 1, "10"))
	require.NoError(t, h.answer(t, 1, "2026-12-31"))
	assert.Equal(t, 1, completed)
}

func TestLocationField(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	ctx := context.Background()

	var got Submission
	h.exec.Register(CheckoutChain, func(_ context.Context, sub Submission) error {
		got = sub
		return nil
	})

	require.NoError(t, h.exec.Start(ctx, 3, i18n.Uzbek, ChainCheckout, map[string]string{"order_id": "9"}))
	first, _ := h.rec.Last(3)
	require.NotNil(t, first.Options)
	assert.True(t, first.Options.Reply[0][0].RequestLocation)

	require.NoError(t, h.answer(t, 3, "Tashkent"))
	sess, err := h.registry.GetOrCreate(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.Pending.Step)

	loc := session.Answer{Location: &session.Location{Latitude: 41.31, Longitude: 69.24}}
	require.NoError(t, h.exec.Answer(ctx, 3, i18n.Uzbek, loc))
	require.NoError(t, h.answer(t, 3, "Chilonzor 9, 12"))

	lat, lon, err := got.Location("location")
	require.NoError(t, err)
	assert.InDelta(t, 41.31, lat, 1e-9)
	assert.InDelta(t, 69.24, lon, 1e-9)
	assert.Equal(t, "Chilonzor 9, 12", got.String("address_details"))
}

func TestStartSupersedesAndWarns(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	ctx := context.Background()
	h.exec.Register(CategoryChain, nil)
	h.exec.Register(PromocodeChain, nil)

	require.NoError(t, h.exec.Start(ctx, 5, i18n.Uzbek, ChainCategory, nil))
	require.NoError(t, h.answer(t, 5, "Drinks"))
	h.rec.Reset()

	require.NoError(t, h.exec.Start(ctx, 5, i18n.Uzbek, ChainPromocode, nil))
	msgs := h.rec.To(5)
	require.Len(t, msgs, 2)
	assert.Equal(t, h.tr.T(i18n.Uzbek, i18n.PromptDiscarded), msgs[0].Text)

	sess, err := h.registry.GetOrCreate(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, ChainPromocode, sess.Pending.Chain)
	assert.Empty(t, sess.Pending.Collected)
}

func TestStartRejectedUnderRejectPolicy(t *testing.T) {
	h := newHarness(t, session.PolicyReject)
	ctx := context.Background()
	h.exec.Register(CategoryChain, nil)
	h.exec.Register(PromocodeChain, nil)

	require.NoError(t, h.exec.Start(ctx, 5, i18n.Uzbek, ChainCategory, nil))
	err := h.exec.Start(ctx, 5, i18n.Uzbek, ChainPromocode, nil)
	assert.ErrorIs(t, err, apperrors.ErrPromptPending)
}

func TestAnswerWithoutPrompt(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	err := h.answer(t, 8, "hello")
	assert.True(t, errors.Is(err, apperrors.ErrNoPendingPrompt))
}

func TestCompletionErrorPropagates(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	ctx := context.Background()
	boom := apperrors.NotFound("category_not_found", "category 7 not found")
	h.exec.Register(FeedbackChain, func(context.Context, Submission) error { return boom })

	require.NoError(t, h.exec.Start(ctx, 2, i18n.Uzbek, ChainFeedback, nil))
	err := h.answer(t, 2, "nice")
	assert.ErrorIs(t, err, boom)
}

func TestCancel(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	ctx := context.Background()
	h.exec.Register(PhoneChain, nil)

	cancelled, err := h.exec.Cancel(ctx, 4)
	require.NoError(t, err)
	assert.False(t, cancelled)

	require.NoError(t, h.exec.Start(ctx, 4, i18n.Uzbek, ChainPhone, nil))
	cancelled, err = h.exec.Cancel(ctx, 4)
	require.NoError(t, err)
	assert.True(t, cancelled)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	h := newHarness(t, session.PolicyReplace)
	h.exec.Register(PhoneChain, nil)
	assert.Panics(t, func() { h.exec.Register(PhoneChain, nil) })
}
