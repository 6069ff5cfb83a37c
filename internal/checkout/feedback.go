package checkout

import (
	"context"
	"strconv"
	"strings"

	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/transport"
)

const (
	ctxProductID = "product_id"
	ctxRating    = "rating"
)

func (o *Orchestrator) RequestFeedback(ctx context.Context, chatID int64, lang string, productID int64) error {
	if _, err := o.shop.Product(ctx, productID); err != nil {
		return err
	}
	stars := make([]transport.Button, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		stars = append(stars, transport.Button{
			Text: strings.Repeat("⭐", rating),
			Data: opcode.RateProduct{ProductID: productID, Rating: rating}.Data(),
		})
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.ChooseRating), &transport.Options{Inline: transport.InlineColumn(stars...)})
}

// RateProduct records the rating in the comment chain's context and asks for
// the comment.
func (o *Orchestrator) RateProduct(ctx context.Context, chatID int64, lang string, productID int64, rating int) error {
	captured := map[string]string{
		ctxProductID: strconv.FormatInt(productID, 10),
		ctxRating:    strconv.Itoa(rating),
	}
	return o.prompts.Start(ctx, chatID, lang, prompt.ChainFeedback, captured)
}

func (o *Orchestrator) completeFeedback(ctx context.Context, sub prompt.Submission) error {
	productID, err := sub.ContextInt64(ctxProductID)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(sub.Context(ctxRating))
	if err != nil {
		return err
	}
	user, err := o.customer(ctx, sub.ChatID)
	if err != nil {
		return err
	}

	err = o.shop.LeaveFeedback(ctx, &models.Feedback{
		UserID:    user.ID,
		ProductID: productID,
		Rating:    rating,
		Comment:   sub.String("comment"),
	})
	if err != nil {
		return err
	}
	return o.send(ctx, sub.ChatID, o.tr.T(sub.Language, i18n.FeedbackThanks), nil)
}

// ApplyPromocode reports the discount of a valid code. Expired and unknown
// codes come back as errors.
func (o *Orchestrator) ApplyPromocode(ctx context.Context, chatID int64, lang string, args string) error {
	code := strings.TrimSpace(args)
	if code == "" {
		return o.send(ctx, chatID, o.tr.T(lang, i18n.PromocodeUsage), nil)
	}
	promo, err := o.shop.ApplyPromocode(ctx, code)
	if err != nil {
		return err
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.PromocodeApplied, promo.Code, promo.DiscountPercent), nil)
}
