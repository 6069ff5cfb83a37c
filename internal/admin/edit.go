package admin

import (
	"context"
	"strconv"
	"time"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/shop"
	"go.uber.org/zap"
)

// ctxTargetID holds the id of the entity an edit chain will update. Chains
// started without it create a new entity.
const ctxTargetID = "id"

// edit checks the target exists, then runs the entity's chain bound to it.
func (r *Router) edit(ctx context.Context, chatID int64, lang string, op opcode.Edit) error {
	var (
		chain string
		err   error
	)
	switch op.Entity {
	case opcode.EntityCategory:
		chain = prompt.ChainCategory
		_, err = r.shop.Category(ctx, op.ID)
	case opcode.EntityProduct:
		chain = prompt.ChainProduct
		_, err = r.shop.Product(ctx, op.ID)
	case opcode.EntityUser:
		chain = prompt.ChainUser
		_, err = r.shop.User(ctx, op.ID)
	case opcode.EntityDelivery:
		chain = prompt.ChainDelivery
		_, err = r.shop.Delivery(ctx, op.ID)
	default:
		return apperrors.Validation("unknown_opcode", "cannot edit %s", op.Entity)
	}
	if err != nil {
		return err
	}

	captured := map[string]string{ctxTargetID: strconv.FormatInt(op.ID, 10)}
	return r.prompts.Start(ctx, chatID, lang, chain, captured)
}

func target(sub prompt.Submission) (id int64, editing bool, err error) {
	if sub.Context(ctxTargetID) == "" {
		return 0, false, nil
	}
	id, err = sub.ContextInt64(ctxTargetID)
	return id, true, err
}

func (r *Router) completeCategory(ctx context.Context, sub prompt.Submission) error {
	id, editing, err := target(sub)
	if err != nil {
		return err
	}
	c := &models.Category{
		ID:            id,
		Name:          sub.String("name"),
		NameRu:        sub.String("name_ru"),
		Description:   sub.String("description"),
		DescriptionRu: sub.Optional("description_ru"),
	}

	done := i18n.CategoryCreated
	if editing {
		err = r.shop.UpdateCategory(ctx, c)
		done = i18n.CategoryUpdated
	} else {
		err = r.shop.CreateCategory(ctx, c)
	}
	if err != nil {
		return err
	}
	return r.send(ctx, sub.ChatID, r.tr.T(sub.Language, done), nil)
}

func (r *Router) completeProduct(ctx context.Context, sub prompt.Submission) error {
	id, editing, err := target(sub)
	if err != nil {
		return err
	}
	price, err := sub.Decimal("price")
	if err != nil {
		return err
	}
	categoryID, err := sub.Int64("category_id")
	if err != nil {
		return err
	}
	stock, err := sub.Int("stock")
	if err != nil {
		return err
	}

	apply := func(p *models.Product) {
		p.Name = sub.String("name")
		p.NameRu = sub.String("name_ru")
		p.Price = price
		p.Description = sub.String("description")
		p.DescriptionRu = sub.Optional("description_ru")
		p.ImageURL = sub.String("image_url")
		p.CategoryID = categoryID
		p.Stock = stock
	}

	done := i18n.ProductCreated
	if editing {
		_, err = r.shop.UpdateProduct(ctx, id, apply)
		done = i18n.ProductUpdated
	} else {
		p := &models.Product{}
		apply(p)
		err = r.shop.CreateProduct(ctx, p)
	}
	if err != nil {
		return err
	}
	return r.send(ctx, sub.ChatID, r.tr.T(sub.Language, done), nil)
}

func (r *Router) completeUser(ctx context.Context, sub prompt.Submission) error {
	id, editing, err := target(sub)
	if err != nil {
		return err
	}
	if !editing {
		return apperrors.Validation("validation", "user chain needs a target user")
	}
	if _, err := r.shop.UpdateUser(ctx, id, sub.String("full_name"), sub.String("phone")); err != nil {
		return err
	}
	return r.send(ctx, sub.ChatID, r.tr.T(sub.Language, i18n.UserUpdated), nil)
}

func (r *Router) completeDelivery(ctx context.Context, sub prompt.Submission) error {
	id, editing, err := target(sub)
	if err != nil {
		return err
	}
	if !editing {
		return apperrors.Validation("validation", "delivery chain needs a target delivery")
	}
	date, err := sub.OptionalDate("delivery_date")
	if err != nil {
		return err
	}

	d, err := r.shop.UpdateDelivery(ctx, id, shop.DeliveryUpdate{
		Status:       models.DeliveryStatus(sub.String("status")),
		CourierName:  sub.Optional("courier_name"),
		CourierPhone: sub.Optional("courier_phone"),
		DeliveryDate: date,
	})
	if err != nil {
		return err
	}
	r.logger.Info("delivery updated", zap.Int64("delivery_id", d.ID), zap.String("status", string(d.Status)))
	return r.send(ctx, sub.ChatID, r.tr.T(sub.Language, i18n.DeliveryUpdated), nil)
}

// completePromocode stores a code valid through the end of the entered day.
func (r *Router) completePromocode(ctx context.Context, sub prompt.Submission) error {
	percent, err := sub.Int("discount_percent")
	if err != nil {
		return err
	}
	day, err := sub.Date("valid_till")
	if err != nil {
		return err
	}

	err = r.shop.CreatePromocode(ctx, &models.Promocode{
		Code:            sub.String("code"),
		DiscountPercent: percent,
		ValidTill:       day.Add(24*time.Hour - time.Second),
	})
	if err != nil {
		return err
	}
	return r.send(ctx, sub.ChatID, r.tr.T(sub.Language, i18n.PromocodeCreated), nil)
}
