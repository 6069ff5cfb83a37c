package checkout

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/transport"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Start registers the sender and asks for a language. Chats listed as admin
// chats are promoted on the way.
func (o *Orchestrator) Start(ctx context.Context, chatID int64, from transport.Sender, lang string) (*models.User, error) {
	name := strings.TrimSpace(from.FullName)
	if name == "" {
		name = fmt.Sprintf("user%d", chatID)
	}

	user, err := o.shop.Register(ctx, chatID, name, o.cfg.IsAdminChat(chatID))
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		if _, err := o.sessions.SetRole(ctx, chatID, session.RoleAdmin); err != nil {
			return nil, err
		}
	}
	if user.Language != "" {
		lang = user.Language
	}

	o.logger.Info("customer started", zap.Int64("chat_id", chatID), zap.Int64("user_id", user.ID), zap.Bool("admin", user.IsAdmin))
	return user, o.send(ctx, chatID, o.tr.T(lang, i18n.Welcome, name), languageKeyboard())
}

func languageKeyboard() *transport.Options {
	return &transport.Options{Inline: [][]transport.Button{{
		{Text: "🇺🇿 O‘zbekcha", Data: opcode.SetLanguage{Language: i18n.Uzbek}.Data()},
		{Text: "🇷🇺 Русский", Data: opcode.SetLanguage{Language: i18n.Russian}.Data()},
	}}}
}

func (o *Orchestrator) ChooseLanguage(ctx context.Context, chatID int64, lang string) error {
	return o.send(ctx, chatID, o.tr.T(lang, i18n.ChooseLanguage), languageKeyboard())
}

// SetLanguage stores the choice on the user and the session. A customer
// without a phone number is asked for one before seeing the menu.
func (o *Orchestrator) SetLanguage(ctx context.Context, chatID int64, lang string) error {
	if err := o.shop.SetLanguage(ctx, chatID, lang); err != nil {
		return err
	}
	if _, err := o.sessions.SetLanguage(ctx, chatID, lang); err != nil {
		return err
	}
	if err := o.send(ctx, chatID, o.tr.T(lang, i18n.LanguageChanged), nil); err != nil {
		return err
	}

	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}
	if user.Phone == "" {
		return o.prompts.Start(ctx, chatID, lang, prompt.ChainPhone, nil)
	}
	return o.MainMenu(ctx, chatID, lang)
}

func (o *Orchestrator) completePhone(ctx context.Context, sub prompt.Submission) error {
	if err := o.shop.SetPhone(ctx, sub.ChatID, sub.String("phone")); err != nil {
		return err
	}
	if err := o.send(ctx, sub.ChatID, o.tr.T(sub.Language, i18n.PhoneSaved), nil); err != nil {
		return err
	}
	return o.MainMenu(ctx, sub.ChatID, sub.Language)
}

// MenuKeys lists the reply keyboard labels, row by row.
var MenuKeys = [][]i18n.Key{
	{i18n.BtnCategories, i18n.BtnCart},
	{i18n.BtnProfile, i18n.BtnHistory},
	{i18n.BtnLanguage},
}

func (o *Orchestrator) MainMenu(ctx context.Context, chatID int64, lang string) error {
	rows := make([][]transport.ReplyButton, 0, len(MenuKeys))
	for _, keys := range MenuKeys {
		row := make([]transport.ReplyButton, 0, len(keys))
		for _, key := range keys {
			row = append(row, transport.ReplyButton{Text: o.tr.T(lang, key)})
		}
		rows = append(rows, row)
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.MainMenu), &transport.Options{Reply: rows})
}

func (o *Orchestrator) Profile(ctx context.Context, chatID int64, lang string) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}
	phone := html.EscapeString(user.Phone)
	if phone == "" {
		phone = o.tr.T(lang, i18n.NotSpecified)
	}
	text := o.tr.T(lang, i18n.Profile, html.EscapeString(user.FullName), phone, i18n.LanguageName(lang))
	return o.send(ctx, chatID, text, &transport.Options{HTML: true})
}

func (o *Orchestrator) Categories(ctx context.Context, chatID int64, lang string) error {
	categories, err := o.shop.Categories(ctx)
	if err != nil {
		return errors.Wrap(err, "list categories")
	}
	if len(categories) == 0 {
		return o.send(ctx, chatID, o.tr.T(lang, i18n.NoCategories), nil)
	}

	buttons := make([]transport.Button, 0, len(categories))
	for _, c := range categories {
		buttons = append(buttons, transport.Button{
			Text: i18n.Pick(lang, c.Name, c.NameRu),
			Data: opcode.ShowCategory{CategoryID: c.ID}.Data(),
		})
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.CategoriesTitle), &transport.Options{Inline: transport.InlineColumn(buttons...)})
}

func (o *Orchestrator) ShowCategory(ctx context.Context, chatID int64, lang string, categoryID int64) error {
	if _, err := o.shop.Category(ctx, categoryID); err != nil {
		return err
	}
	products, err := o.shop.ProductsInCategory(ctx, categoryID)
	if err != nil {
		return errors.Wrapf(err, "list products of category %d", categoryID)
	}
	if len(products) == 0 {
		return o.send(ctx, chatID, o.tr.T(lang, i18n.NoProducts), nil)
	}

	buttons := make([]transport.Button, 0, len(products))
	for _, p := range products {
		buttons = append(buttons, transport.Button{
			Text: fmt.Sprintf("%s — %s", i18n.Pick(lang, p.Name, p.NameRu), o.tr.Money(lang, p.Price)),
			Data: opcode.ShowProduct{ProductID: p.ID}.Data(),
		})
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.ProductsTitle), &transport.Options{Inline: transport.InlineColumn(buttons...)})
}

func (o *Orchestrator) ShowProduct(ctx context.Context, chatID int64, lang string, productID int64) error {
	p, err := o.shop.Product(ctx, productID)
	if err != nil {
		return err
	}

	description := p.Description
	if lang == i18n.Russian && p.DescriptionRu != nil {
		description = *p.DescriptionRu
	}
	name := html.EscapeString(i18n.Pick(lang, p.Name, p.NameRu))
	caption := o.tr.T(lang, i18n.ProductCaption, name, html.EscapeString(description), o.tr.Money(lang, p.Price), p.Stock)
	opts := &transport.Options{
		HTML: true,
		Inline: transport.InlineColumn(
			transport.Button{Text: o.tr.T(lang, i18n.BtnAddToCart), Data: opcode.AddToCart{ProductID: p.ID}.Data()},
			transport.Button{Text: o.tr.T(lang, i18n.BtnFeedback), Data: opcode.RequestFeedback{ProductID: p.ID}.Data()},
		),
	}
	return o.messenger.SendPhoto(ctx, chatID, p.ImageURL, caption, opts)
}

// AddToCart adds one unit. Stock is checked, not reserved.
func (o *Orchestrator) AddToCart(ctx context.Context, chatID int64, lang string, productID int64) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}
	if _, err := o.shop.AddToCart(ctx, user.ID, productID, 1); err != nil {
		return err
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.AddedToCart), nil)
}

func (o *Orchestrator) ShowCart(ctx context.Context, chatID int64, lang string) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}
	items, total, err := o.shop.Cart(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "load cart")
	}
	if len(items) == 0 {
		return o.send(ctx, chatID, o.tr.T(lang, i18n.CartEmpty), nil)
	}

	lines := []string{o.tr.T(lang, i18n.CartTitle), ""}
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, o.tr.T(lang, i18n.CartLine,
			i18n.Pick(lang, item.Product.Name, item.Product.NameRu),
			item.Quantity,
			o.tr.Money(lang, item.Product.Price),
			o.tr.Money(lang, subtotal),
		))
	}
	lines = append(lines, "", o.tr.T(lang, i18n.CartTotal, o.tr.Money(lang, total)))

	opts := &transport.Options{Inline: [][]transport.Button{{
		{Text: o.tr.T(lang, i18n.BtnPlaceOrder), Data: opcode.PlaceOrder{}.Data()},
		{Text: o.tr.T(lang, i18n.BtnClearCart), Data: opcode.ClearCart{}.Data()},
	}}}
	return o.send(ctx, chatID, strings.Join(lines, "\n"), opts)
}

func (o *Orchestrator) ClearCart(ctx context.Context, chatID int64, lang string) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}
	if err := o.shop.ClearCart(ctx, user.ID); err != nil {
		return errors.Wrap(err, "clear cart")
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.CartCleared), nil)
}
