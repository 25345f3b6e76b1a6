package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/metrics"
	"github.com/ulazimo/kolagen/internal/notify"
	"github.com/ulazimo/kolagen/internal/pricing"
	"github.com/ulazimo/kolagen/internal/render"
	"github.com/ulazimo/kolagen/internal/repository"
	"github.com/ulazimo/kolagen/internal/session"
)

var (
	ErrNoProducts = errors.New("no products selected")
	// ErrInvalidQuantity количество вне [1, MaxQuantity]; частный случай ErrInvalidInput
	ErrInvalidQuantity = fmt.Errorf("%w: quantity out of range", ErrInvalidInput)
)

// User-facing messages for the order form.
const (
	MsgNoProducts    = "Molimo izaberite bar jedan proizvod"
	MsgMissingFields = "Molimo popunite sva obavezna polja"
	MsgInvalidEmail  = "Molimo unesite ispravnu email adresu"
	MsgQuantity      = "Količina mora biti između 1 i 99"
	MsgGeneric       = "Došlo je do greške, pokušajte ponovo"
)

const formMessageKey = "form-message"

// OrderConfig куда и как отправляется форма заказа
type OrderConfig struct {
	FormEndpoint string
	SiteURL      string
	Subject      string
}

// OrderRequest данные формы. Без Product берутся количества из степперов
// формы сессии, с Product используется выбор одного товара.
type OrderRequest struct {
	Customer domain.Customer  `json:"customer"`
	Product  domain.ProductID `json:"product" form:"product"`
	Quantity int              `json:"quantity" form:"quantity"`
}

// Submission всё, что нужно для отправки формы на внешний сервис
type Submission struct {
	Action    string              `json:"action"`
	Fields    map[string]string   `json:"fields"`
	Summary   domain.PriceSummary `json:"summary"`
	OrderText string              `json:"order_items"`
}

// OrderService готовит заказ к отправке. Сам заказ сервер не обрабатывает.
type OrderService struct {
	catalog  repository.ProductRepository
	cfg      OrderConfig
	validate *validator.Validate
	log      *zap.Logger
}

func NewOrderService(catalog repository.ProductRepository, cfg OrderConfig, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Subject == "" {
		cfg.Subject = "Nova narudžbina - Kolagen Pure"
	}
	return &OrderService{catalog: catalog, cfg: cfg, validate: validator.New(), log: log}
}

// Quote расчёт для одного товара со скидкой за количество
func (s *OrderService) Quote(_ context.Context, id domain.ProductID, qty int) (domain.PriceSummary, error) {
	if qty < 1 || qty > pricing.MaxQuantity {
		return domain.PriceSummary{}, ErrInvalidQuantity
	}
	if _, ok := s.catalog.Lookup(id); !ok {
		return domain.PriceSummary{}, repository.ErrNotFound
	}
	return pricing.ComputeSelection(s.catalog, domain.Selection{ProductID: id, Quantity: qty}), nil
}

// Prepare проверяет форму и собирает поля для отправки. Ошибка проверки
// дополнительно показывается в сессии сообщением над формой.
func (s *OrderService) Prepare(ctx context.Context, sess *session.Session, req OrderRequest) (*Submission, error) {
	sub, err := s.prepare(sess, req)
	if err != nil {
		metrics.OrdersPrepared.WithLabelValues(resultLabel(err)).Inc()
		sess.Notices.Post(formMessageKey, domain.NoticeError, UserMessage(err), notify.MessageTTL)
		s.log.Info("order rejected", zap.String("session_id", sess.ID), zap.Error(err))
		return nil, err
	}
	metrics.OrdersPrepared.WithLabelValues("ok").Inc()
	s.log.Info("order prepared",
		zap.String("session_id", sess.ID),
		zap.Int("items", sub.Summary.ItemCount),
		zap.Int64("total", sub.Summary.Total),
	)
	return sub, nil
}

func (s *OrderService) prepare(sess *session.Session, req OrderRequest) (*Submission, error) {
	req.Customer = trimCustomer(req.Customer)
	if err := s.validate.Struct(req.Customer); err != nil {
		return nil, fieldError(err)
	}

	var sum domain.PriceSummary
	if req.Product != "" {
		if req.Quantity < 1 || req.Quantity > pricing.MaxQuantity {
			return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, req.Quantity)
		}
		sum = pricing.ComputeSelection(s.catalog, domain.Selection{ProductID: req.Product, Quantity: req.Quantity})
	} else {
		err := sess.Do(func(sess *session.Session) error {
			if !sess.Form.HasProducts() {
				return ErrNoProducts
			}
			sum = sess.Form.Summary()
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if sum.Empty() {
		return nil, ErrNoProducts
	}

	text := render.OrderText(sum.Lines)
	c := req.Customer
	fields := map[string]string{
		"name":       c.Name,
		"phone":      c.Phone,
		"email":      c.Email,
		"address":    c.Address,
		"city":       c.City,
		"note":       c.Note,
		"orderItems": text,
		"subtotal":   render.FormatRSD(sum.Subtotal),
		"shipping":   render.ShippingLabel(sum, pricing.ShippingCost),
		"total":      render.FormatRSD(sum.Total),
		"_subject":   s.cfg.Subject,
		"_template":  "table",
		"_captcha":   "false",
		"_next":      strings.TrimRight(s.cfg.SiteURL, "/") + "/?success=true",
		"itemCount":  strconv.Itoa(sum.ItemCount),
		"discount":   render.FormatRSD(sum.Discount),
	}
	return &Submission{Action: s.cfg.FormEndpoint, Fields: fields, Summary: sum, OrderText: text}, nil
}

func trimCustomer(c domain.Customer) domain.Customer {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	c.Note = strings.TrimSpace(c.Note)
	return c
}

// FieldError ошибка проверки полей формы
type FieldError struct {
	Fields []string
	Email  bool
}

func (e *FieldError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

func fieldError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fe := &FieldError{}
	for _, f := range ve {
		fe.Fields = append(fe.Fields, strings.ToLower(f.Field()))
		if f.Tag() == "email" {
			fe.Email = true
		}
	}
	return fe
}

// UserMessage текст для посетителя на сербском
func UserMessage(err error) string {
	var fe *FieldError
	switch {
	case errors.Is(err, ErrNoProducts):
		return MsgNoProducts
	case errors.Is(err, ErrInvalidQuantity):
		return MsgQuantity
	case errors.As(err, &fe) && fe.Email && len(fe.Fields) == 1:
		return MsgInvalidEmail
	case errors.Is(err, ErrInvalidInput):
		return MsgMissingFields
	default:
		return MsgGeneric
	}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrNoProducts):
		return "empty"
	case errors.Is(err, ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}
