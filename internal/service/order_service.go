package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurzhas/procurement-api/internal/model"
	"github.com/nurzhas/procurement-api/internal/repository"
)

const (
	defaultPaymentTerms = "Net 30"
	defaultOrderNotes   = "Automatically generated order draft"
	deliveryLeadTime    = 14 * 24 * time.Hour
)

// OrderBookGenerator renders the current order book to a spreadsheet.
type OrderBookGenerator interface {
	Generate(book model.OrderBook) ([]byte, error)
}

type OrderService struct {
	orders    *repository.OrderRepository
	suppliers *repository.SupplierRepository
	generator TextGenerator
	exporter  OrderBookGenerator
	log       zerolog.Logger

	// now is swappable for tests that assert timestamp ordering.
	now func() time.Time
}

func NewOrderService(orders *repository.OrderRepository, suppliers *repository.SupplierRepository, generator TextGenerator, exporter OrderBookGenerator, log zerolog.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		suppliers: suppliers,
		generator: generator,
		exporter:  exporter,
		log:       log,
		now:       time.Now,
	}
}

type CreateOrderInput struct {
	SupplierID string
	Products   []model.OrderProduct
	Notes      string
}

// CreateOrder creates a draft order against an existing supplier. The total
// is computed once here; product lines with omitted price or quantity count
// as zero.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	supplier, err := s.suppliers.Get(ctx, input.SupplierID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: supplier %s", ErrNotFound, input.SupplierID)
		}
		return nil, err
	}

	notes := input.Notes
	if notes == "" {
		notes = defaultOrderNotes
	}

	now := s.now()
	order := model.Order{
		ID:                uuid.New().String(),
		SupplierID:        supplier.ID,
		SupplierName:      supplier.Name,
		Status:            model.OrderStatusDraft,
		CreatedAt:         now,
		UpdatedAt:         now,
		Products:          input.Products,
		EstimatedDelivery: now.Add(deliveryLeadTime),
		TotalAmount:       model.LineTotal(input.Products),
		PaymentTerms:      defaultPaymentTerms,
		Notes:             notes,
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("supplier_id", order.SupplierID).
		Float64("total_amount", order.TotalAmount).
		Msg("order created")

	return &order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets a new status on an order. Only membership in the six
// recognized statuses is checked; any transition among them is accepted,
// including backward ones. Enforcing the forward-only lifecycle graph
// (model.OrderStatus.CanTransitionTo) is pending product confirmation.
func (s *OrderService) UpdateStatus(ctx context.Context, id, rawStatus string) (*model.Order, error) {
	status := model.OrderStatus(rawStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status, must be one of: %s", ErrInvalidInput, model.OrderStatusNames())
	}

	order, err := s.orders.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("status", string(order.Status)).
		Msg("order status updated")

	return order, nil
}

// DraftCommunication drafts a supplier message about an existing order via
// the gateway, falling back to a deterministic template on failure.
func (s *OrderService) DraftCommunication(ctx context.Context, orderID, kind string) (*model.Message, error) {
	if kind == "" {
		kind = "update"
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.generator != nil {
		body, genErr := s.generator.Generate(ctx, orderCommunicationPrompt(*order, kind))
		if genErr == nil {
			return orderMessage(*order, kind, body), nil
		}
		s.log.Warn().Err(genErr).Str("order_id", orderID).Msg("order communication generation failed, using template")
	}

	return orderMessage(*order, kind, orderCommunicationTemplate(*order, kind)), nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportOrders renders the full order book as an xlsx workbook.
func (s *OrderService) ExportOrders(ctx context.Context) (*ExportResult, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	content, err := s.exporter.Generate(model.OrderBook{GeneratedAt: now, Orders: orders})
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: fmt.Sprintf("orders-%s.xlsx", now.Format("20060102-150405")),
		Content:  content,
	}, nil
}

func orderCommunicationPrompt(order model.Order, kind string) string {
	names := make([]string, len(order.Products))
	for i, p := range order.Products {
		names[i] = p.Name
	}
	return fmt.Sprintf(`Draft a professional %s communication regarding the following order:

Order ID: %s
Supplier: %s
Products: %s
Total Amount: $%.2f
Current Status: %s

The communication should be professional, clear, and include all relevant order details.`,
		kind, order.ID, order.SupplierName, strings.Join(names, ", "), order.TotalAmount, order.Status)
}

func orderCommunicationTemplate(order model.Order, kind string) string {
	return fmt.Sprintf(
		"Dear %s,\n\nWe are writing with a %s regarding order %s (current status: %s, total $%.2f). Please confirm receipt and let us know if any detail needs clarification.\n\nBest regards,\nProcurement Team",
		order.SupplierName, kind, order.ID, order.Status, order.TotalAmount)
}

func orderMessage(order model.Order, kind, body string) *model.Message {
	return &model.Message{
		Subject:       fmt.Sprintf("Order %s: %s", order.ID, capitalize(kind)),
		Body:          body,
		SuggestedTone: "Professional and direct",
		KeyPoints: []string{
			"Reference the order id",
			"State the current status",
			"Include timeline expectations",
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
