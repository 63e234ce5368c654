package queries

import (
	"context"
	"errors"
	"time"

	"basketsplit/internal/core/domain/services"
	"basketsplit/internal/core/ports"
	"basketsplit/internal/pkg/errs"
	"basketsplit/internal/pkg/metrics"
)

// SplitBasketQueryHandler splits baskets against the current catalog snapshot.
//
// Example:
//
//	handler := NewSplitBasketQueryHandler(snapshot, metrics.NewNop())
//	query, _ := NewSplitBasketQuery([]string{"Milk", "Bread"})
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrNoCoverage) {
//	    // some item cannot be delivered by anyone
//	}
type SplitBasketQueryHandler struct {
	snapshot ports.CatalogSnapshot
	metrics  metrics.SplitMetrics
}

// NewSplitBasketQueryHandler creates a handler for split queries.
func NewSplitBasketQueryHandler(snapshot ports.CatalogSnapshot, m metrics.SplitMetrics) SplitBasketQueryHandler {
	return SplitBasketQueryHandler{snapshot: snapshot, metrics: m}
}

// Handle splits the query's basket. The whole split runs against one catalog
// even if a reload swaps the snapshot meanwhile.
func (h SplitBasketQueryHandler) Handle(ctx context.Context, query SplitBasketQuery) (SplitBasketQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SplitBasketQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return SplitBasketQueryResponse{}, err
	}

	started := time.Now()
	assignment, err := h.split(ctx, query)
	if err != nil {
		h.metrics.RecordSplit(outcomeOf(err), time.Since(started), 0)
		return SplitBasketQueryResponse{}, err
	}
	h.metrics.RecordSplit(metrics.OutcomeSuccess, time.Since(started), len(assignment))

	deliveries := make([]DeliveryResponse, len(assignment))
	for i, d := range assignment {
		deliveries[i] = DeliveryResponse{Courier: d.Courier, Items: d.Items}
	}

	return SplitBasketQueryResponse{
		BasketID:   query.Basket().ID(),
		Deliveries: deliveries,
	}, nil
}

func (h SplitBasketQueryHandler) split(ctx context.Context, query SplitBasketQuery) (services.Assignment, error) {
	c, err := h.snapshot.Current()
	if err != nil {
		return nil, err
	}

	splitter, err := services.NewBasketSplitter(c)
	if err != nil {
		return nil, err
	}

	return splitter.Split(ctx, query.Basket())
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, services.ErrUnknownItem):
		return metrics.OutcomeUnknownItem
	case errors.Is(err, services.ErrNoCoverage):
		return metrics.OutcomeNoCoverage
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
