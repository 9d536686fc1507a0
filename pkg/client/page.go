package client

import (
	"context"
	"sync"
	"time"

	pb "github.com/superma0035/zapdine/api/v1"
	"github.com/superma0035/zapdine/pkg/session"
)

// Page is a handle on one ordering page. Every call refreshes the last
// status seen, notifications included.
type Page struct {
	client *Client
	id     string

	mu   sync.Mutex
	last *pb.PageStatus
}

func (p *Page) ID() string {
	return p.id
}

// Status returns the last status seen without a round trip.
func (p *Page) Status() *pb.PageStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *Page) remember(st *pb.PageStatus, err error) (*pb.PageStatus, error) {
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.last = st
	p.mu.Unlock()
	return st, nil
}

func (p *Page) req() *pb.PageRequest {
	return &pb.PageRequest{PageId: p.id}
}

func (p *Page) Refresh(ctx context.Context) (*pb.PageStatus, error) {
	return p.remember(p.client.client.PageStatus(ctx, p.req()))
}

func (p *Page) Retry(ctx context.Context) (*pb.PageStatus, error) {
	return p.remember(p.client.client.RetryPage(ctx, p.req()))
}

func (p *Page) AddItem(ctx context.Context, itemID string) (*pb.PageStatus, error) {
	return p.remember(p.client.client.AddItem(ctx, &pb.AddItemRequest{PageId: p.id, ItemId: itemID}))
}

func (p *Page) SetQuantity(ctx context.Context, itemID string, quantity int) (*pb.PageStatus, error) {
	return p.remember(p.client.client.UpdateQuantity(ctx, &pb.UpdateQuantityRequest{PageId: p.id, ItemId: itemID, Quantity: int32(quantity)}))
}

func (p *Page) RemoveItem(ctx context.Context, itemID string) (*pb.PageStatus, error) {
	return p.remember(p.client.client.RemoveItem(ctx, &pb.RemoveItemRequest{PageId: p.id, ItemId: itemID}))
}

func (p *Page) Extend(ctx context.Context) (*pb.PageStatus, error) {
	return p.remember(p.client.client.ExtendPage(ctx, p.req()))
}

// PlaceOrder submits the cart and returns the new order id.
func (p *Page) PlaceOrder(ctx context.Context) (string, error) {
	resp, err := p.client.client.PlaceOrder(ctx, p.req())
	if err != nil {
		return "", err
	}
	p.remember(resp.Page, nil)
	return resp.GetOrderId(), nil
}

// Bill ends the session and returns its bill.
func (p *Page) Bill(ctx context.Context) (*pb.Bill, error) {
	resp, err := p.client.client.GenerateBill(ctx, p.req())
	if err != nil {
		return nil, err
	}
	p.remember(resp.Page, nil)
	return resp.Bill, nil
}

func (p *Page) Close(ctx context.Context) error {
	_, err := p.client.client.ClosePage(ctx, p.req())
	return err
}

// Watch polls the page every interval and hands each status to fn. It
// returns when fn returns false, the page reaches a terminal state, ctx is
// done or a poll fails.
func (p *Page) Watch(ctx context.Context, interval time.Duration, fn func(*pb.PageStatus) bool) error {
	for {
		st, err := p.Refresh(ctx)
		if err != nil {
			return err
		}
		if !fn(st) || terminal(st.State) {
			return nil
		}
		if !sleepOrDone(ctx, p.client.stopped(), interval) {
			return ctx.Err()
		}
	}
}

func terminal(state string) bool {
	switch session.State(state) {
	case session.StateExpired, session.StateFinished, session.StateClosed:
		return true
	}
	return false
}
