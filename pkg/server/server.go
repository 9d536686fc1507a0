package server

import (
	"context"
	"errors"

	pb "github.com/superma0035/zapdine/api/v1"
	"github.com/superma0035/zapdine/pkg/auth"
	"github.com/superma0035/zapdine/pkg/lease"
	"github.com/superma0035/zapdine/pkg/orders"
	"github.com/superma0035/zapdine/pkg/session"
	"github.com/superma0035/zapdine/pkg/types"
)

// menu lookups for the ordering pages
type MenuStore interface {
	ListAvailable(ctx context.Context, restaurantID string) ([]types.MenuItem, error)
	GetAvailable(ctx context.Context, restaurantID, itemID string) (types.MenuItem, error)
}

// owner facing order queries
type OrderStore interface {
	ListTodaysOrders(ctx context.Context, restaurantID, ownerID string) ([]types.Order, error)
	UpdateStatus(ctx context.Context, orderID, ownerID string, status types.OrderStatus) (types.Order, error)
}

type Server struct {
	pb.UnimplementedTableSessionServiceServer
	leases   *lease.Manager
	pages    *session.Registry
	menu     MenuStore
	orders   OrderStore
	identity auth.IdentityProvider
}

// wraps the lease manager and page registry into a gRPC server
func NewServer(leases *lease.Manager, pages *session.Registry, menu MenuStore, orders OrderStore, identity auth.IdentityProvider) *Server {
	if identity == nil {
		identity = auth.ContextIdentity{}
	}
	return &Server{
		leases:   leases,
		pages:    pages,
		menu:     menu,
		orders:   orders,
		identity: identity,
	}
}

func (s *Server) CheckLock(ctx context.Context, req *pb.TableRequest) (*pb.LockStatus, error) {
	if req.GetTableId() == "" {
		return nil, required("table_id")
	}
	return s.lockStatus(ctx, req.GetTableId()), nil
}

func (s *Server) lockStatus(ctx context.Context, tableID string) *pb.LockStatus {
	state := s.leases.CheckLock(ctx, tableID)
	remaining := s.leases.RemainingTime(ctx, tableID)
	return &pb.LockStatus{
		TableId:          tableID,
		Locked:           state.Locked,
		Holder:           state.Holder,
		SessionId:        state.SessionID,
		ExpiresAt:        toTimestamp(state.ExpiresAt),
		RemainingSeconds: int64(remaining.Seconds()),
		Remaining:        s.leases.FormatRemaining(ctx, tableID),
	}
}

func (s *Server) Acquire(ctx context.Context, req *pb.AcquireRequest) (*pb.AcquireResponse, error) {
	if req.GetTableId() == "" {
		return nil, required("table_id")
	}

	l, err := s.leases.Acquire(ctx, req.GetTableId(), req.GetHolder())
	if errors.Is(err, types.ErrTableLocked) {
		return &pb.AcquireResponse{Acquired: false}, nil
	}
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.AcquireResponse{Acquired: true, Lease: toLease(l)}, nil
}

func (s *Server) Release(ctx context.Context, req *pb.TableRequest) (*pb.ReleaseResponse, error) {
	if req.GetTableId() == "" {
		return nil, required("table_id")
	}
	s.leases.Release(ctx, req.GetTableId())
	return &pb.ReleaseResponse{Released: true}, nil
}

func (s *Server) Extend(ctx context.Context, req *pb.TableRequest) (*pb.ExtendResponse, error) {
	if req.GetTableId() == "" {
		return nil, required("table_id")
	}
	l, ok := s.leases.Extend(ctx, req.GetTableId())
	if !ok {
		return &pb.ExtendResponse{Extended: false}, nil
	}
	return &pb.ExtendResponse{Extended: true, Lease: toLease(l)}, nil
}

// OpenPage enters a new ordering page. A table held by someone else is not
// an error here: the page comes back blocked so the customer can retry.
func (s *Server) OpenPage(ctx context.Context, req *pb.OpenPageRequest) (*pb.PageStatus, error) {
	if req.GetRestaurantId() == "" {
		return nil, required("restaurant_id")
	}
	if req.GetTableNumber() == "" {
		return nil, required("table_number")
	}

	page, err := s.pages.Open(ctx, req.GetRestaurantId(), req.GetTableNumber(), req.GetHolder(), req.GetResumeSessionId())
	if err != nil && !errors.Is(err, types.ErrTableLocked) {
		return nil, toGRPCError(err)
	}
	return toPageStatus(page.Poll(ctx)), nil
}

func (s *Server) PageStatus(ctx context.Context, req *pb.PageRequest) (*pb.PageStatus, error) {
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}
	return toPageStatus(page.Poll(ctx)), nil
}

func (s *Server) RetryPage(ctx context.Context, req *pb.PageRequest) (*pb.PageStatus, error) {
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}
	if err := page.Retry(ctx); err != nil && !errors.Is(err, types.ErrTableLocked) {
		return nil, toGRPCError(err)
	}
	return toPageStatus(page.Poll(ctx)), nil
}

func (s *Server) AddItem(ctx context.Context, req *pb.AddItemRequest) (*pb.PageStatus, error) {
	if req.GetItemId() == "" {
		return nil, required("item_id")
	}
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}

	item, err := s.menu.GetAvailable(ctx, page.RestaurantID(), req.GetItemId())
	if err != nil {
		return nil, toGRPCError(err)
	}
	if err := page.AddItem(item); err != nil {
		return nil, toGRPCError(err)
	}
	return toPageStatus(page.Poll(ctx)), nil
}

func (s *Server) UpdateQuantity(ctx context.Context, req *pb.UpdateQuantityRequest) (*pb.PageStatus, error) {
	if req.GetItemId() == "" {
		return nil, required("item_id")
	}
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}
	if err := page.UpdateQuantity(req.GetItemId(), int(req.GetQuantity())); err != nil {
		return nil, toGRPCError(err)
	}
	return toPageStatus(page.Poll(ctx)), nil
}

func (s *Server) RemoveItem(ctx context.Context, req *pb.RemoveItemRequest) (*pb.PageStatus, error) {
	if req.GetItemId() == "" {
		return nil, required("item_id")
	}
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}
	if err := page.RemoveItem(req.GetItemId()); err != nil {
		return nil, toGRPCError(err)
	}
	return toPageStatus(page.Poll(ctx)), nil
}

func (s *Server) PlaceOrder(ctx context.Context, req *pb.PageRequest) (*pb.PlaceOrderResponse, error) {
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}
	orderID, err := page.PlaceOrder(ctx)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.PlaceOrderResponse{OrderId: orderID, Page: toPageStatus(page.Poll(ctx))}, nil
}

func (s *Server) GenerateBill(ctx context.Context, req *pb.PageRequest) (*pb.BillResponse, error) {
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}
	bill, err := page.GenerateBill(ctx)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.BillResponse{Bill: toBill(bill), Page: toPageStatus(page.Poll(ctx))}, nil
}

func (s *Server) ExtendPage(ctx context.Context, req *pb.PageRequest) (*pb.PageStatus, error) {
	page, err := s.page(req.GetPageId())
	if err != nil {
		return nil, err
	}
	if err := page.ExtendSession(ctx); err != nil {
		return nil, toGRPCError(err)
	}
	return toPageStatus(page.Poll(ctx)), nil
}

func (s *Server) ClosePage(ctx context.Context, req *pb.PageRequest) (*pb.ClosePageResponse, error) {
	if req.GetPageId() == "" {
		return nil, required("page_id")
	}
	if err := s.pages.Close(req.GetPageId()); err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.ClosePageResponse{Closed: true}, nil
}

func (s *Server) GetMenu(ctx context.Context, req *pb.MenuRequest) (*pb.MenuResponse, error) {
	if req.GetRestaurantId() == "" {
		return nil, required("restaurant_id")
	}
	items, err := s.menu.ListAvailable(ctx, req.GetRestaurantId())
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.MenuResponse{Items: toMenuItems(orders.Search(items, req.GetQ()))}, nil
}

func (s *Server) ListTodaysOrders(ctx context.Context, req *pb.RestaurantRequest) (*pb.OrdersResponse, error) {
	if req.GetRestaurantId() == "" {
		return nil, required("restaurant_id")
	}
	userID, err := s.identity.CurrentUserID(ctx)
	if err != nil {
		return nil, toGRPCError(err)
	}
	list, err := s.orders.ListTodaysOrders(ctx, req.GetRestaurantId(), userID)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.OrdersResponse{Orders: toOrders(list)}, nil
}

func (s *Server) UpdateOrderStatus(ctx context.Context, req *pb.UpdateOrderStatusRequest) (*pb.OrderResponse, error) {
	if req.GetOrderId() == "" {
		return nil, required("order_id")
	}
	userID, err := s.identity.CurrentUserID(ctx)
	if err != nil {
		return nil, toGRPCError(err)
	}
	o, err := s.orders.UpdateStatus(ctx, req.GetOrderId(), userID, types.OrderStatus(req.GetStatus()))
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.OrderResponse{Order: toOrder(o)}, nil
}

func (s *Server) page(pageID string) (*session.Page, error) {
	if pageID == "" {
		return nil, required("page_id")
	}
	page, err := s.pages.Get(pageID)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return page, nil
}
