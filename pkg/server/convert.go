package server

import (
	"time"

	pb "github.com/superma0035/zapdine/api/v1"
	"github.com/superma0035/zapdine/pkg/session"
	"github.com/superma0035/zapdine/pkg/types"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// zero time stays unset on the wire
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toLease(l types.Lease) *pb.Lease {
	return &pb.Lease{
		TableId:    l.TableID,
		SessionId:  l.SessionID,
		Holder:     l.HolderName,
		ExpiresAt:  toTimestamp(l.ExpiresAt),
		AcquiredAt: toTimestamp(l.AcquiredAt),
	}
}

func toLockState(s types.LockState) *pb.LockState {
	return &pb.LockState{
		Locked:    s.Locked,
		Holder:    s.Holder,
		SessionId: s.SessionID,
		ExpiresAt: toTimestamp(s.ExpiresAt),
	}
}

func toMenuItem(it types.MenuItem) *pb.MenuItem {
	return &pb.MenuItem{
		Id:           it.ID,
		RestaurantId: it.RestaurantID,
		Name:         it.Name,
		Description:  it.Description,
		Price:        int64(it.Price),
		ImageUrl:     it.ImageURL,
		IsAvailable:  it.IsAvailable,
		SortOrder:    int32(it.SortOrder),
	}
}

func toMenuItems(in []types.MenuItem) []*pb.MenuItem {
	out := make([]*pb.MenuItem, 0, len(in))
	for _, it := range in {
		out = append(out, toMenuItem(it))
	}
	return out
}

func toCart(in []types.CartLine) []*pb.CartLine {
	out := make([]*pb.CartLine, 0, len(in))
	for _, l := range in {
		out = append(out, &pb.CartLine{Item: toMenuItem(l.Item), Quantity: int32(l.Quantity)})
	}
	return out
}

func toPlaced(in []session.PlacedOrder) []*pb.PlacedOrder {
	out := make([]*pb.PlacedOrder, 0, len(in))
	for _, o := range in {
		out = append(out, &pb.PlacedOrder{Id: o.ID, Total: int64(o.Total)})
	}
	return out
}

func toPageStatus(ps session.PageStatus) *pb.PageStatus {
	out := &pb.PageStatus{
		PageId:           ps.PageID,
		State:            string(ps.State),
		TableId:          ps.TableID,
		RestaurantId:     ps.RestaurantID,
		TableNumber:      ps.TableNumber,
		Holder:           ps.Holder,
		SessionId:        ps.SessionID,
		RemainingSeconds: int32(ps.RemainingSeconds),
		Countdown:        ps.Countdown,
		IsLowTime:        ps.IsLowTime,
		Lock:             toLockState(ps.Lock),
		LeaseRemaining:   ps.LeaseRemaining,
		Cart:             toCart(ps.Cart),
		CartTotal:        int64(ps.CartTotal),
		ItemCount:        int32(ps.ItemCount),
		Orders:           toPlaced(ps.Orders),
		Redirect:         ps.Redirect,
	}
	for _, n := range ps.Notifications {
		out.Notifications = append(out.Notifications, &pb.Notification{
			Title:    n.Title,
			Message:  n.Message,
			Severity: string(n.Severity),
			At:       toTimestamp(n.At),
		})
	}
	return out
}

func toBill(b session.Bill) *pb.Bill {
	return &pb.Bill{
		SessionId:    b.SessionID,
		TableId:      b.TableID,
		Holder:       b.Holder,
		Orders:       toPlaced(b.Orders),
		OrderedTotal: int64(b.OrderedTotal),
		OpenLines:    toCart(b.OpenLines),
		OpenTotal:    int64(b.OpenTotal),
		Total:        int64(b.Total),
	}
}

func toOrder(o types.Order) *pb.Order {
	out := &pb.Order{
		Id:           o.ID,
		RestaurantId: o.RestaurantID,
		TableNumber:  o.TableNumber,
		TotalAmount:  int64(o.TotalAmount),
		Status:       string(o.Status),
		Notes:        o.Notes,
		CreatedAt:    toTimestamp(o.CreatedAt),
		UpdatedAt:    toTimestamp(o.UpdatedAt),
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, &pb.OrderItem{
			MenuItemId: it.MenuItemID,
			Name:       it.Name,
			Quantity:   int32(it.Quantity),
			UnitPrice:  int64(it.UnitPrice),
			TotalPrice: int64(it.TotalPrice),
		})
	}
	return out
}

func toOrders(in []types.Order) []*pb.Order {
	out := make([]*pb.Order, 0, len(in))
	for _, o := range in {
		out = append(out, toOrder(o))
	}
	return out
}
