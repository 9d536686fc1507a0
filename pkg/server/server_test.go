package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pb "github.com/superma0035/zapdine/api/v1"
	"github.com/superma0035/zapdine/pkg/auth"
	"github.com/superma0035/zapdine/pkg/lease"
	"github.com/superma0035/zapdine/pkg/orders"
	"github.com/superma0035/zapdine/pkg/session"
	"github.com/superma0035/zapdine/pkg/storage"
	"github.com/superma0035/zapdine/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const jwtSecret = "s3cret"

type fixture struct {
	ctx      context.Context
	clock    *clockwork.FakeClock
	leases   *lease.Manager
	store    *orders.Memory
	verifier *auth.Verifier
	client   pb.TableSessionServiceClient
	conn     *grpc.ClientConn
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 17, 19, 0, 0, 0, time.UTC))
	leases := lease.NewManager(storage.New("memory", storage.NewMemory()), 2*time.Hour, lease.WithClock(clock))

	store := orders.NewMemory(clock)
	store.AddRestaurant("r1", "owner-1")
	store.AddMenuItem(types.MenuItem{ID: "tea", RestaurantID: "r1", Name: "Tea", Price: types.Rupees(100), IsAvailable: true})
	store.AddMenuItem(types.MenuItem{ID: "samosa", RestaurantID: "r1", Name: "Samosa", Description: "fried pastry", Price: types.Rupees(50), IsAvailable: true, SortOrder: 1})

	pages := session.NewRegistry(leases, store, session.Config{Duration: 2 * time.Hour, Clock: clock})
	verifier := auth.NewVerifier(jwtSecret)
	gs, _ := NewGRPCServer(NewServer(leases, pages, store, store, nil), verifier)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		pages.CloseAll()
		conn.Close()
		gs.Stop()
	})

	return &fixture{
		ctx:      context.Background(),
		clock:    clock,
		leases:   leases,
		store:    store,
		verifier: verifier,
		client:   pb.NewTableSessionServiceClient(conn),
		conn:     conn,
	}
}

func (f *fixture) ownerCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	token, err := f.verifier.Issue(userID, time.Hour)
	require.NoError(t, err)
	return auth.WithBearerToken(f.ctx, token)
}

func titles(ps *pb.PageStatus) []string {
	out := make([]string, 0, len(ps.Notifications))
	for _, n := range ps.Notifications {
		out = append(out, n.Title)
	}
	return out
}

func TestLeaseRPCs(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.CheckLock(f.ctx, &pb.TableRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	st, err := f.client.CheckLock(f.ctx, &pb.TableRequest{TableId: "T7"})
	require.NoError(t, err)
	assert.False(t, st.Locked)
	assert.Equal(t, "Expired", st.Remaining)

	acq, err := f.client.Acquire(f.ctx, &pb.AcquireRequest{TableId: "T7", Holder: "Alice"})
	require.NoError(t, err)
	require.True(t, acq.Acquired)
	assert.Equal(t, "Alice", acq.Lease.Holder)

	st, err = f.client.CheckLock(f.ctx, &pb.TableRequest{TableId: "T7"})
	require.NoError(t, err)
	assert.True(t, st.Locked)
	assert.Equal(t, "Alice", st.Holder)
	assert.Equal(t, int64(7200), st.RemainingSeconds)
	assert.Equal(t, "2h 0m", st.Remaining)

	acq, err = f.client.Acquire(f.ctx, &pb.AcquireRequest{TableId: "T7", Holder: "Bob"})
	require.NoError(t, err)
	assert.False(t, acq.Acquired)
	assert.Nil(t, acq.Lease)

	f.clock.Advance(30 * time.Minute)
	ext, err := f.client.Extend(f.ctx, &pb.TableRequest{TableId: "T7"})
	require.NoError(t, err)
	assert.True(t, ext.Extended)
	assert.Equal(t, f.clock.Now().Add(2*time.Hour).Unix(), ext.Lease.ExpiresAt.AsTime().Unix())

	rel, err := f.client.Release(f.ctx, &pb.TableRequest{TableId: "T7"})
	require.NoError(t, err)
	assert.True(t, rel.Released)

	ext, err = f.client.Extend(f.ctx, &pb.TableRequest{TableId: "T7"})
	require.NoError(t, err)
	assert.False(t, ext.Extended)
}

func TestOrderingFlow(t *testing.T) {
	f := newFixture(t)

	ps, err := f.client.OpenPage(f.ctx, &pb.OpenPageRequest{RestaurantId: "r1", TableNumber: "4", Holder: "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, ps.PageId)
	assert.Equal(t, "active", ps.State)
	assert.Equal(t, "r1:4", ps.TableId)
	assert.Equal(t, "2:00:00", ps.Countdown)
	assert.True(t, ps.Lock.Locked)
	pageID := ps.PageId

	for _, item := range []string{"tea", "tea", "samosa"} {
		ps, err = f.client.AddItem(f.ctx, &pb.AddItemRequest{PageId: pageID, ItemId: item})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(25000), ps.CartTotal)
	assert.Equal(t, int32(3), ps.ItemCount)
	assert.Contains(t, titles(ps), "Added to Cart")

	ps, err = f.client.RemoveItem(f.ctx, &pb.RemoveItemRequest{PageId: pageID, ItemId: "tea"})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), ps.CartTotal)

	ps, err = f.client.UpdateQuantity(f.ctx, &pb.UpdateQuantityRequest{PageId: pageID, ItemId: "samosa", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(25000), ps.CartTotal)

	placed, err := f.client.PlaceOrder(f.ctx, &pb.PageRequest{PageId: pageID})
	require.NoError(t, err)
	assert.NotEmpty(t, placed.OrderId)
	assert.Empty(t, placed.Page.Cart)
	assert.Equal(t, "active", placed.Page.State)
	assert.Contains(t, titles(placed.Page), "Order Placed Successfully!")

	_, err = f.client.PlaceOrder(f.ctx, &pb.PageRequest{PageId: pageID})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	bill, err := f.client.GenerateBill(f.ctx, &pb.PageRequest{PageId: pageID})
	require.NoError(t, err)
	assert.Equal(t, int64(25000), bill.Bill.Total)
	require.Len(t, bill.Bill.Orders, 1)
	assert.Equal(t, placed.OrderId, bill.Bill.Orders[0].Id)
	assert.Equal(t, "finished", bill.Page.State)
	assert.Equal(t, "/", bill.Page.Redirect)

	st, err := f.client.CheckLock(f.ctx, &pb.TableRequest{TableId: "r1:4"})
	require.NoError(t, err)
	assert.False(t, st.Locked)

	_, err = f.client.AddItem(f.ctx, &pb.AddItemRequest{PageId: pageID, ItemId: "tea"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	closed, err := f.client.ClosePage(f.ctx, &pb.PageRequest{PageId: pageID})
	require.NoError(t, err)
	assert.True(t, closed.Closed)

	_, err = f.client.PageStatus(f.ctx, &pb.PageRequest{PageId: pageID})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestBlockedPageRetries(t *testing.T) {
	f := newFixture(t)

	_, err := f.leases.Acquire(f.ctx, "r1:9", "Bob")
	require.NoError(t, err)

	ps, err := f.client.OpenPage(f.ctx, &pb.OpenPageRequest{RestaurantId: "r1", TableNumber: "9", Holder: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "blocked", ps.State)
	assert.Equal(t, "Bob", ps.Lock.Holder)
	assert.Equal(t, []string{"Table in use"}, titles(ps))

	_, err = f.client.AddItem(f.ctx, &pb.AddItemRequest{PageId: ps.PageId, ItemId: "tea"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	retry, err := f.client.RetryPage(f.ctx, &pb.PageRequest{PageId: ps.PageId})
	require.NoError(t, err)
	assert.Equal(t, "blocked", retry.State)

	f.leases.Release(f.ctx, "r1:9")
	retry, err = f.client.RetryPage(f.ctx, &pb.PageRequest{PageId: ps.PageId})
	require.NoError(t, err)
	assert.Equal(t, "active", retry.State)
	assert.Equal(t, "Alice", retry.Holder)
}

func TestPageErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.OpenPage(f.ctx, &pb.OpenPageRequest{TableNumber: "1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.client.PageStatus(f.ctx, &pb.PageRequest{PageId: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	ps, err := f.client.OpenPage(f.ctx, &pb.OpenPageRequest{RestaurantId: "r1", TableNumber: "2", Holder: "Alice"})
	require.NoError(t, err)

	_, err = f.client.AddItem(f.ctx, &pb.AddItemRequest{PageId: ps.PageId, ItemId: "biryani"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = f.client.UpdateQuantity(f.ctx, &pb.UpdateQuantityRequest{PageId: ps.PageId, ItemId: "tea", Quantity: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.client.PlaceOrder(f.ctx, &pb.PageRequest{PageId: ps.PageId})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	f.store.FailCreates(assert.AnError)
	_, err = f.client.AddItem(f.ctx, &pb.AddItemRequest{PageId: ps.PageId, ItemId: "tea"})
	require.NoError(t, err)
	_, err = f.client.PlaceOrder(f.ctx, &pb.PageRequest{PageId: ps.PageId})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	after, err := f.client.PageStatus(f.ctx, &pb.PageRequest{PageId: ps.PageId})
	require.NoError(t, err)
	assert.Equal(t, int32(1), after.ItemCount, "cart survives a failed order")
	assert.Contains(t, titles(after), "Order Failed")
}

func TestExtendPage(t *testing.T) {
	f := newFixture(t)

	ps, err := f.client.OpenPage(f.ctx, &pb.OpenPageRequest{RestaurantId: "r1", TableNumber: "5", Holder: "Alice"})
	require.NoError(t, err)

	ext, err := f.client.ExtendPage(f.ctx, &pb.PageRequest{PageId: ps.PageId})
	require.NoError(t, err)
	assert.Equal(t, "2:00:00", ext.Countdown)
	assert.Contains(t, titles(ext), "Session Extended")
}

func TestGetMenu(t *testing.T) {
	f := newFixture(t)

	menu, err := f.client.GetMenu(f.ctx, &pb.MenuRequest{RestaurantId: "r1"})
	require.NoError(t, err)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, "tea", menu.Items[0].Id)

	menu, err = f.client.GetMenu(f.ctx, &pb.MenuRequest{RestaurantId: "r1", Q: "PASTRY"})
	require.NoError(t, err)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "samosa", menu.Items[0].Id)

	_, err = f.client.GetMenu(f.ctx, &pb.MenuRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestOwnerOrders(t *testing.T) {
	f := newFixture(t)

	ps, err := f.client.OpenPage(f.ctx, &pb.OpenPageRequest{RestaurantId: "r1", TableNumber: "6", Holder: "Alice"})
	require.NoError(t, err)
	_, err = f.client.AddItem(f.ctx, &pb.AddItemRequest{PageId: ps.PageId, ItemId: "tea"})
	require.NoError(t, err)
	placed, err := f.client.PlaceOrder(f.ctx, &pb.PageRequest{PageId: ps.PageId})
	require.NoError(t, err)

	_, err = f.client.ListTodaysOrders(f.ctx, &pb.RestaurantRequest{RestaurantId: "r1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = f.client.ListTodaysOrders(auth.WithBearerToken(f.ctx, "forged"), &pb.RestaurantRequest{RestaurantId: "r1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	owner := f.ownerCtx(t, "owner-1")
	list, err := f.client.ListTodaysOrders(owner, &pb.RestaurantRequest{RestaurantId: "r1"})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, placed.OrderId, list.Orders[0].Id)
	assert.Equal(t, "Order from Table 6", list.Orders[0].Notes)

	_, err = f.client.ListTodaysOrders(f.ownerCtx(t, "owner-2"), &pb.RestaurantRequest{RestaurantId: "r1"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	upd, err := f.client.UpdateOrderStatus(owner, &pb.UpdateOrderStatusRequest{OrderId: placed.OrderId, Status: "preparing"})
	require.NoError(t, err)
	assert.Equal(t, string(types.OrderPreparing), upd.Order.Status)

	_, err = f.client.UpdateOrderStatus(owner, &pb.UpdateOrderStatusRequest{OrderId: placed.OrderId, Status: "eaten"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHealthService(t *testing.T) {
	f := newFixture(t)

	resp, err := healthpb.NewHealthClient(f.conn).Check(f.ctx, &healthpb.HealthCheckRequest{Service: pb.TableSessionService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestToGRPCError(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{types.ErrPageNotFound, codes.NotFound},
		{types.ErrTableLocked, codes.FailedPrecondition},
		{types.ErrEmptyCart, codes.FailedPrecondition},
		{types.ErrOrderInProgress, codes.Aborted},
		{types.ErrInvalidQuantity, codes.InvalidArgument},
		{types.ErrUnauthenticated, codes.Unauthenticated},
		{types.ErrForbidden, codes.PermissionDenied},
		{types.ErrOrderCreationFailed, codes.Unavailable},
		{assert.AnError, codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, status.Code(toGRPCError(tt.err)), tt.err.Error())
	}

	assert.Nil(t, toGRPCError(nil))
	already := status.Error(codes.Unavailable, "x")
	assert.Equal(t, already, toGRPCError(already))
}
