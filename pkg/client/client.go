package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	pb "github.com/superma0035/zapdine/api/v1"
	"github.com/superma0035/zapdine/pkg/auth"
	"github.com/superma0035/zapdine/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a typed wrapper around the table session service for diners
// (Acquire, OpenPage) and restaurant owners (TodaysOrders, UpdateOrderStatus).
type Client struct {
	addr   string
	holder string
	conn   *grpc.ClientConn
	client pb.TableSessionServiceClient

	mu     sync.Mutex
	token  string
	stopCh chan struct{}
	once   sync.Once
}

// NewClient dials addr in plaintext. Extra dial options are appended, which
// lets tests swap in an in-memory dialer.
func NewClient(addr, holder string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return &Client{
		addr:   addr,
		holder: holder,
		conn:   conn,
		client: pb.NewTableSessionServiceClient(conn),
		stopCh: make(chan struct{}),
	}, nil
}

// SetToken sets the bearer token sent with owner calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) authed(ctx context.Context) context.Context {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	return auth.WithBearerToken(ctx, token)
}

func (c *Client) CheckLock(ctx context.Context, tableID string) (*pb.LockStatus, error) {
	return c.client.CheckLock(ctx, &pb.TableRequest{TableId: tableID})
}

// Acquire takes the table lease for the client's holder. A table held by
// someone else yields types.ErrTableLocked.
func (c *Client) Acquire(ctx context.Context, tableID string) (*Lock, error) {
	resp, err := c.client.Acquire(ctx, &pb.AcquireRequest{TableId: tableID, Holder: c.holder})
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !resp.Acquired {
		return nil, types.ErrTableLocked
	}

	return &Lock{
		client:    c,
		tableID:   tableID,
		sessionID: resp.Lease.GetSessionId(),
		expiresAt: resp.Lease.GetExpiresAt().AsTime(),
	}, nil
}

func (c *Client) Release(ctx context.Context, tableID string) error {
	if _, err := c.client.Release(ctx, &pb.TableRequest{TableId: tableID}); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

// OpenPage opens an ordering page for a table. A page blocked by another
// diner is returned without error, its Status reports the blocked state.
func (c *Client) OpenPage(ctx context.Context, restaurantID, tableNumber, resumeSessionID string) (*Page, error) {
	st, err := c.client.OpenPage(ctx, &pb.OpenPageRequest{
		RestaurantId:    restaurantID,
		TableNumber:     tableNumber,
		Holder:          c.holder,
		ResumeSessionId: resumeSessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	return &Page{client: c, id: st.GetPageId(), last: st}, nil
}

func (c *Client) Menu(ctx context.Context, restaurantID, query string) ([]*pb.MenuItem, error) {
	resp, err := c.client.GetMenu(ctx, &pb.MenuRequest{RestaurantId: restaurantID, Q: query})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) TodaysOrders(ctx context.Context, restaurantID string) ([]*pb.Order, error) {
	resp, err := c.client.ListTodaysOrders(c.authed(ctx), &pb.RestaurantRequest{RestaurantId: restaurantID})
	if err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status types.OrderStatus) (*pb.Order, error) {
	resp, err := c.client.UpdateOrderStatus(c.authed(ctx), &pb.UpdateOrderStatusRequest{OrderId: orderID, Status: string(status)})
	if err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// Stop ends every keep-alive loop started from this client and closes the
// connection.
func (c *Client) Stop() error {
	c.once.Do(func() { close(c.stopCh) })

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) stopped() <-chan struct{} {
	return c.stopCh
}

func sleepOrDone(ctx context.Context, stop <-chan struct{}, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-stop:
		return false
	case <-ctx.Done():
		return false
	}
}
