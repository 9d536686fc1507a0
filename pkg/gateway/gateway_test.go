package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superma0035/zapdine/pkg/auth"
	"github.com/superma0035/zapdine/pkg/lease"
	"github.com/superma0035/zapdine/pkg/orders"
	"github.com/superma0035/zapdine/pkg/qr"
	"github.com/superma0035/zapdine/pkg/server"
	"github.com/superma0035/zapdine/pkg/session"
	"github.com/superma0035/zapdine/pkg/storage"
	"github.com/superma0035/zapdine/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const jwtSecret = "s3cret"

type fixture struct {
	http     *httptest.Server
	verifier *auth.Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 17, 19, 0, 0, 0, time.UTC))
	leases := lease.NewManager(storage.New("memory", storage.NewMemory()), 2*time.Hour, lease.WithClock(clock))

	store := orders.NewMemory(clock)
	store.AddRestaurant("r1", "owner-1")
	store.AddMenuItem(types.MenuItem{ID: "tea", RestaurantID: "r1", Name: "Tea", Price: types.Rupees(100), IsAvailable: true})
	store.AddMenuItem(types.MenuItem{ID: "samosa", RestaurantID: "r1", Name: "Samosa", Price: types.Rupees(50), IsAvailable: true, SortOrder: 1})

	pages := session.NewRegistry(leases, store, session.Config{Duration: 2 * time.Hour, Clock: clock})
	verifier := auth.NewVerifier(jwtSecret)
	gs, _ := server.NewGRPCServer(server.NewServer(leases, pages, store, store, nil), verifier)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	handler, err := NewHandler(conn, Options{
		CORSOrigins:   []string{"https://app.zapdine.test"},
		PublicBaseURL: "https://zapdine.test",
	})
	require.NoError(t, err)
	ts := httptest.NewServer(handler)

	t.Cleanup(func() {
		ts.Close()
		pages.CloseAll()
		conn.Close()
		gs.Stop()
	})
	return &fixture{http: ts, verifier: verifier}
}

// do sends a JSON request and decodes the JSON reply into a generic map
func (f *fixture) do(t *testing.T, method, path, body string, header http.Header) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, f.http.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestLockRoutes(t *testing.T) {
	f := newFixture(t)

	code, body := f.do(t, http.MethodGet, "/v1/tables/r1%3A5/lock", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "r1:5", body["table_id"])
	assert.Equal(t, false, body["locked"])

	code, body = f.do(t, http.MethodPost, "/v1/tables/r1%3A5/lock", `{"holder":"Asha"}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["acquired"])

	code, body = f.do(t, http.MethodPost, "/v1/tables/r1%3A5/lock", `{"holder":"Ravi"}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["acquired"])

	code, body = f.do(t, http.MethodPost, "/v1/tables/r1%3A5/lock/extend", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["extended"])

	code, body = f.do(t, http.MethodDelete, "/v1/tables/r1%3A5/lock", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["released"])

	code, body = f.do(t, http.MethodGet, "/v1/tables/r1%3A5/lock", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["locked"])
}

func TestPageRoutes(t *testing.T) {
	f := newFixture(t)

	code, page := f.do(t, http.MethodPost, "/v1/pages", `{"restaurant_id":"r1","table_number":"5","holder":"Asha"}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "active", page["state"])
	pageID := page["page_id"].(string)
	require.NotEmpty(t, pageID)

	code, page = f.do(t, http.MethodPost, "/v1/pages/"+pageID+"/items", `{"item_id":"tea"}`, nil)
	require.Equal(t, http.StatusOK, code)
	code, page = f.do(t, http.MethodPost, "/v1/pages/"+pageID+"/items", `{"item_id":"samosa"}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "15000", page["cart_total"])

	code, page = f.do(t, http.MethodPatch, "/v1/pages/"+pageID+"/items/tea", `{"quantity":2}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "25000", page["cart_total"])

	code, page = f.do(t, http.MethodDelete, "/v1/pages/"+pageID+"/items/samosa", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "20000", page["cart_total"])

	code, placed := f.do(t, http.MethodPost, "/v1/pages/"+pageID+"/orders", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, placed["order_id"])

	code, page = f.do(t, http.MethodGet, "/v1/pages/"+pageID, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "r1:5", page["table_id"])

	code, bill := f.do(t, http.MethodPost, "/v1/pages/"+pageID+"/bill", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "20000", bill["bill"].(map[string]any)["total"])

	code, closed := f.do(t, http.MethodDelete, "/v1/pages/"+pageID, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, closed["closed"])

	code, body := f.do(t, http.MethodGet, "/v1/pages/"+pageID, "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NotFound", body["code"])
}

func TestBlockedPageAndRetry(t *testing.T) {
	f := newFixture(t)

	code, _ := f.do(t, http.MethodPost, "/v1/pages", `{"restaurant_id":"r1","table_number":"2","holder":"Asha"}`, nil)
	require.Equal(t, http.StatusOK, code)

	code, page := f.do(t, http.MethodPost, "/v1/pages", `{"restaurant_id":"r1","table_number":"2","holder":"Ravi"}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "blocked", page["state"])

	code, page = f.do(t, http.MethodPost, "/v1/pages/"+page["page_id"].(string)+"/retry", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "blocked", page["state"])
}

func TestRequestValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"missing restaurant", http.MethodPost, "/v1/pages", `{"table_number":"1"}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, "/v1/pages", `{`, http.StatusBadRequest},
		{"long holder", http.MethodPost, "/v1/tables/t1/lock", `{"holder":"` + strings.Repeat("x", 81) + `"}`, http.StatusBadRequest},
		{"missing item", http.MethodPost, "/v1/pages/p1/items", `{}`, http.StatusBadRequest},
		{"negative quantity", http.MethodPatch, "/v1/pages/p1/items/tea", `{"quantity":-1}`, http.StatusBadRequest},
		{"missing quantity", http.MethodPatch, "/v1/pages/p1/items/tea", `{}`, http.StatusBadRequest},
		{"unknown status", http.MethodPatch, "/v1/orders/o1", `{"status":"eaten"}`, http.StatusBadRequest},
		{"unknown page", http.MethodGet, "/v1/pages/nope", "", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/v1/nothing", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := f.do(t, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.want, code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMenuAndOwnerRoutes(t *testing.T) {
	f := newFixture(t)

	code, menu := f.do(t, http.MethodGet, "/v1/restaurants/r1/menu?q=sam", "", nil)
	require.Equal(t, http.StatusOK, code)
	items := menu["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Samosa", items[0].(map[string]any)["name"])

	code, _ = f.do(t, http.MethodGet, "/v1/restaurants/r1/orders/today", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	token, err := f.verifier.Issue("owner-1", time.Hour)
	require.NoError(t, err)
	owner := http.Header{"Authorization": {"Bearer " + token}}

	code, page := f.do(t, http.MethodPost, "/v1/pages", `{"restaurant_id":"r1","table_number":"9"}`, nil)
	require.Equal(t, http.StatusOK, code)
	pageID := page["page_id"].(string)
	f.do(t, http.MethodPost, "/v1/pages/"+pageID+"/items", `{"item_id":"tea"}`, nil)
	code, placed := f.do(t, http.MethodPost, "/v1/pages/"+pageID+"/orders", "", nil)
	require.Equal(t, http.StatusOK, code)

	code, list := f.do(t, http.MethodGet, "/v1/restaurants/r1/orders/today", "", owner)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list["orders"], 1)

	code, updated := f.do(t, http.MethodPatch, "/v1/orders/"+placed["order_id"].(string), `{"status":"preparing"}`, owner)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "preparing", updated["order"].(map[string]any)["status"])

	stranger, err := f.verifier.Issue("owner-2", time.Hour)
	require.NoError(t, err)
	code, _ = f.do(t, http.MethodGet, "/v1/restaurants/r1/orders/today", "", http.Header{"Authorization": {"Bearer " + stranger}})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestTableQR(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.http.URL + "/v1/restaurants/r1/tables/7/qr")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, qr.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), qr.Filename("7"))
	assert.Equal(t, "https://zapdine.test/order/r1/7", resp.Header.Get("X-Table-Url"))

	img, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, img[:2])
}

func TestHealthMetricsAndCORS(t *testing.T) {
	f := newFixture(t)

	code, body := f.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "SERVING", body["status"])

	resp, err := http.Get(f.http.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, f.http.URL+"/v1/pages", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.zapdine.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://app.zapdine.test", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStopReportsConnCloseError(t *testing.T) {
	s := NewServer("127.0.0.1:0", "passthrough:///unused", Options{})

	conn, err := grpc.NewClient("passthrough:///unused", grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	s.conn = conn

	assert.Error(t, s.Stop(context.Background()), "closing an already closed connection must surface")
}
