package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pb "github.com/superma0035/zapdine/api/v1"
	"github.com/superma0035/zapdine/pkg/qr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type acquireBody struct {
	Holder string `json:"holder" validate:"max=80"`
}

type openPageBody struct {
	RestaurantID    string `json:"restaurant_id" validate:"required"`
	TableNumber     string `json:"table_number" validate:"required"`
	Holder          string `json:"holder" validate:"max=80"`
	ResumeSessionID string `json:"resume_session_id"`
}

type addItemBody struct {
	ItemID string `json:"item_id" validate:"required"`
}

type quantityBody struct {
	Quantity *int32 `json:"quantity" validate:"required,gte=0"`
}

type orderStatusBody struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready served cancelled"`
}

type routes struct {
	mux    *runtime.ServeMux
	client pb.TableSessionServiceClient
	opts   Options
}

func newMux(conn grpc.ClientConnInterface, opts Options) (*runtime.ServeMux, error) {
	mux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions:   protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true},
			UnmarshalOptions: protojson.UnmarshalOptions{DiscardUnknown: true},
		}),
		runtime.WithUnescapingMode(runtime.UnescapingModeAllCharacters),
		runtime.WithErrorHandler(writeError),
		runtime.WithHealthEndpointAt(healthpb.NewHealthClient(conn), "/health"),
	)
	rt := &routes{mux: mux, client: pb.NewTableSessionServiceClient(conn), opts: opts}

	handlers := []struct {
		method, pattern string
		h               runtime.HandlerFunc
	}{
		{http.MethodGet, "/v1/tables/{table_id}/lock", rt.checkLock},
		{http.MethodPost, "/v1/tables/{table_id}/lock", rt.acquire},
		{http.MethodDelete, "/v1/tables/{table_id}/lock", rt.release},
		{http.MethodPost, "/v1/tables/{table_id}/lock/extend", rt.extend},

		{http.MethodPost, "/v1/pages", rt.openPage},
		{http.MethodGet, "/v1/pages/{page_id}", rt.pageStatus},
		{http.MethodDelete, "/v1/pages/{page_id}", rt.closePage},
		{http.MethodPost, "/v1/pages/{page_id}/retry", rt.retryPage},
		{http.MethodPost, "/v1/pages/{page_id}/items", rt.addItem},
		{http.MethodPatch, "/v1/pages/{page_id}/items/{item_id}", rt.updateQuantity},
		{http.MethodDelete, "/v1/pages/{page_id}/items/{item_id}", rt.removeItem},
		{http.MethodPost, "/v1/pages/{page_id}/orders", rt.placeOrder},
		{http.MethodPost, "/v1/pages/{page_id}/bill", rt.generateBill},
		{http.MethodPost, "/v1/pages/{page_id}/extend", rt.extendPage},

		{http.MethodGet, "/v1/restaurants/{restaurant_id}/menu", rt.menu},
		{http.MethodGet, "/v1/restaurants/{restaurant_id}/orders/today", rt.todaysOrders},
		{http.MethodPatch, "/v1/orders/{order_id}", rt.updateOrderStatus},
		{http.MethodGet, "/v1/restaurants/{restaurant_id}/tables/{table_number}/qr", rt.tableQR},
	}
	for _, h := range handlers {
		if err := mux.HandlePath(h.method, h.pattern, h.h); err != nil {
			return nil, err
		}
	}

	metrics := promhttp.Handler()
	if err := mux.HandlePath(http.MethodGet, "/metrics", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		metrics.ServeHTTP(w, r)
	}); err != nil {
		return nil, err
	}
	return mux, nil
}

// call runs one RPC with the request's headers forwarded as metadata and
// writes the reply or the error
func call[Resp any](rt *routes, w http.ResponseWriter, r *http.Request, fullMethod string, invoke func(context.Context) (*Resp, error)) {
	_, out := runtime.MarshalerForRequest(rt.mux, r)
	ctx, err := runtime.AnnotateContext(r.Context(), rt.mux, r, fullMethod)
	if err != nil {
		writeError(r.Context(), rt.mux, out, w, r, err)
		return
	}
	resp, err := invoke(ctx)
	if err != nil {
		writeError(ctx, rt.mux, out, w, r, err)
		return
	}
	writeJSON(w, out, http.StatusOK, resp)
}

// decodes and validates a JSON body, an empty body leaves dst untouched
func (rt *routes) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	in, out := runtime.MarshalerForRequest(rt.mux, r)
	if err := in.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(r.Context(), rt.mux, out, w, r, status.Error(codes.InvalidArgument, "invalid JSON body: "+err.Error()))
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(r.Context(), rt.mux, out, w, r, status.Error(codes.InvalidArgument, err.Error()))
		return false
	}
	return true
}

func (rt *routes) checkLock(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_CheckLock_FullMethodName, func(ctx context.Context) (*pb.LockStatus, error) {
		return rt.client.CheckLock(ctx, &pb.TableRequest{TableId: p["table_id"]})
	})
}

func (rt *routes) acquire(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var body acquireBody
	if !rt.decode(w, r, &body) {
		return
	}
	call(rt, w, r, pb.TableSessionService_Acquire_FullMethodName, func(ctx context.Context) (*pb.AcquireResponse, error) {
		return rt.client.Acquire(ctx, &pb.AcquireRequest{TableId: p["table_id"], Holder: body.Holder})
	})
}

func (rt *routes) release(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_Release_FullMethodName, func(ctx context.Context) (*pb.ReleaseResponse, error) {
		return rt.client.Release(ctx, &pb.TableRequest{TableId: p["table_id"]})
	})
}

func (rt *routes) extend(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_Extend_FullMethodName, func(ctx context.Context) (*pb.ExtendResponse, error) {
		return rt.client.Extend(ctx, &pb.TableRequest{TableId: p["table_id"]})
	})
}

func (rt *routes) openPage(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var body openPageBody
	if !rt.decode(w, r, &body) {
		return
	}
	call(rt, w, r, pb.TableSessionService_OpenPage_FullMethodName, func(ctx context.Context) (*pb.PageStatus, error) {
		return rt.client.OpenPage(ctx, &pb.OpenPageRequest{
			RestaurantId:    body.RestaurantID,
			TableNumber:     body.TableNumber,
			Holder:          body.Holder,
			ResumeSessionId: body.ResumeSessionID,
		})
	})
}

func (rt *routes) pageStatus(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_PageStatus_FullMethodName, func(ctx context.Context) (*pb.PageStatus, error) {
		return rt.client.PageStatus(ctx, &pb.PageRequest{PageId: p["page_id"]})
	})
}

func (rt *routes) closePage(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_ClosePage_FullMethodName, func(ctx context.Context) (*pb.ClosePageResponse, error) {
		return rt.client.ClosePage(ctx, &pb.PageRequest{PageId: p["page_id"]})
	})
}

func (rt *routes) retryPage(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_RetryPage_FullMethodName, func(ctx context.Context) (*pb.PageStatus, error) {
		return rt.client.RetryPage(ctx, &pb.PageRequest{PageId: p["page_id"]})
	})
}

func (rt *routes) addItem(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var body addItemBody
	if !rt.decode(w, r, &body) {
		return
	}
	call(rt, w, r, pb.TableSessionService_AddItem_FullMethodName, func(ctx context.Context) (*pb.PageStatus, error) {
		return rt.client.AddItem(ctx, &pb.AddItemRequest{PageId: p["page_id"], ItemId: body.ItemID})
	})
}

func (rt *routes) updateQuantity(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var body quantityBody
	if !rt.decode(w, r, &body) {
		return
	}
	call(rt, w, r, pb.TableSessionService_UpdateQuantity_FullMethodName, func(ctx context.Context) (*pb.PageStatus, error) {
		return rt.client.UpdateQuantity(ctx, &pb.UpdateQuantityRequest{
			PageId:   p["page_id"],
			ItemId:   p["item_id"],
			Quantity: *body.Quantity,
		})
	})
}

func (rt *routes) removeItem(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_RemoveItem_FullMethodName, func(ctx context.Context) (*pb.PageStatus, error) {
		return rt.client.RemoveItem(ctx, &pb.RemoveItemRequest{PageId: p["page_id"], ItemId: p["item_id"]})
	})
}

func (rt *routes) placeOrder(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_PlaceOrder_FullMethodName, func(ctx context.Context) (*pb.PlaceOrderResponse, error) {
		return rt.client.PlaceOrder(ctx, &pb.PageRequest{PageId: p["page_id"]})
	})
}

func (rt *routes) generateBill(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_GenerateBill_FullMethodName, func(ctx context.Context) (*pb.BillResponse, error) {
		return rt.client.GenerateBill(ctx, &pb.PageRequest{PageId: p["page_id"]})
	})
}

func (rt *routes) extendPage(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_ExtendPage_FullMethodName, func(ctx context.Context) (*pb.PageStatus, error) {
		return rt.client.ExtendPage(ctx, &pb.PageRequest{PageId: p["page_id"]})
	})
}

func (rt *routes) menu(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_GetMenu_FullMethodName, func(ctx context.Context) (*pb.MenuResponse, error) {
		return rt.client.GetMenu(ctx, &pb.MenuRequest{RestaurantId: p["restaurant_id"], Q: r.URL.Query().Get("q")})
	})
}

func (rt *routes) todaysOrders(w http.ResponseWriter, r *http.Request, p map[string]string) {
	call(rt, w, r, pb.TableSessionService_ListTodaysOrders_FullMethodName, func(ctx context.Context) (*pb.OrdersResponse, error) {
		return rt.client.ListTodaysOrders(ctx, &pb.RestaurantRequest{RestaurantId: p["restaurant_id"]})
	})
}

func (rt *routes) updateOrderStatus(w http.ResponseWriter, r *http.Request, p map[string]string) {
	var body orderStatusBody
	if !rt.decode(w, r, &body) {
		return
	}
	call(rt, w, r, pb.TableSessionService_UpdateOrderStatus_FullMethodName, func(ctx context.Context) (*pb.OrderResponse, error) {
		return rt.client.UpdateOrderStatus(ctx, &pb.UpdateOrderStatusRequest{OrderId: p["order_id"], Status: body.Status})
	})
}

// serves the printable QR code for a table
func (rt *routes) tableQR(w http.ResponseWriter, r *http.Request, p map[string]string) {
	_, out := runtime.MarshalerForRequest(rt.mux, r)

	link, err := qr.TableURL(rt.opts.PublicBaseURL, p["restaurant_id"], p["table_number"])
	if err != nil {
		writeError(r.Context(), rt.mux, out, w, r, status.Error(codes.InvalidArgument, err.Error()))
		return
	}
	img, err := qr.Encode(link)
	if err != nil {
		writeError(r.Context(), rt.mux, out, w, r, status.Error(codes.Internal, err.Error()))
		return
	}

	w.Header().Set("Content-Type", qr.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.Header().Set("Content-Disposition", `attachment; filename="`+qr.Filename(p["table_number"])+`"`)
	w.Header().Set("X-Table-Url", link)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}
