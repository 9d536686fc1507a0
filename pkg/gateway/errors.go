package gateway

import (
	"context"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writes err as {"error": ..., "code": ...} with the HTTP status matching
// its gRPC code
func writeError(_ context.Context, _ *runtime.ServeMux, m runtime.Marshaler, w http.ResponseWriter, _ *http.Request, err error) {
	st := status.Convert(err)
	code := runtime.HTTPStatusFromCode(st.Code())
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("gateway request failed")
	}
	writeJSON(w, m, code, errorBody{Error: st.Message(), Code: st.Code().String()})
}

func writeJSON(w http.ResponseWriter, m runtime.Marshaler, code int, v any) {
	data, err := m.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		http.Error(w, `{"error":"internal error","code":"Internal"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}
