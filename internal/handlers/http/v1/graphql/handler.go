package graphql

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gfdmit/pastebin/internal/metrics"
	"github.com/gfdmit/pastebin/internal/service"
	"github.com/graphql-go/graphql"
)

const msgBadQuery = "An error occurred when executing the query. Check server logs."

type gqlHandler struct {
	svc     *service.Service
	metrics *metrics.Metrics

	schema graphql.Schema
}

type gqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func New(svc *service.Service, m *metrics.Metrics) (*gqlHandler, error) {
	gh := &gqlHandler{
		svc:     svc,
		metrics: m,
	}

	if err := gh.initSchema(); err != nil {
		return nil, err
	}

	return gh, nil
}

func (gh *gqlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := gqlRequest{}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gh.fail(w, "decode graphql request", err)
		return
	}
	if req.Query == "" {
		gh.fail(w, "decode graphql request", errors.New("query is empty"))
		return
	}

	res := graphql.Do(graphql.Params{
		Context:        r.Context(),
		Schema:         gh.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
	})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Println("[GRAPHQL] encode response:", err)
	}
}

func (gh *gqlHandler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, io.EOF) {
		err = errors.New("empty body")
	}
	log.Printf("[GRAPHQL] %v: %v", op, err)
	gh.metrics.OperationFailed(op)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if _, err := io.WriteString(w, msgBadQuery); err != nil {
		log.Println("[GRAPHQL] write response:", err)
	}
}

// resolveFailed logs the cause and hands graphql a fixed message so the
// storage error is not echoed to the client.
func (gh *gqlHandler) resolveFailed(op string, msg string, err error) error {
	log.Printf("[GRAPHQL] %v: %v", op, err)
	gh.metrics.OperationFailed(op)
	return errors.New(msg)
}
