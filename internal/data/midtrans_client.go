package data

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/paras-gg/belajarbareng-fin/internal/biz"
	"github.com/paras-gg/belajarbareng-fin/internal/conf"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

// midtransClient opens Snap payment sessions. The server key is the Basic
// auth username with an empty password, per the gateway's API convention.
type midtransClient struct {
	baseURL   string
	serverKey string
	httpc     *http.Client
	log       *log.Helper
}

// NewMidtransClient creates the payment gateway client.
func NewMidtransClient(c *conf.Bootstrap, logger log.Logger) biz.PaymentGateway {
	return &midtransClient{
		baseURL:   strings.TrimRight(c.Client.Midtrans.BaseURL, "/"),
		serverKey: c.Client.Midtrans.ServerKey,
		httpc:     &http.Client{Timeout: c.Client.Midtrans.HTTPTimeout()},
		log:       log.NewHelper(logger),
	}
}

// snapRequest is the Snap transaction-creation payload.
type snapRequest struct {
	TransactionDetails snapTransactionDetails `json:"transaction_details"`
	ItemDetails        []snapItem             `json:"item_details"`
	CustomerDetails    snapCustomer           `json:"customer_details"`
}

type snapTransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type snapItem struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type snapCustomer struct {
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type snapResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateSession asks Snap for a payment token. Any answered non-2xx status
// is a rejection, 5xx included: a response proves the gateway saw the
// request, so only transport-level failure counts as unavailable. Status
// and body are logged here and go no further. No retries: the order id has
// already been recorded against this attempt and must not be resubmitted
// blindly.
func (c *midtransClient) CreateSession(ctx context.Context, in *biz.SessionRequest) (*biz.GatewaySession, error) {
	payload := snapRequest{
		TransactionDetails: snapTransactionDetails{
			OrderID:     in.OrderID,
			GrossAmount: in.Amount,
		},
		ItemDetails: []snapItem{{
			ID:       "premium",
			Price:    in.Amount,
			Quantity: 1,
			Name:     in.ItemName,
		}},
		CustomerDetails: snapCustomer{
			FirstName: in.Customer.FirstName,
			Email:     in.Customer.Email,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Errorf("encoding gateway request: order_id=%s err=%v", in.OrderID, err)
		return nil, svcerrors.GatewayUnavailable("payment gateway unavailable")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/snap/v1/transactions", bytes.NewReader(body))
	if err != nil {
		c.log.Errorf("building gateway request: order_id=%s err=%v", in.OrderID, err)
		return nil, svcerrors.GatewayUnavailable("payment gateway unavailable")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.serverKey, "")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Errorf("gateway request failed: order_id=%s err=%v", in.OrderID, err)
		return nil, svcerrors.GatewayUnavailable("payment gateway unavailable")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		c.log.Errorf("reading gateway response: order_id=%s err=%v", in.OrderID, err)
		return nil, svcerrors.GatewayUnavailable("payment gateway unavailable")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Errorf("gateway rejected session: order_id=%s status=%d body=%s", in.OrderID, resp.StatusCode, respBody)
		// The status rides along as metadata for server-side diagnostics;
		// the response encoder never serializes it.
		return nil, svcerrors.GatewayRejected("payment gateway rejected the transaction").
			WithMetadata(map[string]string{"status": strconv.Itoa(resp.StatusCode)})
	}

	var out snapResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		c.log.Errorf("decoding gateway response: order_id=%s err=%v", in.OrderID, err)
		return nil, svcerrors.GatewayRejected("payment gateway returned an unusable response")
	}
	if out.Token == "" {
		c.log.Errorf("gateway response carried no token: order_id=%s body=%s", in.OrderID, respBody)
		return nil, svcerrors.GatewayRejected("payment gateway returned an unusable response")
	}

	c.log.Debugf("gateway session created: order_id=%s redirect_url=%s", in.OrderID, out.RedirectURL)
	return &biz.GatewaySession{Token: out.Token, OrderID: in.OrderID}, nil
}
