package service

import (
	"context"
	stdhttp "net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/paras-gg/belajarbareng-fin/internal/auth"
	"github.com/paras-gg/belajarbareng-fin/internal/biz"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

// OperationPremiumCheckout names the checkout operation for middleware
// matching and logs.
const OperationPremiumCheckout = "/premium.v1.Premium/Checkout"

// CheckoutRequest is the request body. The bearer credential rides the
// Authorization header, never the body.
type CheckoutRequest struct {
	Paket string `json:"paket"`
}

// CheckoutReply is the success response body.
type CheckoutReply struct {
	Token   string `json:"token"`
	OrderID string `json:"order_id"`
}

// PremiumService exposes premium checkout over HTTP.
type PremiumService struct {
	uc  *biz.CheckoutUsecase
	log *log.Helper
}

func NewPremiumService(uc *biz.CheckoutUsecase, logger log.Logger) *PremiumService {
	return &PremiumService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

// Checkout extracts the caller's credential from the transport and runs one
// checkout. All interpretation of failures happens below; this layer only
// maps wire shapes.
func (s *PremiumService) Checkout(ctx context.Context, req *CheckoutRequest) (*CheckoutReply, error) {
	token, err := s.bearerToken(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.uc.Checkout(ctx, token, req.Paket)
	if err != nil {
		return nil, err
	}
	return &CheckoutReply{Token: session.Token, OrderID: session.OrderID}, nil
}

func (s *PremiumService) bearerToken(ctx context.Context) (string, error) {
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return "", svcerrors.Unauthenticated("missing authorization header")
	}
	return auth.TokenFromHeader(tr.RequestHeader().Get("Authorization"))
}

// RegisterPremiumHTTPServer mounts the premium routes on srv.
func RegisterPremiumHTTPServer(srv *http.Server, s *PremiumService) {
	r := srv.Route("/")
	r.POST("/v1/premium/checkout", s.handleCheckout)
}

func (s *PremiumService) handleCheckout(ctx http.Context) error {
	var in CheckoutRequest
	if err := ctx.Bind(&in); err != nil {
		return err
	}
	http.SetOperation(ctx, OperationPremiumCheckout)
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.Checkout(ctx, req.(*CheckoutRequest))
	})
	out, err := h(ctx, &in)
	if err != nil {
		return err
	}
	return ctx.Result(stdhttp.StatusOK, out.(*CheckoutReply))
}
