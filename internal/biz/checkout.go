package biz

import (
	"context"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/paras-gg/belajarbareng-fin/internal/constants"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

// Transaction is one row of the payment ledger. A row is written with status
// pending before the gateway ever learns its order id; the confirmation
// callback flow (out of scope here) moves it to completed or failed later.
type Transaction struct {
	ID              string
	UserID          string
	Paket           string
	Amount          int64
	MidtransOrderID string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionRepo persists ledger rows. CreatePending fills the row's ID and
// timestamps on success. Implementations report failures through the
// persistence taxonomy: a uniqueness collision on the order id is
// DuplicateOrder, anything else LedgerWriteFailed.
type TransactionRepo interface {
	CreatePending(ctx context.Context, tx *Transaction) error
}

// ProfileRepo reads user display profiles. GetName returns an empty string
// without error when the user has no profile row.
type ProfileRepo interface {
	GetName(ctx context.Context, userID string) (string, error)
}

// Customer identifies the payer on the gateway's checkout page.
type Customer struct {
	FirstName string
	Email     string
}

// SessionRequest is everything the gateway needs to open a payment session.
type SessionRequest struct {
	OrderID  string
	Amount   int64
	ItemName string
	Customer Customer
}

// GatewaySession is a payable session minted by the gateway.
type GatewaySession struct {
	Token   string
	OrderID string
}

// PaymentGateway opens payment sessions with the external processor.
// Implementations fail GatewayRejected when the processor answered with a
// non-success status and GatewayUnavailable when no response arrived at all.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*GatewaySession, error)
}

// CheckoutUsecase runs the checkout pipeline end to end and owns its failure
// taxonomy: whatever a stage reports, what leaves this type is always one of
// the service errors. It keeps no per-request state, so one instance serves
// all requests concurrently.
type CheckoutUsecase struct {
	identity IdentityVerifier
	pricing  *PricingResolver
	profiles ProfileRepo
	ledger   TransactionRepo
	gateway  PaymentGateway
	log      *log.Helper

	// now is swapped out by tests that pin the order id clock.
	now func() time.Time
}

func NewCheckoutUsecase(
	identity IdentityVerifier,
	pricing *PricingResolver,
	profiles ProfileRepo,
	ledger TransactionRepo,
	gateway PaymentGateway,
	logger log.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		identity: identity,
		pricing:  pricing,
		profiles: profiles,
		ledger:   ledger,
		gateway:  gateway,
		log:      log.NewHelper(logger),
		now:      time.Now,
	}
}

// Checkout turns a bearer credential and a requested plan into a payable
// gateway session. The pipeline is strictly linear and aborts on the first
// failure: parse plan, verify caller, price, mint order id, record the
// pending transaction, then open the gateway session. The ledger write
// happens before the gateway call so a row exists for every order id the
// gateway has ever seen; when the gateway call fails the pending row is
// deliberately left in place as the audit record of the attempt.
func (uc *CheckoutUsecase) Checkout(ctx context.Context, bearerToken, paket string) (*GatewaySession, error) {
	// 1. Validate the requested plan.
	plan, err := ParsePlan(paket)
	if err != nil {
		uc.log.Warnf("checkout rejected: %v", err)
		return nil, err
	}

	// 2. Verify the caller. No ledger row and no gateway traffic exist for
	// requests that fail here.
	principal, err := uc.identity.Verify(ctx, bearerToken)
	if err != nil {
		uc.log.Warnf("identity verification failed: %v", err)
		return nil, err
	}

	// 3. Price the plan. Cannot fail; the quote may come from the fallback table.
	quote := uc.pricing.Resolve(ctx, plan)

	// 4. Mint the order reference.
	orderID := GenerateOrderID(principal, uc.now())

	// 5. Record the pending transaction. The row must be durable before the
	// gateway learns the order id.
	tx := &Transaction{
		UserID:          principal.ID,
		Paket:           plan.String(),
		Amount:          quote.Amount,
		MidtransOrderID: orderID,
		Status:          constants.StatusPending,
	}
	if err := uc.ledger.CreatePending(ctx, tx); err != nil {
		uc.log.Errorf("pending transaction write failed: user_id=%s order_id=%s err=%v", principal.ID, orderID, err)
		if !svcerrors.IsPersistenceError(err) {
			err = svcerrors.LedgerWriteFailed("could not record transaction")
		}
		return nil, err
	}

	// 6. Open the gateway session. The pending row stays even on failure.
	session, err := uc.gateway.CreateSession(ctx, &SessionRequest{
		OrderID:  orderID,
		Amount:   quote.Amount,
		ItemName: quote.ItemName,
		Customer: uc.customerFor(ctx, principal),
	})
	if err != nil {
		uc.log.Errorf("gateway session creation failed: user_id=%s order_id=%s err=%v", principal.ID, orderID, err)
		if !svcerrors.IsGatewayRejected(err) && !svcerrors.IsGatewayUnavailable(err) {
			err = svcerrors.GatewayUnavailable("payment gateway unavailable")
		}
		return nil, err
	}

	uc.log.Infof("checkout session created: user_id=%s plan=%s amount=%d order_id=%s fallback_price=%v",
		principal.ID, plan, quote.Amount, orderID, quote.Fallback)
	return &GatewaySession{Token: session.Token, OrderID: orderID}, nil
}

// customerFor assembles the gateway-facing payer identity. The profiles table
// is the preferred name source but never worth failing a checkout over: on
// any miss the principal's signup metadata stands in, then the email local
// part.
func (uc *CheckoutUsecase) customerFor(ctx context.Context, principal *Principal) Customer {
	name, err := uc.profiles.GetName(ctx, principal.ID)
	if err != nil {
		uc.log.Warnf("profile lookup failed for user %s: %v", principal.ID, err)
		name = ""
	}
	if name == "" {
		name = principal.DisplayName
	}
	if name == "" {
		name = emailLocalPart(principal.Email)
	}
	return Customer{FirstName: name, Email: principal.Email}
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
