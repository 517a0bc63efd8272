package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/store"
)

// CheckoutState tracks one checkout attempt through the payment flow.
type CheckoutState string

const (
	StateIdle             CheckoutState = "Idle"
	StateValidating       CheckoutState = "ValidatingInputs"
	StateCreatingOrder    CheckoutState = "CreatingBackendOrder"
	StateAwaitingGateway  CheckoutState = "AwaitingGatewayWidget"
	StateGatewayCompleted CheckoutState = "GatewayCompleted"
	StateGatewayCancelled CheckoutState = "GatewayCancelled"
	StateFinalized        CheckoutState = "Finalized"
	StateFailed           CheckoutState = "Failed"
)

func (s CheckoutState) IsTerminal() bool {
	return s == StateFinalized
}

func (s CheckoutState) String() string {
	return string(s)
}

// GatewayIntent is a short-lived hosted-widget reference: the caller opens
// the widget with the token or redirect URL.
type GatewayIntent struct {
	Reference   string `json:"reference"`
	Token       string `json:"token,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// GatewayConfirmation is what the widget (or the gateway's server
// notification) reports back on success.
type GatewayConfirmation struct {
	OrderRef    string `json:"order_ref"`
	PaymentID   string `json:"payment_id"`
	StatusCode  string `json:"status_code,omitempty"`
	GrossAmount string `json:"gross_amount,omitempty"`
	Signature   string `json:"signature"`
}

// Gateway is the narrow seam in front of the hosted payment widget so the
// coordinator is testable without the real thing.
type Gateway interface {
	CreateIntent(ctx context.Context, ref string, amount int64, contact model.ShippingInfo) (*GatewayIntent, error)
	VerifySignature(conf GatewayConfirmation) bool
}

// CheckoutBackend is the slice of the backend client the coordinator needs.
type CheckoutBackend interface {
	ShippingRates(ctx context.Context) ([]model.ShippingOption, error)
	PaymentConfig(ctx context.Context) (*model.PaymentConfiguration, error)
	CreateOrder(ctx context.Context, token string, sub *model.OrderSubmission) (string, error)
}

// CheckoutService drives the pricing/ordering flow: validate inputs, create
// the gateway intent for prepaid methods, create the backend order exactly
// once, clear the cart on success. Orders are created only after the gateway
// reports success; a cancelled widget leaves nothing behind backend-side.
type CheckoutService struct {
	Backend CheckoutBackend
	Gateway Gateway
	Store   *store.SessionStore

	logger *zap.Logger

	mu       sync.Mutex
	attempts map[string]*checkoutAttempt
}

func NewCheckoutService(b CheckoutBackend, g Gateway, st *store.SessionStore, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		Backend:  b,
		Gateway:  g,
		Store:    st,
		logger:   logger,
		attempts: make(map[string]*checkoutAttempt),
	}
}

// checkoutAttempt is the per-session machine state plus the submission guard:
// a processing flag and a one-shot latch. Both reset on any failure or
// cancellation so the user can retry with a fresh click.
type checkoutAttempt struct {
	mu         sync.Mutex
	sessionID  string
	state      CheckoutState
	processing bool
	latched    bool

	ref        string
	token      string
	method     model.PaymentMethod
	submission *model.OrderSubmission
	breakdown  model.PriceBreakdown
	orderID    string
}

// arm claims the guard; false means an attempt is already in flight.
func (a *checkoutAttempt) arm() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.processing || a.latched {
		return false
	}
	a.processing = true
	a.latched = true
	a.state = StateValidating
	return true
}

// disarm releases the guard after a failure or cancellation.
func (a *checkoutAttempt) disarm(state CheckoutState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.processing = false
	a.latched = false
	a.state = state
}

func (a *checkoutAttempt) setState(state CheckoutState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = state
}

// State exposes the current machine state, Idle for untouched sessions.
func (s *CheckoutService) State(sessionID string) CheckoutState {
	s.mu.Lock()
	att, ok := s.attempts[sessionID]
	s.mu.Unlock()
	if !ok {
		return StateIdle
	}
	att.mu.Lock()
	defer att.mu.Unlock()
	if att.state == "" {
		return StateIdle
	}
	return att.state
}

type PlaceOrderRequest struct {
	ShippingInfo     model.ShippingInfo  `json:"shippingInfo"`
	ShippingOptionID string              `json:"shipping_option_id"`
	Method           model.PaymentMethod `json:"method"`
}

type PlaceOrderResult struct {
	State       CheckoutState        `json:"state"`
	OrderID     string               `json:"order_id,omitempty"`
	GatewayRef  string               `json:"gateway_ref,omitempty"`
	WidgetToken string               `json:"widget_token,omitempty"`
	RedirectURL string               `json:"redirect_url,omitempty"`
	Amount      float64              `json:"amount,omitempty"`
	Breakdown   model.PriceBreakdown `json:"breakdown"`
}

// PlaceOrder runs the flow up to either a finalized COD order or a pending
// gateway widget. Exactly one call per session gets past the guard at a time.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID, token string, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	att := s.attempt(sessionID)
	if !att.arm() {
		return nil, ErrCheckoutInProgress
	}

	st, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, s.fail(att, err)
	}
	items := st.Cart
	if len(items) == 0 {
		return nil, s.fail(att, ErrEmptyCart)
	}

	shipping := req.ShippingInfo
	if err := shipping.Validate(); err != nil {
		return nil, s.fail(att, err)
	}
	if err := ValidateStock(items); err != nil {
		return nil, s.fail(att, err)
	}

	rates, err := s.Backend.ShippingRates(ctx)
	if err != nil {
		return nil, s.fail(att, err)
	}
	var opt *model.ShippingOption
	for i := range rates {
		if rates[i].ID == req.ShippingOptionID && rates[i].Enabled {
			opt = &rates[i]
			break
		}
	}
	if opt == nil {
		return nil, s.fail(att, ErrShippingOptionUnavailable)
	}

	cfg, err := s.Backend.PaymentConfig(ctx)
	if err != nil {
		return nil, s.fail(att, err)
	}
	if !cfg.MethodEnabled(req.Method) {
		return nil, s.fail(att, ErrPaymentMethodDisabled)
	}

	q := Quote(items, opt, cfg, req.Method)

	if req.Method == model.MethodCOD {
		att.setState(StateCreatingOrder)
		sub := BuildSubmission(items, shipping, q, model.MethodCOD, "Pending")
		orderID, err := s.Backend.CreateOrder(ctx, token, sub)
		if err != nil {
			return nil, s.fail(att, err)
		}
		s.finish(att, orderID)
		return &PlaceOrderResult{State: StateFinalized, OrderID: orderID, Breakdown: q}, nil
	}

	// Prepaid: open a gateway intent for payableNow; the backend order waits
	// for the widget's confirmation.
	ref := fmt.Sprintf("ORDER-%s", uuid.NewString())
	intent, err := s.Gateway.CreateIntent(ctx, ref, roundUnit(q.PayableNow), shipping)
	if err != nil {
		s.logger.Warn("payment intent creation failed",
			zap.String("session", sessionID),
			zap.Error(err),
		)
		return nil, s.fail(att, err)
	}

	sub := BuildSubmission(items, shipping, q, req.Method, "Paid")
	att.mu.Lock()
	att.state = StateAwaitingGateway
	att.ref = ref
	att.token = token
	att.method = req.Method
	att.submission = sub
	att.breakdown = q
	att.mu.Unlock()

	return &PlaceOrderResult{
		State:       StateAwaitingGateway,
		GatewayRef:  ref,
		WidgetToken: intent.Token,
		RedirectURL: intent.RedirectURL,
		Amount:      float64(roundUnit(q.PayableNow)),
		Breakdown:   q,
	}, nil
}

// Confirm is the widget success callback: verify the signature, create the
// backend order with the gateway correlation ids, clear the cart. Calling it
// again for an already-finalized reference returns the same order id.
func (s *CheckoutService) Confirm(ctx context.Context, sessionID string, conf GatewayConfirmation) (*PlaceOrderResult, error) {
	att := s.lookup(sessionID)
	if att == nil {
		return nil, ErrNoPendingPayment
	}
	return s.finalizePrepaid(ctx, att, conf)
}

// Cancel handles a dismissed widget: not an error, just a released guard. The
// gateway-side order is left abandoned.
func (s *CheckoutService) Cancel(sessionID string) error {
	att := s.lookup(sessionID)
	if att == nil {
		return ErrNoPendingPayment
	}
	att.mu.Lock()
	if att.state != StateAwaitingGateway {
		att.mu.Unlock()
		return ErrNoPendingPayment
	}
	att.state = StateGatewayCancelled
	att.mu.Unlock()

	s.logger.Info("payment cancelled by user", zap.String("session", att.sessionID))
	att.disarm(StateIdle)
	return nil
}

func (s *CheckoutService) finalizePrepaid(ctx context.Context, att *checkoutAttempt, conf GatewayConfirmation) (*PlaceOrderResult, error) {
	att.mu.Lock()
	if att.state == StateFinalized && att.ref == conf.OrderRef {
		res := &PlaceOrderResult{State: StateFinalized, OrderID: att.orderID, Breakdown: att.breakdown}
		att.mu.Unlock()
		return res, nil
	}
	// A failed finalize after gateway success may be retried by the
	// notification webhook, hence Failed is re-entrant here.
	if att.ref == "" || att.ref != conf.OrderRef ||
		(att.state != StateAwaitingGateway && att.state != StateFailed) {
		att.mu.Unlock()
		return nil, ErrNoPendingPayment
	}
	sub := att.submission
	token := att.token
	att.state = StateGatewayCompleted
	att.mu.Unlock()

	if !s.Gateway.VerifySignature(conf) {
		s.logger.Warn("gateway signature rejected",
			zap.String("session", att.sessionID),
			zap.String("ref", conf.OrderRef),
		)
		return nil, s.fail(att, ErrInvalidSignature)
	}

	att.setState(StateCreatingOrder)
	sub.PaymentInfo.ID = conf.PaymentID
	sub.GatewayOrderID = conf.OrderRef
	sub.GatewayPaymentID = conf.PaymentID
	sub.GatewaySignature = conf.Signature

	orderID, err := s.Backend.CreateOrder(ctx, token, sub)
	if err != nil {
		// The customer has paid; keep ref and submission so a gateway
		// re-notification can retry this creation.
		s.logger.Error("order creation failed after gateway success",
			zap.String("session", att.sessionID),
			zap.String("ref", conf.OrderRef),
			zap.Error(err),
		)
		att.disarm(StateFailed)
		return nil, err
	}

	s.finish(att, orderID)
	att.mu.Lock()
	res := &PlaceOrderResult{State: StateFinalized, OrderID: orderID, Breakdown: att.breakdown}
	att.mu.Unlock()
	return res, nil
}

// HandleGatewayNotification processes the gateway's server-to-server
// callback. Settlements finalize idempotently in case the widget callback
// never reached us; expiries and denials release the guard.
func (s *CheckoutService) HandleGatewayNotification(ctx context.Context, payload map[string]interface{}) error {
	ref, _ := payload["order_id"].(string)
	if ref == "" {
		return errors.New("missing order_id")
	}
	att := s.lookupByRef(ref)
	if att == nil {
		return errors.New("unknown order reference")
	}

	conf := GatewayConfirmation{
		OrderRef:    ref,
		PaymentID:   stringField(payload, "transaction_id"),
		StatusCode:  stringField(payload, "status_code"),
		GrossAmount: stringField(payload, "gross_amount"),
		Signature:   stringField(payload, "signature_key"),
	}

	txStatus := stringField(payload, "transaction_status")
	fraudStatus := stringField(payload, "fraud_status")

	switch txStatus {
	case "settlement":
		_, err := s.finalizePrepaid(ctx, att, conf)
		return err
	case "capture":
		if fraudStatus == "accept" {
			_, err := s.finalizePrepaid(ctx, att, conf)
			return err
		}
	case "expire", "cancel", "deny":
		att.mu.Lock()
		pending := att.state == StateAwaitingGateway && att.ref == ref
		att.mu.Unlock()
		if pending {
			s.logger.Info("gateway reported abandoned payment", zap.String("ref", ref))
			att.disarm(StateIdle)
		}
	}
	return nil
}

func (s *CheckoutService) attempt(sessionID string) *checkoutAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	att, ok := s.attempts[sessionID]
	if !ok {
		att = &checkoutAttempt{sessionID: sessionID, state: StateIdle}
		s.attempts[sessionID] = att
	}
	return att
}

func (s *CheckoutService) lookup(sessionID string) *checkoutAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts[sessionID]
}

func (s *CheckoutService) lookupByRef(ref string) *checkoutAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, att := range s.attempts {
		att.mu.Lock()
		match := att.ref == ref
		att.mu.Unlock()
		if match {
			return att
		}
	}
	return nil
}

// fail records a failed attempt and releases the guard for a manual retry.
func (s *CheckoutService) fail(att *checkoutAttempt, err error) error {
	att.disarm(StateFailed)
	return err
}

// finish clears the cart and marks the attempt terminal. The guard resets:
// the session's next checkout starts over with an empty cart.
func (s *CheckoutService) finish(att *checkoutAttempt, orderID string) {
	if err := s.Store.Update(att.sessionID, func(st *store.State) error {
		st.Cart = []model.CartItem{}
		return nil
	}); err != nil {
		s.logger.Warn("failed to clear cart after order",
			zap.String("session", att.sessionID),
			zap.Error(err),
		)
	}

	att.mu.Lock()
	att.state = StateFinalized
	att.orderID = orderID
	att.processing = false
	att.latched = false
	att.mu.Unlock()

	s.logger.Info("order finalized",
		zap.String("session", att.sessionID),
		zap.String("order_id", orderID),
	)
}

func stringField(payload map[string]interface{}, key string) string {
	v, _ := payload[key].(string)
	return v
}
