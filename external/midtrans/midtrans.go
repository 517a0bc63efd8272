package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/RanganathP76/ecommerce-frontend/internal/config"
	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/services"
)

// SnapGateway drives the hosted Snap payment page. It implements
// services.Gateway: the coordinator hands it a reference and an amount and
// gets back what the widget needs to open.
type SnapGateway struct {
	client    snap.Client
	serverKey string
}

func NewSnapGateway(cfg config.GatewayConfig) *SnapGateway {
	env := midtrans.Sandbox
	if cfg.Environment == "production" {
		env = midtrans.Production
	}

	g := &SnapGateway{serverKey: cfg.ServerKey}
	g.client.New(cfg.ServerKey, env)
	return g
}

func (g *SnapGateway) CreateIntent(ctx context.Context, ref string, amount int64, contact model.ShippingInfo) (*services.GatewayIntent, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  ref,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: contact.Name,
			Email: contact.Email,
			Phone: contact.Phone,
		},
	}

	resp, snapErr := g.client.CreateTransaction(req)
	if snapErr != nil {
		return nil, snapErr
	}

	return &services.GatewayIntent{
		Reference:   ref,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// VerifySignature checks the SHA-512 signature the gateway attaches to its
// confirmations: hex(sha512(order_id + status_code + gross_amount + serverKey)).
func (g *SnapGateway) VerifySignature(conf services.GatewayConfirmation) bool {
	raw := conf.OrderRef + conf.StatusCode + conf.GrossAmount + g.serverKey
	hash := sha512.Sum512([]byte(raw))
	expected := hex.EncodeToString(hash[:])

	return expected == conf.Signature
}
