package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RanganathP76/ecommerce-frontend/internal/services"
)

func TestVerifySignature(t *testing.T) {
	g := &SnapGateway{serverKey: "server-key"}

	conf := services.GatewayConfirmation{
		OrderRef:    "ORDER-123",
		StatusCode:  "200",
		GrossAmount: "950.00",
	}
	sum := sha512.Sum512([]byte("ORDER-123" + "200" + "950.00" + "server-key"))
	conf.Signature = hex.EncodeToString(sum[:])

	assert.True(t, g.VerifySignature(conf))

	conf.Signature = "deadbeef"
	assert.False(t, g.VerifySignature(conf))

	tampered := conf
	sum = sha512.Sum512([]byte("ORDER-123" + "200" + "1.00" + "server-key"))
	tampered.Signature = hex.EncodeToString(sum[:])
	tampered.GrossAmount = "950.00"
	assert.False(t, g.VerifySignature(tampered), "amount is covered by the signature")
}
