package http

import (
	"fmt"
	"strings"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

// EncodeCheckQRCode renders the check of o as a PNG QR code.
func EncodeCheckQRCode(o queries.OrderResponse) ([]byte, error) {
	png, err := qrcode.Encode(checkText(o), qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code for order %d: %w", o.ID, err)
	}
	return png, nil
}

func checkText(o queries.OrderResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d\nTable %d\n", o.ID, o.TableNumber)
	for _, l := range o.Items {
		fmt.Fprintf(&b, "%d x %s %s\n", l.Quantity, l.Name, l.Subtotal)
	}
	fmt.Fprintf(&b, "Total %s\nPayment %s", o.Total, o.PaymentStatus)
	return b.String()
}
