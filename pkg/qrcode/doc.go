// Package qrcode renders payment links as QR code images using
// github.com/skip2/go-qrcode.
//
// DataURI returns a "data:image/png;base64,..." string that skins embed
// directly, so rendered documents stay self-contained:
//
//	src, err := qrcode.DataURI(inv.PaymentURL, qrcode.WithSize(160))
package qrcode
