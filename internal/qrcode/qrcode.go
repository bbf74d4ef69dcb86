package qrcode

import qr "github.com/skip2/go-qrcode"

// JoinLink renders the join URL of a game as a PNG QR code, sized for a
// phone camera across a table.
func JoinLink(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, 320)
}
