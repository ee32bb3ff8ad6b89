// Package render рисует изображения, отправляемые ботом:
// пригласительные QR-коды и расписание недели картинкой.
package render

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 512

// InviteQR кодирует пригласительную ссылку класса в PNG с QR-кодом
func InviteQR(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode invite qr: %w", err)
	}
	return png, nil
}
