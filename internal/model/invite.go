package model

import (
	"crypto/rand"
	"fmt"
)

// InviteCodeLength длина пригласительного кода класса
const InviteCodeLength = 32

const inviteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateInviteCode генерирует пригласительный код класса:
// 32 заглавные латинские буквы
func GenerateInviteCode() (string, error) {
	buf := make([]byte, InviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}

	for i, b := range buf {
		buf[i] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}

	return string(buf), nil
}
