package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// VerificationCodeDigits is the length of issued verification codes
const VerificationCodeDigits = 6

// Verification is a pending, single-use phone verification keyed by phone
type Verification struct {
	Phone     string         `json:"phone" firestore:"phone"`
	Code      string         `json:"-" firestore:"code" masq:"secret"`
	Role      types.UserRole `json:"userType" firestore:"role"`
	ExpiresAt time.Time      `json:"expiresAt" firestore:"expires_at"`
	CreatedAt time.Time      `json:"createdAt" firestore:"created_at"`
}

// IsExpired reports whether the code can no longer be used at now
func (v *Verification) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}

// VerifiedPhone records that a phone completed verification for a role
type VerifiedPhone struct {
	Phone      string         `json:"phone" firestore:"phone"`
	Role       types.UserRole `json:"userType" firestore:"role"`
	VerifiedAt time.Time      `json:"verifiedAt" firestore:"verified_at"`
}

// NewVerificationCode returns a uniformly random numeric code
func NewVerificationCode() (string, error) {
	limit := big.NewInt(1)
	for range VerificationCodeDigits {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate verification code")
	}
	return fmt.Sprintf("%0*d", VerificationCodeDigits, n.Int64()), nil
}
