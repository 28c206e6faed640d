package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailVerificationTTL is how long a verification link stays valid.
const EmailVerificationTTL = 6 * time.Hour

// EmailVerification is a pending confirmation of a user's email address.
type EmailVerification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Token     string             `bson:"token" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"` // TTL index key
}

// Expired reports whether the token is older than EmailVerificationTTL at now.
func (v *EmailVerification) Expired(now time.Time) bool {
	return now.Sub(v.CreatedAt) > EmailVerificationTTL
}
