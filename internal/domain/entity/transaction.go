package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the record handed back to the caller after a dynamic QR
// has been generated. It is built once per request and never mutated.
type Transaction struct {
	id        uuid.UUID
	amount    int64
	payload   string
	imageURL  string
	createdAt time.Time
	expiresAt time.Time
}

func NewTransaction(amount int64, payload, imageURL string, validity time.Duration) *Transaction {
	now := time.Now()
	return &Transaction{
		id:        uuid.New(),
		amount:    amount,
		payload:   payload,
		imageURL:  imageURL,
		createdAt: now,
		expiresAt: now.Add(validity),
	}
}

func ReconstructTransaction(
	id uuid.UUID,
	amount int64,
	payload, imageURL string,
	createdAt, expiresAt time.Time,
) *Transaction {
	return &Transaction{
		id:        id,
		amount:    amount,
		payload:   payload,
		imageURL:  imageURL,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

func (t *Transaction) ID() uuid.UUID {
	return t.id
}

func (t *Transaction) Amount() int64 {
	return t.amount
}

func (t *Transaction) Payload() string {
	return t.payload
}

func (t *Transaction) ImageURL() string {
	return t.imageURL
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) ExpiresAt() time.Time {
	return t.expiresAt
}
