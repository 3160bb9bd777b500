package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the six known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Customer struct {
	FirstName string `bson:"first_name" json:"firstName" validate:"required"`
	LastName  string `bson:"last_name" json:"lastName" validate:"required"`
	Phone     string `bson:"phone" json:"phone" validate:"required"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
}

type Address struct {
	Street      string `bson:"street,omitempty" json:"street,omitempty"`
	HouseNumber string `bson:"house_number,omitempty" json:"houseNumber,omitempty"`
	Floor       string `bson:"floor,omitempty" json:"floor,omitempty"`
	ZipCode     string `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
	City        string `bson:"city,omitempty" json:"city,omitempty"`
}

type Delivery struct {
	Type             string `bson:"type,omitempty" json:"type,omitempty"`
	Notes            string `bson:"notes,omitempty" json:"notes,omitempty"`
	PickupTimeOption string `bson:"pickup_time_option,omitempty" json:"pickupTimeOption,omitempty"`
	PickupTime       string `bson:"pickup_time,omitempty" json:"pickupTime,omitempty"`
	PreorderTime     string `bson:"preorder_time,omitempty" json:"preorderTime,omitempty"`
}

type Payment struct {
	Method string `bson:"method,omitempty" json:"method,omitempty"`
}

type OrderExtra struct {
	ID       int64   `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int64   `bson:"quantity" json:"quantity"`
}

type OrderItem struct {
	ID         int64        `bson:"id" json:"id" validate:"required"`
	Name       string       `bson:"name" json:"name"`
	SizeLabel  string       `bson:"size_label,omitempty" json:"sizeLabel,omitempty"`
	Quantity   int64        `bson:"quantity" json:"quantity"`
	BasePrice  float64      `bson:"base_price" json:"basePrice"`
	TotalPrice float64      `bson:"total_price" json:"totalPrice"`
	Image      string       `bson:"image,omitempty" json:"image,omitempty"`
	Extras     []OrderExtra `bson:"extras" json:"extras"`
}

// Order is the persisted order record. The numeric id is the business key,
// derived from creation time and unique for the lifetime of the record.
type Order struct {
	ID          int64       `bson:"id" json:"id"`
	Customer    Customer    `bson:"customer" json:"customer" validate:"required"`
	Address     Address     `bson:"address,omitempty" json:"address,omitempty"`
	Delivery    Delivery    `bson:"delivery,omitempty" json:"delivery,omitempty"`
	Payment     Payment     `bson:"payment,omitempty" json:"payment,omitempty"`
	Items       []OrderItem `bson:"items" json:"items" validate:"required,min=1,dive"`
	Subtotal    float64     `bson:"subtotal" json:"subtotal"`
	DeliveryFee float64     `bson:"delivery_fee" json:"deliveryFee"`
	TotalPrice  float64     `bson:"total_price" json:"totalPrice" validate:"required,gt=0"`
	Status      OrderStatus `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`

	StripeSessionID       string     `bson:"stripe_session_id,omitempty" json:"stripeSessionId,omitempty"`
	StripePaymentIntentID string     `bson:"stripe_payment_intent_id,omitempty" json:"stripePaymentIntentId,omitempty"`
	StripeRefundID        string     `bson:"stripe_refund_id,omitempty" json:"stripeRefundId,omitempty"`
	RefundedAt            *time.Time `bson:"refunded_at,omitempty" json:"refundedAt,omitempty"`
}
