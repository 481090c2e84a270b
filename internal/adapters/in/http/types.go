package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types of api/openapi.yaml. Amounts are decimal rupees.

type OrderStatus string

type Role string

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Vendor struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	OperatingHours string `json:"operatingHours"`
	Image          string `json:"image"`
}

type Product struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"isAvailable"`
	VendorId    string  `json:"vendorId"`
}

type DeliveryZone struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	DeliveryFee float64 `json:"deliveryFee"`
}

type LineItem struct {
	ProductId string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

type Order struct {
	Id               openapi_types.UUID `json:"id"`
	CustomerId       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	RunnerId         *string            `json:"runnerId,omitempty"`
	RunnerName       *string            `json:"runnerName,omitempty"`
	VendorId         string             `json:"vendorId"`
	Items            []LineItem         `json:"items"`
	TotalPrice       float64            `json:"totalPrice"`
	DeliveryFee      float64            `json:"deliveryFee"`
	FinalAmount      float64            `json:"finalAmount"`
	DeliveryZone     DeliveryZone       `json:"deliveryZone"`
	Status           OrderStatus        `json:"status"`
	PaymentCollected bool               `json:"paymentCollected"`
	CreatedAt        time.Time          `json:"createdAt"`
	StatusHistory    []StatusEntry      `json:"statusHistory"`
}

type User struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Role       Role    `json:"role"`
	CampusId   *string `json:"campusId,omitempty"`
	VendorId   *string `json:"vendorId,omitempty"`
	IsApproved bool    `json:"isApproved"`
}

type SignUpRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Role     Role    `json:"role"`
	CampusId *string `json:"campusId,omitempty"`
	VendorId *string `json:"vendorId,omitempty"`
}

type PlaceOrderLine struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	OrderId        *openapi_types.UUID `json:"orderId,omitempty"`
	DeliveryZoneId string              `json:"deliveryZoneId"`
	Items          []PlaceOrderLine    `json:"items"`
}

type AvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

type DeliveryZoneUpdate struct {
	Name        string  `json:"name"`
	DeliveryFee float64 `json:"deliveryFee"`
}

type Earnings struct {
	Deliveries int     `json:"deliveries"`
	Earnings   float64 `json:"earnings"`
	Orders     []Order `json:"orders"`
}

type VendorSummary struct {
	VendorId   string         `json:"vendorId"`
	OrderCount int            `json:"orderCount"`
	Revenue    float64        `json:"revenue"`
	ByStatus   map[string]int `json:"byStatus"`
}

// ListAllOrdersParams defines parameters for ListAllOrders.
type ListAllOrdersParams struct {
	Status *[]OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}
