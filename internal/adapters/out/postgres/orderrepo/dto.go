// Package orderrepo persists order aggregates with GORM. An order is stored as one
// row in orders plus its line items and status history in child tables.
package orderrepo

import (
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Amounts are stored in paise.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       string    `gorm:"index;not null"`
	CustomerName     string
	RunnerID         *string `gorm:"index"`
	RunnerName       *string
	VendorID         string  `gorm:"index;not null"`
	Zone             ZoneDTO `gorm:"embedded;embeddedPrefix:zone_"`
	TotalPrice       int64
	DeliveryFee      int64
	FinalAmount      int64
	Status           int       `gorm:"index;not null"`
	PaymentCollected bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"index;not null"`

	Items   []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []HistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ZoneDTO is the embedded delivery zone snapshot.
type ZoneDTO struct {
	ID   string
	Name string
}

// ItemDTO is one line item snapshot.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ProductID string    `gorm:"not null"`
	Name      string
	UnitPrice int64
	Quantity  int
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// HistoryDTO is one status history entry. Seq is the entry's index in the history.
type HistoryDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey"`
	Status  int       `gorm:"not null"`
	At      time.Time `gorm:"not null"`
}

func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	id := s.ID.Bytes()

	dto := OrderDTO{
		ID:               id,
		CustomerID:       s.CustomerID,
		CustomerName:     s.CustomerName,
		VendorID:         s.VendorID,
		Zone:             ZoneDTO{ID: s.Zone.ID, Name: s.Zone.Name},
		TotalPrice:       s.TotalPrice.Minor(),
		DeliveryFee:      s.DeliveryFee.Minor(),
		FinalAmount:      s.FinalAmount.Minor(),
		Status:           int(s.Status),
		PaymentCollected: s.PaymentCollected,
		CreatedAt:        s.CreatedAt,
		Items:            make([]ItemDTO, 0, len(s.Items)),
		History:          make([]HistoryDTO, 0, len(s.History)),
	}
	if s.Runner != nil {
		dto.RunnerID = &s.Runner.ID
		dto.RunnerName = &s.Runner.Name
	}
	for i, item := range s.Items {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:   id,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Minor(),
			Quantity:  item.Quantity,
		})
	}
	for i, h := range s.History {
		dto.History = append(dto.History, historyDTO(id, i, h))
	}
	return dto
}

func historyDTO(orderID uuid.UUID, seq int, h order.HistoryEntry) HistoryDTO {
	return HistoryDTO{OrderID: orderID, Seq: seq, Status: int(h.Status), At: h.At}
}

// toDomain rebuilds the aggregate through RestoreOrder, which re-checks its invariants.
// Items and History must be loaded ordered by Position and Seq.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	final, err := kernel.NewMoney(dto.FinalAmount)
	if err != nil {
		return nil, err
	}

	snap := order.Snapshot{
		ID:               id,
		CustomerID:       dto.CustomerID,
		CustomerName:     dto.CustomerName,
		VendorID:         dto.VendorID,
		TotalPrice:       total,
		DeliveryFee:      fee,
		FinalAmount:      final,
		Zone:             order.Zone{ID: dto.Zone.ID, Name: dto.Zone.Name, Fee: fee},
		Status:           order.Status(dto.Status),
		PaymentCollected: dto.PaymentCollected,
		CreatedAt:        dto.CreatedAt,
		Items:            make([]order.LineItem, 0, len(dto.Items)),
		History:          make([]order.HistoryEntry, 0, len(dto.History)),
	}
	if dto.RunnerID != nil {
		r := &order.Runner{ID: *dto.RunnerID}
		if dto.RunnerName != nil {
			r.Name = *dto.RunnerName
		}
		snap.Runner = r
	}
	for _, item := range dto.Items {
		price, err := kernel.NewMoney(item.UnitPrice)
		if err != nil {
			return nil, err
		}
		snap.Items = append(snap.Items, order.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  item.Quantity,
		})
	}
	for _, h := range dto.History {
		snap.History = append(snap.History, order.HistoryEntry{Status: order.Status(h.Status), At: h.At})
	}

	return order.RestoreOrder(snap)
}
