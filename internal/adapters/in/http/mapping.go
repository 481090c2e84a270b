package http

import (
	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
)

func toOrder(o *order.Order) Order {
	items := o.Items()
	history := o.History()
	zone := o.Zone()

	out := Order{
		Id:           o.ID().Bytes(),
		CustomerId:   o.CustomerID(),
		CustomerName: o.CustomerName(),
		VendorId:     o.VendorID(),
		Items:        make([]LineItem, len(items)),
		TotalPrice:   o.TotalPrice().Decimal(),
		DeliveryFee:  o.DeliveryFee().Decimal(),
		FinalAmount:  o.FinalAmount().Decimal(),
		DeliveryZone: DeliveryZone{
			Id:          zone.ID,
			Name:        zone.Name,
			DeliveryFee: zone.Fee.Decimal(),
		},
		Status:           OrderStatus(o.Status().String()),
		PaymentCollected: o.PaymentCollected(),
		CreatedAt:        o.CreatedAt(),
		StatusHistory:    make([]StatusEntry, len(history)),
	}
	if r := o.Runner(); r != nil {
		out.RunnerId = &r.ID
		out.RunnerName = &r.Name
	}
	for i, item := range items {
		out.Items[i] = LineItem{
			ProductId: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice.Decimal(),
			Quantity:  item.Quantity,
		}
	}
	for i, h := range history {
		out.StatusHistory[i] = StatusEntry{Status: OrderStatus(h.Status.String()), Timestamp: h.At}
	}
	return out
}

func toOrders(orders []*order.Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	return out
}

func toUser(u *user.User) User {
	out := User{
		Id:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Phone:      u.Phone(),
		Role:       Role(u.Role().String()),
		IsApproved: u.IsApproved(),
	}
	if v := u.CampusID(); v != "" {
		out.CampusId = &v
	}
	if v := u.VendorID(); v != "" {
		out.VendorId = &v
	}
	return out
}

func toProduct(p *catalog.Product) Product {
	return Product{
		Id:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Category:    p.Category(),
		IsAvailable: p.IsAvailable(),
		VendorId:    p.VendorID(),
	}
}

func toZone(z catalog.DeliveryZone) DeliveryZone {
	return DeliveryZone{Id: z.ID, Name: z.Name, DeliveryFee: z.DeliveryFee.Decimal()}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
