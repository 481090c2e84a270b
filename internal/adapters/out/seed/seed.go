// Package seed loads the demo campus: five vendors with their menus, three
// delivery zones and one account per demo persona.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
)

type vendorRow struct{ id, name, hours, image string }

type productRow struct {
	id, name, description string
	price                 int64
	category              string
	available             bool
	vendorID              string
}

type zoneRow struct {
	id, name string
	fee      int64
}

type userRow struct {
	id, name, phone    string
	role               user.Role
	campusID, vendorID string
	approved           bool
}

var vendors = []vendorRow{
	{"vendor1", "South Indian Canteen", "8:00 AM - 9:00 PM", "https://i.ibb.co/6rP0g2P/south-indian.jpg"},
	{"vendor2", "North Indian Canteen", "11:00 AM - 10:00 PM", "https://i.ibb.co/VmD5y5j/north-indian.jpg"},
	{"vendor3", "The Bake Shop", "10:00 AM - 8:00 PM", "https://i.ibb.co/hZJ7q1q/bakery.jpg"},
	{"vendor4", "Campus Xerox", "9:00 AM - 6:00 PM", "https://i.ibb.co/GQLF9tq/xerox.jpg"},
	{"vendor5", "Student Stationery", "9:00 AM - 8:00 PM", "https://i.ibb.co/xLMd2s5/stationery.jpg"},
}

var products = []productRow{
	{"item1", "Masala Dosa", "Crispy rice crepe filled with spiced potatoes.", 120, "Main Course", true, "vendor1"},
	{"item2", "Idli Sambar", "Steamed rice cakes served with lentil soup.", 80, "Main Course", true, "vendor1"},
	{"item7", "Filter Coffee", "Traditional South Indian filter coffee.", 40, "Beverages", true, "vendor1"},

	{"item3", "Butter Chicken", "Creamy tomato-based curry with tender chicken.", 250, "Main Course", true, "vendor2"},
	{"item4", "Garlic Naan", "Soft flatbread with garlic and butter.", 60, "Sides", true, "vendor2"},
	{"item6", "Paneer Tikka", "Marinated cottage cheese cubes grilled to perfection.", 220, "Starters", true, "vendor2"},
	{"item8", "Lassi", "A refreshing yogurt-based drink.", 70, "Beverages", true, "vendor2"},

	{"item9", "Chocolate Truffle Cake", "Rich and decadent chocolate cake slice.", 150, "Desserts", true, "vendor3"},
	{"item10", "Red Velvet Pastry", "Cream cheese frosting on a moist red velvet base.", 130, "Desserts", false, "vendor3"},
	{"item5", "Croissant", "Buttery and flaky classic French pastry.", 90, "Snacks", true, "vendor3"},

	{"p1", "B&W Print (A4)", "Single-sided black and white print.", 2, "Printing", true, "vendor4"},
	{"p2", "Color Print (A4)", "Single-sided color print.", 10, "Printing", true, "vendor4"},
	{"p3", "Spiral Binding", "Per book, up to 100 pages.", 50, "Binding", true, "vendor4"},

	{"s1", "Classic Notebook", "A5 size, 180 pages, ruled.", 65, "Notebooks", true, "vendor5"},
	{"s2", "Gel Pen (Blue)", "Smooth writing blue gel pen.", 15, "Pens", true, "vendor5"},
	{"s3", "Highlighter Set", "Pack of 5 assorted colors.", 120, "Essentials", true, "vendor5"},
}

var zones = []zoneRow{
	{"zone1", "Innovation Hall (Building A)", 20},
	{"zone2", "Library Commons (Building B)", 25},
	{"zone3", "Science Center (Building C)", 22},
}

var users = []userRow{
	{"cust1", "Alice Johnson", "1111111111", user.Customer, "", "", true},
	{"cust2", "Bob Williams", "2222222222", user.Customer, "", "", true},
	{"run1", "Charlie Brown", "3333333333", user.Runner, "RUN001", "", true},
	{"run2", "Diana Miller", "4444444444", user.Runner, "RUN002", "", true},
	{"run3", "Eve Davis", "5555555555", user.Runner, "RUN003", "", false},
	{"run4", "Frank White", "6666666666", user.Runner, "RUN004", "", true},
	{"run5", "Grace Lee", "7777777777", user.Runner, "RUN005", "", false},
	{"cant1", "Henry Taylor", "8888888888", user.Canteen, "", "vendor1", true},
	{"admin1", "Ivy Green", "9999999999", user.Admin, "", "", true},
}

// Load writes the demo data in one transaction. It does nothing when any
// vendor already exists, so it is safe to run on every start.
func Load(ctx context.Context, factory ports.UnitOfWorkFactory, logger *slog.Logger) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cat := uow.CatalogRepository()
	existing, err := cat.ListVendors(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("demo data skipped, catalog is not empty", "vendors", len(existing))
		return nil
	}

	for _, r := range vendors {
		v, err := catalog.NewVendor(r.id, r.name, r.hours, r.image)
		if err != nil {
			return err
		}
		if err = cat.AddVendor(ctx, v); err != nil {
			return err
		}
	}
	for _, r := range products {
		p, err := catalog.NewProduct(r.id, r.name, r.description, kernel.Rupees(r.price), r.category, r.available, r.vendorID)
		if err != nil {
			return err
		}
		if err = cat.AddProduct(ctx, p); err != nil {
			return err
		}
	}
	for _, r := range zones {
		z, err := catalog.NewDeliveryZone(r.id, r.name, kernel.Rupees(r.fee))
		if err != nil {
			return err
		}
		if err = cat.AddZone(ctx, z); err != nil {
			return err
		}
	}

	accounts := uow.UserRepository()
	for _, r := range users {
		u, err := user.RestoreUser(r.id, r.name, "", r.phone, r.role, r.campusID, r.vendorID, r.approved)
		if err != nil {
			return err
		}
		if err = accounts.Add(ctx, u); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	logger.Info("demo data loaded",
		"vendors", len(vendors), "products", len(products), "zones", len(zones), "users", len(users))
	return nil
}
