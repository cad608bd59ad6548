package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&restaurantRecord{},
		&productRecord{},
		&menuEntryRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&idempotencyRecord{},
	)
}

// Restaurant schema mirrors the catalog Postgres adapter.
type restaurantRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"column:name;type:varchar(50)"`
	Address      string    `gorm:"column:address;type:varchar(100)"`
	ContactPhone string    `gorm:"column:contact_phone;type:varchar(50)"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (restaurantRecord) TableName() string { return "restaurants" }

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID           int64           `gorm:"primaryKey;column:id"`
	Name         string          `gorm:"column:name;type:varchar(50)"`
	CategoryID   *int64          `gorm:"column:category_id"`
	CategoryName string          `gorm:"column:category_name;type:varchar(50)"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(8,2)"`
	ImageURL     string          `gorm:"column:image_url"`
	Description  string          `gorm:"column:description;type:varchar(200)"`
	Special      bool            `gorm:"column:special;index"`
	Orderable    bool            `gorm:"column:orderable;index"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Menu entry schema mirrors the catalog Postgres adapter. The unique index
// keeps at most one entry per (restaurant, product) pair.
type menuEntryRecord struct {
	RestaurantID int64     `gorm:"primaryKey;column:restaurant_id;uniqueIndex:idx_menu_restaurant_product"`
	ProductID    int64     `gorm:"primaryKey;column:product_id;uniqueIndex:idx_menu_restaurant_product"`
	Availability bool      `gorm:"column:availability;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (menuEntryRecord) TableName() string { return "menu_entries" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID           int64      `gorm:"primaryKey;column:id"`
	Firstname    string     `gorm:"column:firstname;type:varchar(50);index"`
	Lastname     string     `gorm:"column:lastname;type:varchar(50);index"`
	Phonenumber  string     `gorm:"column:phonenumber;type:varchar(50);index"`
	Address      string     `gorm:"column:address;type:varchar(255)"`
	Comment      string     `gorm:"column:comment"`
	Status       string     `gorm:"column:status;type:varchar(16);index"`
	Payment      string     `gorm:"column:payment;type:varchar(16);index"`
	RegisteredAt time.Time  `gorm:"column:registered_at;index"`
	CalledAt     *time.Time `gorm:"column:called_at"`
	DeliveredAt  *time.Time `gorm:"column:delivered_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Order item schema mirrors the orders Postgres adapter. Price is the unit
// price captured at registration, decoupled from the catalog.
type orderItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id;autoIncrement"`
	OrderID   int64           `gorm:"column:order_id;index"`
	ProductID int64           `gorm:"column:product_id;index"`
	Quantity  int32           `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(8,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Idempotency key schema mirrors the orders idempotency store.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	OrderID     int64     `gorm:"column:order_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "order_idempotency_keys" }
