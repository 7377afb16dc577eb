package model

import "time"

// Permission tags carried by a user. Stored as an ordered JSON array so the
// set survives round-trips unchanged.
const (
	PermissionAdmin            = "ADMIN"
	PermissionUser             = "USER"
	PermissionItemCreate       = "ITEMCREATE"
	PermissionItemUpdate       = "ITEMUPDATE"
	PermissionItemDelete       = "ITEMDELETE"
	PermissionPermissionUpdate = "PERMISSIONUPDATE"
)

// AllPermissions is the closed set a permission update may draw from.
var AllPermissions = []string{
	PermissionAdmin,
	PermissionUser,
	PermissionItemCreate,
	PermissionItemUpdate,
	PermissionItemDelete,
	PermissionPermissionUpdate,
}

type User struct {
	ID          string   `gorm:"primaryKey;size:36;not null"`
	Name        string   `gorm:"size:255;not null"`
	Email       string   `gorm:"size:255;uniqueIndex;not null"` // lowercased at signup
	Password    string   `gorm:"size:255;not null"`             // bcrypt hash
	Permissions []string `gorm:"serializer:json"`

	ResetToken       *string `gorm:"size:64;index"`
	ResetTokenExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Item struct {
	ID          string `gorm:"primaryKey;size:36;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Price       int64  `gorm:"not null"` // minor currency units
	Image       string `gorm:"size:512"`
	LargeImage  string `gorm:"size:512"`
	// Owner, set at creation and never reassigned.
	UserID string `gorm:"size:36;index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID       string `gorm:"primaryKey;size:36;not null"`
	UserID   string `gorm:"size:36;not null;uniqueIndex:idx_cart_user_item"`
	ItemID   string `gorm:"size:36;not null;uniqueIndex:idx_cart_user_item"`
	Quantity int32  `gorm:"not null"`

	Item *Item `gorm:"foreignKey:ItemID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID     string `gorm:"primaryKey;size:36;not null"`
	UserID string `gorm:"size:36;index;not null"`
	// Processor-confirmed amount; equals the sum of item price*quantity.
	Total  int64  `gorm:"not null"`
	Charge string `gorm:"size:128;not null"` // opaque processor charge id

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
}

// OrderItem is a snapshot of an Item at purchase time. It deliberately keeps
// no reference to the live Item, so catalog edits and deletions never alter
// order history.
type OrderItem struct {
	ID          string `gorm:"primaryKey;size:36;not null"`
	OrderID     string `gorm:"size:36;index;not null"`
	UserID      string `gorm:"size:36;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Price       int64  `gorm:"not null"`
	Image       string `gorm:"size:512"`
	LargeImage  string `gorm:"size:512"`
	Quantity    int32  `gorm:"not null"`

	CreatedAt time.Time
}

// Session is the server-side record behind a session token. A token is only
// honored while its session row exists, is unexpired, and has not been
// revoked; signout revokes it.
type Session struct {
	TokenID   string `gorm:"primaryKey;size:36;not null"` // jwt jti
	UserID    string `gorm:"size:36;index;not null"`
	ExpiresAt time.Time
	RevokedAt *time.Time

	CreatedAt time.Time
}
