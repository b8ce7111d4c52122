package transport

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=artisan customer"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateArtisanRequest is a merge-patch body: only non-nil fields are applied.
type UpdateArtisanRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Email       *string `json:"email"       validate:"omitempty,email"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Specialties *string `json:"specialties"`
	Experience  *string `json:"experience"`
	ImageURL    *string `json:"imageUrl"    validate:"omitempty,url"`
	IsActive    *bool   `json:"isActive"`
}

type CreateProductRequest struct {
	Name                 string  `json:"name"                 validate:"required"`
	Description          string  `json:"description"          validate:"required"`
	Price                float64 `json:"price"                validate:"gte=0"`
	Category             string  `json:"category"             validate:"required"`
	ImageURL             string  `json:"imageUrl"             validate:"required,url"`
	CulturalSignificance *string `json:"culturalSignificance"`
	Materials            *string `json:"materials"`
	Stock                uint    `json:"stock"                validate:"gte=0"`
}

// UpdateProductRequest is a merge-patch body: absent keys leave the stored
// field untouched.
type UpdateProductRequest struct {
	Name                 *string  `json:"name"                 validate:"omitempty,min=1"`
	Description          *string  `json:"description"          validate:"omitempty,min=1"`
	Price                *float64 `json:"price"                validate:"omitempty,gte=0"`
	Category             *string  `json:"category"             validate:"omitempty,min=1"`
	ImageURL             *string  `json:"imageUrl"             validate:"omitempty,url"`
	CulturalSignificance *string  `json:"culturalSignificance"`
	Materials            *string  `json:"materials"`
	Stock                *uint    `json:"stock"                validate:"omitempty,gte=0"`
	IsActive             *bool    `json:"isActive"`
}

type CreateOrderItem struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  uint `json:"quantity"  validate:"required,gte=1"`
}

type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items"           validate:"required,min=1,dive"`
	ShippingAddress string            `json:"shippingAddress" validate:"required"`
	PaymentMethod   string            `json:"paymentMethod"   validate:"required"`
	// Status is accepted but ignored: new orders are always pending.
	Status string `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}
