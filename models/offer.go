package models

// CateringPackage is a catering offer in the package catalog.
type CateringPackage struct {
	ID          int64    `bson:"id" json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Image       string   `bson:"image" json:"image"` // Signed URL once an image is attached
	Attributes  []string `bson:"attributes" json:"attributes" gorm:"serializer:json"`
	Foods       []string `bson:"foods" json:"foods" gorm:"serializer:json"`
	Desserts    []string `bson:"desserts" json:"desserts" gorm:"serializer:json"`
	Price       float64  `bson:"price" json:"price"`
	MinPrice    float64  `bson:"min_price" json:"min_price"`
}

func (CateringPackage) TableName() string { return "packages" }

// PackageInput is the payload of a package create request.
type PackageInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Attributes  []string `json:"attributes"`
	Foods       []string `json:"foods"`
	Desserts    []string `json:"desserts"`
	Price       float64  `json:"price" validate:"gte=0"`
	MinPrice    float64  `json:"min_price" validate:"gte=0"`
	Image       string   `json:"image"` // Optional base64 payload or data URL
}

// PackagePatch carries only the fields an update supplies.
type PackagePatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Attributes  *[]string `json:"attributes"`
	Foods       *[]string `json:"foods"`
	Desserts    *[]string `json:"desserts"`
	Price       *float64  `json:"price"`
	MinPrice    *float64  `json:"min_price"`
	Image       string    `json:"image"`
}

// Apply copies the supplied fields onto p.
func (pp PackagePatch) Apply(p *CateringPackage) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Attributes != nil {
		p.Attributes = *pp.Attributes
	}
	if pp.Foods != nil {
		p.Foods = *pp.Foods
	}
	if pp.Desserts != nil {
		p.Desserts = *pp.Desserts
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.MinPrice != nil {
		p.MinPrice = *pp.MinPrice
	}
}

// MenuItem is a single dish offered a la carte.
type MenuItem struct {
	ID    int64   `bson:"id" json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
	Image string  `bson:"image" json:"image"`
}

func (MenuItem) TableName() string { return "menu_items" }

// MenuItemInput is the payload of a menu item create request.
type MenuItemInput struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Image string  `json:"image"`
}

// MenuItemPatch carries only the fields an update supplies.
type MenuItemPatch struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Image string   `json:"image"`
}

func (mp MenuItemPatch) Apply(m *MenuItem) {
	if mp.Name != nil {
		m.Name = *mp.Name
	}
	if mp.Price != nil {
		m.Price = *mp.Price
	}
}
