package domain

// ProductID идентификатор товара в каталоге
type ProductID string

const (
	ProductPure   ProductID = "pure"
	ProductMarine ProductID = "marine"
	ProductBeauty ProductID = "beauty"
)

// Product представляет товар из статичного каталога. Цена в RSD без дробной части.
type Product struct {
	ID        ProductID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
}

// CartLine позиция в корзине: не больше одной на товар
type CartLine struct {
	ProductID ProductID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// Selection выбор одного товара в форме заказа (1..99 штук)
type Selection struct {
	ProductID ProductID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// SummaryLine строка расчёта, всегда производная от корзины и каталога
type SummaryLine struct {
	ProductID ProductID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	Total     int64     `json:"total"`
}

// PriceSummary итог расчёта. Никогда не хранится, только вычисляется.
type PriceSummary struct {
	Lines     []SummaryLine `json:"lines"`
	ItemCount int           `json:"item_count"`
	Subtotal  int64         `json:"subtotal"`
	Discount  int64         `json:"discount"`
	Shipping  int64         `json:"shipping"`
	Total     int64         `json:"total"`
}

// Empty true, когда в расчёт не попало ни одной позиции
func (s PriceSummary) Empty() bool {
	return len(s.Lines) == 0
}

// NoticeKind тип всплывающего уведомления
type NoticeKind string

const (
	NoticeAdded   NoticeKind = "added"
	NoticeError   NoticeKind = "error"
	NoticeSuccess NoticeKind = "success"
)

// Notice кратковременное уведомление, которое само исчезает
type Notice struct {
	ID   int64      `json:"id"`
	Key  string     `json:"key"`
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// Customer данные покупателя из формы заказа
type Customer struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Phone   string `json:"phone" form:"phone" validate:"required"`
	Email   string `json:"email" form:"email" validate:"omitempty,email"`
	Address string `json:"address" form:"address" validate:"required"`
	City    string `json:"city" form:"city" validate:"required"`
	Note    string `json:"note" form:"note"`
}
