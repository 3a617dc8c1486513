package cart

// Item is one cart line. Name, price and image are copied from the catalog
// when the line is created and never refreshed afterward, so an already
// added item keeps its price even if the catalog changes.
type Item struct {
	ID        string `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}
