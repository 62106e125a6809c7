package ports

import (
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
)

// Actor is the authenticated caller as the excluded I/O layer presents it:
// credentials are already checked, only identity and role matter here.
type Actor struct {
	Username string
	Role     directoryports.Role
}

type Operation string

const (
	OpViewProducts         Operation = "view_products"
	OpAddProduct           Operation = "add_product"
	OpUpdateProduct        Operation = "update_product"
	OpDeleteProduct        Operation = "delete_product"
	OpSearchByName         Operation = "search_by_name"
	OpSearchByCategory     Operation = "search_by_category"
	OpSearchByMaxPrice     Operation = "search_by_max_price"
	OpPlaceOrder           Operation = "place_order"
	OpCancelOrder          Operation = "cancel_order"
	OpTrackOrder           Operation = "track_order"
	OpOrderHistory         Operation = "order_history"
	OpSubmitBuyerFeedback  Operation = "submit_buyer_feedback"
	OpSubmitSellerFeedback Operation = "submit_seller_feedback"
	OpMyAverageRating      Operation = "my_average_rating"
	OpSubscribe            Operation = "subscribe"
	OpRegisterUser         Operation = "register_user"
	OpUserDetails          Operation = "user_details"
	OpProductCount         Operation = "product_count"
	OpProductFeedback      Operation = "product_feedback_report"
	OpSellerFeedback       Operation = "seller_feedback_report"
)

// Listing is a catalog product joined with the owning seller's contact
// number for display.
type Listing struct {
	Product       catalogports.Product
	SellerContact string
}

type AddProductArgs struct {
	Name            string
	Model           string
	Category        string
	OriginalPrice   int64
	DiscountedPrice int64
	Description     string
	Quantity        int
}

type UpdateProductArgs struct {
	ProductID       int64
	Name            string
	Model           string
	Category        string
	DiscountedPrice int64
	Quantity        int
}

type DeleteProductArgs struct {
	ProductID int64
}

type SearchArgs struct {
	Query string
}

type MaxPriceArgs struct {
	Limit int64
}

type PlaceOrderArgs struct {
	ProductID int64
}

type OrderArgs struct {
	OrderID int64
}

type BuyerFeedbackArgs struct {
	ProductID int64
	Review    string
	Rating    int
}

type SellerFeedbackArgs struct {
	Review string
	Rating int
}

type SubscribeArgs struct {
	Plan    string
	Channel string
}

type RegisterUserArgs struct {
	Username      string
	Password      string
	Role          string
	ContactNumber string
}
