package enum

// Order statuses as they appear in the orders sheet. The sheet is hand
// edited, so these are conventions rather than constraints; comparison
// against the terminal pair is case-insensitive (see order.Classify).

const (
	OrderStatusPending   = "Pending"
	OrderStatusComplete  = "Complete"
	OrderStatusCompleted = "Completed"
)

// Orders sheet column headers.
const (
	ColOrderNo         = "Order No"
	ColItemName        = "Item Name"
	ColWeight          = "Weight"
	ColQuantity        = "Quantity"
	ColSubtotal        = "Subtotal (PKR)"
	ColPaymentMode     = "Payment Mode"
	ColCustomerName    = "Customer Name"
	ColCustomerEmail   = "Customer Email"
	ColDeliveryAddress = "Delivery Address"
	ColStatus          = "Status"
)

// Products sheet column headers.
const (
	ColItemID      = "ItemID"
	ColProductName = "Product Name"
	ColPrice       = "Price (PKR)"
	ColMedia       = "Media"
	ColTags        = "Tags"
)
