package cafe

// Form field names accepted by POST /add.
const (
	FieldName        = "name"
	FieldMapURL      = "map_url"
	FieldImgURL      = "img_url"
	FieldLocation    = "loc"
	FieldSockets     = "sockets"
	FieldToilet      = "toilet"
	FieldWifi        = "wifi"
	FieldCalls       = "calls"
	FieldSeats       = "seats"
	FieldCoffeePrice = "coffee_price"
)

// CreateCafeRequest carries the raw form values of POST /add.
// A nil pointer means the field was not submitted.
type CreateCafeRequest struct {
	Name        *string
	MapURL      *string
	ImgURL      *string
	Location    *string
	Seats       *string
	CoffeePrice *string

	Sockets *string
	Toilet  *string
	Wifi    *string
	Calls   *string
}

// User facing messages.
const (
	msgAdded          = "Successfully added the new cafe."
	msgPriceUpdated   = "Successfully updated the price."
	msgDeleted        = "Successfully deleted the cafe from the database."
	msgCafeNotFound   = "Sorry a cafe with that id was not found in the database."
	msgNoCafes        = "Sorry, there are no cafes in the database yet."
	msgNoCafeAtLoc    = "Sorry, we don't have a cafe at that location."
	msgNoLocField     = "No location field provided. Please specify the location."
	msgDuplicateCafe  = "Sorry, a cafe with that name already exists."
	msgMissingField   = "Missing required cafe field. Please provide name, map_url, img_url, loc and seats."
	msgInvalidBoolean = "Boolean fields accept true/false, yes/no, on/off or 1/0."
	msgInternal       = "Sorry, something went wrong on our side."
)
