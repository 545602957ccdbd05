package marketing

// Per-tool request structs. Dispatch decodes validated argument maps into
// these; fields absent from the arguments stay at their zero value. The
// endpoint id is injected by the dispatcher when the caller does not carry
// one.

type ContactInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PlaceInput struct {
	PlaceUuid string `json:"place_uuid"`
}

type PlaceRequest struct {
	EndpointId   string   `json:"endpoint_id"`
	PlaceUuid    string   `json:"place_uuid"`
	Region       string   `json:"region"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Address      string   `json:"address"`
	BusinessName string   `json:"business_name"`
	PhoneNumber  string   `json:"phone_number"`
	Website      string   `json:"website"`
	Types        []string `json:"types"`
}

type ContactProfileRequest struct {
	EndpointId string       `json:"endpoint_id"`
	Contact    ContactInput `json:"contact"`
	Place      PlaceInput   `json:"place"`
}

type DataCollectRequest struct {
	EndpointId         string `json:"endpoint_id"`
	DataCollectDataset string `json:"data_collect_dataset"`
}

type RequestSubmission struct {
	EndpointId    string `json:"endpoint_id"`
	PlaceUuid     string `json:"place_uuid"`
	ContactUuid   string `json:"contact_uuid"`
	RequestTitle  string `json:"request_title"`
	RequestDetail string `json:"request_detail"`
}

type QuestionGroupRequest struct {
	EndpointId string `json:"endpoint_id"`
	PlaceUuid  string `json:"place_uuid"`
}

type GooglePlaceSettingRequest struct {
	EndpointId string `json:"endpoint_id"`
}

type ProductDataRequest struct {
	EndpointId string `json:"endpoint_id"`
}

type DraftOrderItem struct {
	VariantId string `json:"variant_id"`
	Quantity  *int   `json:"quantity"`
}

type DraftOrderRequest struct {
	EndpointId      string           `json:"endpoint_id"`
	Contact         ContactInput     `json:"contact"`
	ShippingAddress map[string]any   `json:"shipping_address"`
	BillingAddress  map[string]any   `json:"billing_address"`
	Items           []DraftOrderItem `json:"items"`
}
