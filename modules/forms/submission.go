package forms

// Inquiry types offered by the contact form. The validator only requires the
// field to be present; the set documents what the UI sends.
const (
	InquirySales       = "sales"
	InquirySupport     = "support"
	InquiryPartnership = "partnership"
	InquiryGeneral     = "general"
	InquiryBilling     = "billing"
	InquiryOther       = "other"
)

// Company size buckets offered by the demo request form, in shipments per month.
const (
	CompanySizeSmall  = "1-50"
	CompanySizeMedium = "51-200"
	CompanySizeLarge  = "201-500"
	CompanySizeXLarge = "500+"
)

// ContactSubmission is a single contact form payload. It is created fresh per
// request, validated once and discarded after the pipeline completes; nothing
// is persisted.
type ContactSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	Phone       string `json:"phone,omitempty"`
	InquiryType string `json:"inquiryType"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

// DemoRequestSubmission is a single demo request payload.
type DemoRequestSubmission struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	CompanyName     string   `json:"companyName"`
	CompanySize     string   `json:"companySize"`
	ShippingRegions []string `json:"shippingRegions"`
	CurrentTools    []string `json:"currentTools,omitempty"`
	Challenge       string   `json:"challenge"`
}

// Acknowledgment confirms acceptance of a submission by the pipeline. It does
// not guarantee mailbox delivery. ID is a freshly generated opaque identifier;
// dev-bypass acknowledgments use a distinct "dev-" prefix.
type Acknowledgment struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Status    string `json:"status,omitempty"`
}
