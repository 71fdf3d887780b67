package portal

// ParsedTender is the document the scraping portal returns for one tender.
// Field names follow the portal's JSON contract; every date/time value is a
// string in the portal's fixed "dd.MM.yyyy HH:mm" format, delivery periods
// in "dd.MM.yyyy".
type ParsedTender struct {
	ProzorroNumber          string                `json:"ProzorroNumber"`
	Organizer               *Organizer            `json:"Organizer"`
	ProcedureType           string                `json:"ProcedureType"`
	Title                   string                `json:"Title"`
	Category                *Category             `json:"Category"`
	StatusTitle             string                `json:"StatusTitle"`
	Budget                  *Budget               `json:"Budget"`
	ImportantDates          *ImportantDates       `json:"ImportantDates"`
	Nomenclatures           []Nomenclature        `json:"Nomenclatures"`
	ParticipationCost       *int64                `json:"ParticipationCostAmount"`
	PaymentTerms            []PaymentTerm         `json:"PaymentTerms"`
	Guarantee               *Guarantee            `json:"Guarantee"`
	ParticipantContracts    []ParticipantContract `json:"ParticipantContracts"`
	Awards                  []Award               `json:"Awards"`
}

type Organizer struct {
	Name          string         `json:"Name"`
	Usreou        string         `json:"Usreou"`
	Address       string         `json:"Address"`
	ContactPerson *ContactPerson `json:"ContactPerson"`
}

type ContactPerson struct {
	Name  string `json:"Name"`
	Phone string `json:"Phone"`
	Email string `json:"Email"`
}

type Category struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

type Budget struct {
	Amount            float64 `json:"Amount"`
	AmountTitle       string  `json:"AmountTitle"`
	WithVat           bool    `json:"WithVat"`
	VatTitle          string  `json:"VatTitle"`
	CurrencyTitle     string  `json:"CurrencyTitle"`
	CurrencyHTMLTitle string  `json:"CurrencyHtmlTitle"`
	CurrencyID        int     `json:"CurrencyId"`
}

type ImportantDates struct {
	EnquiryPeriodStart string `json:"EnquiryPeriodStart"`
	EnquiryPeriodEnd   string `json:"EnquiryPeriodEnd"`
	TenderingPeriodEnd string `json:"TenderingPeriodEnd"`
	AuctionStart       string `json:"AuctionStart"`
}

type Nomenclature struct {
	DeliveryPeriodTo string `json:"DeliveryPeriodTo"`
	DeliveryAddress  string `json:"DeliveryAddress"`
	Title            string `json:"Title"`
	Count            string `json:"Count"`
}

type PaymentTerm struct {
	Days int `json:"Days"`
}

type Guarantee struct {
	AmountTitle bool `json:"AmountTitle"`
}

type ParticipantContract struct {
	ParticipantTitle string     `json:"ParticipantTitle"`
	Contracts        []Contract `json:"Contracts"`
}

type Contract struct {
	Status    *Status    `json:"Status"`
	Amount    *int64     `json:"Amount"`
	Documents []Document `json:"Documents"`
}

type Status struct {
	Title string `json:"Title"`
}

type Document struct {
	ID           int64  `json:"Id"`
	DateModified string `json:"DateModified"`
	ViewURL      string `json:"ViewUrl"`
}

type Award struct {
	Status               string `json:"Status"`
	ParticipantTitle     string `json:"ParticipantTitle"`
	ComplaintPeriodStart string `json:"ComplaintPeriodStart"`
}
