package models

import "time"

// Role is a user role tag. A user may carry several; each grants a
// different slot on a tender.
type Role string

const (
	RoleUser     Role = "USER"
	RoleSupplier Role = "SUPPLIER"
	RoleTenderer Role = "TENDERER"
	RoleAdmin    Role = "ADMIN"
)

// ValidRole reports whether r is one of the known role tags.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleSupplier, RoleTenderer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleList is stored as a JSON array column so role membership checks work
// the same on postgres and sqlite.
type RoleList []Role

// Has reports whether the list contains the given role.
func (rl RoleList) Has(role Role) bool {
	for _, r := range rl {
		if r == role {
			return true
		}
	}
	return false
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserPending UserStatus = "PENDING"
	UserActive  UserStatus = "ACTIVE"
	UserBanned  UserStatus = "BANNED"
)

// User represents a registered account.
type User struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Surname   string     `gorm:"not null" json:"surname"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Username  string     `gorm:"uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"not null" json:"-"`
	Status    UserStatus `gorm:"type:varchar(20)" json:"status"`
	Roles     RoleList   `gorm:"serializer:json" json:"roles"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

// CompanyType is the legal form of a participant company.
type CompanyType string

const (
	CompanyTOV CompanyType = "ТОВ"
	CompanyFOP CompanyType = "ФОП"
)

// Participant is a reference company assignable to a tender's participant
// slot. Referenced by id, not owned by any tender.
type Participant struct {
	ID   int64       `gorm:"primaryKey" json:"id"`
	Type CompanyType `gorm:"type:varchar(20)" json:"type"`
	Name string      `json:"name"`
}

// TenderStage is the local workflow stage, never sourced from the portal.
type TenderStage string

const (
	StageCreated    TenderStage = "CREATED"
	StageInProgress TenderStage = "IN_PROGRESS"
	StageCompleted  TenderStage = "COMPLETED"
)

// Tender mirrors a procurement record from the external portal, enriched
// locally. The id is the portal's tender id, never generated here. Almost
// every attribute starts nil and is filled in as the tender progresses, so
// nullable attributes are pointers; a sparse Tender value doubles as the
// patch payload for partial updates.
type Tender struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID *int64 `json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`

	SupplierID *int64 `json:"supplierId"`
	Supplier   *User  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`

	TendererID *int64 `json:"tendererId"`
	Tenderer   *User  `gorm:"foreignKey:TendererID" json:"tenderer,omitempty"`

	ParticipantID *int64       `json:"participantId"`
	Participant   *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`

	ProzorroNumber *string `json:"prozorroNumber"`
	Title          *string `gorm:"size:510" json:"title"`
	Unit           *string `json:"unit"`
	ProcedureType  *string `json:"procedureType"`
	ProduceType    *string `json:"produceType"`

	OrganizerName      *string `gorm:"size:510" json:"organizerName"`
	OrganizerUsreou    *string `json:"organizerUsreou"`
	OrganizerAddress   *string `gorm:"size:510" json:"organizerAddress"`
	ContactPersonName  *string `json:"contactPersonName"`
	ContactPersonPhone *string `json:"contactPersonPhone"`
	ContactPersonEmail *string `json:"contactPersonEmail"`

	CategoryID    *int    `json:"categoryId"`
	CategoryCode  *string `json:"categoryCode"`
	CategoryTitle *string `json:"categoryTitle"`

	StatusTitle             *string `json:"statusTitle"`
	ParticipantsOfferStatus *string `json:"participantsOfferStatus"`
	InternalStage           *string `json:"internalStage"`

	BudgetAmount      *float64 `json:"budgetAmount"`
	BudgetAmountTitle *string  `json:"budgetAmountTitle"`
	WithVat           *bool    `json:"withVat"`
	VatTitle          *string  `json:"vatTitle"`
	CurrencyTitle     *string  `json:"currencyTitle"`
	CurrencyHTMLTitle *string  `json:"currencyHtmlTitle"`
	CurrencyID        *int     `json:"currencyId"`

	GuaranteeBank   *bool  `json:"guaranteeBank"`
	ParticipantCost *int64 `json:"participantCost"`

	EnquiryPeriodStart *time.Time `json:"enquiryPeriodStart"`
	EnquiryPeriodEnd   *time.Time `json:"enquiryPeriodEnd"`
	TenderingPeriodEnd *time.Time `json:"tenderingPeriodEnd"`
	AuctionStart       *time.Time `json:"auctionStart"`
	QualificationDate  *time.Time `json:"qualificationDate"`

	DealID     *string    `json:"dealId"`
	DealDate   *time.Time `json:"dealDate"`
	DealAmount *int64     `json:"dealAmount"`
	DealURL    *string    `gorm:"size:500" json:"dealUrl"`

	AmountByAccounts         *int64     `json:"amountByAccounts"`
	DeliveryTermsUponRequest *bool      `json:"deliveryTermsUponRequest"`
	DeliveryPeriodTo         *time.Time `gorm:"type:date" json:"deliveryPeriodTo"`
	PaymentTermsDay          *int       `json:"paymentTermsDay"`
	DeliveryAddress          *string    `gorm:"size:510" json:"deliveryAddress"`

	Cost       *int        `json:"cost"`
	Commentary *string     `gorm:"size:1000" json:"commentary"`
	Stage      TenderStage `gorm:"type:varchar(20);default:CREATED" json:"stage"`

	Items                []Item                 `gorm:"foreignKey:TenderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	ItemsAndParticipants []ItemsAndParticipants `gorm:"foreignKey:TenderID;constraint:OnDelete:CASCADE" json:"itemsAndParticipants,omitempty"`
	Files                []File                 `gorm:"foreignKey:TenderID;constraint:OnDelete:CASCADE" json:"files,omitempty"`
}

// Item is a nomenclature line of a tender, created only during ingestion.
type Item struct {
	ID       int64  `gorm:"primaryKey" json:"-"`
	TenderID int64  `gorm:"not null;index" json:"-"`
	Title    string `gorm:"not null" json:"title"`
	Count    string `json:"count"`
}

// ItemStatus tracks invoice/delivery progress, in the portal's own terms.
type ItemStatus string

const (
	ItemInvoiceRequested ItemStatus = "рах_запрошено"
	ItemInvoiceReceived  ItemStatus = "рах_отримано"
	ItemInvoicePaid      ItemStatus = "рах_сплачено"
	ItemOrderPlaced      ItemStatus = "заказ_на_поставку_зроблено"
	ItemGoodsReceived    ItemStatus = "товар_отримано"
)

// ItemsAndParticipants is a per-tender payment/participation progress row.
// Patch operations replace the whole collection, never merge single rows.
type ItemsAndParticipants struct {
	ID            int64      `gorm:"primaryKey" json:"-"`
	TenderID      int64      `gorm:"not null;index" json:"-"`
	Supplier      *string    `json:"supplier"`
	AccountNumber *string    `json:"accountNumber"`
	Date          *time.Time `json:"date"`
	ItemStatus    ItemStatus `gorm:"type:varchar(40)" json:"itemStatus"`
}

// File is metadata for an uploaded attachment. The blob itself lives in the
// storage collaborator under (TenderID, StoredName).
type File struct {
	ID         int64  `gorm:"primaryKey" json:"-"`
	TenderID   int64  `gorm:"not null;index" json:"-"`
	FileName   string `json:"fileName"`
	StoredName string `gorm:"index" json:"storedName"`
	Path       string `json:"-"`
	Size       int64  `json:"size"`
}
