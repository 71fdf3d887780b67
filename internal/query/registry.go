package query

// Kind tags how a filterable field is matched. Only fields listed in a
// registry can ever be constrained, so a request parameter can never reach
// an unlisted column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindDateTime
	// KindRelation matches a related entity's id by equality through the
	// foreign-key column, regardless of the value's own field lookup.
	KindRelation
)

// Field describes one filterable field: its database column and match kind.
type Field struct {
	Column string
	Kind   Kind
}

// Registry maps request parameter names to filterable fields of one entity.
type Registry map[string]Field

// TenderFields lists every tender field reachable from listing filters.
// Parameter names follow the JSON names of the entity.
var TenderFields = Registry{
	"id":        {Column: "id", Kind: KindInt},
	"createdAt": {Column: "created_at", Kind: KindDateTime},

	"userId":     {Column: "user_id", Kind: KindRelation},
	"supplierId": {Column: "supplier_id", Kind: KindRelation},
	"tendererId": {Column: "tenderer_id", Kind: KindRelation},

	"prozorroNumber": {Column: "prozorro_number", Kind: KindString},
	"title":          {Column: "title", Kind: KindString},
	"unit":           {Column: "unit", Kind: KindString},
	"procedureType":  {Column: "procedure_type", Kind: KindString},
	"produceType":    {Column: "produce_type", Kind: KindString},

	"organizerName":      {Column: "organizer_name", Kind: KindString},
	"organizerUsreou":    {Column: "organizer_usreou", Kind: KindString},
	"organizerAddress":   {Column: "organizer_address", Kind: KindString},
	"contactPersonName":  {Column: "contact_person_name", Kind: KindString},
	"contactPersonPhone": {Column: "contact_person_phone", Kind: KindString},
	"contactPersonEmail": {Column: "contact_person_email", Kind: KindString},

	"categoryId":    {Column: "category_id", Kind: KindInt},
	"categoryCode":  {Column: "category_code", Kind: KindString},
	"categoryTitle": {Column: "category_title", Kind: KindString},

	"statusTitle":             {Column: "status_title", Kind: KindString},
	"participantsOfferStatus": {Column: "participants_offer_status", Kind: KindString},
	"internalStage":           {Column: "internal_stage", Kind: KindString},

	"budgetAmount":      {Column: "budget_amount", Kind: KindFloat},
	"budgetAmountTitle": {Column: "budget_amount_title", Kind: KindString},
	"withVat":           {Column: "with_vat", Kind: KindBool},
	"vatTitle":          {Column: "vat_title", Kind: KindString},
	"currencyTitle":     {Column: "currency_title", Kind: KindString},
	"currencyHtmlTitle": {Column: "currency_html_title", Kind: KindString},
	"currencyId":        {Column: "currency_id", Kind: KindInt},

	"guaranteeBank":   {Column: "guarantee_bank", Kind: KindBool},
	"participantCost": {Column: "participant_cost", Kind: KindInt},

	"enquiryPeriodStart": {Column: "enquiry_period_start", Kind: KindDateTime},
	"enquiryPeriodEnd":   {Column: "enquiry_period_end", Kind: KindDateTime},
	"tenderingPeriodEnd": {Column: "tendering_period_end", Kind: KindDateTime},
	"auctionStart":       {Column: "auction_start", Kind: KindDateTime},
	"qualificationDate":  {Column: "qualification_date", Kind: KindDateTime},

	"dealId":     {Column: "deal_id", Kind: KindString},
	"dealDate":   {Column: "deal_date", Kind: KindDateTime},
	"dealAmount": {Column: "deal_amount", Kind: KindInt},
	"dealUrl":    {Column: "deal_url", Kind: KindString},

	"amountByAccounts":         {Column: "amount_by_accounts", Kind: KindInt},
	"deliveryTermsUponRequest": {Column: "delivery_terms_upon_request", Kind: KindBool},
	"deliveryPeriodTo":         {Column: "delivery_period_to", Kind: KindDate},
	"paymentTermsDay":          {Column: "payment_terms_day", Kind: KindInt},
	"deliveryAddress":          {Column: "delivery_address", Kind: KindString},

	"cost":       {Column: "cost", Kind: KindInt},
	"commentary": {Column: "commentary", Kind: KindString},
}

// UserFields lists the user fields reachable from admin listing filters.
// Password and roles are deliberately absent: the hash is never matchable
// and role membership has its own dedicated filter.
var UserFields = Registry{
	"id":        {Column: "id", Kind: KindInt},
	"name":      {Column: "name", Kind: KindString},
	"surname":   {Column: "surname", Kind: KindString},
	"email":     {Column: "email", Kind: KindString},
	"username":  {Column: "username", Kind: KindString},
	"status":    {Column: "status", Kind: KindString},
	"createdAt": {Column: "created_at", Kind: KindDateTime},
}

// SortColumn resolves a sort-by parameter through the registry, falling
// back to the id column for unknown names so raw input never reaches an
// ORDER BY clause.
func (r Registry) SortColumn(name string) string {
	if f, ok := r[name]; ok {
		return f.Column
	}
	return "id"
}
