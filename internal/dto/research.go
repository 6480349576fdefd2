package dto

// ResearchRequest asks for a company to be researched. CompanyName may be
// a name or a URL.
type ResearchRequest struct {
	CompanyName string `json:"companyName"`
}
