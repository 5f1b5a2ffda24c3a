package models

// OrganizationType enumerates the legal forms the portal accepts.
type OrganizationType string

const (
	OrgProprietorship OrganizationType = "proprietorship"
	OrgPartnership    OrganizationType = "partnership"
	OrgHUF            OrganizationType = "huf"
	OrgPrivateLimited OrganizationType = "private_limited"
	OrgLLP            OrganizationType = "llp"
	OrgSociety        OrganizationType = "society"
	OrgTrust          OrganizationType = "trust"
	OrgCooperative    OrganizationType = "cooperative"
)

// SocialCategory is the declared social category of the applicant.
type SocialCategory string

const (
	CategoryGeneral SocialCategory = "general"
	CategorySC      SocialCategory = "sc"
	CategoryST      SocialCategory = "st"
	CategoryOBC     SocialCategory = "obc"
)

// Gender is the declared gender of the applicant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// GSTIN is a declared indirect-tax identifier. Organization details hold a
// *GSTIN: nil means "not declared", so the required-iff-declared rule is
// structural rather than a runtime flag check.
type GSTIN string

func (g GSTIN) String() string { return string(g) }
