package dcc

// IssuerRole identifies who issues the certificate.
type IssuerRole string

const (
	IssuerManufacturer IssuerRole = "manufacturer"
	IssuerLaboratory   IssuerRole = "calibrationLaboratory"
	IssuerCustomer     IssuerRole = "customer"
	IssuerOwner        IssuerRole = "owner"
	IssuerOther        IssuerRole = "other"
)

// Valid reports whether the role is one of the known issuer roles.
func (r IssuerRole) Valid() bool {
	switch r {
	case IssuerManufacturer, IssuerLaboratory, IssuerCustomer, IssuerOwner, IssuerOther:
		return true
	}
	return false
}

// CalibrationPlace identifies where the calibration was performed.
type CalibrationPlace string

const (
	PlaceLaboratory       CalibrationPlace = "laboratory"
	PlaceCustomer         CalibrationPlace = "customer"
	PlaceLaboratoryBranch CalibrationPlace = "laboratoryBranch"
	PlaceCustomerBranch   CalibrationPlace = "customerBranch"
	PlaceOther            CalibrationPlace = "other"
)

// Valid reports whether the place is one of the known locations.
func (p CalibrationPlace) Valid() bool {
	switch p {
	case PlaceLaboratory, PlaceCustomer, PlaceLaboratoryBranch, PlaceCustomerBranch, PlaceOther:
		return true
	}
	return false
}

// IdentityIssuer identifies who assigned an object's identification.
// Shares the issuer vocabulary.
type IdentityIssuer string

const (
	IdentityByManufacturer IdentityIssuer = "manufacturer"
	IdentityByLaboratory   IdentityIssuer = "calibrationLaboratory"
	IdentityByCustomer     IdentityIssuer = "customer"
	IdentityByOwner        IdentityIssuer = "owner"
	IdentityByOther        IdentityIssuer = "other"
)

// Valid reports whether the identity issuer is a known value.
func (i IdentityIssuer) Valid() bool {
	switch i {
	case IdentityByManufacturer, IdentityByLaboratory, IdentityByCustomer, IdentityByOwner, IdentityByOther:
		return true
	}
	return false
}

// CertificateStatus is the review status a director can set on a
// submitted certificate.
type CertificateStatus string

const (
	StatusApproved CertificateStatus = "approved"
	StatusRejected CertificateStatus = "rejected"
)

// Valid reports whether the status is one a director may set.
func (s CertificateStatus) Valid() bool {
	return s == StatusApproved || s == StatusRejected
}
