package model

import (
	"fmt"
	"strings"
)

// ContractType classifies a contract.
type ContractType string

const (
	ContractTypeNDA              ContractType = "nda"
	ContractTypeServiceAgreement ContractType = "service_agreement"
	ContractTypeEmployment       ContractType = "employment"
	ContractTypeVendor           ContractType = "vendor"
	ContractTypeLease            ContractType = "lease"
	ContractTypeOther            ContractType = "other"
)

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusReview     ContractStatus = "review"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusExpired    ContractStatus = "expired"
	ContractStatusTerminated ContractStatus = "terminated"
)

// ClauseType classifies a clause within a contract.
type ClauseType string

const (
	ClauseTypeTermination     ClauseType = "termination"
	ClauseTypeLiability       ClauseType = "liability"
	ClauseTypeIP              ClauseType = "ip"
	ClauseTypeConfidentiality ClauseType = "confidentiality"
	ClauseTypeNonCompete      ClauseType = "non_compete"
	ClauseTypePayment         ClauseType = "payment"
	ClauseTypeOther           ClauseType = "other"
)

// RiskLevel grades a clause's risk.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// ComplianceCategory classifies a compliance item.
type ComplianceCategory string

const (
	ComplianceCategoryLicense       ComplianceCategory = "license"
	ComplianceCategoryRegulation    ComplianceCategory = "regulation"
	ComplianceCategoryPolicy        ComplianceCategory = "policy"
	ComplianceCategoryCertification ComplianceCategory = "certification"
)

// ComplianceStatus is the state of a compliance item.
type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "compliant"
	ComplianceStatusNonCompliant ComplianceStatus = "non_compliant"
	ComplianceStatusPending      ComplianceStatus = "pending"
	ComplianceStatusExpiring     ComplianceStatus = "expiring"
)

// ContactRole is the role of a legal contact.
type ContactRole string

const (
	ContactRoleAttorney  ContactRole = "attorney"
	ContactRoleParalegal ContactRole = "paralegal"
	ContactRoleAdvisor   ContactRole = "advisor"
	ContactRoleNotary    ContactRole = "notary"
)

// ReferenceType tags what a legal note loosely points at.
type ReferenceType string

const (
	ReferenceTypeContract   ReferenceType = "contract"
	ReferenceTypeCompliance ReferenceType = "compliance"
	ReferenceTypeGeneral    ReferenceType = "general"
)

var (
	contractTypes        = []ContractType{ContractTypeNDA, ContractTypeServiceAgreement, ContractTypeEmployment, ContractTypeVendor, ContractTypeLease, ContractTypeOther}
	contractStatuses     = []ContractStatus{ContractStatusDraft, ContractStatusReview, ContractStatusActive, ContractStatusExpired, ContractStatusTerminated}
	clauseTypes          = []ClauseType{ClauseTypeTermination, ClauseTypeLiability, ClauseTypeIP, ClauseTypeConfidentiality, ClauseTypeNonCompete, ClauseTypePayment, ClauseTypeOther}
	riskLevels           = []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh}
	complianceCategories = []ComplianceCategory{ComplianceCategoryLicense, ComplianceCategoryRegulation, ComplianceCategoryPolicy, ComplianceCategoryCertification}
	complianceStatuses   = []ComplianceStatus{ComplianceStatusCompliant, ComplianceStatusNonCompliant, ComplianceStatusPending, ComplianceStatusExpiring}
	contactRoles         = []ContactRole{ContactRoleAttorney, ContactRoleParalegal, ContactRoleAdvisor, ContactRoleNotary}
	referenceTypes       = []ReferenceType{ReferenceTypeContract, ReferenceTypeCompliance, ReferenceTypeGeneral}
)

// parseEnum rejects any value outside the allowed set. The error message
// lists every legal value so callers can surface it directly.
func parseEnum[T ~string](field, value string, allowed []T) (T, error) {
	for _, a := range allowed {
		if T(value) == a {
			return a, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	var zero T
	return zero, fmt.Errorf("invalid %s '%s': must be one of: %s", field, value, strings.Join(names, ", "))
}

func ParseContractType(s string) (ContractType, error) {
	return parseEnum("type", s, contractTypes)
}

func ParseContractStatus(s string) (ContractStatus, error) {
	return parseEnum("status", s, contractStatuses)
}

func ParseClauseType(s string) (ClauseType, error) {
	return parseEnum("type", s, clauseTypes)
}

func ParseRiskLevel(s string) (RiskLevel, error) {
	return parseEnum("risk_level", s, riskLevels)
}

func ParseComplianceCategory(s string) (ComplianceCategory, error) {
	return parseEnum("category", s, complianceCategories)
}

func ParseComplianceStatus(s string) (ComplianceStatus, error) {
	return parseEnum("status", s, complianceStatuses)
}

func ParseContactRole(s string) (ContactRole, error) {
	return parseEnum("role", s, contactRoles)
}

func ParseReferenceType(s string) (ReferenceType, error) {
	return parseEnum("reference_type", s, referenceTypes)
}
