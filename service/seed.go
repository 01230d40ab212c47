package service

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// Seed loads the sample dataset when the contracts table is empty. It is a
// no-op on a populated database.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Contract{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := model.Today()
	daysOut := func(n int) *model.Date {
		d := today.AddDays(n)
		return &d
	}
	str := func(s string) *string { return &s }
	flt := func(f float64) *float64 { return &f }

	return db.Transaction(func(tx *gorm.DB) error {
		contacts := []model.LegalContact{
			{
				Name: "Sarah Johnson", Role: model.ContactRoleAttorney,
				Firm: str("Johnson & Associates LLP"), Email: str("sarah.johnson@jassoc.com"),
				Phone: str("+1-555-0101"), Specialty: str("Contract Law"), HourlyRate: flt(350),
				Notes: str("Primary corporate counsel. Specialises in technology and IP contracts."),
			},
			{
				Name: "Michael Chen", Role: model.ContactRoleParalegal,
				Firm: str("Chen Legal Support"), Email: str("m.chen@chenlegal.com"),
				Phone: str("+1-555-0102"), Specialty: str("Document Review"), HourlyRate: flt(95),
				Notes: str("Available for document review, filing and due-diligence support."),
			},
			{
				Name: "Dr. Patricia Wells", Role: model.ContactRoleAdvisor,
				Firm: str("LegalEagle Consulting"), Email: str("p.wells@legaleagle.com"),
				Phone: str("+1-555-0103"), Specialty: str("Employment Law"), HourlyRate: flt(275),
				Notes: str("Expert in employment contracts, non-compete enforceability and labour regulations."),
			},
			{
				Name: "Robert Martinez", Role: model.ContactRoleNotary,
				Firm: str("Martinez Notary Services"), Email: str("r.martinez@mnotary.com"),
				Phone: str("+1-555-0104"), Specialty: str("Document Notarization"), HourlyRate: flt(75),
				Notes: str("Certified for remote and in-person notarization across all states."),
			},
		}
		if err := tx.Create(&contacts).Error; err != nil {
			return err
		}

		contracts := []model.Contract{
			{
				Title: "Mutual NDA with TechCorp Solutions", Type: model.ContractTypeNDA,
				Status: model.ContractStatusActive, Counterparty: "TechCorp Solutions",
				CounterpartyEmail: str("legal@techcorp.com"),
				StartDate:         daysOut(-350), EndDate: daysOut(15), RenewalDate: daysOut(15),
				AutoRenew: true, Value: flt(0), Currency: "USD",
				Summary:    str("Mutual non-disclosure agreement covering technology development discussions and proprietary product roadmap information."),
				SignedDate: daysOut(-350),
			},
			{
				Title: "Software Development Services Agreement", Type: model.ContractTypeServiceAgreement,
				Status: model.ContractStatusActive, Counterparty: "ConsultPro Ltd",
				CounterpartyEmail: str("contracts@consultpro.com"),
				StartDate:         daysOut(-90), EndDate: daysOut(60),
				Value: flt(125000), Currency: "USD",
				Summary:    str("Agreement for software development consulting services covering UI/UX design, backend API development and QA across three project phases."),
				SignedDate: daysOut(-90),
			},
			{
				Title: "Employment Agreement — VP of Engineering", Type: model.ContractTypeEmployment,
				Status: model.ContractStatusActive, Counterparty: "John Smith",
				CounterpartyEmail: str("j.smith@company.com"),
				StartDate:         daysOut(-180),
				Value:             flt(185000), Currency: "USD",
				Summary:    str("Executive employment agreement for the Vice President of Engineering position, including base salary, equity grant schedule and benefits package."),
				SignedDate: daysOut(-180),
			},
			{
				Title: "Cloud Infrastructure Vendor Agreement", Type: model.ContractTypeVendor,
				Status: model.ContractStatusReview, Counterparty: "SupplyChain Inc",
				CounterpartyEmail: str("vendor@supplychain.com"),
				StartDate:         daysOut(30), EndDate: daysOut(395),
				AutoRenew: true, Value: flt(48000), Currency: "USD",
				Summary: str("Annual vendor agreement for cloud infrastructure provisioning, managed hosting and 24/7 SLA-backed support services."),
			},
			{
				Title: "Office Space Lease Agreement", Type: model.ContractTypeLease,
				Status: model.ContractStatusActive, Counterparty: "Prime Properties LLC",
				CounterpartyEmail: str("leasing@primeprops.com"),
				StartDate:         daysOut(-365), EndDate: daysOut(730),
				Value: flt(240000), Currency: "USD",
				Summary:    str("Three-year commercial office lease for 5,000 sq ft at the downtown business district. Includes parking allocation and fit-out allowance."),
				SignedDate: daysOut(-365),
			},
			{
				Title: "SaaS Platform License Agreement", Type: model.ContractTypeServiceAgreement,
				Status: model.ContractStatusDraft, Counterparty: "CloudProvider Co",
				CounterpartyEmail: str("sales@cloudprovider.com"),
				StartDate:         daysOut(14), EndDate: daysOut(379),
				AutoRenew: true, Value: flt(36000), Currency: "USD",
				Summary: str("Annual SaaS licensing agreement for project management and team collaboration tooling, covering up to 200 seats with enterprise support."),
			},
		}
		if err := tx.Create(&contracts).Error; err != nil {
			return err
		}

		clauses := []model.Clause{
			{
				ContractID: contracts[0].ID, Type: model.ClauseTypeConfidentiality,
				Summary:   str("Mutual confidentiality obligations"),
				Text:      "Each party agrees to maintain the confidentiality of all proprietary information received from the other party and shall not disclose such information to any third party without prior written consent. Obligations survive termination for five years.",
				RiskLevel: model.RiskLevelLow,
				Notes:     str("Standard mutual NDA clause. Survival period is industry-standard."),
			},
			{
				ContractID: contracts[0].ID, Type: model.ClauseTypeTermination,
				Summary:   str("90-day notice with auto-renewal"),
				Text:      "Either party may terminate this Agreement with 90 days written notice. The Agreement shall automatically renew for successive one-year terms unless a party provides written notice of non-renewal at least 90 days before expiry.",
				RiskLevel: model.RiskLevelMedium,
				Notes:     str("Auto-renewal clause — expiry in 15 days. Decision required on scope expansion."),
			},
			{
				ContractID: contracts[1].ID, Type: model.ClauseTypeLiability,
				Summary:   str("Liability cap at 12-month fees"),
				Text:      "Neither party's aggregate liability under this Agreement shall exceed the total fees paid in the twelve months preceding the claim. Consequential, indirect, special or punitive damages are excluded in all circumstances.",
				RiskLevel: model.RiskLevelHigh,
				Notes:     str("Cap may be insufficient for critical system failures. Escalate to legal for review."),
			},
			{
				ContractID: contracts[1].ID, Type: model.ClauseTypePayment,
				Summary:   str("Net-30 payment terms with late fees"),
				Text:      "Payment is due within 30 days of invoice date. Late payments accrue interest at 1.5% per month (18% per annum). Disputed invoices must be raised in writing within 10 business days of receipt.",
				RiskLevel: model.RiskLevelLow,
				Notes:     str("Standard payment terms. Finance team notified of dispute window."),
			},
			{
				ContractID: contracts[1].ID, Type: model.ClauseTypeTermination,
				Summary:   str("Termination for cause — 30-day cure period"),
				Text:      "Either party may terminate this Agreement for material breach upon 30 days written notice, provided the breach is not remedied within such period. Immediate termination is permitted upon an insolvency event or willful misconduct by the other party.",
				RiskLevel: model.RiskLevelMedium,
				Notes:     str("Ensure breach notification workflow is documented and audit-trailed."),
			},
			{
				ContractID: contracts[2].ID, Type: model.ClauseTypeNonCompete,
				Summary:   str("12-month non-compete in technology sector"),
				Text:      "For a period of 12 months following termination of employment, Employee shall not directly or indirectly engage in any competitive business activity within the technology sector in the continental United States, nor solicit the Company's clients or employees.",
				RiskLevel: model.RiskLevelHigh,
				Notes:     str("Enforceability varies by state. Confirm applicability with employment counsel."),
			},
			{
				ContractID: contracts[2].ID, Type: model.ClauseTypeIP,
				Summary:   str("Broad work product assignment to company"),
				Text:      "All inventions, developments, discoveries, designs and work product conceived, created or reduced to practice by Employee during the employment term — whether on or off company premises — shall be the sole and exclusive property of the Company.",
				RiskLevel: model.RiskLevelMedium,
				Notes:     str("Employee acknowledged in writing. Prior inventions list attached as Exhibit A."),
			},
			{
				ContractID: contracts[4].ID, Type: model.ClauseTypeTermination,
				Summary:   str("Early termination — 6-month penalty"),
				Text:      "Tenant may terminate this lease before its natural expiry upon 180 days written notice and payment of an early termination fee equal to six months' base rent. Fit-out allowance must be repaid on a pro-rata basis if termination occurs within year one.",
				RiskLevel: model.RiskLevelHigh,
				Notes:     str("Early termination cost is significant. Factor into any office relocation plans."),
			},
		}
		if err := tx.Create(&clauses).Error; err != nil {
			return err
		}

		items := []model.ComplianceItem{
			{
				Title:       "State Business Operating License",
				Description: str("Annual business license renewal required by the State Department of Business Regulation. Must be renewed before expiry to avoid fines."),
				Category:    model.ComplianceCategoryLicense, Status: model.ComplianceStatusCompliant,
				DueDate: daysOut(90), ResponsiblePerson: str("Operations Manager"),
				Notes: str("Renewed successfully. Confirmation number #BL-2026-00421. Next renewal in 90 days."),
			},
			{
				Title:       "GDPR Data Protection Compliance",
				Description: str("Ensure all data processing activities comply with GDPR requirements including DPA updates, lawful basis documentation, and consent management for marketing."),
				Category:    model.ComplianceCategoryRegulation, Status: model.ComplianceStatusPending,
				DueDate: daysOut(20), ResponsiblePerson: str("DPO — Legal Team"),
				Notes: str("DPA review in progress. Privacy policy update and cookie consent banner scheduled for deployment. Three new vendor DPAs outstanding."),
			},
			{
				Title:       "ISO 27001 Information Security Certification",
				Description: str("Annual recertification audit for the ISO 27001 information security management system. External auditor engaged — evidence collection required."),
				Category:    model.ComplianceCategoryCertification, Status: model.ComplianceStatusExpiring,
				DueDate: daysOut(25), ResponsiblePerson: str("CISO"),
				Notes: str("Audit scheduled. Evidence collection 80% complete. Risk register review outstanding."),
			},
			{
				Title:       "Employee Safety Training Policy",
				Description: str("Mandatory annual safety training completion for all employees as required by OSHA regulations. Includes fire safety, emergency evacuation and workplace hazard modules."),
				Category:    model.ComplianceCategoryPolicy, Status: model.ComplianceStatusNonCompliant,
				DueDate: daysOut(-15), ResponsiblePerson: str("HR Director"),
				Notes: str("OVERDUE: Training completion rate is 67%. Department heads notified. Remedial sessions scheduled. Immediate management escalation required."),
			},
			{
				Title:       "PCI DSS Payment Security Compliance",
				Description: str("Annual PCI DSS Level 1 assessment for payment card data security standards. Covers cardholder data environment scope, penetration testing and SAQ."),
				Category:    model.ComplianceCategoryCertification, Status: model.ComplianceStatusCompliant,
				DueDate: daysOut(180), ResponsiblePerson: str("Security Team"),
				Notes: str("Passed last audit with zero findings. QSA report filed. Next assessment in 6 months."),
			},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		notes := []model.LegalNote{
			{
				ReferenceType: model.ReferenceTypeContract, ReferenceID: &contracts[0].ID,
				Content: "NDA renewal approaching in 15 days. TechCorp has requested scope expansion to cover hardware and firmware discussions. Draft amendment prepared — awaiting partner sign-off before circulating. If not renewed, all active discussions must pause.",
				Author:  "Sarah Johnson",
			},
			{
				ReferenceType: model.ReferenceTypeContract, ReferenceID: &contracts[1].ID,
				Content: "ConsultPro has delivered Phase 1 on schedule and within budget. Phase 2 milestone review scheduled for next week. Engineering team is satisfied with deliverable quality. Consider extending contract for Phase 3 — budget approval needed from CFO.",
				Author:  "Legal Team",
			},
			{
				ReferenceType: model.ReferenceTypeContract, ReferenceID: &contracts[3].ID,
				Content: "Vendor agreement is under review. IT security team has flagged data residency concerns — vendor must confirm EU data remains within EU data centres. Awaiting vendor response to amended SLA and DPA clauses. Do NOT execute until data residency clause is resolved.",
				Author:  "Sarah Johnson",
			},
			{
				ReferenceType: model.ReferenceTypeCompliance, ReferenceID: &items[1].ID,
				Content: "GDPR gap analysis complete. Key findings: (1) consent management for marketing emails lacks granular opt-in records, (2) data processing registry not updated for three new Q4 vendors, (3) data retention policy needs amendment for employee data. Action plan drafted.",
				Author:  "DPO",
			},
			{
				ReferenceType: model.ReferenceTypeCompliance, ReferenceID: &items[3].ID,
				Content: "URGENT — Safety training non-compliance. HR has notified all department heads. Remedial sessions booked for next Tuesday and Wednesday. Non-compliant employees will be suspended from client-facing roles until training is completed.",
				Author:  "HR Director",
			},
			{
				ReferenceType: model.ReferenceTypeGeneral,
				Content:       "Q1 Legal Review Meeting scheduled for next month. Agenda: (1) NDA renewal decisions, (2) GDPR compliance gaps, (3) ISO 27001 audit readiness, (4) pending employment contract amendments, (5) vendor agreement pipeline. All department heads to attend.",
				Author:        "General Counsel",
			},
		}
		if err := tx.Create(&notes).Error; err != nil {
			return err
		}

		slog.Info("database seeded with sample data",
			"contacts", len(contacts),
			"contracts", len(contracts),
			"clauses", len(clauses),
			"compliance_items", len(items),
			"notes", len(notes),
		)
		return nil
	})
}
