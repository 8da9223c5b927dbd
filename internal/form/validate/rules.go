package validate

import "vistoforms/internal/form/models"

// Occupations that make admissionDate required. Aposentado is the only
// occupation keyed to retireeDate; the two date fields are mutually
// exclusive through field visibility, not through a rule.
const (
	OccupationBusinessOwner = "Empresário/Proprietário"
	OccupationStudent       = "Estudante"
	OccupationEmployee      = "Contratado (CLT/PJ)"
	OccupationSelfEmployed  = "Autônomo"
	OccupationRetired       = "Aposentado"
	OccupationOther         = "Outro"
)

var rulesByStep = map[models.Step]StepRules{
	models.StepPersonalData: {
		Rules: []Rule{
			{Trigger: "otherNamesConfirmation", When: models.Sim, Requires: []string{"otherNames"}},
			{Trigger: "otherNationalityConfirmation", When: models.Sim, Requires: []string{"otherNationalityPassport"}},
			{Trigger: "USSocialSecurityNumberConfirmation", When: models.Sim, Requires: []string{"USSocialSecurityNumber"}},
			{Trigger: "USTaxpayerIDConfirmation", When: models.Sim, Requires: []string{"USTaxpayerID"}},
		},
	},
	models.StepAddressContacts: {
		ListRules: []ListRule{
			{Trigger: "otherPhonesConfirmation", When: models.Sim, List: "otherPhones"},
			{Trigger: "otherEmailsConfirmation", When: models.Sim, List: "otherEmails"},
		},
	},
	models.StepPassport: {
		Rules: []Rule{
			{Trigger: "passportLostConfirmation", When: models.Sim, Requires: []string{"lostPassportCountry", "lostPassportDetails"}},
		},
	},
	models.StepAboutTravel: {
		Rules: []Rule{
			// arriveFlyNumber is deliberately absent: a confirmed itinerary
			// requires dates, not flight numbers.
			{Trigger: "travelItineraryConfirmation", When: models.Sim, Requires: []string{"USAPreviewArriveDate", "USAPreviewReturnDate"}},
			{Trigger: "hasAddressInUSA", When: models.Sim, Requires: []string{"USACompleteAddress", "USAZipCode", "USACity", "USAState"}},
		},
	},
	models.StepTravelCompany: {
		Rules: []Rule{
			{Trigger: "groupMemberConfirmation", When: models.Sim, Requires: []string{"groupName"}},
		},
		ListRules: []ListRule{
			{Trigger: "otherPeopleTravelingConfirmation", When: models.Sim, List: "otherPeopleTraveling"},
		},
	},
	models.StepPreviousTravel: {
		Rules: []Rule{
			{Trigger: "americanLicenseToDriveConfirmation", When: models.Sim, Requires: []string{"americanLicense"}},
			{Trigger: "USAVisaConfirmation", When: models.Sim, Requires: []string{"visaIssuingDate", "visaNumber"}},
			{Trigger: "lostVisaConfirmation", When: models.Sim, Requires: []string{"lostVisaDetails"}},
			{Trigger: "canceledVisaConfirmation", When: models.Sim, Requires: []string{"canceledVisaDetails"}},
			{Trigger: "deniedVisaConfirmation", When: models.Sim, Requires: []string{"deniedVisaDetails"}},
			{Trigger: "immigrationRequestByAnotherPersonConfirmation", When: models.Sim, Requires: []string{"immigrationRequestByAnotherPersonDetails"}},
		},
		ListRules: []ListRule{
			{Trigger: "hasBeenOnUSAConfirmation", When: models.Sim, List: "USALastTravel"},
		},
	},
	models.StepUSAContact: {
		Rules: []Rule{
			{Requires: []string{"organizationOrUSAResidentName", "USAContactAddress"}},
		},
	},
	models.StepFamily: {
		Rules: []Rule{
			{Trigger: "fatherLiveInTheUSAConfirmation", When: models.Sim, Requires: []string{"fatherUSASituation"}},
			{Trigger: "motherLiveInTheUSAConfirmation", When: models.Sim, Requires: []string{"motherUSASituation"}},
		},
		ListRules: []ListRule{
			{Trigger: "familyLivingInTheUSAConfirmation", When: models.Sim, List: "familyLivingInTheUSA"},
		},
	},
	models.StepWorkEducation: {
		Occupation: &OccupationRule{
			Field: "occupation",
			Required: map[string]string{
				OccupationBusinessOwner: "admissionDate",
				OccupationStudent:       "admissionDate",
				OccupationEmployee:      "admissionDate",
				OccupationSelfEmployed:  "admissionDate",
				OccupationOther:         "admissionDate",
				OccupationRetired:       "retireeDate",
			},
		},
		ListRules: []ListRule{
			{Trigger: "previousJobConfirmation", When: models.Sim, List: "previousJobs"},
			{Trigger: "courseConfirmation", When: models.Sim, List: "courses"},
		},
	},
	models.StepSecurity: {
		Rules: []Rule{
			{Trigger: "contagiousDiseaseConfirmation", When: models.Sim, Requires: []string{"contagiousDiseaseDetails"}},
			{Trigger: "phisicalMentalProblemConfirmation", When: models.Sim, Requires: []string{"phisicalMentalProblemDetails"}},
			{Trigger: "crimeConfirmation", When: models.Sim, Requires: []string{"crimeDetails"}},
			{Trigger: "drugsProblemConfirmation", When: models.Sim, Requires: []string{"drugsProblemDetails"}},
			{Trigger: "lawViolateConfirmation", When: models.Sim, Requires: []string{"lawViolateDetails"}},
			{Trigger: "prostitutionConfirmation", When: models.Sim, Requires: []string{"prostitutionDetails"}},
			{Trigger: "moneyLaundryConfirmation", When: models.Sim, Requires: []string{"moneyLaundryDetails"}},
			{Trigger: "peopleTrafficConfirmation", When: models.Sim, Requires: []string{"peopleTrafficDetails"}},
			{Trigger: "terrorismConfirmation", When: models.Sim, Requires: []string{"terrorismDetails"}},
			{Trigger: "deportedConfirmation", When: models.Sim, Requires: []string{"deportedDetails"}},
		},
	},
}

// RulesFor exposes a step's rule table, mainly so tests can assert the
// tables independently of the engine.
func RulesFor(step models.Step) StepRules {
	return rulesByStep[step]
}
