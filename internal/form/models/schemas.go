package models

// Step schemas. Field names match the wire keys the web client sends; the
// Portuguese "Sim"/"Não" radios keep their original semantics.

var schemas = [stepCount]Schema{
	StepPersonalData: {
		Step: StepPersonalData,
		Fields: []FieldSpec{
			{Name: "firstName", Kind: KindText},
			{Name: "lastName", Kind: KindText},
			{Name: "cpf", Kind: KindText},
			{Name: "sex", Kind: KindText},
			{Name: "maritalStatus", Kind: KindText},
			{Name: "birthDate", Kind: KindDate},
			{Name: "birthCity", Kind: KindText},
			{Name: "birthState", Kind: KindText},
			{Name: "birthCountry", Kind: KindText},
			{Name: "otherNamesConfirmation", Kind: KindSimNao},
			{Name: "otherNames", Kind: KindText},
			{Name: "otherNationalityConfirmation", Kind: KindSimNao},
			{Name: "otherNationalityPassport", Kind: KindText},
			{Name: "USSocialSecurityNumberConfirmation", Kind: KindSimNao},
			{Name: "USSocialSecurityNumber", Kind: KindText},
			{Name: "USTaxpayerIDConfirmation", Kind: KindSimNao},
			{Name: "USTaxpayerID", Kind: KindText},
		},
	},
	StepAddressContacts: {
		Step: StepAddressContacts,
		Fields: []FieldSpec{
			{Name: "address", Kind: KindText},
			{Name: "addressNumber", Kind: KindText},
			{Name: "district", Kind: KindText},
			{Name: "complement", Kind: KindText},
			{Name: "cep", Kind: KindText},
			{Name: "city", Kind: KindText},
			{Name: "state", Kind: KindText},
			{Name: "country", Kind: KindText},
			{Name: "cellphone", Kind: KindText},
			{Name: "telephone", Kind: KindText},
			{Name: "email", Kind: KindEmail},
			{Name: "otherPhonesConfirmation", Kind: KindSimNao},
			{Name: "otherPhones", Kind: KindList, Entry: []FieldSpec{
				{Name: "number", Kind: KindText, Required: true, Identifying: true},
			}},
			{Name: "otherEmailsConfirmation", Kind: KindSimNao},
			{Name: "otherEmails", Kind: KindList, Entry: []FieldSpec{
				{Name: "address", Kind: KindEmail, Required: true, Identifying: true},
			}},
		},
	},
	StepPassport: {
		Step: StepPassport,
		Fields: []FieldSpec{
			{Name: "passportNumber", Kind: KindText},
			{Name: "passportCity", Kind: KindText},
			{Name: "passportState", Kind: KindText},
			{Name: "passportIssuingCountry", Kind: KindText},
			{Name: "passportIssuingDate", Kind: KindDate},
			{Name: "passportExpireDate", Kind: KindDate},
			{Name: "passportLostConfirmation", Kind: KindSimNao},
			{Name: "lostPassportNumber", Kind: KindText},
			{Name: "lostPassportCountry", Kind: KindText},
			{Name: "lostPassportDetails", Kind: KindText},
		},
	},
	StepAboutTravel: {
		Step: StepAboutTravel,
		Fields: []FieldSpec{
			{Name: "travelItineraryConfirmation", Kind: KindSimNao},
			{Name: "USAPreviewArriveDate", Kind: KindDate},
			{Name: "arriveFlyNumber", Kind: KindText},
			{Name: "arriveCity", Kind: KindText},
			{Name: "USAPreviewReturnDate", Kind: KindDate},
			{Name: "returnFlyNumber", Kind: KindText},
			{Name: "returnCity", Kind: KindText},
			{Name: "estimatedTime", Kind: KindText},
			{Name: "visitLocations", Kind: KindText},
			{Name: "hasAddressInUSA", Kind: KindSimNao},
			{Name: "USACompleteAddress", Kind: KindText},
			{Name: "USAZipCode", Kind: KindText},
			{Name: "USACity", Kind: KindText},
			{Name: "USAState", Kind: KindText},
			{Name: "payerNameOrCompany", Kind: KindText},
			{Name: "payerTel", Kind: KindText},
			{Name: "payerAddress", Kind: KindText},
			{Name: "payerRelation", Kind: KindText},
			{Name: "payerEmail", Kind: KindEmail},
		},
	},
	StepTravelCompany: {
		Step: StepTravelCompany,
		Fields: []FieldSpec{
			{Name: "otherPeopleTravelingConfirmation", Kind: KindSimNao},
			{Name: "otherPeopleTraveling", Kind: KindList, Entry: []FieldSpec{
				{Name: "name", Kind: KindText, Required: true, Identifying: true},
				{Name: "relation", Kind: KindText, Required: true},
			}},
			{Name: "groupMemberConfirmation", Kind: KindSimNao},
			{Name: "groupName", Kind: KindText},
		},
	},
	StepPreviousTravel: {
		Step: StepPreviousTravel,
		Fields: []FieldSpec{
			{Name: "hasBeenOnUSAConfirmation", Kind: KindSimNao},
			{Name: "USALastTravel", Kind: KindList, Entry: []FieldSpec{
				{Name: "arriveDate", Kind: KindDate, Required: true, Identifying: true},
				{Name: "estimatedTime", Kind: KindText, Required: true, Identifying: true},
			}},
			{Name: "americanLicenseToDriveConfirmation", Kind: KindSimNao},
			{Name: "americanLicense", Kind: KindText},
			{Name: "USAVisaConfirmation", Kind: KindSimNao},
			{Name: "visaIssuingDate", Kind: KindDate},
			{Name: "visaNumber", Kind: KindText},
			{Name: "newVisaConfirmation", Kind: KindSimNao},
			{Name: "sameCountryResidenceConfirmation", Kind: KindSimNao},
			{Name: "fingerprintsProvidedConfirmation", Kind: KindSimNao},
			{Name: "lostVisaConfirmation", Kind: KindSimNao},
			{Name: "lostVisaDetails", Kind: KindText},
			{Name: "canceledVisaConfirmation", Kind: KindSimNao},
			{Name: "canceledVisaDetails", Kind: KindText},
			{Name: "deniedVisaConfirmation", Kind: KindSimNao},
			{Name: "deniedVisaDetails", Kind: KindText},
			{Name: "immigrationRequestByAnotherPersonConfirmation", Kind: KindSimNao},
			{Name: "immigrationRequestByAnotherPersonDetails", Kind: KindText},
		},
	},
	StepUSAContact: {
		Step: StepUSAContact,
		Fields: []FieldSpec{
			{Name: "organizationOrUSAResidentName", Kind: KindText},
			{Name: "USAContactRelation", Kind: KindText},
			{Name: "USAContactAddress", Kind: KindText},
			{Name: "USAContactZipCode", Kind: KindText},
			{Name: "USAContactCity", Kind: KindText},
			{Name: "USAContactState", Kind: KindText},
			{Name: "USAContactPhone", Kind: KindText},
			{Name: "USAContactEmail", Kind: KindEmail},
		},
	},
	StepFamily: {
		Step: StepFamily,
		Fields: []FieldSpec{
			{Name: "fatherCompleteName", Kind: KindText},
			{Name: "fatherBirthdate", Kind: KindDate},
			{Name: "fatherLiveInTheUSAConfirmation", Kind: KindSimNao},
			{Name: "fatherUSASituation", Kind: KindText},
			{Name: "motherCompleteName", Kind: KindText},
			{Name: "motherBirthdate", Kind: KindDate},
			{Name: "motherLiveInTheUSAConfirmation", Kind: KindSimNao},
			{Name: "motherUSASituation", Kind: KindText},
			{Name: "familyLivingInTheUSAConfirmation", Kind: KindSimNao},
			{Name: "familyLivingInTheUSA", Kind: KindList, Entry: []FieldSpec{
				{Name: "name", Kind: KindText, Required: true, Identifying: true},
				{Name: "relation", Kind: KindText, Required: true},
				{Name: "situation", Kind: KindText, Required: true},
			}},
			{Name: "partnerCompleteName", Kind: KindText},
			{Name: "partnerBirthdate", Kind: KindDate},
			{Name: "partnerBirthCity", Kind: KindText},
			{Name: "partnerBirthCountry", Kind: KindText},
			{Name: "unionDate", Kind: KindDate},
			{Name: "divorceDate", Kind: KindDate},
		},
	},
	StepWorkEducation: {
		Step: StepWorkEducation,
		Fields: []FieldSpec{
			{Name: "occupation", Kind: KindText},
			{Name: "office", Kind: KindText},
			{Name: "companyOrBossName", Kind: KindText},
			{Name: "companyAddress", Kind: KindText},
			{Name: "companyCep", Kind: KindText},
			{Name: "companyCity", Kind: KindText},
			{Name: "companyState", Kind: KindText},
			{Name: "companyCountry", Kind: KindText},
			{Name: "companyTelephone", Kind: KindText},
			{Name: "admissionDate", Kind: KindDate},
			{Name: "retireeDate", Kind: KindDate},
			{Name: "monthlySalary", Kind: KindText},
			{Name: "jobDetails", Kind: KindText},
			{Name: "previousJobConfirmation", Kind: KindSimNao},
			{Name: "previousJobs", Kind: KindList, Entry: []FieldSpec{
				{Name: "companyName", Kind: KindText, Required: true, Identifying: true},
				{Name: "companyAddress", Kind: KindText},
				{Name: "companyCity", Kind: KindText, Required: true},
				{Name: "companyTelephone", Kind: KindText},
				{Name: "office", Kind: KindText, Required: true},
				{Name: "supervisorName", Kind: KindText},
				{Name: "admissionDate", Kind: KindDate, Required: true},
				{Name: "resignationDate", Kind: KindDate},
				{Name: "jobDescription", Kind: KindText},
			}},
			{Name: "courseConfirmation", Kind: KindSimNao},
			{Name: "courses", Kind: KindList, Entry: []FieldSpec{
				{Name: "institutionName", Kind: KindText, Required: true, Identifying: true},
				{Name: "institutionAddress", Kind: KindText},
				{Name: "courseName", Kind: KindText, Required: true},
				{Name: "initialDate", Kind: KindDate, Required: true},
				{Name: "finishDate", Kind: KindDate},
			}},
		},
	},
	StepSecurity: {
		Step: StepSecurity,
		Fields: []FieldSpec{
			{Name: "contagiousDiseaseConfirmation", Kind: KindSimNao},
			{Name: "contagiousDiseaseDetails", Kind: KindText},
			{Name: "phisicalMentalProblemConfirmation", Kind: KindSimNao},
			{Name: "phisicalMentalProblemDetails", Kind: KindText},
			{Name: "crimeConfirmation", Kind: KindSimNao},
			{Name: "crimeDetails", Kind: KindText},
			{Name: "drugsProblemConfirmation", Kind: KindSimNao},
			{Name: "drugsProblemDetails", Kind: KindText},
			{Name: "lawViolateConfirmation", Kind: KindSimNao},
			{Name: "lawViolateDetails", Kind: KindText},
			{Name: "prostitutionConfirmation", Kind: KindSimNao},
			{Name: "prostitutionDetails", Kind: KindText},
			{Name: "moneyLaundryConfirmation", Kind: KindSimNao},
			{Name: "moneyLaundryDetails", Kind: KindText},
			{Name: "peopleTrafficConfirmation", Kind: KindSimNao},
			{Name: "peopleTrafficDetails", Kind: KindText},
			{Name: "terrorismConfirmation", Kind: KindSimNao},
			{Name: "terrorismDetails", Kind: KindText},
			{Name: "deportedConfirmation", Kind: KindSimNao},
			{Name: "deportedDetails", Kind: KindText},
		},
	},
}

// SchemaFor returns the field schema of a wizard step.
func SchemaFor(step Step) Schema {
	if !step.Valid() {
		return Schema{}
	}
	return schemas[step]
}
