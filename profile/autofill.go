package profile

import (
	"strings"

	"kycapp/extraction"
	"kycapp/models"
)

// autofillDefaults fill still-unset required fields in the auto-populated
// preview so the submission form starts complete.
var autofillDefaults = map[string]interface{}{
	"occupation":         "Not specified",
	"source_of_funds":    "Not specified",
	"business_type":      "Not specified",
	"is_pep":             false,
	"pep_details":        "",
	"annual_income":      "Not specified",
	"purpose_of_account": "Personal",
	"marital_status":     "Not specified",
	"nominee_name":       "",
	"nominee_relation":   "",
	"nominee_contact":    "",
}

// AutoPopulate composes extraction across every document currently on a case
// to answer "what would the profile look like" without touching storage.
// Precedence: Aadhaar, then PAN, then passport, with registration values
// always winning for email/phone. Callers invoke it only when no persisted
// Detail row exists for the case.
func AutoPopulate(ex extraction.Extractor, docs []models.KycDocument, user *models.User) map[string]interface{} {
	fields := extraction.Record{}

	hasFront, hasBack := false, false
	hasPan, hasPassport := false, false
	for _, doc := range docs {
		docType := strings.ToLower(doc.DocType)
		if strings.Contains(docType, "aadhar") || strings.Contains(docType, "aadhaar") {
			if strings.Contains(docType, "front") {
				hasFront = true
			}
			if strings.Contains(docType, "back") {
				hasBack = true
			}
		}
		if strings.Contains(docType, "pan") {
			hasPan = true
		}
		if strings.Contains(docType, "passport") {
			hasPassport = true
		}
	}

	if hasFront {
		for k, v := range ex.Extract("aadhar_front", "") {
			fields[k] = v
		}
	}
	if hasBack {
		back := ex.Extract("aadhar_back", "")
		address := back["address"]
		pincode := back["pincode"]
		switch {
		case address != "" && pincode != "":
			fields["address"] = address + ", " + pincode
		case address != "":
			fields["address"] = address
		case pincode != "":
			fields["address"] = pincode
		}
	}
	if hasPan {
		for k, v := range ex.Extract("pancard", "") {
			fields[k] = v
		}
	}
	if hasPassport {
		for k, v := range ex.Extract("passport", "") {
			fields[k] = v
		}
	}

	out := make(map[string]interface{}, len(fields)+len(autofillDefaults)+2)
	for k, v := range fields {
		out[k] = v
	}

	// Registration is the identity source of record for contact fields, even
	// if an extractor returned email/phone-shaped values.
	if user != nil {
		out["email"] = user.Email
		out["phone"] = user.Phone
	}

	for k, v := range autofillDefaults {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}

	return out
}
