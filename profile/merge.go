package profile

import (
	"log"

	"kycapp/extraction"
	"kycapp/models"
)

// MergeDocument folds the fields extracted for docType into detail, applying
// the per-document rules. detail is mutated in memory only; persistence is the
// caller's job. Returns true when at least one field changed.
func MergeDocument(ex extraction.Extractor, detail *models.KycDetail, docType string) bool {
	switch docType {
	case "aadhar_front":
		return overwriteFields(detail, ex.Extract(docType, ""))
	case "aadhar_back":
		return mergeBackOfID(detail, ex.Extract(docType, ""))
	case "pancard":
		return overwriteFields(detail, ex.Extract(docType, detail.Name))
	case "passport":
		// passport address overwrites outright, unlike aadhar_back
		return overwriteFields(detail, ex.Extract(docType, detail.Name))
	case "video":
		return false
	default:
		log.Printf("Unknown document type %q, no extraction performed", docType)
		return false
	}
}

// overwriteFields writes every non-empty extracted field onto the same-named
// Detail field. Keys with no Detail column are dropped.
func overwriteFields(detail *models.KycDetail, extracted extraction.Record) bool {
	changed := false
	for key, value := range extracted {
		if value == "" {
			continue
		}
		if setField(detail, key, value) {
			changed = true
		}
	}
	return changed
}

// mergeBackOfID applies the address/pincode special case: a Detail that
// already has an address keeps it and gains the pincode; otherwise the new
// address is built from whichever halves are present.
func mergeBackOfID(detail *models.KycDetail, extracted extraction.Record) bool {
	address := extracted["address"]
	pincode := extracted["pincode"]

	if detail.Address != "" {
		if pincode == "" {
			return false
		}
		detail.Address = detail.Address + ", " + pincode
		return true
	}

	switch {
	case address != "" && pincode != "":
		detail.Address = address + ", " + pincode
	case address != "":
		detail.Address = address
	case pincode != "":
		detail.Address = pincode
	default:
		return false
	}
	return true
}

func setField(detail *models.KycDetail, key, value string) bool {
	switch key {
	case "name":
		detail.Name = value
	case "dob":
		detail.DOB = value
	case "gender":
		detail.Gender = value
	case "address":
		detail.Address = value
	case "aadhar_number":
		detail.AadharNumber = value
	case "pan_number":
		detail.PanNumber = value
	case "father_name":
		detail.FatherName = value
	case "email":
		detail.Email = value
	case "phone":
		detail.Phone = value
	case "nationality":
		detail.Nationality = value
	default:
		return false
	}
	return true
}
