package profile

import (
	"testing"

	"kycapp/extraction"
	"kycapp/models"

	"github.com/stretchr/testify/assert"
)

func pinned(records map[string]extraction.Record) *extraction.PinnedExtractor {
	return &extraction.PinnedExtractor{Records: records}
}

func TestMergeFrontOverwritesFields(t *testing.T) {
	ex := pinned(map[string]extraction.Record{
		"aadhar_front": {"name": "Rahul Sharma", "dob": "1988-05-23", "gender": "Male", "aadhar_number": "234567890123"},
	})

	detail := &models.KycDetail{KycCaseID: 1, Name: "Old Name"}
	changed := MergeDocument(ex, detail, "aadhar_front")

	assert.True(t, changed)
	assert.Equal(t, "Rahul Sharma", detail.Name)
	assert.Equal(t, "1988-05-23", detail.DOB)
	assert.Equal(t, "Male", detail.Gender)
	assert.Equal(t, "234567890123", detail.AadharNumber)
}

func TestMergeBackIntoEmptyDetail(t *testing.T) {
	ex := pinned(map[string]extraction.Record{
		"aadhar_back": {"address": "X", "pincode": "411045"},
	})

	detail := &models.KycDetail{KycCaseID: 1}
	changed := MergeDocument(ex, detail, "aadhar_back")

	assert.True(t, changed)
	assert.Equal(t, "X, 411045", detail.Address)
}

func TestMergeBackAppendsToExistingAddress(t *testing.T) {
	ex := pinned(map[string]extraction.Record{
		"aadhar_back": {"address": "X", "pincode": "411045"},
	})

	detail := &models.KycDetail{KycCaseID: 1, Address: "Y"}
	changed := MergeDocument(ex, detail, "aadhar_back")

	assert.True(t, changed)
	assert.Equal(t, "Y, 411045", detail.Address)
}

func TestMergeBackWithOnlyOneHalf(t *testing.T) {
	detail := &models.KycDetail{KycCaseID: 1}
	MergeDocument(pinned(map[string]extraction.Record{
		"aadhar_back": {"address": "X"},
	}), detail, "aadhar_back")
	assert.Equal(t, "X", detail.Address)

	detail = &models.KycDetail{KycCaseID: 1}
	MergeDocument(pinned(map[string]extraction.Record{
		"aadhar_back": {"pincode": "411045"},
	}), detail, "aadhar_back")
	assert.Equal(t, "411045", detail.Address)
}

func TestMergePassportOverwritesAddressOutright(t *testing.T) {
	ex := pinned(map[string]extraction.Record{
		"passport": {"name": "Rahul Sharma", "passport_number": "M1234567", "address": "22, Lotus Apartments, Mumbai"},
	})

	detail := &models.KycDetail{KycCaseID: 1, Address: "Old Address, 411045"}
	changed := MergeDocument(ex, detail, "passport")

	assert.True(t, changed)
	assert.Equal(t, "22, Lotus Apartments, Mumbai", detail.Address)
}

func TestMergePancardKeepsKnownName(t *testing.T) {
	ex := pinned(map[string]extraction.Record{
		"pancard": {"name": "Someone Else", "pan_number": "FMPPK1234L"},
	})

	detail := &models.KycDetail{KycCaseID: 1, Name: "Rahul Sharma"}
	changed := MergeDocument(ex, detail, "pancard")

	assert.True(t, changed)
	assert.Equal(t, "Rahul Sharma", detail.Name)
	assert.Equal(t, "FMPPK1234L", detail.PanNumber)
}

func TestMergeVideoAndUnknownTypesAreNoOps(t *testing.T) {
	ex := pinned(map[string]extraction.Record{})

	detail := &models.KycDetail{KycCaseID: 1, Name: "Rahul Sharma"}
	assert.False(t, MergeDocument(ex, detail, "video"))
	assert.False(t, MergeDocument(ex, detail, "driving_license"))
	assert.Equal(t, "Rahul Sharma", detail.Name)
}

func TestMergeEmptyExtractionIsNoOp(t *testing.T) {
	ex := pinned(map[string]extraction.Record{
		"aadhar_front": {},
	})

	detail := &models.KycDetail{KycCaseID: 1, Name: "Rahul Sharma"}
	assert.False(t, MergeDocument(ex, detail, "aadhar_front"))
	assert.Equal(t, "Rahul Sharma", detail.Name)
}

func TestMergeDropsKeysWithoutDetailField(t *testing.T) {
	ex := pinned(map[string]extraction.Record{
		"passport": {"passport_number": "M1234567"},
	})

	detail := &models.KycDetail{KycCaseID: 1}
	// passport_number has no Detail column; nothing changes
	assert.False(t, MergeDocument(ex, detail, "passport"))
}
