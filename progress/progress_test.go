package progress

import (
	"testing"

	"kycapp/models"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func caseWith(userID *uint, status string) models.KycCase {
	kycCase := models.KycCase{UserID: userID, Status: status}
	kycCase.ID = 1
	return kycCase
}

func docsOf(types ...string) []models.KycDocument {
	docs := make([]models.KycDocument, 0, len(types))
	for _, docType := range types {
		docs = append(docs, models.KycDocument{KycCaseID: 1, DocType: docType, FilePath: "uploads/x"})
	}
	return docs
}

func stepByID(steps []Step, id string) Step {
	for _, step := range steps {
		if step.ID == id {
			return step
		}
	}
	return Step{}
}

func TestRegistrationStep(t *testing.T) {
	steps, current := Evaluate(caseWith(nil, "initiated"), nil)
	assert.Equal(t, StatusPending, stepByID(steps, "registration").Status)
	assert.Equal(t, "registration", current)

	steps, current = Evaluate(caseWith(uintPtr(7), "initiated"), nil)
	assert.Equal(t, StatusCompleted, stepByID(steps, "registration").Status)
	assert.Equal(t, "aadhar_upload", current)
}

func TestAadharNeedsBothSides(t *testing.T) {
	steps, _ := Evaluate(caseWith(uintPtr(7), "initiated"), docsOf("aadhar_front"))
	assert.Equal(t, StatusPending, stepByID(steps, "aadhar_upload").Status)

	steps, _ = Evaluate(caseWith(uintPtr(7), "initiated"), docsOf("aadhar_front", "aadhar_back"))
	assert.Equal(t, StatusCompleted, stepByID(steps, "aadhar_upload").Status)

	// order must not matter
	steps, _ = Evaluate(caseWith(uintPtr(7), "initiated"), docsOf("aadhar_back", "aadhar_front"))
	assert.Equal(t, StatusCompleted, stepByID(steps, "aadhar_upload").Status)
}

func TestAadharSpellingVariants(t *testing.T) {
	steps, _ := Evaluate(caseWith(nil, "initiated"), docsOf("aadhaar_front", "Aadhar_Back"))
	assert.Equal(t, StatusCompleted, stepByID(steps, "aadhar_upload").Status)
}

func TestSingleDocumentSteps(t *testing.T) {
	docs := docsOf("pancard", "passport", "photo", "selfie", "video")
	steps, _ := Evaluate(caseWith(nil, "initiated"), docs)

	assert.Equal(t, StatusCompleted, stepByID(steps, "pan_upload").Status)
	assert.Equal(t, StatusCompleted, stepByID(steps, "passport_upload").Status)
	assert.Equal(t, StatusCompleted, stepByID(steps, "photo_upload").Status)
	assert.Equal(t, StatusCompleted, stepByID(steps, "selfie_upload").Status)
	assert.Equal(t, StatusCompleted, stepByID(steps, "video_upload").Status)
}

func TestDocTypeMatchingIsSubstringBased(t *testing.T) {
	steps, _ := Evaluate(caseWith(nil, "initiated"), docsOf("my_selfie_v2", "PASSPORT_scan"))
	assert.Equal(t, StatusCompleted, stepByID(steps, "selfie_upload").Status)
	assert.Equal(t, StatusCompleted, stepByID(steps, "passport_upload").Status)
}

func TestReviewDrivenSolelyByCaseStatus(t *testing.T) {
	// documents alone never complete review or kyc_submitted
	docs := docsOf("aadhar_front", "aadhar_back", "pancard", "passport", "photo", "selfie", "video")
	steps, _ := Evaluate(caseWith(uintPtr(7), "in_progress"), docs)
	assert.Equal(t, StatusPending, stepByID(steps, "review").Status)
	assert.Equal(t, StatusPending, stepByID(steps, "kyc_submitted").Status)

	for _, status := range []string{"submitted", "approved", "rejected", "Approved"} {
		steps, _ := Evaluate(caseWith(nil, status), nil)
		assert.Equal(t, StatusCompleted, stepByID(steps, "review").Status, status)
		assert.Equal(t, StatusCompleted, stepByID(steps, "kyc_submitted").Status, status)
	}
}

func TestCurrentStepIsFirstPending(t *testing.T) {
	docs := docsOf("aadhar_front", "aadhar_back")
	_, current := Evaluate(caseWith(uintPtr(7), "initiated"), docs)
	assert.Equal(t, "pan_upload", current)
}

func TestCurrentStepAllCompleted(t *testing.T) {
	docs := docsOf("aadhar_front", "aadhar_back", "pancard", "passport", "photo", "selfie", "video")
	_, current := Evaluate(caseWith(uintPtr(7), "submitted"), docs)
	assert.Equal(t, "kyc_submitted", current)
}

func TestEvaluateIsPure(t *testing.T) {
	kycCase := caseWith(uintPtr(7), "in_progress")
	docs := docsOf("aadhar_front", "pancard")

	steps1, current1 := Evaluate(kycCase, docs)
	steps2, current2 := Evaluate(kycCase, docs)

	assert.Equal(t, steps1, steps2)
	assert.Equal(t, current1, current2)
}
