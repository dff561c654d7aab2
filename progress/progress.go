package progress

import (
	"strings"

	"kycapp/models"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Step is one entry of the onboarding checklist.
type Step struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Evaluate derives the fixed nine-step checklist from the current case and
// document rows. Progress has no persisted state of its own: calling this
// twice with no intervening writes yields identical results.
func Evaluate(kycCase models.KycCase, docs []models.KycDocument) ([]Step, string) {
	steps := []Step{
		{ID: "registration", Name: "Registration", Status: StatusPending},
		{ID: "aadhar_upload", Name: "Aadhar Upload", Status: StatusPending},
		{ID: "pan_upload", Name: "PAN Upload", Status: StatusPending},
		{ID: "passport_upload", Name: "Passport Upload", Status: StatusPending},
		{ID: "photo_upload", Name: "Photo Upload", Status: StatusPending},
		{ID: "selfie_upload", Name: "Selfie Upload", Status: StatusPending},
		{ID: "video_upload", Name: "Video Upload", Status: StatusPending},
		{ID: "review", Name: "Review", Status: StatusPending},
		{ID: "kyc_submitted", Name: "KYC Submitted", Status: StatusPending},
	}

	if kycCase.UserID != nil {
		steps[0].Status = StatusCompleted
	}

	docTypes := make([]string, 0, len(docs))
	for _, doc := range docs {
		docTypes = append(docTypes, strings.ToLower(doc.DocType))
	}

	countMatching := func(substrings ...string) int {
		n := 0
		for _, docType := range docTypes {
			for _, sub := range substrings {
				if strings.Contains(docType, sub) {
					n++
					break
				}
			}
		}
		return n
	}

	// Aadhaar needs both front and back present
	if countMatching("aadhar", "aadhaar") >= 2 {
		steps[1].Status = StatusCompleted
	}
	if countMatching("pan") >= 1 {
		steps[2].Status = StatusCompleted
	}
	if countMatching("passport") >= 1 {
		steps[3].Status = StatusCompleted
	}
	if countMatching("photo") >= 1 {
		steps[4].Status = StatusCompleted
	}
	if countMatching("selfie") >= 1 {
		steps[5].Status = StatusCompleted
	}
	if countMatching("video") >= 1 {
		steps[6].Status = StatusCompleted
	}

	// Review and kyc_submitted flip together, driven solely by case status.
	// Presence of details or documents never completes them.
	switch strings.ToLower(kycCase.Status) {
	case "submitted", "approved", "rejected":
		steps[7].Status = StatusCompleted
		steps[8].Status = StatusCompleted
	}

	currentStep := "registration"
	for _, step := range steps {
		currentStep = step.ID
		if step.Status == StatusPending {
			break
		}
	}

	return steps, currentStep
}
